package usecase

import (
	"testing"
	"time"

	"summit-go-server/domain/entity"
	domainErrors "summit-go-server/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

// ========== EventUseCase 单元测试 ==========
// 测试重点：merge patch 的部分更新语义

func TestEventUseCase_PatchEvent_PartialUpdate(t *testing.T) {
	// 测试场景：补丁只提及部分字段
	// 未提及的字段保持不变，主键和创建时间不允许被改写

	mockEvents := new(MockEventRepository)
	mockSchedule := new(MockScheduleRepository)
	uc := NewEventUseCase(mockEvents, mockSchedule)

	createdAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	existing := &entity.Event{
		ID:        7,
		Slug:      "opening-keynote",
		Title:     "旧标题",
		Summary:   "保持不变的摘要",
		Location:  "主会场",
		Tags:      datatypes.JSON(`["keynote"]`),
		Published: false,
		CreatedAt: createdAt,
	}
	mockEvents.On("GetByID", uint(7)).Return(existing, nil).Once()
	mockEvents.On("Update", mock.MatchedBy(func(event *entity.Event) bool {
		return event.ID == 7 &&
			event.Title == "新标题" &&
			event.Summary == "保持不变的摘要" &&
			event.Published &&
			event.CreatedAt.Equal(createdAt)
	})).Return(nil).Once()

	// RFC 7386：只发送改动的字段
	patch := []byte(`{"title": "新标题", "published": true, "id": 999}`)

	updated, err := uc.PatchEvent(7, patch)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), updated.ID, "补丁里的 id 必须被忽略")
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, "保持不变的摘要", updated.Summary)
	mockEvents.AssertExpectations(t)
}

func TestEventUseCase_PatchEvent_InvalidPatch(t *testing.T) {
	mockEvents := new(MockEventRepository)
	uc := NewEventUseCase(mockEvents, new(MockScheduleRepository))

	mockEvents.On("GetByID", uint(7)).Return(&entity.Event{ID: 7}, nil).Once()

	updated, err := uc.PatchEvent(7, []byte(`not valid json`))

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidPatch)
	mockEvents.AssertNotCalled(t, "Update", mock.Anything)
}

func TestEventUseCase_PatchEvent_NotFound(t *testing.T) {
	mockEvents := new(MockEventRepository)
	uc := NewEventUseCase(mockEvents, new(MockScheduleRepository))

	mockEvents.On("GetByID", uint(42)).Return(nil, nil).Once()

	updated, err := uc.PatchEvent(42, []byte(`{"title": "x"}`))

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainErrors.ErrRecordNotFound)
}

func TestEventUseCase_GetEventBySlug_NotFound(t *testing.T) {
	// repo 的 (nil, nil) 约定在 usecase 层翻译成 ErrRecordNotFound

	mockEvents := new(MockEventRepository)
	uc := NewEventUseCase(mockEvents, new(MockScheduleRepository))

	mockEvents.On("GetBySlug", "missing").Return(nil, nil).Once()

	event, err := uc.GetEventBySlug("missing")

	assert.Nil(t, event)
	assert.ErrorIs(t, err, domainErrors.ErrRecordNotFound)
}

func TestEventUseCase_UpdateScheduleItem_PreservesCreatedAt(t *testing.T) {
	// 整条覆盖更新不允许改写创建时间

	mockSchedule := new(MockScheduleRepository)
	uc := NewEventUseCase(new(MockEventRepository), mockSchedule)

	createdAt := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	mockSchedule.On("GetByID", uint(3)).Return(&entity.ScheduleItem{
		ID: 3, Day: 1, Title: "旧条目", CreatedAt: createdAt,
	}, nil).Once()
	mockSchedule.On("Update", mock.MatchedBy(func(item *entity.ScheduleItem) bool {
		return item.ID == 3 && item.Title == "新条目" && item.CreatedAt.Equal(createdAt)
	})).Return(nil).Once()

	err := uc.UpdateScheduleItem(&entity.ScheduleItem{ID: 3, Day: 1, Title: "新条目"})

	assert.NoError(t, err)
	mockSchedule.AssertExpectations(t)
}
