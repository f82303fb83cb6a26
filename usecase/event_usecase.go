package usecase

import (
	"encoding/json"

	"summit-go-server/domain/entity"
	domainErrors "summit-go-server/domain/errors"
	"summit-go-server/domain/repository"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// EventUseCase 活动与日程业务逻辑层
type EventUseCase struct {
	events   repository.EventRepository
	schedule repository.ScheduleRepository
}

// NewEventUseCase 构造函数，依赖注入
func NewEventUseCase(events repository.EventRepository, schedule repository.ScheduleRepository) *EventUseCase {
	return &EventUseCase{events: events, schedule: schedule}
}

// ========== 活动 ==========

// ListEvents 公开站点只看已发布的，后台看全部
func (uc *EventUseCase) ListEvents(publishedOnly bool) ([]entity.Event, error) {
	return uc.events.List(publishedOnly)
}

// GetEventBySlug 根据 slug 查询活动
func (uc *EventUseCase) GetEventBySlug(slug string) (*entity.Event, error) {
	event, err := uc.events.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domainErrors.ErrRecordNotFound
	}
	return event, nil
}

// CreateEvent 创建活动
func (uc *EventUseCase) CreateEvent(event *entity.Event) error {
	return uc.events.Create(event)
}

// PatchEvent 对活动应用 RFC 7386 merge patch 做部分更新
// 前端只发送改动的字段，未提及的字段保持不变
func (uc *EventUseCase) PatchEvent(id uint, patch []byte) (*entity.Event, error) {
	event, err := uc.events.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domainErrors.ErrRecordNotFound
	}

	current, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	merged, err := jsonpatch.MergePatch(current, patch)
	if err != nil {
		return nil, domainErrors.ErrInvalidPatch
	}

	var updated entity.Event
	if err := json.Unmarshal(merged, &updated); err != nil {
		return nil, domainErrors.ErrInvalidPatch
	}

	// 主键不允许被补丁改写
	updated.ID = event.ID
	updated.CreatedAt = event.CreatedAt

	if err := uc.events.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent 删除活动
func (uc *EventUseCase) DeleteEvent(id uint) error {
	event, err := uc.events.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domainErrors.ErrRecordNotFound
	}
	return uc.events.Delete(id)
}

// ========== 日程 ==========

// ListSchedule 按日/排序返回全部日程
func (uc *EventUseCase) ListSchedule() ([]entity.ScheduleItem, error) {
	return uc.schedule.List()
}

// CreateScheduleItem 创建日程条目
func (uc *EventUseCase) CreateScheduleItem(item *entity.ScheduleItem) error {
	return uc.schedule.Create(item)
}

// UpdateScheduleItem 整条覆盖更新日程条目
func (uc *EventUseCase) UpdateScheduleItem(item *entity.ScheduleItem) error {
	existing, err := uc.schedule.GetByID(item.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainErrors.ErrRecordNotFound
	}
	item.CreatedAt = existing.CreatedAt
	return uc.schedule.Update(item)
}

// DeleteScheduleItem 删除日程条目
func (uc *EventUseCase) DeleteScheduleItem(id uint) error {
	existing, err := uc.schedule.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainErrors.ErrRecordNotFound
	}
	return uc.schedule.Delete(id)
}
