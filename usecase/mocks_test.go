package usecase

import (
	"summit-go-server/domain/entity"

	"github.com/stretchr/testify/mock"
)

// ========== MockSiteTextRepository ==========
// 实现 repository.SiteTextRepository 接口，用于 SiteTextUseCase 的单元测试
// ListByPage 同时满足 content.TextLoader 和 ws.ContentService，
// 三个协作方共用一个 Mock

type MockSiteTextRepository struct {
	mock.Mock
}

func (m *MockSiteTextRepository) ListByPage(page string) ([]entity.SiteText, error) {
	args := m.Called(page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SiteText), args.Error(1)
}

func (m *MockSiteTextRepository) GetByID(id string) (*entity.SiteText, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SiteText), args.Error(1)
}

func (m *MockSiteTextRepository) Upsert(text *entity.SiteText) error {
	args := m.Called(text)
	return args.Error(0)
}

func (m *MockSiteTextRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// ========== MockEventRepository / MockScheduleRepository ==========

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) List(publishedOnly bool) ([]entity.Event, error) {
	args := m.Called(publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *MockEventRepository) GetBySlug(slug string) (*entity.Event, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventRepository) GetByID(id uint) (*entity.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventRepository) Create(event *entity.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(event *entity.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) List() ([]entity.ScheduleItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ScheduleItem), args.Error(1)
}

func (m *MockScheduleRepository) GetByID(id uint) (*entity.ScheduleItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ScheduleItem), args.Error(1)
}

func (m *MockScheduleRepository) Create(item *entity.ScheduleItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(item *entity.ScheduleItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// ========== MockSubscriberRepository ==========

type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) GetByEmail(email string) (*entity.Subscriber, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) Upsert(subscriber *entity.Subscriber) error {
	args := m.Called(subscriber)
	return args.Error(0)
}

func (m *MockSubscriberRepository) List(activeOnly bool) ([]entity.Subscriber, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
