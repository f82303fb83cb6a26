package repository

import (
	"errors"

	"summit-go-server/domain/entity"
	domainRepo "summit-go-server/domain/repository"

	"gorm.io/gorm"
)

// eventRepository GORM 实现 EventRepository 接口
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository 构造函数
func NewEventRepository(db *gorm.DB) domainRepo.EventRepository {
	return &eventRepository{db: db}
}

// List 按开始时间排序返回活动
func (r *eventRepository) List(publishedOnly bool) ([]entity.Event, error) {
	var events []entity.Event
	query := r.db.Order("starts_at ASC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Find(&events).Error
	return events, err
}

// GetBySlug 根据 slug 查询活动
func (r *eventRepository) GetBySlug(slug string) (*entity.Event, error) {
	var event entity.Event
	err := r.db.Where("slug = ?", slug).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &event, err
}

// GetByID 根据主键查询活动
func (r *eventRepository) GetByID(id uint) (*entity.Event, error) {
	var event entity.Event
	err := r.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &event, err
}

// Create 创建活动
func (r *eventRepository) Create(event *entity.Event) error {
	return r.db.Create(event).Error
}

// Update 整条覆盖更新
func (r *eventRepository) Update(event *entity.Event) error {
	return r.db.Save(event).Error
}

// Delete 删除活动
func (r *eventRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Event{}, id).Error
}

// scheduleRepository GORM 实现 ScheduleRepository 接口
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository 构造函数
func NewScheduleRepository(db *gorm.DB) domainRepo.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// List 按 (day, sort_order, starts_at) 排序返回全部日程
func (r *scheduleRepository) List() ([]entity.ScheduleItem, error) {
	var items []entity.ScheduleItem
	err := r.db.Order("day ASC, sort_order ASC, starts_at ASC").Find(&items).Error
	return items, err
}

// GetByID 根据主键查询日程条目
func (r *scheduleRepository) GetByID(id uint) (*entity.ScheduleItem, error) {
	var item entity.ScheduleItem
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// Create 创建日程条目
func (r *scheduleRepository) Create(item *entity.ScheduleItem) error {
	return r.db.Create(item).Error
}

// Update 整条覆盖更新
func (r *scheduleRepository) Update(item *entity.ScheduleItem) error {
	return r.db.Save(item).Error
}

// Delete 删除日程条目
func (r *scheduleRepository) Delete(id uint) error {
	return r.db.Delete(&entity.ScheduleItem{}, id).Error
}
