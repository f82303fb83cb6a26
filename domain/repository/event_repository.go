package repository

import "summit-go-server/domain/entity"

// EventRepository 活动数据仓库接口
type EventRepository interface {
	// List 按开始时间排序返回活动
	// publishedOnly 为 true 时只返回已发布的活动（公开站点用）
	List(publishedOnly bool) ([]entity.Event, error)

	// GetBySlug 根据 slug 查询活动，不存在返回 (nil, nil)
	GetBySlug(slug string) (*entity.Event, error)

	// GetByID 根据主键查询活动，不存在返回 (nil, nil)
	GetByID(id uint) (*entity.Event, error)

	Create(event *entity.Event) error

	// Update 整条覆盖更新（merge patch 在 usecase 层完成）
	Update(event *entity.Event) error

	Delete(id uint) error
}

// ScheduleRepository 日程数据仓库接口
type ScheduleRepository interface {
	// List 按 (day, sort_order, starts_at) 排序返回全部日程
	List() ([]entity.ScheduleItem, error)

	GetByID(id uint) (*entity.ScheduleItem, error)

	Create(item *entity.ScheduleItem) error

	Update(item *entity.ScheduleItem) error

	Delete(id uint) error
}
