package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Event 峰会活动/周边活动
type Event struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Slug      string         `gorm:"uniqueIndex;size:128" json:"slug"`
	Title     string         `gorm:"size:255" json:"title"`
	Summary   string         `gorm:"size:500" json:"summary"`
	Body      string         `gorm:"type:text" json:"body"`
	StartsAt  time.Time      `json:"startsAt"`
	EndsAt    time.Time      `json:"endsAt"`
	Location  string         `gorm:"size:255" json:"location"`
	Tags      datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"` // 字符串数组
	Published bool           `gorm:"default:false" json:"published"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ScheduleItem 大会日程条目
type ScheduleItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Day         int            `gorm:"index" json:"day"` // 第几天，从 1 开始
	StartsAt    time.Time      `json:"startsAt"`
	EndsAt      time.Time      `json:"endsAt"`
	Title       string         `gorm:"size:255" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Location    string         `gorm:"size:255" json:"location"`
	SpeakerIDs  datatypes.JSON `gorm:"type:jsonb" json:"speakerIds,omitempty"` // 关联讲者 ID 数组
	SortOrder   int            `gorm:"default:0" json:"sortOrder"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}
