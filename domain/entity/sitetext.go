package entity

import "time"

// SiteText 站点可编辑文案
// ID 在整个内容命名空间内全局唯一（不是 page 内唯一），是持久化主键
// Page 只是分组标签，用于按页面批量加载，不参与唯一性约束
type SiteText struct {
	ID        string `gorm:"primaryKey;size:128" json:"id"`
	Page      string `gorm:"index;size:64" json:"page"`
	Section   string `gorm:"size:64" json:"section,omitempty"`
	Value     string `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updatedAt"`
}
