package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Speaker 大会讲者
type Speaker struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:100" json:"name"`
	Title        string         `gorm:"size:255" json:"title"`
	Organization string         `gorm:"size:255" json:"organization"`
	Bio          string         `gorm:"type:text" json:"bio"`
	PhotoURL     string         `gorm:"size:500" json:"photoUrl"`
	Topics       datatypes.JSON `gorm:"type:jsonb" json:"topics,omitempty"` // 演讲主题数组
	Featured     bool           `gorm:"default:false" json:"featured"`
	SortOrder    int            `gorm:"default:0" json:"sortOrder"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
}

// Sponsor 赞助商
type Sponsor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Tier      string    `gorm:"size:32" json:"tier"` // platinum / gold / silver / partner
	LogoURL   string    `gorm:"size:500" json:"logoUrl"`
	Website   string    `gorm:"size:500" json:"website"`
	SortOrder int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
