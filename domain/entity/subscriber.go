package entity

import "time"

// Subscriber 邮件订阅者
// ID 使用 UUID，Email 唯一，重复订阅走 upsert 重新激活
type Subscriber struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Email      string    `gorm:"uniqueIndex;size:255" json:"email"`
	Name       string    `gorm:"size:100" json:"name,omitempty"`
	Source     string    `gorm:"size:64" json:"source,omitempty"` // 订阅入口（footer / hero / popup）
	Subscribed bool      `gorm:"default:true" json:"subscribed"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`
}

// ContactMessage 联系表单留言
type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Body      string    `gorm:"type:text" json:"body"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
