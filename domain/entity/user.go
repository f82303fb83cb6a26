package entity

import "time"

// 用户角色常量
const (
	RoleAdmin  = "admin"  // 内容管理员，可进入后台和行内编辑
	RoleViewer = "viewer" // 普通登录用户
)

// User Clerk 用户同步表
type User struct {
	ID        string    `gorm:"primaryKey;size:64"` // Clerk user_id
	Email     string    `gorm:"size:255"`
	Name      string    `gorm:"size:100"`
	AvatarURL string    `gorm:"size:500"`
	Role      string    `gorm:"size:16;default:viewer"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin 是否为内容管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
