package repository

import "summit-go-server/domain/entity"

// SubscriberRepository 订阅者数据仓库接口
type SubscriberRepository interface {
	// GetByEmail 根据邮箱查询订阅者，不存在返回 (nil, nil)
	GetByEmail(email string) (*entity.Subscriber, error)

	// Upsert 以 email 为冲突键幂等写入（重复订阅 = 重新激活）
	Upsert(subscriber *entity.Subscriber) error

	// List 按订阅时间倒序返回
	// activeOnly 为 true 时只返回仍在订阅中的
	List(activeOnly bool) ([]entity.Subscriber, error)

	Delete(id string) error
}

// ContactRepository 联系留言数据仓库接口
type ContactRepository interface {
	Create(message *entity.ContactMessage) error

	// List 未读在前，同组内按时间倒序
	List() ([]entity.ContactMessage, error)

	GetByID(id string) (*entity.ContactMessage, error)

	// MarkRead 将留言标记为已读，幂等
	MarkRead(id string) error

	Delete(id string) error
}
