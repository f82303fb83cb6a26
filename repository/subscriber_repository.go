package repository

import (
	"errors"

	"summit-go-server/domain/entity"
	domainRepo "summit-go-server/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriberRepository GORM 实现 SubscriberRepository 接口
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository 构造函数
func NewSubscriberRepository(db *gorm.DB) domainRepo.SubscriberRepository {
	return &subscriberRepository{db: db}
}

// GetByEmail 根据邮箱查询订阅者
func (r *subscriberRepository) GetByEmail(email string) (*entity.Subscriber, error) {
	var sub entity.Subscriber
	err := r.db.Where("email = ?", email).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sub, err
}

// Upsert 以 email 为冲突键幂等写入（重复订阅 = 重新激活）
func (r *subscriberRepository) Upsert(sub *entity.Subscriber) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}}, // 冲突字段
		DoUpdates: clause.AssignmentColumns([]string{"name", "source", "subscribed", "updated_at"}),
	}).Create(sub).Error
}

// List 按订阅时间倒序返回
func (r *subscriberRepository) List(activeOnly bool) ([]entity.Subscriber, error) {
	var subs []entity.Subscriber
	query := r.db.Order("created_at DESC")
	if activeOnly {
		query = query.Where("subscribed = ?", true)
	}
	err := query.Find(&subs).Error
	return subs, err
}

// Delete 删除订阅者
func (r *subscriberRepository) Delete(id string) error {
	return r.db.Delete(&entity.Subscriber{}, "id = ?", id).Error
}

// contactRepository GORM 实现 ContactRepository 接口
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository 构造函数
func NewContactRepository(db *gorm.DB) domainRepo.ContactRepository {
	return &contactRepository{db: db}
}

// Create 写入一条联系留言
func (r *contactRepository) Create(message *entity.ContactMessage) error {
	return r.db.Create(message).Error
}

// List 未读在前，同组内按时间倒序
func (r *contactRepository) List() ([]entity.ContactMessage, error) {
	var messages []entity.ContactMessage
	err := r.db.Order("read ASC, created_at DESC").Find(&messages).Error
	return messages, err
}

// GetByID 根据主键查询留言
func (r *contactRepository) GetByID(id string) (*entity.ContactMessage, error) {
	var message entity.ContactMessage
	err := r.db.Where("id = ?", id).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &message, err
}

// MarkRead 标记已读，幂等
func (r *contactRepository) MarkRead(id string) error {
	return r.db.Model(&entity.ContactMessage{}).
		Where("id = ?", id).
		Update("read", true).Error
}

// Delete 删除留言
func (r *contactRepository) Delete(id string) error {
	return r.db.Delete(&entity.ContactMessage{}, "id = ?", id).Error
}
