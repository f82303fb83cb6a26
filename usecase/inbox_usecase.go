package usecase

import (
	"strings"

	"summit-go-server/domain/entity"
	domainErrors "summit-go-server/domain/errors"
	"summit-go-server/domain/repository"

	"github.com/google/uuid"
)

// NewsletterUseCase 邮件订阅业务逻辑层
type NewsletterUseCase struct {
	repo repository.SubscriberRepository
}

// NewNewsletterUseCase 构造函数
func NewNewsletterUseCase(repo repository.SubscriberRepository) *NewsletterUseCase {
	return &NewsletterUseCase{repo: repo}
}

// Subscribe 订阅
// 已退订的邮箱重新订阅 = 重新激活；仍在订阅中的邮箱重复订阅返回 ErrAlreadySubscribed
func (uc *NewsletterUseCase) Subscribe(email, name, source string) (*entity.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Subscribed {
		return nil, domainErrors.ErrAlreadySubscribed
	}

	sub := &entity.Subscriber{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       name,
		Source:     source,
		Subscribed: true,
	}
	if existing != nil {
		sub.ID = existing.ID // 重新激活沿用原 ID
	}

	if err := uc.repo.Upsert(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Unsubscribe 退订，幂等（未订阅的邮箱退订不是错误）
func (uc *NewsletterUseCase) Unsubscribe(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing == nil || !existing.Subscribed {
		return nil
	}

	existing.Subscribed = false
	return uc.repo.Upsert(existing)
}

// ListSubscribers 后台列表
func (uc *NewsletterUseCase) ListSubscribers(activeOnly bool) ([]entity.Subscriber, error) {
	return uc.repo.List(activeOnly)
}

// DeleteSubscriber 后台彻底删除（退订只是标记）
func (uc *NewsletterUseCase) DeleteSubscriber(id string) error {
	return uc.repo.Delete(id)
}

// ContactUseCase 联系留言业务逻辑层
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase 构造函数
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Submit 提交联系表单
func (uc *ContactUseCase) Submit(name, email, subject, body string) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   strings.ToLower(strings.TrimSpace(email)),
		Subject: subject,
		Body:    body,
	}
	if err := uc.repo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages 后台列表，未读在前
func (uc *ContactUseCase) ListMessages() ([]entity.ContactMessage, error) {
	return uc.repo.List()
}

// MarkRead 标记已读
func (uc *ContactUseCase) MarkRead(id string) error {
	message, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if message == nil {
		return domainErrors.ErrRecordNotFound
	}
	return uc.repo.MarkRead(id)
}

// DeleteMessage 删除留言
func (uc *ContactUseCase) DeleteMessage(id string) error {
	message, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if message == nil {
		return domainErrors.ErrRecordNotFound
	}
	return uc.repo.Delete(id)
}
