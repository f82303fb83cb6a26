package usecase

import (
	"testing"

	"summit-go-server/domain/entity"
	domainErrors "summit-go-server/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ========== NewsletterUseCase 单元测试 ==========

func TestNewsletterUseCase_Subscribe_New(t *testing.T) {
	mockRepo := new(MockSubscriberRepository)
	uc := NewNewsletterUseCase(mockRepo)

	// 邮箱规范化：小写 + 去空白
	mockRepo.On("GetByEmail", "alice@example.com").Return(nil, nil).Once()
	mockRepo.On("Upsert", mock.MatchedBy(func(sub *entity.Subscriber) bool {
		return sub.Email == "alice@example.com" && sub.Subscribed && sub.ID != ""
	})).Return(nil).Once()

	sub, err := uc.Subscribe("  Alice@Example.COM ", "Alice", "footer")

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", sub.Email)
	assert.True(t, sub.Subscribed)
	mockRepo.AssertExpectations(t)
}

func TestNewsletterUseCase_Subscribe_AlreadyActive(t *testing.T) {
	mockRepo := new(MockSubscriberRepository)
	uc := NewNewsletterUseCase(mockRepo)

	mockRepo.On("GetByEmail", "alice@example.com").Return(&entity.Subscriber{
		ID: "sub-1", Email: "alice@example.com", Subscribed: true,
	}, nil).Once()

	sub, err := uc.Subscribe("alice@example.com", "Alice", "footer")

	assert.Nil(t, sub)
	assert.ErrorIs(t, err, domainErrors.ErrAlreadySubscribed)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestNewsletterUseCase_Subscribe_Reactivate(t *testing.T) {
	// 已退订的邮箱重新订阅 = 重新激活，沿用原 ID

	mockRepo := new(MockSubscriberRepository)
	uc := NewNewsletterUseCase(mockRepo)

	mockRepo.On("GetByEmail", "alice@example.com").Return(&entity.Subscriber{
		ID: "sub-original", Email: "alice@example.com", Subscribed: false,
	}, nil).Once()
	mockRepo.On("Upsert", mock.MatchedBy(func(sub *entity.Subscriber) bool {
		return sub.ID == "sub-original" && sub.Subscribed
	})).Return(nil).Once()

	sub, err := uc.Subscribe("alice@example.com", "Alice", "footer")

	assert.NoError(t, err)
	assert.Equal(t, "sub-original", sub.ID)
	mockRepo.AssertExpectations(t)
}

func TestNewsletterUseCase_Unsubscribe_Idempotent(t *testing.T) {
	// 未订阅的邮箱退订不是错误

	mockRepo := new(MockSubscriberRepository)
	uc := NewNewsletterUseCase(mockRepo)

	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, nil).Once()

	assert.NoError(t, uc.Unsubscribe("ghost@example.com"))
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestNewsletterUseCase_Unsubscribe_Active(t *testing.T) {
	mockRepo := new(MockSubscriberRepository)
	uc := NewNewsletterUseCase(mockRepo)

	mockRepo.On("GetByEmail", "alice@example.com").Return(&entity.Subscriber{
		ID: "sub-1", Email: "alice@example.com", Subscribed: true,
	}, nil).Once()
	mockRepo.On("Upsert", mock.MatchedBy(func(sub *entity.Subscriber) bool {
		return sub.ID == "sub-1" && !sub.Subscribed
	})).Return(nil).Once()

	assert.NoError(t, uc.Unsubscribe("alice@example.com"))
	mockRepo.AssertExpectations(t)
}
