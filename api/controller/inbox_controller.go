package controller

import (
	"errors"
	"net/http"

	"summit-go-server/domain/entity"
	domainErrors "summit-go-server/domain/errors"
	"summit-go-server/usecase"

	"github.com/gin-gonic/gin"
)

// NewsletterController 邮件订阅 HTTP 控制器
type NewsletterController struct {
	newsletterUseCase *usecase.NewsletterUseCase
}

// NewNewsletterController 创建 NewsletterController 实例
func NewNewsletterController(newsletterUseCase *usecase.NewsletterUseCase) *NewsletterController {
	return &NewsletterController{newsletterUseCase: newsletterUseCase}
}

// SubscribeRequest 订阅请求结构
type SubscribeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Subscribe 订阅
// POST /api/newsletter/subscribe
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "邮箱格式无效"})
		return
	}

	sub, err := nc.newsletterUseCase.Subscribe(req.Email, req.Name, req.Source)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadySubscribed) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "该邮箱已订阅"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// UnsubscribeRequest 退订请求结构
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Unsubscribe 退订（幂等）
// POST /api/newsletter/unsubscribe
func (nc *NewsletterController) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "邮箱格式无效"})
		return
	}

	if err := nc.newsletterUseCase.Unsubscribe(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "已退订"})
}

// ListSubscribers 后台订阅者列表
// GET /api/admin/subscribers?active=true
func (nc *NewsletterController) ListSubscribers(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	subs, err := nc.newsletterUseCase.ListSubscribers(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if subs == nil {
		subs = []entity.Subscriber{}
	}
	c.JSON(http.StatusOK, subs)
}

// DeleteSubscriber 后台彻底删除订阅者
// DELETE /api/admin/subscribers/:id
func (nc *NewsletterController) DeleteSubscriber(c *gin.Context) {
	id := c.Param("id")
	if err := nc.newsletterUseCase.DeleteSubscriber(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "订阅者已删除", ID: id})
}

// ContactController 联系留言 HTTP 控制器
type ContactController struct {
	contactUseCase *usecase.ContactUseCase
}

// NewContactController 创建 ContactController 实例
func NewContactController(contactUseCase *usecase.ContactUseCase) *ContactController {
	return &ContactController{contactUseCase: contactUseCase}
}

// SubmitRequest 联系表单请求结构
type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// Submit 提交联系表单
// POST /api/contact
func (cc *ContactController) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求格式无效", Details: err.Error()})
		return
	}

	message, err := cc.contactUseCase.Submit(req.Name, req.Email, req.Subject, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, message)
}

// ListMessages 后台留言列表（未读在前）
// GET /api/admin/messages
func (cc *ContactController) ListMessages(c *gin.Context) {
	messages, err := cc.contactUseCase.ListMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if messages == nil {
		messages = []entity.ContactMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

// MarkRead 标记留言已读
// PATCH /api/admin/messages/:id/read
func (cc *ContactController) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if err := cc.contactUseCase.MarkRead(id); err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "留言不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "已标记已读", ID: id})
}

// DeleteMessage 删除留言
// DELETE /api/admin/messages/:id
func (cc *ContactController) DeleteMessage(c *gin.Context) {
	id := c.Param("id")
	if err := cc.contactUseCase.DeleteMessage(id); err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "留言不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "留言已删除", ID: id})
}
