package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"summit-go-server/domain/entity"
	domainErrors "summit-go-server/domain/errors"
	"summit-go-server/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// EventController 活动与日程 HTTP 控制器
type EventController struct {
	eventUseCase *usecase.EventUseCase
}

// NewEventController 创建 EventController 实例
func NewEventController(eventUseCase *usecase.EventUseCase) *EventController {
	return &EventController{eventUseCase: eventUseCase}
}

// ========== 公开接口 ==========

// ListPublished 公开活动列表
// GET /api/events
func (ec *EventController) ListPublished(c *gin.Context) {
	events, err := ec.eventUseCase.ListEvents(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if events == nil {
		events = []entity.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// GetBySlug 活动详情
// GET /api/events/:slug
func (ec *EventController) GetBySlug(c *gin.Context) {
	event, err := ec.eventUseCase.GetEventBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "活动不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// ListSchedule 大会日程
// GET /api/schedule
func (ec *EventController) ListSchedule(c *gin.Context) {
	items, err := ec.eventUseCase.ListSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if items == nil {
		items = []entity.ScheduleItem{}
	}
	c.JSON(http.StatusOK, items)
}

// ========== 后台接口 ==========

// ListAll 后台活动列表（含未发布）
// GET /api/admin/events
func (ec *EventController) ListAll(c *gin.Context) {
	events, err := ec.eventUseCase.ListEvents(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if events == nil {
		events = []entity.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// CreateEventRequest 创建活动请求结构
type CreateEventRequest struct {
	Slug      string    `json:"slug" binding:"required"`
	Title     string    `json:"title" binding:"required"`
	Summary   string    `json:"summary"`
	Body      string    `json:"body"`
	StartsAt  time.Time `json:"startsAt" binding:"required"`
	EndsAt    time.Time `json:"endsAt" binding:"required"`
	Location  string    `json:"location"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
}

// Create 创建活动
// POST /api/admin/events
func (ec *EventController) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求格式无效", Details: err.Error()})
		return
	}

	event := &entity.Event{
		Slug:      req.Slug,
		Title:     req.Title,
		Summary:   req.Summary,
		Body:      req.Body,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Location:  req.Location,
		Tags:      marshalJSONColumn(req.Tags),
		Published: req.Published,
	}

	if err := ec.eventUseCase.CreateEvent(event); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Patch 部分更新活动（RFC 7386 merge patch）
// PATCH /api/admin/events/:id
// 请求体就是 merge patch 本身，只包含要改的字段
func (ec *EventController) Patch(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	patch, err := io.ReadAll(c.Request.Body)
	if err != nil || len(patch) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "补丁不能为空"})
		return
	}

	event, err := ec.eventUseCase.PatchEvent(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "活动不存在"})
		case errors.Is(err, domainErrors.ErrInvalidPatch):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "补丁格式无效"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete 删除活动
// DELETE /api/admin/events/:id
func (ec *EventController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ec.eventUseCase.DeleteEvent(id); err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "活动不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "活动已删除"})
}

// ScheduleItemRequest 日程条目请求结构（创建/更新共用）
type ScheduleItemRequest struct {
	Day         int       `json:"day" binding:"required,min=1"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	EndsAt      time.Time `json:"endsAt" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	SpeakerIDs  []uint    `json:"speakerIds"`
	SortOrder   int       `json:"sortOrder"`
}

func (req *ScheduleItemRequest) toEntity() *entity.ScheduleItem {
	return &entity.ScheduleItem{
		Day:         req.Day,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SpeakerIDs:  marshalJSONColumn(req.SpeakerIDs),
		SortOrder:   req.SortOrder,
	}
}

// CreateScheduleItem 创建日程条目
// POST /api/admin/schedule
func (ec *EventController) CreateScheduleItem(c *gin.Context) {
	var req ScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求格式无效", Details: err.Error()})
		return
	}

	item := req.toEntity()
	if err := ec.eventUseCase.CreateScheduleItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateScheduleItem 更新日程条目
// PUT /api/admin/schedule/:id
func (ec *EventController) UpdateScheduleItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求格式无效", Details: err.Error()})
		return
	}

	item := req.toEntity()
	item.ID = id
	if err := ec.eventUseCase.UpdateScheduleItem(item); err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "日程不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteScheduleItem 删除日程条目
// DELETE /api/admin/schedule/:id
func (ec *EventController) DeleteScheduleItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ec.eventUseCase.DeleteScheduleItem(id); err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "日程不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "日程已删除"})
}

// ========== 工具函数 ==========

// parseUintParam 解析路径里的数字主键，失败时直接写响应
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " 必须是数字"})
		return 0, false
	}
	return uint(value), true
}

// marshalJSONColumn 把切片编码为 JSONB 列值，nil 切片存空数组
func marshalJSONColumn[T any](values []T) datatypes.JSON {
	if values == nil {
		return datatypes.JSON("[]")
	}
	data, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}
