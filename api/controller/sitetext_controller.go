package controller

import (
	"net/http"

	"summit-go-server/domain/entity"
	"summit-go-server/usecase"

	"github.com/gin-gonic/gin"
)

// --- 响应结构定义 ---

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse 消息响应结构
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// --- 控制器定义 ---

// SiteTextController 站点文案 HTTP 控制器
type SiteTextController struct {
	siteTextUseCase *usecase.SiteTextUseCase
}

// NewSiteTextController 创建 SiteTextController 实例
func NewSiteTextController(siteTextUseCase *usecase.SiteTextUseCase) *SiteTextController {
	return &SiteTextController{siteTextUseCase: siteTextUseCase}
}

// ListByPage 按页面作用域返回全部文案
// GET /api/site-texts?page=home
// 空结果返回空数组：新页面还没有任何自定义文案是正常状态
func (sc *SiteTextController) ListByPage(c *gin.Context) {
	page := c.Query("page")
	if page == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "page 不能为空"})
		return
	}

	texts, err := sc.siteTextUseCase.GetPageTexts(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if texts == nil {
		texts = []entity.SiteText{}
	}
	c.JSON(http.StatusOK, texts)
}

// SaveTextRequest 保存文案请求结构
type SaveTextRequest struct {
	ID      string `json:"id" binding:"required"`
	Page    string `json:"page" binding:"required"`
	Section string `json:"section"`
	Value   string `json:"value"` // 空字符串是有效值，不能用 required
}

// Save 幂等保存一条文案（以 ID 为键的 upsert）
// PUT /api/admin/site-texts
// 失败时前端保留待存改动，操作者可以重试或 Reset 放弃
func (sc *SiteTextController) Save(c *gin.Context) {
	var req SaveTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id 和 page 不能为空"})
		return
	}

	text := &entity.SiteText{
		ID:      req.ID,
		Page:    req.Page,
		Section: req.Section,
		Value:   req.Value,
	}

	if err := sc.siteTextUseCase.SaveText(text); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, text)
}

// Delete 删除文案覆盖值
// DELETE /api/admin/site-texts/:id
// 删除后该 ID 的查询回退到前端默认文案
func (sc *SiteTextController) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id 不能为空"})
		return
	}

	if err := sc.siteTextUseCase.DeleteText(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "文案已删除", ID: id})
}
