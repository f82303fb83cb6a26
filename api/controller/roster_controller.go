package controller

import (
	"errors"
	"net/http"

	"summit-go-server/domain/entity"
	domainErrors "summit-go-server/domain/errors"
	"summit-go-server/usecase"

	"github.com/gin-gonic/gin"
)

// SpeakerController 讲者 HTTP 控制器
type SpeakerController struct {
	speakerUseCase *usecase.SpeakerUseCase
}

// NewSpeakerController 创建 SpeakerController 实例
func NewSpeakerController(speakerUseCase *usecase.SpeakerUseCase) *SpeakerController {
	return &SpeakerController{speakerUseCase: speakerUseCase}
}

// List 讲者列表
// GET /api/speakers
func (sc *SpeakerController) List(c *gin.Context) {
	speakers, err := sc.speakerUseCase.ListSpeakers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if speakers == nil {
		speakers = []entity.Speaker{}
	}
	c.JSON(http.StatusOK, speakers)
}

// SpeakerRequest 讲者请求结构（创建/更新共用）
type SpeakerRequest struct {
	Name         string   `json:"name" binding:"required"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Bio          string   `json:"bio"`
	PhotoURL     string   `json:"photoUrl" binding:"omitempty,url"`
	Topics       []string `json:"topics"`
	Featured     bool     `json:"featured"`
	SortOrder    int      `json:"sortOrder"`
}

func (req *SpeakerRequest) toEntity() *entity.Speaker {
	return &entity.Speaker{
		Name:         req.Name,
		Title:        req.Title,
		Organization: req.Organization,
		Bio:          req.Bio,
		PhotoURL:     req.PhotoURL,
		Topics:       marshalJSONColumn(req.Topics),
		Featured:     req.Featured,
		SortOrder:    req.SortOrder,
	}
}

// Create 创建讲者
// POST /api/admin/speakers
func (sc *SpeakerController) Create(c *gin.Context) {
	var req SpeakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求格式无效", Details: err.Error()})
		return
	}

	speaker := req.toEntity()
	if err := sc.speakerUseCase.CreateSpeaker(speaker); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, speaker)
}

// Update 更新讲者
// PUT /api/admin/speakers/:id
func (sc *SpeakerController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req SpeakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求格式无效", Details: err.Error()})
		return
	}

	speaker := req.toEntity()
	speaker.ID = id
	if err := sc.speakerUseCase.UpdateSpeaker(speaker); err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "讲者不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, speaker)
}

// Delete 删除讲者
// DELETE /api/admin/speakers/:id
func (sc *SpeakerController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := sc.speakerUseCase.DeleteSpeaker(id); err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "讲者不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "讲者已删除"})
}

// SponsorController 赞助商 HTTP 控制器
type SponsorController struct {
	sponsorUseCase *usecase.SponsorUseCase
}

// NewSponsorController 创建 SponsorController 实例
func NewSponsorController(sponsorUseCase *usecase.SponsorUseCase) *SponsorController {
	return &SponsorController{sponsorUseCase: sponsorUseCase}
}

// List 赞助商列表
// GET /api/sponsors
func (sc *SponsorController) List(c *gin.Context) {
	sponsors, err := sc.sponsorUseCase.ListSponsors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if sponsors == nil {
		sponsors = []entity.Sponsor{}
	}
	c.JSON(http.StatusOK, sponsors)
}

// SponsorRequest 赞助商请求结构（创建/更新共用）
type SponsorRequest struct {
	Name      string `json:"name" binding:"required"`
	Tier      string `json:"tier" binding:"required,oneof=platinum gold silver partner"`
	LogoURL   string `json:"logoUrl" binding:"omitempty,url"`
	Website   string `json:"website" binding:"omitempty,url"`
	SortOrder int    `json:"sortOrder"`
}

func (req *SponsorRequest) toEntity() *entity.Sponsor {
	return &entity.Sponsor{
		Name:      req.Name,
		Tier:      req.Tier,
		LogoURL:   req.LogoURL,
		Website:   req.Website,
		SortOrder: req.SortOrder,
	}
}

// Create 创建赞助商
// POST /api/admin/sponsors
func (sc *SponsorController) Create(c *gin.Context) {
	var req SponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求格式无效", Details: err.Error()})
		return
	}

	sponsor := req.toEntity()
	if err := sc.sponsorUseCase.CreateSponsor(sponsor); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sponsor)
}

// Update 更新赞助商
// PUT /api/admin/sponsors/:id
func (sc *SponsorController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req SponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "请求格式无效", Details: err.Error()})
		return
	}

	sponsor := req.toEntity()
	sponsor.ID = id
	if err := sc.sponsorUseCase.UpdateSponsor(sponsor); err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "赞助商不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, sponsor)
}

// Delete 删除赞助商
// DELETE /api/admin/sponsors/:id
func (sc *SponsorController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := sc.sponsorUseCase.DeleteSponsor(id); err != nil {
		if errors.Is(err, domainErrors.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "赞助商不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "赞助商已删除"})
}
