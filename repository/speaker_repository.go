package repository

import (
	"errors"

	"summit-go-server/domain/entity"
	domainRepo "summit-go-server/domain/repository"

	"gorm.io/gorm"
)

// speakerRepository GORM 实现 SpeakerRepository 接口
type speakerRepository struct {
	db *gorm.DB
}

// NewSpeakerRepository 构造函数
func NewSpeakerRepository(db *gorm.DB) domainRepo.SpeakerRepository {
	return &speakerRepository{db: db}
}

// List 按 (sort_order, id) 排序返回讲者
func (r *speakerRepository) List() ([]entity.Speaker, error) {
	var speakers []entity.Speaker
	err := r.db.Order("sort_order ASC, id ASC").Find(&speakers).Error
	return speakers, err
}

// GetByID 根据主键查询讲者
func (r *speakerRepository) GetByID(id uint) (*entity.Speaker, error) {
	var speaker entity.Speaker
	err := r.db.First(&speaker, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &speaker, err
}

// Create 创建讲者
func (r *speakerRepository) Create(speaker *entity.Speaker) error {
	return r.db.Create(speaker).Error
}

// Update 整条覆盖更新
func (r *speakerRepository) Update(speaker *entity.Speaker) error {
	return r.db.Save(speaker).Error
}

// Delete 删除讲者
func (r *speakerRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Speaker{}, id).Error
}

// sponsorRepository GORM 实现 SponsorRepository 接口
type sponsorRepository struct {
	db *gorm.DB
}

// NewSponsorRepository 构造函数
func NewSponsorRepository(db *gorm.DB) domainRepo.SponsorRepository {
	return &sponsorRepository{db: db}
}

// List 按 (tier, sort_order) 排序返回赞助商
func (r *sponsorRepository) List() ([]entity.Sponsor, error) {
	var sponsors []entity.Sponsor
	err := r.db.Order("tier ASC, sort_order ASC").Find(&sponsors).Error
	return sponsors, err
}

// GetByID 根据主键查询赞助商
func (r *sponsorRepository) GetByID(id uint) (*entity.Sponsor, error) {
	var sponsor entity.Sponsor
	err := r.db.First(&sponsor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sponsor, err
}

// Create 创建赞助商
func (r *sponsorRepository) Create(sponsor *entity.Sponsor) error {
	return r.db.Create(sponsor).Error
}

// Update 整条覆盖更新
func (r *sponsorRepository) Update(sponsor *entity.Sponsor) error {
	return r.db.Save(sponsor).Error
}

// Delete 删除赞助商
func (r *sponsorRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Sponsor{}, id).Error
}
