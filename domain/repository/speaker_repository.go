package repository

import "summit-go-server/domain/entity"

// SpeakerRepository 讲者数据仓库接口
type SpeakerRepository interface {
	// List 按 (sort_order, id) 排序返回讲者
	List() ([]entity.Speaker, error)

	GetByID(id uint) (*entity.Speaker, error)

	Create(speaker *entity.Speaker) error

	Update(speaker *entity.Speaker) error

	Delete(id uint) error
}

// SponsorRepository 赞助商数据仓库接口
type SponsorRepository interface {
	// List 按 (tier, sort_order) 排序返回赞助商
	List() ([]entity.Sponsor, error)

	GetByID(id uint) (*entity.Sponsor, error)

	Create(sponsor *entity.Sponsor) error

	Update(sponsor *entity.Sponsor) error

	Delete(id uint) error
}
