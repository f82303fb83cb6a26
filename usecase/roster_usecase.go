package usecase

import (
	"summit-go-server/domain/entity"
	domainErrors "summit-go-server/domain/errors"
	"summit-go-server/domain/repository"
)

// SpeakerUseCase 讲者业务逻辑层
type SpeakerUseCase struct {
	repo repository.SpeakerRepository
}

// NewSpeakerUseCase 构造函数
func NewSpeakerUseCase(repo repository.SpeakerRepository) *SpeakerUseCase {
	return &SpeakerUseCase{repo: repo}
}

// ListSpeakers 按排序返回讲者
func (uc *SpeakerUseCase) ListSpeakers() ([]entity.Speaker, error) {
	return uc.repo.List()
}

// CreateSpeaker 创建讲者
func (uc *SpeakerUseCase) CreateSpeaker(speaker *entity.Speaker) error {
	return uc.repo.Create(speaker)
}

// UpdateSpeaker 整条覆盖更新
func (uc *SpeakerUseCase) UpdateSpeaker(speaker *entity.Speaker) error {
	existing, err := uc.repo.GetByID(speaker.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainErrors.ErrRecordNotFound
	}
	speaker.CreatedAt = existing.CreatedAt
	return uc.repo.Update(speaker)
}

// DeleteSpeaker 删除讲者
func (uc *SpeakerUseCase) DeleteSpeaker(id uint) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainErrors.ErrRecordNotFound
	}
	return uc.repo.Delete(id)
}

// SponsorUseCase 赞助商业务逻辑层
type SponsorUseCase struct {
	repo repository.SponsorRepository
}

// NewSponsorUseCase 构造函数
func NewSponsorUseCase(repo repository.SponsorRepository) *SponsorUseCase {
	return &SponsorUseCase{repo: repo}
}

// ListSponsors 按梯度/排序返回赞助商
func (uc *SponsorUseCase) ListSponsors() ([]entity.Sponsor, error) {
	return uc.repo.List()
}

// CreateSponsor 创建赞助商
func (uc *SponsorUseCase) CreateSponsor(sponsor *entity.Sponsor) error {
	return uc.repo.Create(sponsor)
}

// UpdateSponsor 整条覆盖更新
func (uc *SponsorUseCase) UpdateSponsor(sponsor *entity.Sponsor) error {
	existing, err := uc.repo.GetByID(sponsor.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainErrors.ErrRecordNotFound
	}
	sponsor.CreatedAt = existing.CreatedAt
	return uc.repo.Update(sponsor)
}

// DeleteSponsor 删除赞助商
func (uc *SponsorUseCase) DeleteSponsor(id uint) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainErrors.ErrRecordNotFound
	}
	return uc.repo.Delete(id)
}
