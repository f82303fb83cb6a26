package repository

import (
	"errors"

	"summit-go-server/domain/entity"
	domainRepo "summit-go-server/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// siteTextRepository GORM 实现 SiteTextRepository 接口
// 同时实现 ws.ContentService / content.TextLoader 需要的 ListByPage
type siteTextRepository struct {
	db *gorm.DB
}

// NewSiteTextRepository 构造函数
func NewSiteTextRepository(db *gorm.DB) domainRepo.SiteTextRepository {
	return &siteTextRepository{db: db}
}

// ListByPage 按页面分组批量查询
// 没有任何记录时返回空切片，调用方不需要区分"新页面"和"空页面"
func (r *siteTextRepository) ListByPage(page string) ([]entity.SiteText, error) {
	var texts []entity.SiteText
	err := r.db.Where("page = ?", page).Find(&texts).Error
	return texts, err
}

// GetByID 根据全局唯一 ID 查询
func (r *siteTextRepository) GetByID(id string) (*entity.SiteText, error) {
	var text entity.SiteText
	err := r.db.Where("id = ?", id).First(&text).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // 返回 nil 表示不存在，调用方需处理
	}
	return &text, err
}

// Upsert 幂等写入，以 ID 为冲突键
// 使用 PostgreSQL ON CONFLICT 语法，保证保存操作可安全重试
func (r *siteTextRepository) Upsert(text *entity.SiteText) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}}, // 冲突字段
		DoUpdates: clause.AssignmentColumns([]string{"page", "section", "value", "updated_at"}),
	}).Create(text).Error
}

// Delete 删除文案覆盖值，幂等（不存在也不报错）
func (r *siteTextRepository) Delete(id string) error {
	return r.db.Delete(&entity.SiteText{}, "id = ?", id).Error
}
