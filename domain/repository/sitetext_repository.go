package repository

import "summit-go-server/domain/entity"

// SiteTextRepository 站点文案数据仓库接口
type SiteTextRepository interface {
	// ListByPage 按页面分组批量查询文案
	// 新页面没有任何自定义文案时返回空切片，不是错误
	ListByPage(page string) ([]entity.SiteText, error)

	// GetByID 根据全局唯一 ID 查询单条文案
	// 不存在时返回 (nil, nil)，调用方需处理
	GetByID(id string) (*entity.SiteText, error)

	// Upsert 幂等写入，以 ID 为冲突键
	// 保存语义必须可重试：同一 {id, value} 重复写入结果一致
	Upsert(text *entity.SiteText) error

	// Delete 删除文案覆盖值，使该 ID 回退到前端默认文案
	Delete(id string) error
}
