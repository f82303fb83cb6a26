package usecase

import (
	"summit-go-server/domain/entity"
	"summit-go-server/domain/repository"
	"summit-go-server/internal/content"
	"summit-go-server/internal/ws"
)

// SiteTextUseCase 站点文案业务逻辑层
// ✅ 注入共享缓存和 Hub，保证三个读者群体看到同一份值：
// - HTTP 读接口走缓存（惰性按页加载，请求合并）
// - 保存后乐观更新缓存，其他读者立即可见，不等落库确认顺序
// - 预览连接通过 Hub 收到增量推送
type SiteTextUseCase struct {
	repo  repository.SiteTextRepository
	store *content.Store
	hub   *ws.Hub
}

// NewSiteTextUseCase 构造函数，依赖注入
func NewSiteTextUseCase(repo repository.SiteTextRepository, store *content.Store, hub *ws.Hub) *SiteTextUseCase {
	return &SiteTextUseCase{repo: repo, store: store, hub: hub}
}

// GetPageTexts 返回某页面作用域的全部文案
// 先确保该页面进入共享缓存（同页并发请求合并为一次 DB 查询），
// 再从数据库取完整实体（接口需要 section / updatedAt 元数据）
func (uc *SiteTextUseCase) GetPageTexts(page string) ([]entity.SiteText, error) {
	uc.store.EnsureLoaded(page)
	return uc.repo.ListByPage(page)
}

// Accessor 返回页面作用域的文案访问器（fallback 语义的同步查询）
func (uc *SiteTextUseCase) Accessor(page string) *content.SiteTextAccessor {
	return uc.store.ForPage(page)
}

// SaveText 保存一条文案（幂等 upsert，以 ID 为键）
// 顺序是刻意的：先乐观写缓存，再落库，最后广播
// 落库失败时缓存保留乐观值、错误上抛——操作者的待存改动不丢，可以重试
func (uc *SiteTextUseCase) SaveText(text *entity.SiteText) error {
	uc.store.Cache().Set(text.ID, text.Value)

	if err := uc.repo.Upsert(text); err != nil {
		return err
	}

	uc.hub.BroadcastTextUpdate(ws.TextUpdatePayload{
		ID:      text.ID,
		Page:    text.Page,
		Section: text.Section,
		Value:   text.Value,
	})
	return nil
}

// DeleteText 删除文案覆盖值，让该 ID 回退到前端默认文案
func (uc *SiteTextUseCase) DeleteText(id string) error {
	text, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(id); err != nil {
		return err
	}

	uc.store.Cache().Delete(id)

	page := ""
	if text != nil {
		page = text.Page
	}
	uc.hub.BroadcastTextUpdate(ws.TextUpdatePayload{
		ID:      id,
		Page:    page,
		Deleted: true,
	})
	return nil
}
