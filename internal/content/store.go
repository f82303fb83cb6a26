package content

import (
	"log"
	"sync"

	"summit-go-server/domain/entity"

	"golang.org/x/sync/singleflight"
)

// TextLoader 持久化读取协作方接口
// 新页面没有任何自定义文案时必须返回空切片而不是错误
type TextLoader interface {
	ListByPage(page string) ([]entity.SiteText, error)
}

// Store 按页面作用域惰性加载文案到共享缓存
// 同一页面的并发加载请求通过 singleflight 合并为一次底层查询
type Store struct {
	cache  *TextCache
	loader TextLoader

	group  singleflight.Group
	mu     sync.RWMutex
	loaded map[string]bool // 已成功加载过的页面
}

// NewStore 构造函数
func NewStore(cache *TextCache, loader TextLoader) *Store {
	return &Store{
		cache:  cache,
		loader: loader,
		loaded: make(map[string]bool),
	}
}

// Cache 暴露底层共享缓存（乐观更新路径需要直接 Set）
func (s *Store) Cache() *TextCache {
	return s.cache
}

// EnsureLoaded 确保某页面的文案已进入缓存
// - 每个页面最多一次在途查询，并发调用等待同一结果（请求合并）
// - 加载失败静默降级：只记日志不上抛，后续查询继续返回默认文案，
//   页面不标记为已加载，下次调用会重试
func (s *Store) EnsureLoaded(page string) {
	s.mu.RLock()
	done := s.loaded[page]
	s.mu.RUnlock()
	if done {
		return
	}

	_, err, _ := s.group.Do(page, func() (interface{}, error) {
		// 双重检查：排队期间可能已有人加载完成
		s.mu.RLock()
		done := s.loaded[page]
		s.mu.RUnlock()
		if done {
			return nil, nil
		}

		texts, err := s.loader.ListByPage(page)
		if err != nil {
			return nil, err
		}

		// 空列表是合法结果（新页面还没有任何自定义文案）
		s.cache.BulkLoad(texts)

		s.mu.Lock()
		s.loaded[page] = true
		s.mu.Unlock()

		return nil, nil
	})

	if err != nil {
		// 内容永远不能阻塞页面渲染，失败只降级
		log.Printf("[Content] ⚠️ 页面 [%s] 文案加载失败，降级为默认文案: %v", page, err)
	}
}

// Loaded 某页面是否已成功加载（测试与诊断用）
func (s *Store) Loaded(page string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded[page]
}

// ForPage 返回绑定页面作用域的访问器
func (s *Store) ForPage(page string) *SiteTextAccessor {
	return &SiteTextAccessor{page: page, store: s}
}

// SiteTextAccessor 页面作用域的文案访问器
type SiteTextAccessor struct {
	page  string
	store *Store
}

// Page 绑定的页面作用域
func (a *SiteTextAccessor) Page() string {
	return a.page
}

// EnsureLoaded 触发本页面的惰性加载
func (a *SiteTextAccessor) EnsureLoaded() {
	a.store.EnsureLoaded(a.page)
}

// GetText 同步查询，绝不阻塞网络
// 缓存命中返回缓存值（空字符串也是有效值），缺席返回 fallback
func (a *SiteTextAccessor) GetText(id, fallback string) string {
	if value, ok := a.store.cache.Get(id); ok {
		return value
	}
	return fallback
}
