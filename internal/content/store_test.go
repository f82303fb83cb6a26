package content

import (
	"errors"
	"sync"
	"testing"

	"summit-go-server/domain/entity"

	"github.com/stretchr/testify/assert"
)

// ========== Store / SiteTextAccessor 单元测试 ==========
// 测试重点：按页惰性加载、请求合并、失败静默降级

func TestStore_EnsureLoaded_LoadsOnce(t *testing.T) {
	mockLoader := new(MockTextLoader)
	cache := NewTextCache()
	store := NewStore(cache, mockLoader)

	mockLoader.On("ListByPage", "home").Return([]entity.SiteText{
		{ID: "hero-main-title", Page: "home", Value: "AIM Health R&D Summit"},
	}, nil).Once()

	// 第一次：触发加载
	store.EnsureLoaded("home")
	assert.True(t, store.Loaded("home"))

	// 第二次：直接命中，不再查询
	store.EnsureLoaded("home")

	value, ok := cache.Get("hero-main-title")
	assert.True(t, ok)
	assert.Equal(t, "AIM Health R&D Summit", value)

	mockLoader.AssertNumberOfCalls(t, "ListByPage", 1)
}

func TestStore_EnsureLoaded_EmptyPageIsValid(t *testing.T) {
	// 新页面没有任何自定义文案：空列表不是错误，页面照样标记已加载
	mockLoader := new(MockTextLoader)
	store := NewStore(NewTextCache(), mockLoader)

	mockLoader.On("ListByPage", "brand-new").Return([]entity.SiteText{}, nil).Once()

	store.EnsureLoaded("brand-new")

	assert.True(t, store.Loaded("brand-new"))
	mockLoader.AssertExpectations(t)
}

func TestStore_EnsureLoaded_ConcurrentRequestsCoalesce(t *testing.T) {
	// 测试场景：同一页面的并发加载合并为一次底层查询
	loader := &slowLoader{
		texts:   []entity.SiteText{{ID: "hero-main-title", Page: "home", Value: "v1"}},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	store := NewStore(NewTextCache(), loader)

	const goroutines = 10
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.EnsureLoaded("home")
		}()
	}

	// 等第一个请求真正进入加载，再放行，保证其余 9 个都在途
	<-loader.started
	close(loader.release)
	wg.Wait()

	// 核心断言：底层查询只发生了一次！
	assert.Equal(t, int32(1), loader.calls.Load())
	assert.True(t, store.Loaded("home"))
}

func TestStore_EnsureLoaded_FailureDegradesSilently(t *testing.T) {
	mockLoader := new(MockTextLoader)
	cache := NewTextCache()
	store := NewStore(cache, mockLoader)

	// 第一次失败
	mockLoader.On("ListByPage", "home").Return(nil, errors.New("db down")).Once()
	store.EnsureLoaded("home")

	// 失败不标记已加载，查询降级为默认文案
	assert.False(t, store.Loaded("home"))
	accessor := store.ForPage("home")
	assert.Equal(t, "Leaders", accessor.GetText("speakers-title-highlight", "Leaders"))

	// 下一次调用重试并成功
	mockLoader.On("ListByPage", "home").Return([]entity.SiteText{
		{ID: "speakers-title-highlight", Page: "home", Value: "先锋"},
	}, nil).Once()
	store.EnsureLoaded("home")

	assert.True(t, store.Loaded("home"))
	assert.Equal(t, "先锋", accessor.GetText("speakers-title-highlight", "Leaders"))
	mockLoader.AssertExpectations(t)
}

func TestStore_RaceSafety_OptimisticSetBeatsInflightLoad(t *testing.T) {
	// 测试场景：页面加载在途时发生乐观写入，迟到的加载结果不能覆盖它
	loader := &slowLoader{
		texts:   []entity.SiteText{{ID: "hero-main-title", Page: "home", Value: "V1"}},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	cache := NewTextCache()
	store := NewStore(cache, loader)

	done := make(chan struct{})
	go func() {
		store.EnsureLoaded("home")
		close(done)
	}()

	// 等加载真正开始后写入乐观值，再放行加载
	<-loader.started
	cache.Set("hero-main-title", "V2")
	close(loader.release)
	<-done

	value, _ := cache.Get("hero-main-title")
	assert.Equal(t, "V2", value, "迟到的批量加载不能覆盖乐观写入")
}

func TestAccessor_GetText_FallbackSemantics(t *testing.T) {
	cache := NewTextCache()
	store := NewStore(cache, new(MockTextLoader))
	accessor := store.ForPage("home")

	// 从未加载的 ID 返回默认文案
	assert.Equal(t, "Leaders", accessor.GetText("speakers-title-highlight", "Leaders"))

	// 缓存命中返回缓存值
	cache.Set("speakers-title-highlight", "Innovators")
	assert.Equal(t, "Innovators", accessor.GetText("speakers-title-highlight", "Leaders"))

	// 空字符串是有效值，不回退默认文案
	cache.Set("speakers-title-highlight", "")
	assert.Equal(t, "", accessor.GetText("speakers-title-highlight", "anything"))
}
