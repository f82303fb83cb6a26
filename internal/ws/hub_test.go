package ws

import (
	"errors"
	"sync"
	"testing"

	"summit-go-server/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ========== Hub 单元测试 ==========
// 测试重点：GetOrCreateRoom 的并发安全性、缓存逻辑和加载失败降级

func TestHub_GetOrCreateRoom_CacheHit(t *testing.T) {
	// 测试场景：缓存命中
	// 第一次调用应该调用 ContentService.ListByPage
	// 第二次调用同一页面应该直接返回内存中的 Room，不再查库

	mockService := new(MockContentService)
	hub := NewHub(mockService)

	texts := []entity.SiteText{
		{ID: "hero-main-title", Page: "home", Value: "AIM 健康研发峰会"},
	}
	mockService.On("ListByPage", "home").Return(texts, nil).Once()

	// 第一次调用：应该查库
	room1 := hub.GetOrCreateRoom("home")
	assert.NotNil(t, room1)
	assert.Equal(t, "home", room1.Page)

	// 第二次调用：应该返回缓存的 Room
	room2 := hub.GetOrCreateRoom("home")
	assert.Same(t, room1, room2)

	// 验证 ListByPage 只被调用了一次
	mockService.AssertNumberOfCalls(t, "ListByPage", 1)
}

func TestHub_GetOrCreateRoom_LoadFailureDegrades(t *testing.T) {
	// 测试场景：文案加载失败
	// 内容永远不能阻塞预览连接，失败时仍然创建房间，只是初始视图为空

	mockService := new(MockContentService)
	hub := NewHub(mockService)

	mockService.On("ListByPage", "broken").Return(nil, errors.New("db down")).Once()

	room := hub.GetOrCreateRoom("broken")
	assert.NotNil(t, room, "加载失败也要创建房间")

	// 新用户加入拿到的 Sync 应该是空文案视图
	client := newTestClient("u1", "Alice")
	assert.True(t, room.Register(client))

	msg := recvMessageOfType(t, client, TypeSync)
	var payload SyncPayload
	assert.NoError(t, jsonUnmarshal(msg.Payload, &payload))
	assert.Equal(t, "broken", payload.Page)
	assert.Empty(t, payload.Texts)
}

func TestHub_GetOrCreateRoom_ConcurrentAccess(t *testing.T) {
	// 测试场景：并发安全
	// 10 个 Goroutine 同时请求同一个页面作用域
	// ListByPage 应该只被调用一次（验证双重检查锁）

	mockService := new(MockContentService)
	hub := NewHub(mockService)

	mockService.On("ListByPage", "concurrent").Return([]entity.SiteText{}, nil).Once()

	const goroutines = 10
	var wg sync.WaitGroup
	rooms := make([]*Room, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			rooms[idx] = hub.GetOrCreateRoom("concurrent")
		}(i)
	}

	wg.Wait()

	// 所有 Goroutine 返回的必须是同一个 Room 实例
	for i := 0; i < goroutines; i++ {
		assert.NotNil(t, rooms[i], "Goroutine %d should get a room", i)
	}
	for i := 1; i < goroutines; i++ {
		assert.Same(t, rooms[0], rooms[i])
	}

	// 核心断言：ListByPage 只被调用了一次！
	mockService.AssertNumberOfCalls(t, "ListByPage", 1)
}

func TestHub_GetRoom_ReadOnly(t *testing.T) {
	// 测试场景：GetRoom 是只读操作
	// 房间不在内存中时返回 nil，不触发创建（广播路径不造房间）

	mockService := new(MockContentService)
	hub := NewHub(mockService)

	room := hub.GetRoom("non-existent")
	assert.Nil(t, room)

	mockService.AssertNotCalled(t, "ListByPage", mock.Anything)
}

func TestHub_GetRoom_SkipsStoppingRoom(t *testing.T) {
	// 测试场景：正在销毁的房间对广播路径不可见

	mockService := new(MockContentService)
	hub := NewHub(mockService)

	mockService.On("ListByPage", "about").Return([]entity.SiteText{}, nil)

	room := hub.GetOrCreateRoom("about")
	assert.Same(t, room, hub.GetRoom("about"))

	room.Stop()
	assert.Nil(t, hub.GetRoom("about"))
}

func TestHub_IdleRoomDestroyed(t *testing.T) {
	// 测试场景：最后一个用户离开后房间被销毁
	// Room 退出事件循环 → NotifyIdle → Hub 双重检查后从目录删除

	mockService := new(MockContentService)
	hub := NewHub(mockService)

	mockService.On("ListByPage", "home").Return([]entity.SiteText{}, nil)

	room := hub.GetOrCreateRoom("home")
	client := newTestClient("u1", "Alice")
	assert.True(t, room.Register(client))
	recvMessageOfType(t, client, TypeSync)

	room.Unregister(client)

	// run() 退出时上报空闲信号，手动驱动 Hub 的销毁分支
	idle := <-hub.idleRoom
	assert.Same(t, room, idle)
	hub.handleIdleRoom(idle)

	assert.Nil(t, hub.GetRoom("home"))
}

func TestHub_BroadcastTextUpdate(t *testing.T) {
	// 测试场景：保存文案后推送给该页面的所有预览连接

	mockService := new(MockContentService)
	hub := NewHub(mockService)

	mockService.On("ListByPage", "home").Return([]entity.SiteText{}, nil)

	room := hub.GetOrCreateRoom("home")
	client := newTestClient("u1", "Alice")
	assert.True(t, room.Register(client))
	recvMessageOfType(t, client, TypeSync)

	hub.BroadcastTextUpdate(TextUpdatePayload{
		ID:    "hero-main-title",
		Page:  "home",
		Value: "新标题",
	})

	msg := recvMessageOfType(t, client, TypeTextUpdate)
	var payload TextUpdatePayload
	assert.NoError(t, jsonUnmarshal(msg.Payload, &payload))
	assert.Equal(t, "hero-main-title", payload.ID)
	assert.Equal(t, "新标题", payload.Value)

	// 没有房间的页面：广播自然无事可做，不造房间
	hub.BroadcastTextUpdate(TextUpdatePayload{ID: "x", Page: "no-room", Value: "y"})
	mockService.AssertNumberOfCalls(t, "ListByPage", 1)
}
