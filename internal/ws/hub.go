package ws

import (
	"log"
	"sync"

	"summit-go-server/domain/entity"
)

// ========== Actor Model: Hub 是生死的唯一仲裁者 ==========
// Hub 不处理任何业务消息，只管理预览房间（页面作用域）的生命周期

// Hub 维护页面作用域 → 预览房间 的目录
type Hub struct {
	rooms    map[string]*Room
	mu       sync.RWMutex
	idleRoom chan *Room // Room 空闲信号（请求销毁）
	content  ContentService
}

// ContentService 接口，房间创建时拉取页面当前文案
type ContentService interface {
	// ListByPage 返回页面作用域下的全部文案
	// 新页面没有任何自定义文案时返回空切片
	ListByPage(page string) ([]entity.SiteText, error)
}

// NewHub 创建 Hub 实例
func NewHub(content ContentService) *Hub {
	return &Hub{
		rooms:    make(map[string]*Room),
		idleRoom: make(chan *Room, 16),
		content:  content,
	}
}

// Run Hub 事件循环
func (h *Hub) Run() {
	log.Println("[Hub] 🚀 Hub 已启动（生死仲裁者）")

	for room := range h.idleRoom {
		h.handleIdleRoom(room)
	}
}

// handleIdleRoom 处理空闲房间（双重检查后决定是否销毁）
func (h *Hub) handleIdleRoom(room *Room) {
	// 双重检查：Room 可能在我们处理期间又有人加入了
	if room.ClientCount() > 0 {
		log.Printf("[Hub] 🔄 房间 %s 已有新用户，取消销毁", room.Page)
		return
	}

	// ✅ 安全删除：检查指针同一性，防止误删新创建的房间
	h.mu.Lock()
	defer h.mu.Unlock()

	// ⚠️ 关键：检查 Map 里的房间是不是当初那个房间
	// 防止 GetOrCreateRoom 在此期间创建了新房间，结果被我们删了
	if currentRoom, ok := h.rooms[room.Page]; ok && currentRoom == room {
		delete(h.rooms, room.Page)
		log.Printf("[Hub] 🗑️ 房间 %s 已销毁", room.Page)
	} else {
		log.Printf("[Hub] ⚠️ 房间 %s 销毁时发现已被替换或移除，跳过删除", room.Page)
	}
}

// GetRoom 只读获取房间，不创建（供广播路径使用）
// 没有房间 = 该页面当前没有任何预览连接，广播自然无事可做
func (h *Hub) GetRoom(page string) *Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if room, exists := h.rooms[page]; exists && !room.IsStopping() {
		return room
	}
	return nil
}

// GetOrCreateRoom 线程安全地获取或创建预览房间
// 任何页面作用域都是合法的（空文案列表是正常状态），所以这里没有"不存在"分支；
// 文案加载失败只降级为空房间，内容永远不能阻塞预览连接
func (h *Hub) GetOrCreateRoom(page string) *Room {
	// 先尝试读锁快速路径
	h.mu.RLock()
	room, exists := h.rooms[page]
	h.mu.RUnlock()

	if exists && !room.IsStopping() {
		return room
	}

	// 不存在（或正在销毁），加写锁创建
	h.mu.Lock()
	defer h.mu.Unlock()

	// 双重检查
	room, exists = h.rooms[page]
	if exists && !room.IsStopping() {
		return room
	}

	// 预览房间没有需要刷盘的状态，旧房间正在销毁时直接换新的
	texts := make(map[string]string)
	list, err := h.content.ListByPage(page)
	if err != nil {
		log.Printf("[Hub] ⚠️ 页面 [%s] 文案加载失败，以空房间降级: %v", page, err)
	} else {
		for _, t := range list {
			texts[t.ID] = t.Value
		}
	}

	room = NewRoom(page, texts, h)
	h.rooms[page] = room

	log.Printf("[Hub] 🏠 创建预览房间 %s，初始文案: %d 条", page, len(texts))
	return room
}

// NotifyIdle 供 Room 调用，通知 Hub 房间空闲
func (h *Hub) NotifyIdle(room *Room) {
	h.idleRoom <- room
}

// BroadcastTextUpdate 把一次文案保存推给该页面的所有预览连接
// 文案更新是关键消息：写缓冲阻塞的慢消费者会被断开
func (h *Hub) BroadcastTextUpdate(update TextUpdatePayload) {
	room := h.GetRoom(update.Page)
	if room == nil {
		return
	}
	room.PushTextUpdate(update)
}
