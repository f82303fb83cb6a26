package ws

import (
	"encoding/json"
	"log"
	"sync/atomic"
	"time"
)

// ========== Actor Model: Room 是完全自治的独立单元 ==========
// clients map 和 texts map 只在 run() 循环内访问，无需锁！

// Room 一个页面作用域的预览房间
// 持有该页面文案的最新视图，新用户加入时全量同步，保存后增量广播
type Room struct {
	Page string

	// 私有状态 - 只在 run() 内访问，无需锁
	clients map[*Client]bool
	texts   map[string]string // 文案 ID → 当前值

	// 事件通道：所有操作都变成消息
	broadcast  chan *RoomBroadcast    // 透传广播（在场感知等）
	updates    chan TextUpdatePayload // 文案更新
	register   chan *Client           // 加入请求
	unregister chan *Client           // 退出请求
	stopChan   chan struct{}          // 停止信号

	stopping atomic.Bool

	// 反向引用：房间销毁时通知 Hub
	hub *Hub
}

// RoomBroadcast 广播消息结构
type RoomBroadcast struct {
	Message    []byte
	Sender     *Client
	IsCritical bool
}

// NewRoom 创建房间并启动事件循环
func NewRoom(page string, texts map[string]string, hub *Hub) *Room {
	if texts == nil {
		texts = make(map[string]string)
	}
	r := &Room{
		Page:       page,
		clients:    make(map[*Client]bool),
		texts:      texts,
		broadcast:  make(chan *RoomBroadcast, 256),
		updates:    make(chan TextUpdatePayload, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stopChan:   make(chan struct{}),
		hub:        hub,
	}

	go r.run() // 启动房间事件循环

	log.Printf("[Room %s] 🚀 已创建并启动", page)
	return r
}

// run 是房间的主宰，所有逻辑都在这里串行处理，所以两个 map 都不需要锁！
func (r *Room) run() {
	defer func() {
		// 标记销毁并关闭 stopChan，解除 Register/Broadcast 上阻塞的发送方
		if r.stopping.CompareAndSwap(false, true) {
			close(r.stopChan)
		}
		// 通知 Hub 销毁房间
		if r.hub != nil {
			r.hub.NotifyIdle(r)
		}
		log.Printf("[Room %s] 🛑 事件循环已停止", r.Page)
	}()

	for {
		select {
		// 1. 处理客户端注册 (无锁！)
		case client := <-r.register:
			r.clients[client] = true
			client.Room = r
			r.sendSyncToClient(client)
			r.fanOut(r.systemMessage(TypeUserJoin, client.UserInfo), client, false)
			log.Printf("[Room %s] 👋 用户 [%s] 加入，当前人数: %d",
				r.Page, client.UserInfo.UserName, len(r.clients))

		// 2. 处理客户端注销 (无锁！)
		case client := <-r.unregister:
			if _, ok := r.clients[client]; ok {
				delete(r.clients, client)
				close(client.send)
				r.fanOut(r.systemMessage(TypeUserLeave, client.UserInfo), nil, false)
				log.Printf("[Room %s] 👋 用户 [%s] 离开，剩余人数: %d",
					r.Page, client.UserInfo.UserName, len(r.clients))

				// 房间空了，退出循环触发销毁
				if len(r.clients) == 0 {
					return
				}
			}

		// 3. 文案更新 (核心热路径 - 无锁！)
		// 先更新房间视图再广播，后加入的用户从 sync 拿到的就是新值
		case update := <-r.updates:
			if update.Deleted {
				delete(r.texts, update.ID)
			} else {
				r.texts[update.ID] = update.Value
			}
			payload, _ := json.Marshal(update)
			data, _ := json.Marshal(WSMessage{
				Type:      TypeTextUpdate,
				SenderID:  "server",
				Payload:   payload,
				Timestamp: time.Now().UnixMilli(),
			})
			r.fanOut(data, nil, true)

		// 4. 透传广播（在场感知等非关键消息）
		case msg := <-r.broadcast:
			r.fanOut(msg.Message, msg.Sender, msg.IsCritical)

		// 5. 停止信号
		case <-r.stopChan:
			return
		}
	}
}

// fanOut 把消息投递给房间内所有客户端
// 关键消息遇到写缓冲阻塞会踢出慢消费者，非关键消息直接丢弃
func (r *Room) fanOut(message []byte, sender *Client, isCritical bool) {
	for client := range r.clients {
		if sender != nil && client == sender {
			continue
		}

		select {
		case client.send <- message:
			// 发送成功
		default:
			// 缓冲区满
			if isCritical {
				log.Printf("[Room %s] ⚠️ 关键消息阻塞，踢出 [%s]",
					r.Page, client.UserInfo.UserName)
				delete(r.clients, client)
				close(client.send)
			}
			// 非关键消息直接丢弃
		}
	}
}

// sendSyncToClient 发送全量同步消息给新用户
func (r *Room) sendSyncToClient(client *Client) {
	// 收集房间内其他用户信息
	users := make([]UserInfo, 0, len(r.clients))
	for c := range r.clients {
		if c != client {
			users = append(users, c.UserInfo)
		}
	}

	// 复制一份文案视图，payload 序列化不能引用 run 循环私有的 map
	texts := make(map[string]string, len(r.texts))
	for id, value := range r.texts {
		texts[id] = value
	}

	payload, _ := json.Marshal(SyncPayload{
		Page:  r.Page,
		Texts: texts,
		Users: users,
	})
	data, _ := json.Marshal(WSMessage{
		Type:      TypeSync,
		SenderID:  "server",
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	})
	client.send <- data

	log.Printf("[Room %s] 📤 已发送 Sync 给 [%s], 文案: %d 条",
		r.Page, client.UserInfo.UserName, len(texts))
}

// systemMessage 构造用户加入/离开的系统消息
func (r *Room) systemMessage(msgType MessageType, user UserInfo) []byte {
	payload, _ := json.Marshal(user)
	data, _ := json.Marshal(WSMessage{
		Type:      msgType,
		SenderID:  "server",
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	})
	return data
}

// ========== 对外暴露的接口 ==========

// Register 注册客户端到房间
// 房间正在销毁时拒绝，调用方应通过 Hub 重新获取房间
func (r *Room) Register(client *Client) bool {
	if r.stopping.Load() {
		return false
	}
	select {
	case r.register <- client:
		return true
	case <-r.stopChan:
		return false
	}
}

// Unregister 注销客户端
func (r *Room) Unregister(client *Client) {
	select {
	case r.unregister <- client:
	case <-r.stopChan:
	}
}

// Broadcast 透传广播消息
func (r *Room) Broadcast(message []byte, sender *Client, isCritical bool) {
	select {
	case r.broadcast <- &RoomBroadcast{Message: message, Sender: sender, IsCritical: isCritical}:
	case <-r.stopChan:
	}
}

// PushTextUpdate 投递一次文案更新
func (r *Room) PushTextUpdate(update TextUpdatePayload) {
	select {
	case r.updates <- update:
	case <-r.stopChan:
	}
}

// Stop 停止房间
func (r *Room) Stop() {
	if r.stopping.CompareAndSwap(false, true) {
		close(r.stopChan)
	}
}

// IsStopping 房间是否正在销毁
func (r *Room) IsStopping() bool {
	return r.stopping.Load()
}

// ClientCount 当前客户端数量
// ⚠️ 只应在房间事件循环已退出后调用（Hub 的销毁双重检查），
// 运行中读取只是近似值
func (r *Room) ClientCount() int {
	return len(r.clients)
}
