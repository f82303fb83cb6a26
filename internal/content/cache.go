package content

import (
	"sync"

	"summit-go-server/domain/entity"
)

// ========== 进程级文案缓存 ==========
// 所有读者共享同一份缓存，同一个 ID 在一次会话内永远不会出现两个值。
// UI 运行时是单线程事件循环，这里是真正的多线程服务，所以用一把读写锁保护。

// Listener 缓存更新回调，Set/Delete 时同步触发
type Listener func(id, value string)

// TextCache 文案 ID → 当前值 的进程级关联存储
type TextCache struct {
	mu        sync.RWMutex
	entries   map[string]string
	listeners map[int]Listener
	nextID    int
}

// NewTextCache 创建空缓存
// 作为显式注入的单例使用：main 里构造一次，按引用传给所有消费者
func NewTextCache() *TextCache {
	return &TextCache{
		entries:   make(map[string]string),
		listeners: make(map[int]Listener),
	}
}

// Get 同步读取，无副作用
// 第二个返回值为 false 表示该 ID 从未被加载过（缺席 ≠ 空字符串）
func (c *TextCache) Get(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[id]
	return value, ok
}

// Set 覆盖写入（不存在则插入），对所有当前和后续读者立即可见
// 纯内存 map 操作，没有错误路径
func (c *TextCache) Set(id, value string) {
	c.mu.Lock()
	c.entries[id] = value
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	// 锁外通知，避免回调里再进缓存导致死锁
	for _, fn := range listeners {
		fn(id, value)
	}
}

// Delete 移除缓存条目，使该 ID 的查询回退到默认文案
func (c *TextCache) Delete(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(id, "")
	}
}

// BulkLoad 合并一批持久化条目（页面首次加载完成时调用）
// ⚠️ 关键不变量：只插入缺席的 ID，已存在的条目一律不动
// 这样请求发出后才发生的乐观 Set 永远不会被迟到的批量加载覆盖，
// 避免"闪回旧内容"的 Bug
func (c *TextCache) BulkLoad(texts []entity.SiteText) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range texts {
		if _, exists := c.entries[t.ID]; exists {
			continue
		}
		c.entries[t.ID] = t.Value
	}
}

// Subscribe 注册更新监听，返回取消函数
func (c *TextCache) Subscribe(fn Listener) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Len 当前缓存条目数
func (c *TextCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// snapshotListeners 调用方必须持有锁
func (c *TextCache) snapshotListeners() []Listener {
	if len(c.listeners) == 0 {
		return nil
	}
	out := make([]Listener, 0, len(c.listeners))
	for _, fn := range c.listeners {
		out = append(out, fn)
	}
	return out
}
