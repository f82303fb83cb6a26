package content

import "sync"

// ========== 编辑会话（会话级权威状态） ==========
// 管三件事：行内编辑开关、谁有权打开它、尚未确认落库的待存改动。
// 纯内存状态迁移，没有 I/O，会话结束即丢弃。

// Operator 已认证操作者身份
// 来自外部认证协作方（Clerk），这里只消费不认证；Name/Email 仅用于展示
type Operator struct {
	ID    string
	Name  string
	Email string
}

// EditSession 一个操作者会话的编辑状态
type EditSession struct {
	mu       sync.RWMutex
	operator Operator
	isAdmin  bool
	editMode bool
	pending  map[string]string // 文案 ID → 已保存但未确认落库的值
}

// NewEditSession 创建编辑会话
// isAdmin 由上游根据用户角色判定，本层只做门禁不做认证
func NewEditSession(operator Operator, isAdmin bool) *EditSession {
	return &EditSession{
		operator: operator,
		isAdmin:  isAdmin,
		pending:  make(map[string]string),
	}
}

// Operator 会话操作者
func (s *EditSession) Operator() Operator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.operator
}

// IsAdmin 是否为内容管理员
func (s *EditSession) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isAdmin
}

// IsEditMode 行内编辑开关当前状态，每个会话默认关闭
func (s *EditSession) IsEditMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.editMode
}

// SetEditMode 切换行内编辑开关
// ⚠️ 本子系统唯一的权限检查：非管理员开启编辑模式被静默拒绝（返回 false）
// 这只是 UI 层的门禁，真正的写权限由持久化侧的中间件强制
func (s *EditSession) SetEditMode(on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if on && !s.isAdmin {
		return false
	}
	s.editMode = on
	return true
}

// SetPendingChange 写入/覆盖某 ID 的待存改动，永远成功
func (s *EditSession) SetPendingChange(id, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[id] = value
}

// ClearPendingChange 移除某 ID 的待存改动，幂等
func (s *EditSession) ClearPendingChange(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, id)
}

// PendingChange 查询某 ID 的待存改动
func (s *EditSession) PendingChange(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.pending[id]
	return value, ok
}

// HasPendingChange 某 ID 是否存在待存改动
func (s *EditSession) HasPendingChange(id string) bool {
	_, ok := s.PendingChange(id)
	return ok
}

// PendingCount 待存改动数量（UI 显示"N 处未保存"）
func (s *EditSession) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.pending)
}
