package content

// ========== 行内可编辑文案状态机 ==========
// 每个字段一个实例，编排三个取值来源的优先级：
// 待存改动 → 编辑中的草稿 → 缓存/已持久化值 → 编译期默认文案

// RenderKind 渲染目标的封闭枚举（不做开放式动态分发）
type RenderKind int

const (
	KindHeading1 RenderKind = iota + 1
	KindHeading2
	KindHeading3
	KindHeading4
	KindHeading5
	KindHeading6
	KindParagraph
	KindSpan
	KindDiv
)

// EditState 字段所处的状态
type EditState int

const (
	// StateNotEditable 读者不是管理员，或编辑模式未开启，只读渲染
	StateNotEditable EditState = iota
	// StateViewing 管理员 + 编辑模式开启，等待点击进入编辑
	StateViewing
	// StateEditing 本字段的输入框获得焦点，可保存/取消/重置
	StateEditing
)

// EditableText 单个文案字段的编辑状态机
type EditableText struct {
	id        string
	fallback  string
	kind      RenderKind
	multiline bool

	session  *EditSession
	accessor *SiteTextAccessor

	editing bool
	draft   string

	// 开始编辑时捕获的基线，Reset 用它恢复缓存
	seed         string // 进入编辑时的显示值（pending ?? cached），Save 与它比较
	baseline     string // 进入编辑时的缓存值
	baselineSet  bool   // 缓存当时是否有值（缺席 ≠ 空字符串）
	baselineHeld bool   // 是否已捕获过基线
}

// NewEditableText 创建字段状态机
func NewEditableText(id, fallback string, kind RenderKind, multiline bool, session *EditSession, accessor *SiteTextAccessor) *EditableText {
	return &EditableText{
		id:        id,
		fallback:  fallback,
		kind:      kind,
		multiline: multiline,
		session:   session,
		accessor:  accessor,
	}
}

// ID 字段的全局唯一文案 ID
func (t *EditableText) ID() string { return t.id }

// Kind 渲染目标
func (t *EditableText) Kind() RenderKind { return t.kind }

// Multiline 是否多行字段
func (t *EditableText) Multiline() bool { return t.multiline }

// State 当前状态，由会话状态实时推导
// 管理员 + 编辑模式成立/失效时，NotEditable ↔ Viewing 自动双向迁移
func (t *EditableText) State() EditState {
	if !t.session.IsAdmin() || !t.session.IsEditMode() {
		return StateNotEditable
	}
	if t.editing {
		return StateEditing
	}
	return StateViewing
}

// BeginEdit 点击进入编辑（仅 Viewing 状态有效）
// 草稿以 pending ?? cached 播种；同时捕获缓存基线供 Reset 恢复
func (t *EditableText) BeginEdit() bool {
	if t.State() != StateViewing {
		return false
	}

	cached, ok := t.accessor.store.cache.Get(t.id)
	t.baseline = cached
	t.baselineSet = ok
	t.baselineHeld = true

	if pending, has := t.session.PendingChange(t.id); has {
		t.seed = pending
	} else if ok {
		t.seed = cached
	} else {
		t.seed = t.fallback
	}

	t.draft = t.seed
	t.editing = true
	return true
}

// SetDraft 键入中的本地值，不产生任何共享状态变更
func (t *EditableText) SetDraft(value string) {
	if t.editing {
		t.draft = value
	}
}

// Draft 当前草稿
func (t *EditableText) Draft() string { return t.draft }

// Save 确认编辑（Editing → Viewing）
// 草稿与进入编辑时的原始值相同则不做任何状态变更（纯退出编辑）；
// 不同则登记待存改动并乐观写入共享缓存，让同 ID 的其他读者立即看到新值，
// 不等待任何落库调用返回
func (t *EditableText) Save() bool {
	if t.State() != StateEditing {
		return false
	}

	if t.draft != t.seed {
		t.session.SetPendingChange(t.id, t.draft)
		t.accessor.store.cache.Set(t.id, t.draft)
	}

	t.editing = false
	return true
}

// Confirm 处理确认按键
// 单行字段：普通确认键即保存
// 多行字段：必须带修饰键，普通确认键留给换行
func (t *EditableText) Confirm(withModifier bool) bool {
	if t.multiline && !withModifier {
		return false
	}
	return t.Save()
}

// Cancel 放弃编辑（Editing → Viewing）
// 只丢弃键入中的草稿；之前保存过的待存改动原样保留
func (t *EditableText) Cancel() bool {
	if t.State() != StateEditing {
		return false
	}

	t.editing = false
	t.draft = ""
	return true
}

// Reset 撤销已保存的待存改动（仅当它存在时可用）
// 清除 pending 并把缓存恢复到进入编辑时捕获的基线；
// 基线当时缺席则直接删除缓存条目，让查询重新回退到默认文案
func (t *EditableText) Reset() bool {
	if !t.session.HasPendingChange(t.id) {
		return false
	}

	t.session.ClearPendingChange(t.id)

	if t.baselineHeld {
		if t.baselineSet {
			t.accessor.store.cache.Set(t.id, t.baseline)
		} else {
			t.accessor.store.cache.Delete(t.id)
		}
	}
	return true
}

// DisplayValue 显示值解析，优先级从高到低（必须严格保持此顺序）：
// 1. 本 ID 的待存改动
// 2. 编辑中的草稿（仅 Editing 状态）
// 3. 缓存/已持久化值（空字符串是有效值，不回退）
// 4. 编译期默认文案
func (t *EditableText) DisplayValue() string {
	if pending, ok := t.session.PendingChange(t.id); ok {
		return pending
	}
	if t.editing {
		return t.draft
	}
	return t.accessor.GetText(t.id, t.fallback)
}
