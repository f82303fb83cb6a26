package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ========== EditSession 单元测试 ==========
// 测试重点：编辑模式门禁、待存改动的生命周期

func TestEditSession_EditModeDefaultsOff(t *testing.T) {
	session := NewEditSession(Operator{ID: "op-1", Name: "Admin"}, true)

	assert.True(t, session.IsAdmin())
	assert.False(t, session.IsEditMode(), "编辑模式每个会话默认关闭")
}

func TestEditSession_NonAdminCannotEnableEditMode(t *testing.T) {
	// 测试场景：未授权操作者尝试开启编辑模式，静默拒绝
	session := NewEditSession(Operator{ID: "visitor"}, false)

	ok := session.SetEditMode(true)

	assert.False(t, ok)
	assert.False(t, session.IsEditMode(), "非管理员开启编辑模式必须被拒绝")
}

func TestEditSession_AdminTogglesEditMode(t *testing.T) {
	session := NewEditSession(Operator{ID: "op-1"}, true)

	assert.True(t, session.SetEditMode(true))
	assert.True(t, session.IsEditMode())

	// 关闭永远允许（非管理员会话也可以关闭）
	assert.True(t, session.SetEditMode(false))
	assert.False(t, session.IsEditMode())
}

func TestEditSession_PendingChangeLifecycle(t *testing.T) {
	session := NewEditSession(Operator{ID: "op-1"}, true)

	assert.False(t, session.HasPendingChange("hero-main-title"))

	// 写入
	session.SetPendingChange("hero-main-title", "New title")
	value, ok := session.PendingChange("hero-main-title")
	assert.True(t, ok)
	assert.Equal(t, "New title", value)
	assert.Equal(t, 1, session.PendingCount())

	// 新的编辑直接覆盖旧的待存改动
	session.SetPendingChange("hero-main-title", "Newer title")
	value, _ = session.PendingChange("hero-main-title")
	assert.Equal(t, "Newer title", value)
	assert.Equal(t, 1, session.PendingCount())

	// 清除幂等
	session.ClearPendingChange("hero-main-title")
	assert.False(t, session.HasPendingChange("hero-main-title"))
	session.ClearPendingChange("hero-main-title") // 不存在也不报错
	assert.Equal(t, 0, session.PendingCount())
}

func TestEditSession_EmptyStringPendingIsValid(t *testing.T) {
	session := NewEditSession(Operator{ID: "op-1"}, true)

	session.SetPendingChange("hero-subtitle", "")

	value, ok := session.PendingChange("hero-subtitle")
	assert.True(t, ok, "空字符串是有效的待存改动")
	assert.Equal(t, "", value)
}
