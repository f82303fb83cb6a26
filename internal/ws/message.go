package ws

import "encoding/json"

type MessageType string

const (
	// 核心内容消息
	TypeTextUpdate MessageType = "text-update" // 文案保存后的增量推送
	TypeFieldFocus MessageType = "field-focus" // 操作者正在编辑哪个字段（在场感知）

	// 系统消息
	TypeUserJoin  MessageType = "user-join"  // 用户加入页面
	TypeUserLeave MessageType = "user-leave" // 用户离开页面
	TypeSync      MessageType = "sync"       // 全量同步（用于新用户加入）
	TypeError     MessageType = "error"      // 错误消息
)

// WSMessage 统一的 WebSocket 消息结构
type WSMessage struct {
	Type      MessageType     `json:"type"`     // 消息类型
	SenderID  string          `json:"senderId"` // 发送者id
	Payload   json.RawMessage `json:"payload"`  // 消息内容
	Timestamp int64           `json:"ts"`       // 时间戳
}

// TextUpdatePayload text-update 消息的 payload
// Deleted 为 true 表示该文案覆盖值被删除，前端应回退到默认文案
type TextUpdatePayload struct {
	ID      string `json:"id"`
	Page    string `json:"page"`
	Section string `json:"section,omitempty"`
	Value   string `json:"value"`
	Deleted bool   `json:"deleted,omitempty"`
}

// FieldFocusPayload field-focus 消息的 payload
type FieldFocusPayload struct {
	ID      string `json:"id"`      // 正在编辑的文案 ID，空表示失焦
	Editing bool   `json:"editing"` // true 进入编辑，false 退出
}

// SyncPayload sync 消息的 payload（新用户加入时发送）
type SyncPayload struct {
	Page  string            `json:"page"`
	Texts map[string]string `json:"texts"` // 文案 ID → 当前值
	Users []UserInfo        `json:"users"`
}

// UserInfo 用户基础信息
type UserInfo struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Color    string `json:"color,omitempty"`
}

// ========== 错误码系统 ==========
// 前端根据 Code 判断错误类型，而不是匹配 Message 字符串

type ErrorCode string

const (
	ErrPageLoadFailed ErrorCode = "PAGE_LOAD_FAILED" // 页面文案加载失败（降级为空）
	ErrBadMessage     ErrorCode = "BAD_MESSAGE"      // 消息格式错误
	ErrUnauthorized   ErrorCode = "UNAUTHORIZED"     // 未授权
	ErrInternalError  ErrorCode = "INTERNAL_ERROR"   // 服务器内部错误
)

// ErrorPayload 错误消息的 payload 结构
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`    // 错误码（前端用于判断逻辑）
	Message string    `json:"message"` // 错误描述（用于调试/日志，可本地化）
}
