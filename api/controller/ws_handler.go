package controller

import (
	"log"
	"net/http"
	"strings"

	domainRepo "summit-go-server/domain/repository"
	"summit-go-server/internal/ws"

	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler WebSocket 预览连接处理器
type WSHandler struct {
	hub      *ws.Hub
	userRepo domainRepo.UserRepository
	upgrader websocket.Upgrader
}

// NewWSHandler 构造函数
func NewWSHandler(hub *ws.Hub, userRepo domainRepo.UserRepository, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		hub:      hub,
		userRepo: userRepo,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// 配置 CORS
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// 开发环境允许所有
				if origin == "" || strings.HasPrefix(origin, "http://localhost") {
					return true
				}
				// 生产环境检查白名单
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				log.Printf("[WS] ⚠️ 拒绝来自 %s 的连接", origin)
				return false
			},
		},
	}
}

// HandleWS 处理 WebSocket 升级请求
// GET /ws?page=home&token=xxx
// ⚠️ 需要在 URL 查询参数或 Sec-WebSocket-Protocol 中携带 JWT Token
// 预览通道只对管理员开放：普通访客看不到行内编辑，不需要实时推送
func (h *WSHandler) HandleWS(c *gin.Context) {
	page := c.Query("page")
	if page == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page 不能为空"})
		return
	}

	// 1. 验证 JWT Token（从 URL 参数获取，因为 WebSocket 不支持自定义 Header）
	token := c.Query("token")
	if token == "" {
		// 也尝试从 Sec-WebSocket-Protocol 获取（某些客户端实现）
		token = c.GetHeader("Sec-WebSocket-Protocol")
	}

	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少认证 token"})
		return
	}

	// 2. 验证 Clerk JWT
	claims, err := jwt.Verify(c.Request.Context(), &jwt.VerifyParams{
		Token: token,
	})
	if err != nil {
		log.Printf("[WS] ❌ Token 验证失败: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效", "details": err.Error()})
		return
	}

	// 3. 管理员门禁（依赖 Webhook 同步的用户表）
	user, err := h.userRepo.GetByID(claims.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户查询失败"})
		return
	}
	if user == nil || !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "需要管理员权限"})
		return
	}

	// 4. 获取或创建预览房间（任何页面作用域都合法，空文案是正常状态）
	room := h.hub.GetOrCreateRoom(page)

	// 5. 升级为 WebSocket 连接
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] ❌ 升级 WebSocket 失败: %v", err)
		return
	}

	// 6. 创建客户端并注册到房间
	userInfo := ws.UserInfo{
		UserID:   user.ID,
		UserName: user.Name,
		Color:    generateUserColor(user.ID),
	}
	if userInfo.UserName == "" {
		userInfo.UserName = user.Email
	}

	client := ws.NewClient(h.hub, conn, page, userInfo)

	// 注册到房间；房间恰好在销毁窗口内则重新获取一次
	if !room.Register(client) {
		room = h.hub.GetOrCreateRoom(page)
		if !room.Register(client) {
			log.Printf("[WS] ❌ 注册客户端失败: 房间 %s 不可用", page)
			conn.Close()
			return
		}
	}

	log.Printf("[WS] ✅ 用户 [%s] 连接到页面 [%s]", userInfo.UserID, page)

	// 7. 启动读写协程
	go client.WritePump()
	go client.ReadPump()
}

// generateUserColor 根据用户 ID 生成协作光标颜色
func generateUserColor(userID string) string {
	// 使用用户 ID 的哈希值生成一致的颜色
	colors := []string{
		"#FF6B6B", // 红色
		"#4ECDC4", // 青色
		"#45B7D1", // 蓝色
		"#96CEB4", // 绿色
		"#FFEAA7", // 黄色
		"#DDA0DD", // 梅红
		"#98D8C8", // 薄荷
		"#F7DC6F", // 金色
	}

	// 简单哈希
	hash := 0
	for _, c := range userID {
		hash = hash*31 + int(c)
	}
	if hash < 0 {
		hash = -hash
	}

	return colors[hash%len(colors)]
}
