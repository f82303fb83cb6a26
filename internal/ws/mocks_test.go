package ws

import (
	"encoding/json"
	"testing"
	"time"

	"summit-go-server/domain/entity"

	"github.com/stretchr/testify/mock"
)

// ========== MockContentService ==========
// 实现 ContentService 接口，用于 Hub 和 Room 的单元测试

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) ListByPage(page string) ([]entity.SiteText, error) {
	args := m.Called(page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SiteText), args.Error(1)
}

// jsonUnmarshal 解 payload 的简写
func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// newTestClient 创建不带真实连接的客户端（测试不跑读写泵，Conn 用不到）
func newTestClient(userID, userName string) *Client {
	return &Client{
		UserInfo: UserInfo{UserID: userID, UserName: userName},
		send:     make(chan []byte, 256),
	}
}

// recvMessage 从客户端发送缓冲读取一条消息，超时视为失败
func recvMessage(t *testing.T, c *Client) WSMessage {
	t.Helper()

	select {
	case data, ok := <-c.send:
		if !ok {
			t.Fatal("send channel 已关闭")
		}
		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("消息反序列化失败: %v", err)
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("等待消息超时")
	}
	return WSMessage{}
}

// recvMessageOfType 跳过其他类型直到读到目标类型的消息
func recvMessageOfType(t *testing.T, c *Client, msgType MessageType) WSMessage {
	t.Helper()

	for i := 0; i < 8; i++ {
		msg := recvMessage(t, c)
		if msg.Type == msgType {
			return msg
		}
	}
	t.Fatalf("没有收到类型为 %s 的消息", msgType)
	return WSMessage{}
}
