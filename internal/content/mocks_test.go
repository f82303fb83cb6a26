package content

import (
	"sync/atomic"
	"time"

	"summit-go-server/domain/entity"

	"github.com/stretchr/testify/mock"
)

// ========== MockTextLoader ==========
// 实现 TextLoader 接口，用于 Store 的单元测试

type MockTextLoader struct {
	mock.Mock
}

func (m *MockTextLoader) ListByPage(page string) ([]entity.SiteText, error) {
	args := m.Called(page)
	// 处理 nil 情况
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SiteText), args.Error(1)
}

// ========== slowLoader ==========
// 带延迟和调用计数的加载器，用于请求合并与竞态测试
// testify mock 不适合精确控制并发时序，这里用手写桩

type slowLoader struct {
	calls   atomic.Int32
	delay   time.Duration
	texts   []entity.SiteText
	started chan struct{} // 第一次进入加载时关闭
	release chan struct{} // 收到信号才返回，nil 表示只按 delay 等待
}

func (l *slowLoader) ListByPage(page string) ([]entity.SiteText, error) {
	if l.calls.Add(1) == 1 && l.started != nil {
		close(l.started)
	}
	if l.release != nil {
		<-l.release
	} else if l.delay > 0 {
		time.Sleep(l.delay)
	}
	return l.texts, nil
}
