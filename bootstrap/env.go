package bootstrap

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env 环境变量配置结构
type Env struct {
	DatabaseURL    string   // PostgreSQL 连接字符串
	ClerkSecretKey string   // Clerk API 密钥
	WebhookSecret  string   // Clerk Webhook 签名密钥
	Port           string   // 服务端口
	AllowedOrigins []string // CORS / WebSocket 白名单
}

// LoadEnv 加载环境变量
// 开发环境从 .env 文件加载，生产环境从系统环境变量读取
func LoadEnv() *Env {
	// 尝试加载 .env 文件（生产环境可能没有）
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env 文件未找到，将使用系统环境变量")
	}

	env := &Env{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ClerkSecretKey: os.Getenv("CLERK_SECRET_KEY"),
		WebhookSecret:  os.Getenv("CLERK_WEBHOOK_SECRET"),
		Port:           os.Getenv("PORT"),
		AllowedOrigins: parseOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}

	// 默认端口
	if env.Port == "" {
		env.Port = "8080"
	}

	// 默认白名单（本地开发）
	if len(env.AllowedOrigins) == 0 {
		env.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	// 必需变量检查
	if env.DatabaseURL == "" {
		log.Fatal("❌ 缺少必需环境变量: DATABASE_URL")
	}

	log.Printf("✅ 环境变量加载完成, 端口: %s", env.Port)
	return env
}

// parseOrigins 解析逗号分隔的 origin 白名单
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
