package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"summit-go-server/bootstrap"
	"summit-go-server/domain/entity"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	// 命令行参数
	force := flag.Bool("force", false, "跳过确认提示，强制执行")
	reset := flag.Bool("reset", false, "先 TRUNCATE 内容表再写入种子数据")
	flag.Parse()

	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ 未找到 .env 文件，使用系统环境变量")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("❌ DATABASE_URL 环境变量未设置")
	}

	// 连接数据库
	db := bootstrap.NewDatabase(dsn)

	// 确认提示
	if *reset && !*force {
		fmt.Println("⚠️  警告：--reset 将清空以下内容表后重新写入种子数据！")
		for _, t := range contentTables() {
			fmt.Printf("   - %s\n", t)
		}

		fmt.Print("\n确认执行？(yes/no): ")
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))

		if input != "yes" && input != "y" {
			fmt.Println("❌ 操作已取消")
			return
		}
	}

	if *reset {
		fmt.Println("\n🚀 开始清空内容表...")
		for _, tableName := range contentTables() {
			// TRUNCATE 重置自增ID，CASCADE 处理外键约束
			if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", tableName)).Error; err != nil {
				log.Printf("❌ 清空表 %s 失败: %v\n", tableName, err)
			} else {
				log.Printf("✅ 已清空表: %s\n", tableName)
			}
		}
	}

	fmt.Println("\n🌱 写入种子数据...")
	seedSiteTexts(db)
	seedSchedule(db)

	fmt.Println("\n🎉 种子数据写入完成！")
}

// contentTables 返回 --reset 要清空的内容表
// 注意：用户表不在列表里，清掉会丢失管理员角色
func contentTables() []string {
	return []string{
		"site_texts",
		"events",
		"schedule_items",
		"speakers",
		"sponsors",
	}
}

// seedSiteTexts 写入公开页面的默认文案（幂等 upsert）
func seedSiteTexts(db *gorm.DB) {
	texts := []entity.SiteText{
		{ID: "hero-main-title", Page: "home", Section: "hero", Value: "AIM Health R&D Summit"},
		{ID: "hero-main-description", Page: "home", Section: "hero", Value: "连接医疗健康研发领域的创新者、研究者与决策者"},
		{ID: "hero-cta-label", Page: "home", Section: "hero", Value: "立即报名"},
		{ID: "speakers-title", Page: "home", Section: "speakers", Value: "大会讲者"},
		{ID: "speakers-title-highlight", Page: "home", Section: "speakers", Value: "Leaders"},
		{ID: "schedule-title", Page: "home", Section: "schedule", Value: "大会日程"},
		{ID: "sponsors-title", Page: "home", Section: "sponsors", Value: "合作伙伴"},
		{ID: "contact-title", Page: "contact", Section: "form", Value: "联系我们"},
		{ID: "contact-description", Page: "contact", Section: "form", Value: "有任何关于峰会的问题，欢迎留言"},
		{ID: "footer-newsletter-title", Page: "shared", Section: "footer", Value: "订阅峰会快讯"},
	}

	for _, t := range texts {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true, // 不覆盖管理员已经改过的文案
		}).Create(&t).Error
		if err != nil {
			log.Printf("❌ 文案 %s 写入失败: %v", t.ID, err)
		} else {
			log.Printf("✅ 文案 %s", t.ID)
		}
	}
}

// seedSchedule 写入一份起始日程骨架
func seedSchedule(db *gorm.DB) {
	day1 := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	items := []entity.ScheduleItem{
		{Day: 1, StartsAt: day1, EndsAt: day1.Add(time.Hour), Title: "开幕致辞", Location: "主会场", SortOrder: 1},
		{Day: 1, StartsAt: day1.Add(time.Hour), EndsAt: day1.Add(2 * time.Hour), Title: "主旨演讲", Location: "主会场", SortOrder: 2},
		{Day: 2, StartsAt: day1.Add(24 * time.Hour), EndsAt: day1.Add(25 * time.Hour), Title: "圆桌讨论", Location: "分会场 A", SortOrder: 1},
	}

	var count int64
	db.Model(&entity.ScheduleItem{}).Count(&count)
	if count > 0 {
		log.Println("ℹ️ 日程表非空，跳过日程种子")
		return
	}

	for _, item := range items {
		if err := db.Create(&item).Error; err != nil {
			log.Printf("❌ 日程 [%s] 写入失败: %v", item.Title, err)
		} else {
			log.Printf("✅ 日程 [%s]", item.Title)
		}
	}
}
