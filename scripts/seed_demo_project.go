package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
	"github.com/streamchapter-team/stream-chapters/internal/infrastructure/database"
	"github.com/streamchapter-team/stream-chapters/internal/usecase/chapters"
	"github.com/streamchapter-team/stream-chapters/pkg/config"
)

// demoTranscript is a tiny timestamped transcript for local API testing.
const demoTranscript = `生成时间: 2026-08-25 20:00
[00:00:00 --> 00:01:00] 大家好，欢迎来到今天的直播
[00:01:00 --> 00:05:00] 先聊聊本周市场的几个大事件
[00:05:00 --> 00:12:00] 正题开始：下半年的三个趋势
[00:12:00 --> 00:18:00] 回答弹幕里的几个问题
[00:18:00 --> 00:20:00] 总结一下，下周见
`

func main() {
	log.Println("🚀 Starting demo project creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	log.Println("🗑️  Cleaning up existing demo projects...")
	db.Where("title = ?", "Demo Livestream").Delete(&entities.Project{})

	parsed := chapters.ParseTranscriptTxt(demoTranscript)
	if len(parsed) == 0 {
		log.Fatal("❌ Demo transcript parsed to zero lines")
	}

	project := entities.NewProject("Demo Livestream")
	platform := "bilibili"
	project.Platform = &platform
	durationSec := parsed[len(parsed)-1].EndSec
	project.DurationSec = &durationSec

	if err := db.Create(project).Error; err != nil {
		log.Fatalf("❌ Failed to create demo project: %v", err)
	}

	lines := make([]entities.TranscriptLine, 0, len(parsed))
	for _, p := range parsed {
		endSec := p.EndSec
		lines = append(lines, entities.TranscriptLine{
			ID:        uuid.New(),
			ProjectID: project.ID,
			StartSec:  p.StartSec,
			EndSec:    &endSec,
			Text:      p.Text,
			Source:    "asr",
		})
	}
	if err := db.Create(&lines).Error; err != nil {
		log.Fatalf("❌ Failed to create transcript lines: %v", err)
	}

	fmt.Printf("═══════════════════════════════════════════════════════\n")
	fmt.Printf("🟢 Demo project created\n")
	fmt.Printf("═══════════════════════════════════════════════════════\n")
	fmt.Printf("Project ID:       %s\n", project.ID)
	fmt.Printf("Transcript lines: %d\n", len(lines))
	fmt.Printf("Duration (sec):   %d\n", durationSec)
	fmt.Printf("───────────────────────────────────────────────────────\n")

	log.Println("✅ Demo project created successfully!")
	log.Println("\n💡 Usage:")
	log.Printf("   curl -X POST http://localhost:%s/v1/projects/%s/generate_chapters\n", cfg.Server.Port, project.ID)
	log.Printf("   curl http://localhost:%s/v1/projects/%s/export/bilibili\n", cfg.Server.Port, project.ID)
	log.Println("\n🧹 To clean up, run: DELETE FROM projects WHERE title = 'Demo Livestream'")
}
