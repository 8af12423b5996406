package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/contentgen"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/repositories"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/shared/utils"
)

func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Println("🚀 Starting content scheduler")

	if cfg.OpenAIKey == "" && cfg.GeminiKey == "" {
		log.Fatal("❌ Content scheduler needs an LLM key (OPENAI_API_KEY or GEMINI_API_KEY)")
	}

	// Init database
	db := database.NewDB(cfg.DatabaseURL, cfg.Env)
	defer db.Close()

	// Init LLM service
	llmService, err := llm.NewService(cfg.LLMProvider, cfg.OpenAIKey, cfg.GeminiKey, "")
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM service: %v", err)
	}
	log.Printf("🤖 Using LLM provider: %s", llmService.GetProviderName())

	// Generator and scheduler
	generator := contentgen.NewGenerator(
		llmService,
		repositories.NewBlogRepo(db.GORM),
		repositories.NewUseCaseRepo(db.GORM),
	)

	scheduler := contentgen.NewScheduler()
	if err := scheduler.AddJob("blog-draft", cfg.BlogCronSpec, func() {
		if _, err := generator.GenerateBlogPost(context.Background()); err != nil {
			log.Printf("⚠️ Blog generation failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("❌ Failed to schedule blog job: %v", err)
	}
	if err := scheduler.AddJob("usecase-draft", cfg.UseCaseCronSpec, func() {
		if _, err := generator.GenerateUseCase(context.Background()); err != nil {
			log.Printf("⚠️ Use-case generation failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("❌ Failed to schedule use-case job: %v", err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	// Block until shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("👋 Shutting down content scheduler")
}
