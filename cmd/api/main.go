package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/email"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/snapshot"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/handlers"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/repositories"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/services"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/shared/utils"
)

const sessionMaxIdle = 30 * time.Minute

// @title Marketing Lead Agent API
// @version 1.0
// @description Lead-qualification chatbot and marketing site backend
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /api
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL, cfg.Env)
	defer db.Close()

	// Init repositories (use GORM instance)
	summaryRepo := repositories.NewSummaryRepo(db.GORM)
	blogRepo := repositories.NewBlogRepo(db.GORM)
	useCaseRepo := repositories.NewUseCaseRepo(db.GORM)
	workshopRepo := repositories.NewWorkshopRepo(db.GORM)

	// Session context store (postgres by default, redis opt-in)
	var contextStore repositories.ContextStore
	if cfg.SessionStore == "redis" {
		contextStore = repositories.NewRedisContextStore(cfg.RedisAddr, 24*time.Hour)
		log.Printf("🗃️ Session contexts stored in Redis (%s)", cfg.RedisAddr)
	} else {
		contextStore = repositories.NewContextRepo(db.GORM)
		log.Println("🗃️ Session contexts stored in Postgres")
	}

	// Init LLM provider (optional, chatbot works without it)
	var llmService *llm.Service
	var augmenter *llm.Augmenter
	if cfg.OpenAIKey != "" || cfg.GeminiKey != "" {
		provider, err := llm.NewProvider(llm.DefaultProviderConfig(cfg.LLMProvider, cfg.OpenAIKey, cfg.GeminiKey, ""))
		if err != nil {
			log.Fatalf("❌ Failed to initialize LLM provider: %v", err)
		}
		llmService = llm.NewServiceWithProvider(provider)
		augmenter = llm.NewAugmenter(provider, llm.DefaultAugmentPolicy(cfg.AugmentEnabled, cfg.AugmentThreshold))
		log.Printf("🤖 Using LLM provider: %s (augmentation enabled: %t)", llmService.GetProviderName(), cfg.AugmentEnabled)
	} else {
		log.Println("⚠️ No LLM keys configured, running rule-based only")
	}

	// Init email service
	var emailService *email.Service
	if cfg.ResendAPIKey != "" {
		emailService = email.NewService(email.NewResendProvider(cfg.ResendAPIKey, cfg.EmailFrom, "Lead Agent"))
		log.Printf("📧 Using Email provider: %s", emailService.GetProviderName())
	} else {
		log.Println("⚠️ Email service not configured")
	}

	// Cross-visit snapshot store
	snapStore, err := snapshot.NewStore(cfg.SnapshotDB, 30)
	if err != nil {
		log.Fatalf("❌ Failed to open snapshot store: %v", err)
	}
	defer snapStore.Close()

	// Init services
	chatService := services.NewChatService(summaryRepo)
	contentService := services.NewContentService(blogRepo, useCaseRepo)
	workshopService := services.NewWorkshopService(workshopRepo, emailService)

	// Conversation engine
	responder := chatbot.NewResponder(chatbot.DefaultConfig(), rand.New(rand.NewSource(time.Now().UnixNano())))
	engineOpts := []agent.Option{agent.WithSnapshotStore(snapStore)}
	if augmenter != nil {
		engineOpts = append(engineOpts, agent.WithAugmenter(augmenter))
	}
	engine := agent.NewEngine(responder, chatService, engineOpts...)

	// Evict idle sessions so abandoned tabs still get summarized
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := engine.EvictIdle(sessionMaxIdle); n > 0 {
				log.Printf("🧹 Evicted %d idle chat sessions", n)
			}
		}
	}()

	// Init handlers
	chatHandler := handlers.NewChatHandler(engine, chatService, contextStore, llmService)
	blogHandler := handlers.NewBlogHandler(contentService)
	useCaseHandler := handlers.NewUseCaseHandler(contentService)
	workshopHandler := handlers.NewWorkshopHandler(workshopService)
	analyticsHandler := handlers.NewAnalyticsHandler(chatService)
	healthHandler := handlers.NewHealthHandler(engine)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Marketing Lead Agent API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	api := app.Group("/api")

	// Chat routes
	api.Post("/chat/message", chatHandler.HandleMessage)
	api.Post("/chat/close", chatHandler.CloseSession)
	api.Post("/chat/summary", chatHandler.SubmitSummary)
	api.Get("/chat/summaries", chatHandler.ListSummaries)
	api.Post("/chat/context", chatHandler.SaveContext)
	api.Get("/chat/context/:sessionId", chatHandler.GetContext)
	api.Post("/chat/llm-response", chatHandler.LLMResponse)

	// Blog routes
	api.Post("/blogs", blogHandler.CreateBlog)
	api.Get("/blogs", blogHandler.ListBlogs)
	api.Get("/blogs/:id", blogHandler.GetBlog)
	api.Put("/blogs/:id", blogHandler.UpdateBlog)
	api.Patch("/blogs/:id/publish", blogHandler.PublishBlog)
	api.Delete("/blogs/:id", blogHandler.DeleteBlog)

	// Use case routes
	api.Post("/usecases", useCaseHandler.CreateUseCase)
	api.Get("/usecases", useCaseHandler.ListUseCases)
	api.Get("/usecases/:id", useCaseHandler.GetUseCase)
	api.Put("/usecases/:id", useCaseHandler.UpdateUseCase)
	api.Delete("/usecases/:id", useCaseHandler.DeleteUseCase)

	// Workshop routes
	api.Post("/workshops/register", workshopHandler.Register)
	api.Get("/workshops/:slug/registrations", workshopHandler.ListRegistrations)

	// Analytics routes
	api.Get("/analytics/leads", analyticsHandler.GetLeadReport)

	// Start server
	log.Printf("✅ api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
