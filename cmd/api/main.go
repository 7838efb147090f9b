// Sleep Coach API
//
// REST API for daily sleep logging, quality scoring, and weekly coaching.
//
//	@title			Sleep Coach API
//	@version		1.0
//	@description	Log daily sleep-relevant behaviors and get a 0-100 quality score, rule violations, weekly analytics, and coaching advice.
//
//	@BasePath	/v1
//
//	@tag.name			entries
//	@tag.description	Daily log endpoints
//
//	@tag.name			analytics
//	@tag.description	Weekly analytics and export endpoints
//
//	@tag.name			advice
//	@tag.description	LLM coaching endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/blaisecz/sleep-coach/internal/api"
	"github.com/blaisecz/sleep-coach/internal/api/handler"
	"github.com/blaisecz/sleep-coach/internal/config"
	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/blaisecz/sleep-coach/internal/langfuse"
	"github.com/blaisecz/sleep-coach/internal/llm"
	"github.com/blaisecz/sleep-coach/internal/repository"
	"github.com/blaisecz/sleep-coach/internal/seed"
	"github.com/blaisecz/sleep-coach/internal/service"
	"github.com/blaisecz/sleep-coach/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-coach-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer shutdownTracer(ctx)

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.SleepEntry{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repository and services
	entryRepo := repository.NewEntryRepository(db)
	entryService := service.NewEntryService(entryRepo)
	analyticsService := service.NewAnalyticsService(entryRepo)

	// Langfuse client for advice feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Load the coach system prompt from Langfuse with local fallback
	coachPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:    cfg.LangfuseBaseURL,
		PublicKey:  cfg.LangfusePublicKey,
		SecretKey:  cfg.LangfuseSecretKey,
		PromptName: cfg.CoachPromptName,
		SavePath:   cfg.CoachPromptSavePath,
	})
	if err != nil {
		coachPrompt = llm.DefaultCoachPrompt
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel, coachPrompt)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, advice endpoint will be unavailable")
	}

	adviceService := service.NewAdviceService(analyticsService, openaiClient)

	// Initialize handlers
	entryHandler := handler.NewEntryHandler(entryService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, entryService)
	adviceHandler := handler.NewAdviceHandler(adviceService, langfuseClient)

	// Setup router
	router := api.NewRouter(entryHandler, analyticsHandler, adviceHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
