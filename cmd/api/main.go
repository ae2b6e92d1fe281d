package main

import (
	"log"
	"os"

	"pizzaassist/internal/assist"
	"pizzaassist/internal/catalog"
	"pizzaassist/internal/db"
	"pizzaassist/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── LLM ─────────────────────────
	chatClient := assist.NewOpenAIClient(resolveLLMConfig())

	// ───────────────────────── WIRING ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	searchService := catalog.NewService(catalogRepo)
	planService := assist.NewService(catalogRepo, chatClient)
	assistHandler := assist.NewHandler(planService, searchService)

	r := router.NewRouter(assistHandler)

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}

// resolveLLMConfig reads the provider selection once at startup. Defaults
// follow the provider: ollama runs keyless against a local endpoint,
// openai wants OPENAI_API_KEY.
func resolveLLMConfig() assist.Config {
	cfg := assist.Config{
		Provider: os.Getenv("LLM_PROVIDER"),
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
		APIKey:   os.Getenv("OPENAI_API_KEY"),
	}

	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}

	switch cfg.Provider {
	case "ollama":
		if cfg.BaseURL == "" {
			cfg.BaseURL = "http://localhost:11434/v1"
		}
		if cfg.Model == "" {
			cfg.Model = "llama3.1"
		}
		cfg.APIKey = ""
	default:
		if cfg.BaseURL == "" {
			cfg.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Model == "" {
			cfg.Model = "gpt-5-nano"
		}
	}

	return cfg
}
