package main

import (
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"openrouter_relay/internal/config"
	"openrouter_relay/internal/service/llm"
	"openrouter_relay/internal/service/relay"
	"openrouter_relay/internal/transport/http/handler"
)

func main() {
	color.Cyan("🚀 Starting OpenRouter Relay...")

	color.Yellow("📦 Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using ambient environment")
	} else {
		color.Green("✅ .env loaded successfully")
	}

	cfg := config.Load()

	color.Blue("🔧 Configuration:")
	log.Printf("   PORT:     %s", cfg.Port)
	log.Printf("   UPSTREAM: %s", cfg.UpstreamURL)
	if cfg.DefaultAPIKey == "" {
		log.Printf("   OPENROUTER_API_KEY: not set (callers must send X-API-Key)")
	} else {
		log.Printf("   OPENROUTER_API_KEY: set")
	}

	color.Yellow("🔌 Initializing relay service...")
	svc := relay.NewRelay(cfg.DefaultAPIKey, llm.NewClient(cfg.UpstreamURL, llm.DefaultTimeout))
	color.Green("✅ Service initialized")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	// Sits above the 60s upstream budget so the client, not the router,
	// decides how a slow upstream is reported.
	r.Use(middleware.Timeout(90 * time.Second))

	r.Post("/ask", handler.NewAskHandler(svc))

	// Healthcheck
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	addr := ":" + cfg.Port
	color.Magenta("🌐 Server starting on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
