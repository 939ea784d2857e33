package main

import (
	"log"

	"github.com/valyala/fasthttp"

	"flightcool/internal/auth"
	"flightcool/internal/config"
	"flightcool/internal/handler"
	"flightcool/internal/pricing"
	"flightcool/internal/riskregistry"
	"flightcool/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	risk := riskregistry.New(cfg.DestinationRegistryURL)
	engine := pricing.New(risk.RiskLevel)
	sessions := session.NewStore(engine, cfg.SubmitSettleDelay, cfg.SubmitResetDelay)
	authSvc := auth.New([]byte(cfg.JWTSecret), cfg.TokenTTL)

	h := handler.New(authSvc, sessions, risk)

	log.Printf("flightcool starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
