package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Session.CookieName != "legal.sid" || cfg.Session.TTL != 7*24*time.Hour {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Session.Secret == "" {
		t.Fatalf("expected a development secret to be filled in")
	}
	if cfg.LLM.Model != "gemini-2.5-flash" || cfg.LLM.Timeout != 60*time.Second || cfg.LLM.APIKey != "" {
		t.Fatalf("unexpected llm defaults: %+v", cfg.LLM)
	}
	if cfg.Mongo.Database != "legal_assistant" {
		t.Fatalf("unexpected mongo db: %s", cfg.Mongo.Database)
	}
	if cfg.IsProduction() {
		t.Fatalf("default env must not be production")
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": "production"}))
	if err == nil {
		t.Fatalf("expected error when SESSION_SECRET is missing in production")
	}

	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":            "production",
		"SESSION_SECRET": "s3cr3t",
		"CORS_ORIGIN":    "https://app.example.com",
		"LLM_TIMEOUT":    "30s",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if !cfg.IsProduction() || cfg.Session.Secret != "s3cr3t" || cfg.CORSOrigin != "https://app.example.com" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Fatalf("LLM timeout = %s", cfg.LLM.Timeout)
	}
}
