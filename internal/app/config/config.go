package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	OpenAIBaseURL   string
	OpenAIAPIKey    string
	OpenAIModel     string
	SupabaseURL     string
	SupabaseAnonKey string
	SuggestBaseURL  string
	RapidAPIKey     string
	RapidAPIHost    string
	DefaultLocation string
	CORSAllowOrigin string
}

func MustLoad() Config {
	_ = godotenv.Load()

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Printf("OPENAI_API_KEY not set: assistant endpoints will fail until it is configured")
	}

	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":5000"),
		DatabaseURL:     env("DATABASE_URL", ""),
		OpenAIBaseURL:   env("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:    env("OPENAI_API_KEY", ""),
		OpenAIModel:     env("OPENAI_MODEL", "gpt-3.5-turbo"),
		SupabaseURL:     env("SUPABASE_URL", ""),
		SupabaseAnonKey: env("SUPABASE_ANON_KEY", ""),
		SuggestBaseURL:  env("SUGGEST_BASE_URL", "https://suggestqueries.google.com"),
		RapidAPIKey:     env("RAPIDAPI_KEY", ""),
		RapidAPIHost:    env("RAPIDAPI_HOST", "gemini-api3.p.rapidapi.com"),
		DefaultLocation: env("DEFAULT_LOCATION", "United States"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
