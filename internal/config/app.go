package config

import (
	"log"
	"sync"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
	LogJSON bool
	Debug   bool
	// RateLimit is the number of requests allowed per client per minute.
	RateLimit int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		v := environment()
		v.SetDefault("APP_NAME", "vetlink-api")
		v.SetDefault("APP_PORT", ":8080")
		v.SetDefault("APP_RATE_LIMIT", 100)

		appEnv := v.GetString("APP_ENV")
		if appEnv == "" {
			appEnv = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", appEnv)
		}
		v.SetDefault("LOG_JSON", appEnv == "production")

		appConfig = &AppConfig{
			Name:      v.GetString("APP_NAME"),
			Env:       appEnv,
			Port:      v.GetString("APP_PORT"),
			BaseURL:   v.GetString("APP_URL"),
			LogJSON:   v.GetBool("LOG_JSON"),
			Debug:     v.GetBool("LOG_DEBUG"),
			RateLimit: v.GetInt("APP_RATE_LIMIT"),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
