package config

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	SessionTTL time.Duration
	BcryptCost int
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		v := environment()
		v.SetDefault("AUTH_SESSION_TTL", "72h")
		v.SetDefault("AUTH_BCRYPT_COST", bcrypt.DefaultCost)

		authConfig = &AuthConfig{
			SessionTTL: v.GetDuration("AUTH_SESSION_TTL"),
			BcryptCost: v.GetInt("AUTH_BCRYPT_COST"),
		}
	})
	return authConfig
}
