package config

import "sync"

type RedisConfig struct {
	URL string
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		v := environment()
		v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
		redisConfig = &RedisConfig{
			URL: v.GetString("REDIS_URL"),
		}
	})
	return redisConfig
}
