package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	env     *viper.Viper
	envOnce sync.Once
)

// environment returns the shared viper instance bound to process environment
// variables. Call godotenv.Load before the first Load*Config call so .env
// values are visible.
func environment() *viper.Viper {
	envOnce.Do(func() {
		env = viper.New()
		env.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		env.AutomaticEnv()
	})
	return env
}
