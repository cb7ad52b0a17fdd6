package config

import "sync"

type SchedulerConfig struct {
	// JobExpirySpec is a robfig/cron spec, e.g. "@every 1h".
	JobExpirySpec string
}

var (
	schedulerConfig *SchedulerConfig
	schedulerOnce   sync.Once
)

func LoadSchedulerConfig() *SchedulerConfig {
	schedulerOnce.Do(func() {
		v := environment()
		v.SetDefault("JOBS_EXPIRY_SPEC", "@every 1h")
		schedulerConfig = &SchedulerConfig{
			JobExpirySpec: v.GetString("JOBS_EXPIRY_SPEC"),
		}
	})
	return schedulerConfig
}
