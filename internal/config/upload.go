package config

import "sync"

type UploadConfig struct {
	MaxSize    int64
	OCREnabled bool
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		v := environment()
		v.SetDefault("UPLOAD_MAX_SIZE", 5*1024*1024)
		v.SetDefault("UPLOAD_OCR_ENABLED", true)

		uploadConfig = &UploadConfig{
			MaxSize:    v.GetInt64("UPLOAD_MAX_SIZE"),
			OCREnabled: v.GetBool("UPLOAD_OCR_ENABLED"),
		}
	})
	return uploadConfig
}
