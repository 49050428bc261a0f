package config

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	AWSRegion string
	OCREngine string // "textract" or "rekognition"

	// Gross 24h collection sanity limit. The original rule of thumb is
	// 40 ml/kg with an assumed 1000 ml per kg, hence 40000.
	TotalOutputLimitMl float64
}

func New() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("SERVICE_HOST", "")
	v.SetDefault("SERVICE_PORT", 8080)
	v.SetDefault("AWS_REGION", "ap-southeast-1")
	v.SetDefault("OCR_ENGINE", "textract")
	v.SetDefault("TOTAL_OUTPUT_LIMIT_ML", 40000)
	v.AutomaticEnv()

	cfg := &Config{
		ServiceHost:        v.GetString("SERVICE_HOST"),
		ServicePort:        v.GetInt("SERVICE_PORT"),
		AWSRegion:          v.GetString("AWS_REGION"),
		OCREngine:          v.GetString("OCR_ENGINE"),
		TotalOutputLimitMl: v.GetFloat64("TOTAL_OUTPUT_LIMIT_ML"),
	}

	log.WithFields(log.Fields{
		"ocr_engine": cfg.OCREngine,
		"aws_region": cfg.AWSRegion,
	}).Info("config parsed")

	return cfg, nil
}
