package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	// Dataset Configuration
	DatasetFolder   string
	DefaultPageSize int
	MaxPageSize     int
	PreviewLength   int

	// MinIO Configuration
	MinioEnabled   bool
	MinioHost      string
	MinioPort      string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
}

func NewConfig() (*Config, error) {
	var err error

	// Загружаем .env файл
	_ = godotenv.Load()

	// Загружаем TOML конфигурацию
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// Папку с датасетами можно переопределить через .env
	if folder := os.Getenv("DATASET_FOLDER"); folder != "" {
		cfg.DatasetFolder = folder
	}
	if cfg.DatasetFolder == "" {
		cfg.DatasetFolder = "datasets"
	}

	// Значения пагинации по умолчанию
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	if cfg.PreviewLength <= 0 {
		cfg.PreviewLength = 120
	}

	// MinIO конфигурация из .env
	cfg.MinioHost = getEnv("MINIO_HOST", "localhost")
	cfg.MinioPort = getEnv("MINIO_SERVER_PORT", "9000")
	cfg.MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	cfg.MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio124")
	cfg.MinioBucket = getEnv("MINIO_BUCKET", "audio-clips")

	if enabled := os.Getenv("MINIO_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			cfg.MinioEnabled = parsed
		}
	}

	log.Info("config parsed")

	return cfg, nil
}

// getEnv вспомогательная функция для получения environment variables
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
