package config

import (
	"github.com/caarlos0/env"
)

type Config struct {
	Port            string `env:"PORT" envDefault:":8080"`
	DBUrl           string `env:"DATABASE_URL"`
	DBName          string `env:"DATABASE_NAME" envDefault:"skillpathdb"`
	SecretKey       string `env:"SECRET_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	GeminiModel     string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiTimeout   int    `env:"GEMINI_TIMEOUT_SECONDS" envDefault:"30"`
	RedisURL        string `env:"REDIS_URL"`
	AWSS3Region     string `env:"AWS_S3_REGION"`
	AWSS3BucketName string `env:"AWS_S3_BUCKET_NAME"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
