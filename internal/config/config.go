package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Address      string
	JWTSecret    []byte
	KafkaAddress string
	LogLevel     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		Address:      os.Getenv("ADDRESS"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}

	if config.Address == "" {
		config.Address = ":8080"
	}
	if len(config.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}
