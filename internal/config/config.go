// Package config carrega a configuração da aplicação a partir de variáveis
// de ambiente, com padrões de desenvolvimento.
package config

import "os"

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret   string
	LogLevel    string
	UploadDir   string
	CORSOrigins string
	WebhookURL  string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "advocacia"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		JWTSecret:   getEnv("JWT_SECRET", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:4200"),
		WebhookURL:  getEnv("WEBHOOK_URL", ""),
	}
}

func getEnv(chave, padrao string) string {
	if valor := os.Getenv(chave); valor != "" {
		return valor
	}
	return padrao
}
