package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the process environment. A .env file
// in the working directory is loaded first when present; variables already
// set in the environment win over the file.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address
//	DATABASE_URL          PostgreSQL DSN
//	ALLOW_ORIGINS         comma-separated CORS origins
//	AWS_REGION            object storage region
//	AWS_ACCESS_KEY_ID     object storage access key
//	AWS_SECRET_ACCESS_KEY object storage secret key
//	AWS_BUCKET_NAME       object storage bucket
//	S3_BASE_ENDPOINT      custom endpoint for S3-compatible backends
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		config.AllowOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		config.S3Region = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		config.S3AccessKey = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		config.S3SecretKey = v
	}
	if v := os.Getenv("AWS_BUCKET_NAME"); v != "" {
		config.S3Bucket = v
	}
	if v := os.Getenv("S3_BASE_ENDPOINT"); v != "" {
		config.S3BaseEndpoint = v
	}
}
