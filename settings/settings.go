package settings

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var lock = &sync.Mutex{}
var singleSettingsInstace *settings

type settings struct {
	MONGO_DB          string
	MONGO_HOST        string
	NATS_HOST         string
	UPLOADS_DIRECTORY string
	PORT              string
	CLIENT_URL        string
	NODE_ENV          string
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newSettings() *settings {
	return &settings{
		MONGO_DB:          getEnv("MONGO_DB", "learningPlatform"),
		MONGO_HOST:        getEnv("MONGO_HOST", "localhost:27017"),
		NATS_HOST:         os.Getenv("NATS_HOST"),
		UPLOADS_DIRECTORY: getEnv("UPLOADS_DIRECTORY", "uploads"),
		PORT:              getEnv("PORT", "5000"),
		CLIENT_URL:        os.Getenv("CLIENT_URL"),
		NODE_ENV:          os.Getenv("NODE_ENV"),
	}
}

func init() {
	if os.Getenv("NODE_ENV") != "prod" {
		// Every setting has a fallback, a missing .env is not fatal
		godotenv.Load()
	}
}

func GetSettings() *settings {
	if singleSettingsInstace == nil {
		lock.Lock()
		defer lock.Unlock()
		singleSettingsInstace = newSettings()
	}
	return singleSettingsInstace
}
