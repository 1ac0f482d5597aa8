package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})
	return os.Getenv(key)
}

// CheckRequired logs missing startup configuration without halting; the
// affected feature fails at the point of use instead.
func CheckRequired(keys ...string) {
	for _, key := range keys {
		if Config(key) == "" {
			log.Printf("🔥 Missing configuration value: %s", key)
		}
	}
}
