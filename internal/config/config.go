package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	AccessTTLMin    int
	RedisAddr       string
	RateLimitPerMin int
	RabbitURL       string
	GithubToken     string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:            getenv("APP_PORT", "8080"),
		Env:             getenv("APP_ENV", "dev"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "devnet_db"),
		JWTSecret:       getenv("JWT", "default_secret_key"),
		AccessTTLMin:    atoi(getenv("ACCESS_TTL_MIN", "360")),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		RateLimitPerMin: atoi(getenv("RATE_LIMIT_PER_MIN", "10")),
		RabbitURL:       getenv("RABBIT_URL", ""),
		GithubToken:     getenv("GITHUB_TOKEN", ""),
	}
}

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return 0
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
