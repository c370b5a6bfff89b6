package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	MongoURI        string
	MongoDB         string
	UsersCollection string
	GemsCollection  string
	HTTPPort        string
	CORSOrigin      string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "locallore"),
		UsersCollection: getEnv("USERS_COLLECTION", "users"),
		GemsCollection:  getEnv("GEMS_COLLECTION", "gems"),
		HTTPPort:        getEnv("HTTP_PORT", "5266"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Debug().Msgf("[config] %s not set, using default", key)
		return def
	}
	return v
}
