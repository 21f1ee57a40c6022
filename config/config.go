package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultOrigins are the front-end deployments allowed to call the API with credentials.
var DefaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://a11-flavor-fusion.web.app",
	"https://a11-flavor-fusion.firebaseapp.com",
}

type Config struct {
	Port              string
	DBUser            string
	DBPass            string
	DBCluster         string
	DBName            string
	MongoURI          string
	AccessTokenSecret string
	Env               string
	AllowedOrigins    []string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: ignoring .env: %v", err)
	}

	cfg := Config{
		Port:              getenv("PORT", "5001"),
		DBUser:            os.Getenv("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		DBCluster:         getenv("DB_CLUSTER", "cluster0.ya8cack.mongodb.net"),
		DBName:            getenv("DB_NAME", "flavor-fusion"),
		MongoURI:          os.Getenv("MONGODB_URI"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		Env:               os.Getenv("NODE_ENV"),
		AllowedOrigins:    splitOrigins(os.Getenv("CORS_ORIGINS")),
	}

	if cfg.AccessTokenSecret == "" {
		return cfg, errors.New("ACCESS_TOKEN_SECRET is not set")
	}
	if cfg.MongoURI == "" && (cfg.DBUser == "" || cfg.DBPass == "") {
		return cfg, errors.New("either MONGODB_URI or DB_USER and DB_PASS must be set")
	}
	return cfg, nil
}

// IsProduction toggles the Secure and SameSite=None cookie flags.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseURI returns MONGODB_URI when set, otherwise the Atlas SRV URI for the cluster.
func (c Config) DatabaseURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBCluster)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return DefaultOrigins
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
