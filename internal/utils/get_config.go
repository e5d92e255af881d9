package utils

import (
	"errors"
	"io/fs"
	"log"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port           string `yaml:"PORT"`
	LogFile        string `yaml:"LOG_FILE"`
	RateLimitMax   int    `yaml:"RATE_LIMIT_MAX"`
	MealsFeedLimit int    `yaml:"MEALS_FEED_LIMIT"`

	// MongoDB configuration
	MongoUsername string `yaml:"MONGO_USERNAME"`
	MongoPassword string `yaml:"MONGO_PASSWORD"`
	MongoCluster  string `yaml:"MONGO_CLUSTER"`
	MongoAppName  string `yaml:"MONGO_APP_NAME"`
	MongoURI      string `yaml:"MONGO_URI"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		Port:         "3000",
		MongoCluster: "cluster0.lp1xwc5.mongodb.net",
		MongoAppName: "Cluster0",
	}
}

// LoadConfig reads config.yaml and .env from the working directory, both
// optional, and lets the process environment override either of them.
func LoadConfig() {
	loadConfig("config.yaml", ".env")
}

func loadConfig(yamlPath, envPath string) {
	cfg := defaultConfig()

	file, err := os.ReadFile(yamlPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		log.Printf("Error reading YAML file: %s\n", err)
	}

	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error loading env file: %s\n", err)
	}

	overrideString(&cfg.Port, "PORT")
	overrideString(&cfg.LogFile, "LOG_FILE")
	overrideInt(&cfg.RateLimitMax, "RATE_LIMIT_MAX")
	overrideInt(&cfg.MealsFeedLimit, "MEALS_FEED_LIMIT")
	overrideString(&cfg.MongoUsername, "MONGO_USERNAME")
	overrideString(&cfg.MongoPassword, "MONGO_PASSWORD")
	overrideString(&cfg.MongoCluster, "MONGO_CLUSTER")
	overrideString(&cfg.MongoAppName, "MONGO_APP_NAME")
	overrideString(&cfg.MongoURI, "MONGO_URI")

	config = cfg
}

func overrideString(field *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*field = value
	}
}

func overrideInt(field *int, key string) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Ignoring %s=%q: %s\n", key, value, err)
		return
	}
	*field = n
}

func GetConfig(key string) string {
	switch key {
	case "PORT":
		return config.Port
	case "LOG_FILE":
		return config.LogFile
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "MEALS_FEED_LIMIT":
		return strconv.Itoa(config.MealsFeedLimit)
	case "MONGO_USERNAME":
		return config.MongoUsername
	case "MONGO_PASSWORD":
		return config.MongoPassword
	case "MONGO_CLUSTER":
		return config.MongoCluster
	case "MONGO_APP_NAME":
		return config.MongoAppName
	case "MONGO_URI":
		return config.MongoURI
	default:
		return ""
	}
}

// GetIntConfig returns the numeric settings, zero for anything else.
func GetIntConfig(key string) int {
	switch key {
	case "RATE_LIMIT_MAX":
		return config.RateLimitMax
	case "MEALS_FEED_LIMIT":
		return config.MealsFeedLimit
	default:
		return 0
	}
}

// GetMongoURI returns MONGO_URI when set, otherwise the SRV connection string
// for the Atlas cluster built from the configured credentials.
func GetMongoURI() string {
	if config.MongoURI != "" {
		return config.MongoURI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(config.MongoUsername, config.MongoPassword),
		Host:     config.MongoCluster,
		Path:     "/",
		RawQuery: url.Values{"appName": {config.MongoAppName}}.Encode(),
	}
	return u.String()
}
