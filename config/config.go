package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	SourceFile     = "file"
	SourceDatabase = "database"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server    Server
	Questions Questions
	Database  Database
	Log       Log
	Client    Client
}

type Server struct {
	Port        string
	GinMode     string
	CORSOrigins []string
}

// Questions selects where the question store is loaded from at startup.
type Questions struct {
	Source string
	File   string
}

type Database struct {
	Driver   string
	Path     string // sqlite only
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Log struct {
	Level  string
	Pretty bool
}

type Client struct {
	APIBaseURL string
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("QUESTION_SOURCE", SourceFile)
	v.SetDefault("QUESTIONS_FILE", "data/questions.json")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "data/questions.db")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("API_BASE_URL", "http://localhost:5000")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Server.CORSOrigins = splitCSV(v.GetString("CORS_ORIGINS"))

	config.Questions.Source = strings.ToLower(v.GetString("QUESTION_SOURCE"))
	config.Questions.File = v.GetString("QUESTIONS_FILE")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Path = v.GetString("DATABASE_PATH")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")

	config.Client.APIBaseURL = strings.TrimSuffix(v.GetString("API_BASE_URL"), "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("port", config.Server.Port).
		Str("questionSource", config.Questions.Source).
		Str("questionsFile", config.Questions.File).
		Str("databaseDriver", config.Database.Driver).
		Msg("Config loaded")
	return &config, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	switch c.Server.GinMode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported GIN_MODE %q", c.Server.GinMode)
	}
	switch c.Questions.Source {
	case SourceFile:
		if c.Questions.File == "" {
			return fmt.Errorf("QUESTIONS_FILE must be set when QUESTION_SOURCE=%s", SourceFile)
		}
	case SourceDatabase:
	default:
		return fmt.Errorf("unsupported QUESTION_SOURCE %q (expected %q or %q)", c.Questions.Source, SourceFile, SourceDatabase)
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (expected %q or %q)", c.Database.Driver, DriverSQLite, DriverPostgres)
	}
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
