package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		AppName  string
		Build    string

		RollbarToken string

		// StateFile is where the client keeps its persisted session
		// (the stand-in for the browser's localStorage).
		StateFile string

		API APIConfig
	}

	APIConfig struct {
		// BaseURL is the root of the faculty API; the GraphQL endpoint
		// lives at BaseURL + "/graphql".
		BaseURL string
		// LookupBaseURL serves the two REST lookup endpoints.
		// Defaults to BaseURL.
		LookupBaseURL string
		Timeout       time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "EmployeeHub")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("stateFile", defaultStateFile())
	v.SetDefault("apiBaseUrl", "http://localhost:8000")
	v.SetDefault("lookupBaseUrl", "")
	v.SetDefault("requestTimeout", 15*time.Second)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Env:          env,
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		StateFile:    v.GetString("stateFile"),
		API: APIConfig{
			BaseURL:       strings.TrimRight(v.GetString("apiBaseUrl"), "/"),
			LookupBaseURL: strings.TrimRight(v.GetString("lookupBaseUrl"), "/"),
			Timeout:       v.GetDuration("requestTimeout"),
		},
	}
	if conf.API.LookupBaseURL == "" {
		conf.API.LookupBaseURL = conf.API.BaseURL
	}
	return conf
}

func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "employeehub", "state.json")
}
