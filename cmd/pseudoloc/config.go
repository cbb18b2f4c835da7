package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/tracing"
)

// Environment variables read by the command.
const (
	envMethods = "PSEUDOLOC_METHODS"
	envLocale  = "PSEUDOLOC_LOCALE"
	envTrace   = "PSEUDOLOC_TRACE"
)

const (
	defaultMethods = "psaccent"
	defaultLocale  = "en-XA"
)

// Config holds the settings of a command run. Flags override environment
// variables, which override defaults.
type Config struct {
	Methods    string
	Locale     string
	TraceLevel tracing.TraceLevel
	EastAsian  bool
}

// loadConfig reads the environment, optionally populated from a .env file.
func loadConfig(envFiles ...string) *Config {
	// .env files are optional
	_ = godotenv.Load(envFiles...)
	return &Config{
		Methods:    getenv(envMethods, defaultMethods),
		Locale:     getenv(envLocale, defaultLocale),
		TraceLevel: traceLevel(getenv(envTrace, "error")),
	}
}

func getenv(key, dflt string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return dflt
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
