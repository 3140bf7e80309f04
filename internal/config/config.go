package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunables the shell and simulation read at startup.
// Values come from PACMAN_* environment variables, optionally loaded from a
// .env file in the working directory; anything unset or unparsable keeps
// its default.
type Config struct {
	TickRate       int
	FrightSeconds  int
	RespawnSeconds int
	Fullscreen     bool

	// WindowFit is the fraction of the display the window is scaled to
	// fit within when not fullscreen.
	WindowFit float64
}

func defaults() Config {
	return Config{
		TickRate:       60,
		FrightSeconds:  8,
		RespawnSeconds: 2,
		WindowFit:      0.75,
	}
}

// Load reads the configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := defaults()
	cfg.TickRate = intEnv("PACMAN_TICK_RATE", cfg.TickRate)
	cfg.FrightSeconds = intEnv("PACMAN_FRIGHT_SECONDS", cfg.FrightSeconds)
	cfg.RespawnSeconds = intEnv("PACMAN_RESPAWN_SECONDS", cfg.RespawnSeconds)
	cfg.Fullscreen = boolEnv("PACMAN_FULLSCREEN", cfg.Fullscreen)
	cfg.WindowFit = floatEnv("PACMAN_WINDOW_FIT", cfg.WindowFit)
	return cfg
}

func intEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func floatEnv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func boolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
