package main

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	APIBaseURL      string        // e.g. "http://localhost:8000"
	ListenAddr      string        // e.g. ":8080"
	Seasons         []int         // seasons offered by the picker, ascending
	UpstreamTimeout time.Duration // per upstream request
	RenderWait      time.Duration // how long a page waits on a fresh fetch before showing the loading state
	AssetsDir       string        // holds teams/ and drivers/ portraits
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	return configFromEnv()
}

func configFromEnv() (Config, error) {
	cfg := Config{
		APIBaseURL:      envOr("API_BASE_URL", "http://localhost:8000"),
		ListenAddr:      envOr("LISTEN_ADDR", ":8080"),
		Seasons:         []int{2021, 2022, 2023, 2024},
		UpstreamTimeout: 10 * time.Second,
		RenderWait:      300 * time.Millisecond,
		AssetsDir:       envOr("ASSETS_DIR", "./public"),
	}

	// Railway and friends only hand us a port.
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LISTEN_ADDR") == "" {
		cfg.ListenAddr = ":" + port
	}

	if s := os.Getenv("SEASONS"); s != "" {
		seasons, err := parseSeasons(s)
		if err != nil {
			return cfg, err
		}
		cfg.Seasons = seasons
	}

	var err error
	if cfg.UpstreamTimeout, err = durationEnv("UPSTREAM_TIMEOUT", cfg.UpstreamTimeout); err != nil {
		return cfg, err
	}
	if cfg.RenderWait, err = durationEnv("RENDER_WAIT", cfg.RenderWait); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SupportsSeason reports whether the picker offers season.
func (c Config) SupportsSeason(season int) bool {
	for _, s := range c.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def, errors.Wrapf(err, "invalid %s", key)
	}
	if d < 0 {
		return def, errors.Errorf("invalid %s: negative duration %s", key, s)
	}
	return d, nil
}

func parseSeasons(s string) ([]int, error) {
	seen := make(map[int]bool)
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil || year <= 0 {
			return nil, errors.Errorf("invalid SEASONS entry %q", part)
		}
		if !seen[year] {
			seen[year] = true
			out = append(out, year)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("SEASONS is set but lists no seasons")
	}
	sort.Ints(out)
	return out, nil
}
