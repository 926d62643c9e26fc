package main

import (
	"reflect"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"API_BASE_URL", "LISTEN_ADDR", "PORT", "SEASONS", "UPSTREAM_TIMEOUT", "RENDER_WAIT", "ASSETS_DIR"} {
		t.Setenv(k, "")
	}
}

func TestConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" || cfg.ListenAddr != ":8080" || cfg.AssetsDir != "./public" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Seasons, []int{2021, 2022, 2023, 2024}) {
		t.Fatalf("unexpected seasons: %v", cfg.Seasons)
	}
	if cfg.UpstreamTimeout != 10*time.Second || cfg.RenderWait != 300*time.Millisecond {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("API_BASE_URL", "https://rainline.example")
	t.Setenv("PORT", "9000")
	t.Setenv("SEASONS", "2024, 2019,2024")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("RENDER_WAIT", "0s")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "https://rainline.example" || cfg.ListenAddr != ":9000" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Seasons, []int{2019, 2024}) {
		t.Fatalf("unexpected seasons: %v", cfg.Seasons)
	}
	if cfg.UpstreamTimeout != 3*time.Second || cfg.RenderWait != 0 {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if !cfg.SupportsSeason(2019) || cfg.SupportsSeason(2021) {
		t.Fatalf("SupportsSeason disagrees with %v", cfg.Seasons)
	}
}

func TestConfigListenAddrBeatsPort(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:7000")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:7000" {
		t.Fatalf("got %q", cfg.ListenAddr)
	}
}

func TestConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SEASONS", "2023,abc"},
		{"SEASONS", "-2023"},
		{"SEASONS", " , "},
		{"UPSTREAM_TIMEOUT", "soon"},
		{"RENDER_WAIT", "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := configFromEnv(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
