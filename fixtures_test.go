package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

func season2023() SeasonAnalysisResponse {
	return SeasonAnalysisResponse{
		Season: 2023,
		Standings: []DriverSeasonPerformance{
			{
				Rank: 2, DriverCode: "VER", DriverNumber: 1, FullName: "Max Verstappen", TeamName: "Red Bull Racing",
				AverageWetToDryDelta: 3.1, SessionsAnalyzed: 2,
				Sessions: []SessionAnalysisDetail{
					{
						SessionName: "Dutch Grand Prix - Race", DryBaselineSessionName: "Dutch Grand Prix - Practice 2",
						DryLapTimeMedian: 90.000, DryLapsAnalyzedCount: 18, WetLapTimeMedian: 94.500, WetLapsAnalyzedCount: 12,
						WetCompoundUsed: "INTERMEDIATE", DeltaPercentage: 5.0,
					},
					{
						SessionName: "Canadian Grand Prix - Qualifying", DryBaselineSessionName: "Canadian Grand Prix - Practice 3",
						DryLapTimeMedian: 74.100, DryLapsAnalyzedCount: 9, WetLapTimeMedian: 75.000, WetLapsAnalyzedCount: 6,
						WetCompoundUsed: "INTERMEDIATE", DeltaPercentage: 1.21,
					},
				},
			},
			{
				Rank: 1, DriverCode: "HAM", DriverNumber: 44, FullName: "Lewis Hamilton", TeamName: "Mercedes",
				AverageWetToDryDelta: 2.5, SessionsAnalyzed: 3,
				Sessions: []SessionAnalysisDetail{
					{SessionName: "Belgian Grand Prix - Race", DryLapTimeMedian: 108.2, WetLapTimeMedian: 113.8, DeltaPercentage: 5.2},
					{SessionName: "Sao Paulo Grand Prix - Sprint", DryLapTimeMedian: 72.0, WetLapTimeMedian: 72.8, WetCompoundUsed: "WET", DeltaPercentage: 1.1},
					{SessionName: "Japanese Grand Prix - Race", DryLapTimeMedian: 95.0, WetLapTimeMedian: 96.0, DeltaPercentage: 1.1},
				},
			},
			{
				Rank: 3, DriverCode: "ALO", DriverNumber: 14, FullName: "Fernando Alonso", TeamName: "Aston Martin",
				AverageWetToDryDelta: 4.0, SessionsAnalyzed: 0,
			},
		},
	}
}

// season2022 has no rank 1 driver.
func season2022() SeasonAnalysisResponse {
	return SeasonAnalysisResponse{
		Season: 2022,
		Standings: []DriverSeasonPerformance{
			{Rank: 2, DriverCode: "LEC", DriverNumber: 16, FullName: "Charles Leclerc", TeamName: "Ferrari", AverageWetToDryDelta: 2.0},
			{Rank: 3, DriverCode: "NOR", DriverNumber: 4, FullName: "Lando Norris", TeamName: "McLaren", AverageWetToDryDelta: 2.4},
		},
	}
}

func season2024() SeasonAnalysisResponse {
	return SeasonAnalysisResponse{
		Season: 2024,
		Standings: []DriverSeasonPerformance{
			{
				Rank: 1, DriverCode: "NOR", DriverNumber: 4, FullName: "Lando Norris", TeamName: "McLaren",
				AverageWetToDryDelta: 1.8, SessionsAnalyzed: 1,
				Sessions: []SessionAnalysisDetail{
					{SessionName: "Sao Paulo Grand Prix - Race", DryLapTimeMedian: 75.0, WetLapTimeMedian: 76.35, DeltaPercentage: 1.8},
				},
			},
		},
	}
}

func hamiltonCareer() DriverCareerStats {
	s2023 := season2023().Standings[1]
	s2019 := s2023
	s2019.Rank = 4
	s2019.AverageWetToDryDelta = 3.3
	return DriverCareerStats{
		DriverCode:  "HAM",
		FullName:    "Lewis Hamilton",
		TeamHistory: map[int]string{2023: "Mercedes"},
		Seasons:     map[int]DriverSeasonPerformance{2023: s2023, 2019: s2019},
	}
}

// stubAPI serves the backend routes from fixtures and counts requests per path.
type stubAPI struct {
	mu      sync.Mutex
	calls   map[string]int
	seasons map[int]SeasonAnalysisResponse
	careers map[string]DriverCareerStats
	failing map[int]int
	delay   time.Duration
}

func newStubAPI() *stubAPI {
	return &stubAPI{
		calls: make(map[string]int),
		seasons: map[int]SeasonAnalysisResponse{
			2022: season2022(),
			2023: season2023(),
			2024: season2024(),
		},
		careers: map[string]DriverCareerStats{"HAM": hamiltonCareer()},
		failing: make(map[int]int),
	}
}

func (s *stubAPI) fail(season, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[season] = status
}

func (s *stubAPI) restore(season int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failing, season)
}

func (s *stubAPI) count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

func (s *stubAPI) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *stubAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls[r.URL.Path]++
	delay := s.delay
	s.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}

	if code, ok := strings.CutPrefix(r.URL.Path, "/api/season/driver/"); ok {
		s.mu.Lock()
		c, found := s.careers[code]
		s.mu.Unlock()
		if !found {
			http.Error(w, `{"detail":"Driver not found"}`, http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(c)
		return
	}

	year, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/season/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.mu.Lock()
	status, failing := s.failing[year]
	resp, found := s.seasons[year]
	s.mu.Unlock()
	if failing {
		http.Error(w, "boom", status)
		return
	}
	if !found {
		http.Error(w, `{"detail":"Analysis not found"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, api *stubAPI) *App {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	cfg := Config{
		APIBaseURL:      srv.URL,
		ListenAddr:      ":0",
		Seasons:         []int{2021, 2022, 2023, 2024},
		UpstreamTimeout: 2 * time.Second,
		RenderWait:      2 * time.Second,
		AssetsDir:       t.TempDir(),
	}
	log := discardLogger()
	return NewApp(cfg, log, NewUpstream(cfg.APIBaseURL, cfg.UpstreamTimeout, log), NewMetrics())
}
