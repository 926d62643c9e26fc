package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SessionAnalysisDetail is one wet session compared against its dry baseline.
type SessionAnalysisDetail struct {
	SessionName            string  `json:"session_name"`
	DryBaselineSessionName string  `json:"dry_baseline_session_name"`
	DryLapTimeMedian       float64 `json:"dry_lap_time_median"`
	DryLapsAnalyzedCount   int     `json:"dry_laps_analyzed_count"`
	WetLapTimeMedian       float64 `json:"wet_lap_time_median"`
	WetLapsAnalyzedCount   int     `json:"wet_laps_analyzed_count"`
	WetCompoundUsed        string  `json:"wet_compound_used"`
	DeltaPercentage        float64 `json:"delta_percentage"` // (wet - dry) / dry * 100, computed upstream
}

type DriverSeasonPerformance struct {
	Rank                 int                     `json:"rank"`
	DriverCode           string                  `json:"driver_code"`
	DriverNumber         int                     `json:"driver_number"`
	FullName             string                  `json:"full_name"`
	TeamName             string                  `json:"team_name"`
	AverageWetToDryDelta float64                 `json:"average_wet_to_dry_delta"`
	SessionsAnalyzed     int                     `json:"sessions_analyzed_count"`
	Sessions             []SessionAnalysisDetail `json:"sessions_analyzed_list"`
}

type SeasonAnalysisResponse struct {
	Season    int                       `json:"season"`
	Standings []DriverSeasonPerformance `json:"standings"`
}

// DriverCareerStats matches the backend's /api/season/driver/{code} payload.
type DriverCareerStats struct {
	DriverCode  string                          `json:"driver_code"`
	FullName    string                          `json:"full_name"`
	TeamHistory map[int]string                  `json:"team_history"`
	Seasons     map[int]DriverSeasonPerformance `json:"seasons"`
}

// StatusError is returned for any non-2xx upstream response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

type Upstream struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewUpstream(baseURL string, timeout time.Duration, log *slog.Logger) *Upstream {
	return &Upstream{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (u *Upstream) seasonURL(season int) string {
	return fmt.Sprintf("%s/api/season/%d", u.baseURL, season)
}

func (u *Upstream) driverURL(code string) string {
	return fmt.Sprintf("%s/api/season/driver/%s", u.baseURL, url.PathEscape(code))
}

func (u *Upstream) GetSeason(ctx context.Context, season int) (SeasonAnalysisResponse, error) {
	var resp SeasonAnalysisResponse
	if err := u.getJSON(ctx, u.seasonURL(season), &resp); err != nil {
		return resp, errors.Wrapf(err, "in season %d", season)
	}
	for _, d := range resp.Standings {
		if d.SessionsAnalyzed != len(d.Sessions) {
			u.log.Warn("sessions_analyzed_count does not match session list",
				"season", season, "driver", d.DriverCode,
				"count", d.SessionsAnalyzed, "listed", len(d.Sessions))
		}
	}
	return resp, nil
}

func (u *Upstream) GetDriverCareer(ctx context.Context, code string) (DriverCareerStats, error) {
	var stats DriverCareerStats
	if err := u.getJSON(ctx, u.driverURL(code), &stats); err != nil {
		return stats, errors.Wrapf(err, "in driver career %s", code)
	}
	return stats, nil
}

func (u *Upstream) getJSON(ctx context.Context, target string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := u.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{URL: target, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return errors.Wrapf(err, "decoding %s", target)
	}
	u.log.Info("🌧️ fetched upstream", "url", target, "took", time.Since(start).Round(time.Millisecond))
	return nil
}
