package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"rainline/templates"

	"github.com/a-h/templ"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type App struct {
	cfg     Config
	log     *slog.Logger
	metrics *Metrics
	seasons *Resource[SeasonAnalysisResponse]
	careers *Resource[DriverCareerStats]
}

func NewApp(cfg Config, log *slog.Logger, up *Upstream, metrics *Metrics) *App {
	a := &App{cfg: cfg, log: log, metrics: metrics}
	a.seasons = NewResource("season", cfg.UpstreamTimeout, metrics, func(ctx context.Context, key string) (SeasonAnalysisResponse, error) {
		year, err := strconv.Atoi(key)
		if err != nil {
			return SeasonAnalysisResponse{}, errors.Wrapf(err, "season key %q", key)
		}
		return up.GetSeason(ctx, year)
	})
	a.careers = NewResource("career", cfg.UpstreamTimeout, metrics, up.GetDriverCareer)
	return a
}

func (a *App) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", a.dashboardHandler).Methods(http.MethodGet)
	r.HandleFunc("/driver/{code}", a.careerHandler).Methods(http.MethodGet)
	r.HandleFunc("/season/{year}/standings.txt", a.standingsTextHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", a.healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", a.metrics.Handler()).Methods(http.MethodGet)

	for _, dir := range []string{"teams", "drivers"} {
		prefix := "/" + dir + "/"
		fs := http.FileServer(http.Dir(filepath.Join(a.cfg.AssetsDir, dir)))
		r.PathPrefix(prefix).Handler(http.StripPrefix(prefix, fs))
	}

	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{a.log}))(r)
}

type recoveryLogger struct{ log *slog.Logger }

func (l recoveryLogger) Println(args ...interface{}) {
	l.log.Error("💥 handler panic", "panic", fmt.Sprint(args...))
}

// parseSeason returns nil for an empty value.
func (a *App) parseSeason(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return nil, errors.Errorf("invalid season %q", raw)
	}
	if !a.cfg.SupportsSeason(year) {
		return nil, errors.Errorf("unsupported season %d", year)
	}
	return &year, nil
}

func (a *App) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	season, err := a.parseSeason(q.Get("season"))
	if err != nil {
		a.log.Warn("bad season", "season", q.Get("season"), "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := ""
	if season != nil {
		key = strconv.Itoa(*season)
		// Anything but our own loading refresh is the user picking the season
		// again, which is the only thing that clears a failed fetch.
		if q.Get("poll") == "" {
			a.seasons.Reset(key)
		}
	}

	state := a.seasons.Use(key)
	if state.IsLoading && a.cfg.RenderWait > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), a.cfg.RenderWait)
		a.seasons.Get(ctx, key)
		cancel()
		state = a.seasons.Use(key)
	}

	dash := ResolveDashboard(season, state, DashboardQuery{
		DriverCode:  q.Get("driver"),
		SessionName: q.Get("session"),
		Sort:        ParseSortOrder(q.Get("sort")),
	})

	status := http.StatusOK
	if dash.Phase == SeasonError {
		status = http.StatusBadGateway
		a.log.Error("❌ season fetch failed", "season", dash.Season, "err", dash.Err)
	}

	page := a.dashboardPage(dash)
	templ.Handler(templates.Dashboard(page), templ.WithStatus(status)).ServeHTTP(w, r)
}

func dashboardURL(season int, driver, session string, order SortOrder, poll bool) string {
	v := url.Values{}
	v.Set("season", strconv.Itoa(season))
	if driver != "" {
		v.Set("driver", driver)
	}
	if session != "" {
		v.Set("session", session)
	}
	if order != "" && order != SortByRank {
		v.Set("sort", string(order))
	}
	if poll {
		v.Set("poll", "1")
	}
	return "/?" + v.Encode()
}

func (a *App) dashboardPage(d Dashboard) templates.DashboardPage {
	page := templates.DashboardPage{Phase: d.Phase.String(), Season: d.Season}

	for _, year := range a.cfg.Seasons {
		page.Seasons = append(page.Seasons, templates.SeasonLink{
			Year:   year,
			Href:   dashboardURL(year, "", "", d.Sort, false),
			Active: d.Phase != NoSeason && year == d.Season,
		})
	}

	selectedCode := ""
	if d.Selection.Driver != nil {
		selectedCode = d.Selection.Driver.DriverCode
	}

	switch d.Phase {
	case SeasonLoading:
		page.RefreshURL = dashboardURL(d.Season, d.Query.DriverCode, d.Query.SessionName, d.Sort, true)
	case SeasonLoaded:
		for _, order := range []SortOrder{SortByRank, SortByDelta, SortByName} {
			page.SortLinks = append(page.SortLinks, templates.SortLink{
				Label:  strings.ToUpper(string(order)),
				Href:   dashboardURL(d.Season, selectedCode, d.Selection.SessionName, order, false),
				Active: order == d.Sort,
			})
		}
		for _, drv := range d.Standings {
			page.Standings = append(page.Standings, templates.DriverRow{
				Rank:      drv.Rank,
				Number:    drv.DriverNumber,
				Code:      drv.DriverCode,
				FullName:  drv.FullName,
				TeamName:  drv.TeamName,
				TeamColor: LookupTeam(drv.TeamName).Color,
				Delta:     FormatDelta(drv.AverageWetToDryDelta),
				Href:      dashboardURL(d.Season, drv.DriverCode, "", d.Sort, false),
				Selected:  drv.DriverCode == selectedCode,
			})
		}
		page.Panel = driverPanel(d)
	}
	return page
}

func driverPanel(d Dashboard) *templates.DriverPanel {
	drv := d.Selection.Driver
	if drv == nil {
		return nil
	}
	p := &templates.DriverPanel{
		Season:       d.Season,
		Code:         drv.DriverCode,
		Sort:         string(d.Sort),
		Number:       drv.DriverNumber,
		FullName:     drv.FullName,
		TeamName:     drv.TeamName,
		TeamColor:    LookupTeam(drv.TeamName).Color,
		TeamImage:    TeamAssetPath(drv.TeamName),
		DriverImage:  DriverAssetPath(drv.FullName),
		SessionCount: len(drv.Sessions),
		CareerHref:   "/driver/" + url.PathEscape(drv.DriverCode),
	}
	for _, s := range drv.Sessions {
		p.Sessions = append(p.Sessions, templates.SessionOption{
			Name:     s.SessionName,
			Selected: s.SessionName == d.Selection.SessionName,
		})
	}
	if s, ok := d.Selection.Session(); ok {
		p.Detail = &templates.SessionDetail{
			Name:      s.SessionName,
			Baseline:  s.DryBaselineSessionName,
			DryMedian: FormatLapTime(s.DryLapTimeMedian),
			WetMedian: FormatLapTime(s.WetLapTimeMedian),
			DryLaps:   s.DryLapsAnalyzedCount,
			WetLaps:   s.WetLapsAnalyzedCount,
			Compound:  CompoundLabel(s.WetCompoundUsed),
			Delta:     FormatDelta(s.DeltaPercentage),
		}
	}
	if b, ok := BestSession(drv.Sessions); ok {
		p.Best = &templates.BestSession{
			Name:      b.SessionName,
			Delta:     FormatDelta(b.DeltaPercentage),
			DryMedian: FormatLapTime(b.DryLapTimeMedian),
			WetMedian: FormatLapTime(b.WetLapTimeMedian),
			Compound:  CompoundLabel(b.WetCompoundUsed),
		}
	}
	return p
}

func (a *App) careerHandler(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["code"]))
	if code == "" {
		http.Error(w, "driver code required", http.StatusBadRequest)
		return
	}

	a.careers.Reset(code)
	stats, err := a.careers.Get(r.Context(), code)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			a.log.Error("❌ career fetch failed", "driver", code, "status", se.StatusCode, "err", err)
		} else {
			a.log.Error("❌ career fetch failed", "driver", code, "err", err)
		}
		page := templates.CareerPage{Code: code, Failed: true}
		templ.Handler(templates.Career(page), templ.WithStatus(http.StatusBadGateway)).ServeHTTP(w, r)
		return
	}

	templ.Handler(templates.Career(a.careerPage(stats))).ServeHTTP(w, r)
}

func (a *App) careerPage(stats DriverCareerStats) templates.CareerPage {
	page := templates.CareerPage{Code: stats.DriverCode, FullName: stats.FullName}

	years := make([]int, 0, len(stats.Seasons))
	for y := range stats.Seasons {
		years = append(years, y)
	}
	sort.Ints(years)

	for _, y := range years {
		perf := stats.Seasons[y]
		team, ok := stats.TeamHistory[y]
		if !ok || team == "" {
			team = perf.TeamName
		}
		row := templates.CareerRow{
			Season:      y,
			Team:        team,
			TeamColor:   LookupTeam(team).Color,
			Rank:        perf.Rank,
			Delta:       FormatDelta(perf.AverageWetToDryDelta),
			Sessions:    len(perf.Sessions),
			BestSession: "-",
		}
		if b, ok := BestSession(perf.Sessions); ok {
			row.BestSession = fmt.Sprintf("%s (%s)", b.SessionName, FormatDelta(b.DeltaPercentage))
		}
		if a.cfg.SupportsSeason(y) {
			row.Href = dashboardURL(y, stats.DriverCode, "", SortByRank, false)
		}
		page.Rows = append(page.Rows, row)
	}
	return page
}

func (a *App) standingsTextHandler(w http.ResponseWriter, r *http.Request) {
	season, err := a.parseSeason(mux.Vars(r)["year"])
	if err != nil || season == nil {
		http.Error(w, "invalid season", http.StatusBadRequest)
		return
	}
	key := strconv.Itoa(*season)

	a.seasons.Reset(key)
	resp, err := a.seasons.Get(r.Context(), key)
	if err != nil {
		a.log.Error("❌ season fetch failed", "season", *season, "err", err)
		http.Error(w, "Failed to load data.", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	renderStandingsTable(w, resp, ParseSortOrder(r.URL.Query().Get("sort")))
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"status": "ok", "ts": time.Now().UTC()})
}
