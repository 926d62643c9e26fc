package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestUpstreamGetSeason(t *testing.T) {
	api := newStubAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	up := NewUpstream(srv.URL+"/", time.Second, discardLogger())
	resp, err := up.GetSeason(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Season != 2023 || len(resp.Standings) != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	ham := resp.Standings[1]
	if ham.DriverCode != "HAM" || len(ham.Sessions) != ham.SessionsAnalyzed {
		t.Fatalf("unexpected driver: %+v", ham)
	}
	if ham.Sessions[0].WetCompoundUsed != "" {
		t.Fatalf("absent compound should decode empty, got %q", ham.Sessions[0].WetCompoundUsed)
	}
	if api.count("/api/season/2023") != 1 {
		t.Fatalf("expected one request to /api/season/2023, got %v", api.calls)
	}
}

func TestUpstreamNonOKIsStatusError(t *testing.T) {
	api := newStubAPI()
	api.fail(2023, http.StatusInternalServerError)
	srv := httptest.NewServer(api)
	defer srv.Close()

	up := NewUpstream(srv.URL, time.Second, discardLogger())
	_, err := up.GetSeason(context.Background(), 2023)
	if err == nil {
		t.Fatalf("expected error")
	}
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 StatusError, got %v", err)
	}

	if _, err := up.GetSeason(context.Background(), 2019); !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 StatusError, got %v", err)
	}
}

func TestUpstreamTransportAndDecodeFailures(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer bad.Close()

	up := NewUpstream(bad.URL, time.Second, discardLogger())
	if _, err := up.GetSeason(context.Background(), 2023); err == nil {
		t.Fatalf("expected decode error")
	}

	closed := httptest.NewServer(http.NotFoundHandler())
	url := closed.URL
	closed.Close()
	up = NewUpstream(url, time.Second, discardLogger())
	if _, err := up.GetSeason(context.Background(), 2023); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestUpstreamGetDriverCareer(t *testing.T) {
	api := newStubAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	up := NewUpstream(srv.URL, time.Second, discardLogger())
	stats, err := up.GetDriverCareer(context.Background(), "HAM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.FullName != "Lewis Hamilton" || len(stats.Seasons) != 2 || stats.TeamHistory[2023] != "Mercedes" {
		t.Fatalf("unexpected career: %+v", stats)
	}
	if stats.Seasons[2019].Rank != 4 {
		t.Fatalf("season keys not decoded: %+v", stats.Seasons)
	}
	if api.count("/api/season/driver/HAM") != 1 {
		t.Fatalf("unexpected calls: %v", api.calls)
	}
}
