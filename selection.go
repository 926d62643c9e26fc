package main

import (
	"sort"
	"strings"
)

type Phase int

const (
	NoSeason Phase = iota
	SeasonLoading
	SeasonLoaded
	SeasonError
)

func (p Phase) String() string {
	switch p {
	case SeasonLoading:
		return "loading"
	case SeasonLoaded:
		return "loaded"
	case SeasonError:
		return "error"
	default:
		return "no-season"
	}
}

type SortOrder string

const (
	SortByRank  SortOrder = "rank"
	SortByDelta SortOrder = "delta"
	SortByName  SortOrder = "name"
)

func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortByDelta:
		return SortByDelta
	case SortByName:
		return SortByName
	default:
		return SortByRank
	}
}

// Selection is the driver shown in the detail panel and the session picked
// in its dropdown. An empty SessionName means no session is selected.
type Selection struct {
	Driver      *DriverSeasonPerformance
	SessionName string
}

// DeriveInitialSelection returns the rank 1 driver, or nil when the
// standings have none.
func DeriveInitialSelection(standings []DriverSeasonPerformance) *DriverSeasonPerformance {
	for i := range standings {
		if standings[i].Rank == 1 {
			return &standings[i]
		}
	}
	return nil
}

// SelectDriver picks driver and resets the session to its first entry.
func SelectDriver(driver *DriverSeasonPerformance) Selection {
	sel := Selection{Driver: driver}
	if driver != nil && len(driver.Sessions) > 0 {
		sel.SessionName = driver.Sessions[0].SessionName
	}
	return sel
}

// WithSession changes the selected session name, keeping the driver.
func (s Selection) WithSession(name string) Selection {
	if s.Driver == nil {
		return s
	}
	s.SessionName = name
	return s
}

// Session returns the first session of the selected driver named SessionName.
func (s Selection) Session() (SessionAnalysisDetail, bool) {
	if s.Driver == nil || s.SessionName == "" {
		return SessionAnalysisDetail{}, false
	}
	for _, sess := range s.Driver.Sessions {
		if sess.SessionName == s.SessionName {
			return sess, true
		}
	}
	return SessionAnalysisDetail{}, false
}

// BestSession returns the session with the smallest delta percentage.
// Ties go to the earliest session. An empty list has no best session.
func BestSession(sessions []SessionAnalysisDetail) (SessionAnalysisDetail, bool) {
	if len(sessions) == 0 {
		return SessionAnalysisDetail{}, false
	}
	best := sessions[0]
	for _, s := range sessions[1:] {
		if s.DeltaPercentage < best.DeltaPercentage {
			best = s
		}
	}
	return best, true
}

func findDriver(standings []DriverSeasonPerformance, code string) *DriverSeasonPerformance {
	for i := range standings {
		if strings.EqualFold(standings[i].DriverCode, code) {
			return &standings[i]
		}
	}
	return nil
}

// SortedStandings returns a reordered copy; the response is left untouched.
func SortedStandings(standings []DriverSeasonPerformance, order SortOrder) []DriverSeasonPerformance {
	out := make([]DriverSeasonPerformance, len(standings))
	copy(out, standings)

	var less func(a, b DriverSeasonPerformance) bool
	switch order {
	case SortByDelta:
		less = func(a, b DriverSeasonPerformance) bool {
			if a.AverageWetToDryDelta != b.AverageWetToDryDelta {
				return a.AverageWetToDryDelta < b.AverageWetToDryDelta
			}
			return a.Rank < b.Rank
		}
	case SortByName:
		less = func(a, b DriverSeasonPerformance) bool {
			an, bn := strings.ToLower(a.FullName), strings.ToLower(b.FullName)
			if an != bn {
				return an < bn
			}
			return a.Rank < b.Rank
		}
	default:
		less = func(a, b DriverSeasonPerformance) bool { return a.Rank < b.Rank }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

type DashboardQuery struct {
	DriverCode  string
	SessionName string
	Sort        SortOrder
}

type Dashboard struct {
	Phase     Phase
	Season    int
	Response  *SeasonAnalysisResponse
	Standings []DriverSeasonPerformance // display order
	Selection Selection
	Sort      SortOrder
	Query     DashboardQuery
	Err       error
}

// ResolveDashboard derives everything the dashboard renders from the
// selected season, its fetch snapshot and the user's query.
func ResolveDashboard(season *int, state FetchState[SeasonAnalysisResponse], q DashboardQuery) Dashboard {
	d := Dashboard{Sort: q.Sort, Query: q}
	if d.Sort == "" {
		d.Sort = SortByRank
	}
	if season == nil {
		d.Phase = NoSeason
		return d
	}
	d.Season = *season

	switch {
	case state.Err != nil:
		d.Phase = SeasonError
		d.Err = state.Err
		return d
	case state.Data == nil:
		d.Phase = SeasonLoading
		return d
	}

	d.Phase = SeasonLoaded
	d.Response = state.Data
	d.Standings = SortedStandings(state.Data.Standings, d.Sort)

	var driver *DriverSeasonPerformance
	if q.DriverCode != "" {
		driver = findDriver(state.Data.Standings, q.DriverCode)
	} else {
		driver = DeriveInitialSelection(state.Data.Standings)
	}
	d.Selection = SelectDriver(driver)
	if q.SessionName != "" {
		d.Selection = d.Selection.WithSession(q.SessionName)
	}
	return d
}
