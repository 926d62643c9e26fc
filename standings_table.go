package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderStandingsTable writes the season standings as a plain-text table.
func renderStandingsTable(w io.Writer, resp SeasonAnalysisResponse, order SortOrder) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(fmt.Sprintf("%d Wet Performance Standing", resp.Season))
	t.AppendHeader(table.Row{"POS", "NO", "CODE", "DRIVER", "TEAM", "DELTA", "SESSIONS", "BEST"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	for _, d := range SortedStandings(resp.Standings, order) {
		best := "-"
		if s, ok := BestSession(d.Sessions); ok {
			best = fmt.Sprintf("%s (%s)", s.SessionName, FormatDelta(s.DeltaPercentage))
		}
		t.AppendRow(table.Row{
			d.Rank,
			d.DriverNumber,
			d.DriverCode,
			d.FullName,
			d.TeamName,
			FormatDelta(d.AverageWetToDryDelta),
			len(d.Sessions),
			best,
		})
	}
	if len(resp.Standings) == 0 {
		t.AppendFooter(table.Row{"", "", "", "no drivers analyzed"})
	}
	t.Render()
}
