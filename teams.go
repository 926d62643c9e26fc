package main

import (
	"strings"
	"unicode"
)

// TeamID is a team name reduced to a stable key: lower case, with runs of
// spaces, underscores and hyphens collapsed to a single hyphen.
type TeamID string

func TeamIDFromName(name string) TeamID {
	var b strings.Builder
	sep := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsSpace(r) || r == '_' || r == '-':
			sep = true
		default:
			if sep && b.Len() > 0 {
				b.WriteByte('-')
			}
			sep = false
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return TeamID(b.String())
}

type TeamStyle struct {
	ID    TeamID
	Color string
}

const fallbackTeamColor = "#4b5563"

var teamStyles = map[TeamID]TeamStyle{
	"mercedes":        {ID: "mercedes", Color: "#27F4D2"},
	"red-bull-racing": {ID: "red-bull-racing", Color: "#3671C6"},
	"ferrari":         {ID: "ferrari", Color: "#E8002D"},
	"mclaren":         {ID: "mclaren", Color: "#FF8000"},
	"aston-martin":    {ID: "aston-martin", Color: "#229971"},
	"alpine":          {ID: "alpine", Color: "#0093CC"},
	"williams":        {ID: "williams", Color: "#64C4FF"},
	"racing-bulls":    {ID: "racing-bulls", Color: "#6692FF"},
	"kick-sauber":     {ID: "kick-sauber", Color: "#52E252"},
	"haas-f1-team":    {ID: "haas-f1-team", Color: "#B6BABD"},
	"alphatauri":      {ID: "alphatauri", Color: "#5E8FAA"},
	"alfa-romeo":      {ID: "alfa-romeo", Color: "#C92D4B"},
}

// Upstream spellings that name a team already in teamStyles.
var teamAliases = map[TeamID]TeamID{
	"red-bull":                  "red-bull-racing",
	"oracle-red-bull-racing":    "red-bull-racing",
	"mercedes-amg-petronas":     "mercedes",
	"scuderia-ferrari":          "ferrari",
	"alpine-f1-team":            "alpine",
	"aston-martin-aramco":       "aston-martin",
	"haas":                      "haas-f1-team",
	"rb":                        "racing-bulls",
	"visa-cash-app-rb":          "racing-bulls",
	"sauber":                    "kick-sauber",
	"stake-f1-team-kick-sauber": "kick-sauber",
	"alfa-romeo-racing":         "alfa-romeo",
	"scuderia-alphatauri":       "alphatauri",
	"alphatauri-honda":          "alphatauri",
	"williams-racing":           "williams",
	"mclaren-f1-team":           "mclaren",
	"aston-martin-cognizant-f1": "aston-martin",
}

// LookupTeam resolves a team name to its style. Unknown teams get a
// neutral colour and keep their normalized ID.
func LookupTeam(name string) TeamStyle {
	id := TeamIDFromName(name)
	if alias, ok := teamAliases[id]; ok {
		id = alias
	}
	if style, ok := teamStyles[id]; ok {
		return style
	}
	return TeamStyle{ID: id, Color: fallbackTeamColor}
}

func TeamAssetPath(teamName string) string {
	return "/teams/" + strings.ReplaceAll(teamName, " ", "-") + ".webp"
}

func DriverAssetPath(fullName string) string {
	return "/drivers/" + strings.ReplaceAll(fullName, " ", "-") + ".webp"
}
