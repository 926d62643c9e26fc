package templates

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
)

func Dashboard(p DashboardPage) templ.Component {
	title := "Rain Performance Leaderboard"
	if p.Season > 0 {
		title = fmt.Sprintf("%d Wet Performance Standing", p.Season)
	}
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="flex flex-col w-full gap-5">`)
		h.render(ctx, SeasonPicker(p.Seasons))
		switch p.Phase {
		case "loading":
			h.raw(`<p class="mt-10 text-center animate-pulse">Loading `, strconv.Itoa(p.Season), ` Standings...</p>`)
		case "error":
			h.raw(`<p class="mt-10 text-center text-red-400">Error: Failed to load data.</p>`)
		case "loaded":
			h.raw(`<div class="grid grid-cols-5 gap-10 px-15 py-4"><div class="col-span-2">`)
			h.render(ctx, StandingsList(p.Season, p.Standings, p.SortLinks))
			h.raw(`</div><div class="col-span-3">`)
			h.render(ctx, DriverDetail(p.Panel))
			h.raw(`</div></div>`)
		}
		h.raw(`</div>`)
	})
	return Layout(title, p.RefreshURL, body)
}

func SeasonPicker(seasons []SeasonLink) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<nav class="w-screen flex justify-center"><ul class="flex gap-10">`)
		for _, s := range seasons {
			class := "px-6 py-3 border border-[#0048b7] bg-black cursor-pointer rounded-s hover:bg-blue-900"
			if s.Active {
				class += " bg-blue-900"
			}
			h.raw(`<li`)
			h.attr("class", class)
			h.raw(`><a`)
			h.attr("href", s.Href)
			h.raw(`>`, strconv.Itoa(s.Year), `</a></li>`)
		}
		h.raw(`</ul></nav>`)
	})
}

func StandingsList(season int, rows []DriverRow, sorts []SortLink) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1 class="text-xl font-bold">`, strconv.Itoa(season), ` Wet Performance Standing</h1>`)
		if len(sorts) > 0 {
			h.raw(`<div class="flex gap-3 mt-2 text-sm text-gray-400"><span>Sort:</span>`)
			for _, s := range sorts {
				class := "hover:text-white"
				if s.Active {
					class = "text-white font-bold"
				}
				h.raw(`<a`)
				h.attr("class", class)
				h.attr("href", s.Href)
				h.raw(`>`)
				h.text(s.Label)
				h.raw(`</a>`)
			}
			h.raw(`</div>`)
		}
		h.raw(`<div class="bg-black border rounded-md border-gray-800 mt-4 p-2">`,
			`<div class="sticky top-0 py-2 px-4 text-gray-400"><div class="grid grid-cols-12 gap-2 items-center">`,
			`<div class="col-span-2">POS</div><div class="col-span-5">DRIVER</div><div class="col-span-3">DELTA</div><div class="col-span-2"></div>`,
			`</div></div><div class="max-h-[600px] overflow-y-auto">`)
		for _, d := range rows {
			class := "block py-2 px-4 hover:bg-gray-800 cursor-pointer"
			style := ""
			if d.Selected {
				class += " bg-gray-700 border-l-4"
				style = "border-left-color: " + d.TeamColor
			}
			h.raw(`<a`)
			h.attr("class", class)
			h.attr("href", d.Href)
			if style != "" {
				h.attr("style", style)
			}
			h.attr("data-driver", d.Code)
			h.raw(`><div class="grid grid-cols-12 gap-2 items-center">`,
				`<div class="col-span-2 text-xl font-bold">`, strconv.Itoa(d.Rank), `</div>`,
				`<div class="col-span-1"><div class="flex items-center h-8 w-8 text-xl rounded-full justify-center font-bold"`)
			h.attr("style", "background: "+d.TeamColor)
			h.raw(`>`, strconv.Itoa(d.Number), `</div></div>`,
				`<div class="col-span-4 flex flex-col"><div class="text-lg font-bold">`)
			h.text(d.FullName)
			h.raw(`</div><div class="text-xs text-gray-500">`)
			h.text(d.TeamName)
			h.raw(`</div></div><div class="col-span-3">`)
			h.text(d.Delta)
			h.raw(`</div></div></a>`)
		}
		h.raw(`</div></div>`)
	})
}

// DriverDetail renders the selected driver, or a prompt when there is none.
func DriverDetail(p *DriverPanel) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		if p == nil {
			h.raw(`<p class="text-gray-500">Select a driver to view details.</p>`)
			return
		}
		h.raw(`<section class="bg-black overflow-visible mt-20 border-b-8"`)
		h.attr("style", "border-color: "+p.TeamColor)
		h.raw(`><div class="flex bg-black z-10"><div class="flex flex-3 items-center pl-4 gap-2"`)
		h.attr("style", "background: "+p.TeamColor)
		h.raw(`><img width="100" height="100"`)
		h.attr("src", p.TeamImage)
		h.attr("alt", p.TeamName)
		h.raw(`><div class="flex flex-col justify-center"><h1 class="font-extrabold text-2xl break-words">`)
		h.text(p.FullName)
		h.raw(`</h1><h2 class="text-gray-300 font-extrabold">`)
		h.text(p.TeamName)
		h.raw(`</h2></div></div><div class="flex-1 flex items-center"`)
		h.attr("style", "background: "+p.TeamColor)
		h.raw(`><span class="text-9xl font-black">`, strconv.Itoa(p.Number), `</span></div>`,
			`<div class="flex-2 relative"><img width="250" height="250"`)
		h.attr("src", p.DriverImage)
		h.attr("alt", p.FullName)
		h.raw(`></div></div>`)

		h.raw(`<div class="flex flex-col gap-8 mt-2 p-4"><div class="-mb-7 bg-gray-700 max-w-max px-2">`,
			`<p class="font-bold">Session Name (`, strconv.Itoa(p.SessionCount), `):</p></div>`)
		h.render(ctx, sessionPicker(p))
		if p.Detail != nil {
			h.raw(`<div class="flex flex-col gap-10">`)
			h.render(ctx, sessionPace(p.Detail))
			h.raw(`<div class="px-2">`)
			h.render(ctx, BestSessionShowcase(p.Best))
			h.raw(`</div></div>`)
		}
		h.raw(`<div class="-mt-2 flex justify-center"><a class="p-2 font-bold rounded-sm hover:brightness-75"`)
		h.attr("style", "background: "+p.TeamColor)
		h.attr("href", p.CareerHref)
		h.raw(`>View Career Stats</a></div></div></section>`)
	})
}

func sessionPicker(p *DriverPanel) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<form method="get" action="/" class="bg-[#15161e] w-full">`)
		h.raw(`<input type="hidden" name="season"`)
		h.attr("value", strconv.Itoa(p.Season))
		h.raw(`><input type="hidden" name="driver"`)
		h.attr("value", p.Code)
		h.raw(`><input type="hidden" name="sort"`)
		h.attr("value", p.Sort)
		h.raw(`><select name="session" class="w-full p-2 bg-gray-900" onchange="this.form.submit()">`)
		for _, s := range p.Sessions {
			h.raw(`<option`)
			h.attr("value", s.Name)
			if s.Selected {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(s.Name)
			h.raw(`</option>`)
		}
		h.raw(`</select><noscript><button type="submit" class="p-2">Show</button></noscript></form>`)
	})
}

func sessionPace(d *SessionDetail) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="flex gap-10">`,
			`<div class="flex flex-1 flex-col justify-center bg-gray-900/50 ml-2 py-10 px-2 gap-5 relative">`,
			`<div class="max-w-max bg-gray-700 px-2 py-1 absolute top-0 -left-2 -mt-3"><p class="font-bold text-gray-200">Dry Pace</p></div>`,
			`<p class="text-4xl text-gray-200">`)
		h.text(d.DryMedian)
		h.raw(`</p><p class="text-sm text-gray-400">Baseline: `)
		h.text(d.Baseline)
		h.raw(` (`, strconv.Itoa(d.DryLaps), ` laps)</p></div>`,
			`<div class="flex flex-1 flex-col bg-gray-900/50 gap-5 py-10 px-2 relative">`,
			`<div class="max-w-max bg-gray-700 px-2 py-1 absolute top-0 -left-2 -mt-3"><p class="font-bold text-gray-200">Wet Pace</p></div>`,
			`<div class="flex justify-between"><p class="text-4xl text-gray-200">`)
		h.text(d.WetMedian)
		h.raw(`</p><p class="text-red-400 self-center text-xl font-extrabold" data-delta>`)
		h.text(d.Delta)
		h.raw(`</p></div><p class="text-sm text-gray-400">`)
		h.text(d.Compound)
		h.raw(` · `, strconv.Itoa(d.WetLaps), ` laps</p></div></div>`)
	})
}

// BestSessionShowcase renders nothing when b is nil.
func BestSessionShowcase(b *BestSession) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		if b == nil {
			return
		}
		h.raw(`<div class="flex flex-col gap-5 relative bg-gray-900/50 p-4 rounded-md mt-4">`,
			`<div class="max-w-max bg-gray-700 px-2 py-1 absolute top-0 -left-2 -mt-3"><p class="font-bold text-gray-200">Best Wet Performance</p></div>`,
			`<div class="flex flex-col gap-3 mt-3"><div class="flex justify-between items-center"><h2 class="text-lg font-bold">`)
		h.text(b.Name)
		h.raw(`</h2><p class="text-green-400 font-bold text-xl">`)
		h.text(b.Delta)
		h.raw(`</p></div><div class="flex gap-8 text-gray-300">`)
		for _, stat := range [][2]string{
			{"Dry Lap Median", b.DryMedian},
			{"Wet Lap Median", b.WetMedian},
			{"Wet Compound", b.Compound},
		} {
			h.raw(`<div class="flex flex-col"><span class="text-sm text-gray-400">`)
			h.text(stat[0])
			h.raw(`</span><span class="text-2xl font-bold">`)
			h.text(stat[1])
			h.raw(`</span></div>`)
		}
		h.raw(`</div></div></div>`)
	})
}
