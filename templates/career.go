package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
)

func Career(p CareerPage) templ.Component {
	title := p.Code + " Career"
	if p.FullName != "" {
		title = p.FullName + " Career"
	}
	body := component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="flex flex-col gap-5 px-15 py-4 w-full max-w-5xl">`)
		if p.Failed {
			h.raw(`<p class="mt-10 text-center text-red-400">Error: Failed to load data.</p></div>`)
			return
		}
		h.raw(`<h1 class="text-2xl font-bold">`)
		h.text(title)
		h.raw(`</h1>`)
		if len(p.Rows) == 0 {
			h.raw(`<p class="text-gray-500">No analyzed seasons.</p></div>`)
			return
		}
		h.raw(`<table class="w-full text-left bg-black border border-gray-800 rounded-md">`,
			`<thead class="text-gray-400"><tr><th class="p-2">SEASON</th><th class="p-2">TEAM</th><th class="p-2">POS</th>`,
			`<th class="p-2">DELTA</th><th class="p-2">SESSIONS</th><th class="p-2">BEST SESSION</th></tr></thead><tbody>`)
		for _, r := range p.Rows {
			h.raw(`<tr class="border-t border-gray-800"><td class="p-2">`)
			if r.Href != "" {
				h.raw(`<a class="underline"`)
				h.attr("href", r.Href)
				h.raw(`>`, strconv.Itoa(r.Season), `</a>`)
			} else {
				h.raw(strconv.Itoa(r.Season))
			}
			h.raw(`</td><td class="p-2"><span class="inline-block w-3 h-3 rounded-full mr-2"`)
			h.attr("style", "background: "+r.TeamColor)
			h.raw(`></span>`)
			h.text(r.Team)
			h.raw(`</td><td class="p-2">`, strconv.Itoa(r.Rank), `</td><td class="p-2">`)
			h.text(r.Delta)
			h.raw(`</td><td class="p-2">`, strconv.Itoa(r.Sessions), `</td><td class="p-2">`)
			h.text(r.BestSession)
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></div>`)
	})
	return Layout(title, "", body)
}
