package templates

import (
	"context"

	"github.com/a-h/templ"
)

// Layout wraps body in the page shell. A non-empty refreshURL makes the
// browser reload that URL after a second.
func Layout(title, refreshURL string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!doctype html><html lang="en"><head><meta charset="UTF-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		if refreshURL != "" {
			h.raw(`<meta http-equiv="refresh"`)
			h.attr("content", "1; url="+refreshURL)
			h.raw(`>`)
		}
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><script src="https://cdn.tailwindcss.com"></script></head>`,
			`<body class="bg-[#0b0c10] text-gray-100 font-sans"><div class="flex flex-col min-h-screen">`,
			`<header class="flex flex-col px-15 py-10 justify-center gap-8">`,
			`<h1 class="text-3xl font-extrabold text-center"><a href="/">Rain Performance Leaderboard</a></h1></header>`,
			`<main class="flex justify-center w-full">`)
		h.render(ctx, body)
		h.raw(`</main></div></body></html>`)
	})
}
