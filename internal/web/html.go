package web

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"howitworks/internal/layout"
	"howitworks/internal/steps"
)

// SectionID is the id of the rendered <section> element.
const SectionID = "how-it-works"

// TailwindCDN is loaded by Page.
const TailwindCDN = "https://cdn.tailwindcss.com"

// Options control the HTML rendering.
type Options struct {
	Breakpoint layout.Breakpoint
	// Dark forces the dark variants by adding class="dark" to the page.
	Dark bool
}

func classes(parts ...string) g.Node {
	return h.Class(strings.Join(parts, " "))
}

// Section renders the section element for tree.
func Section(tree layout.Tree, opts Options) g.Node {
	bp := opts.Breakpoint

	return h.Section(
		h.ID(SectionID),
		h.Class("py-16 bg-white dark:bg-gray-900"),
		h.Div(
			h.Class("container mx-auto px-4"),
			header(tree.Header),
			g.If(len(tree.Rows) > 0, timeline(tree, bp)),
		),
	)
}

func header(hb layout.HeaderBlock) g.Node {
	return h.Div(
		h.Class("text-center mb-16"),
		h.H2(
			h.Class("text-3xl font-bold text-gray-900 dark:text-white mb-4"),
			g.Text(hb.Title),
		),
		g.If(hb.Subtitle != "", h.P(
			h.Class("text-lg text-gray-600 dark:text-gray-300 max-w-2xl mx-auto"),
			g.Text(hb.Subtitle),
		)),
	)
}

func timeline(tree layout.Tree, bp layout.Breakpoint) g.Node {
	rows := make([]g.Node, 0, len(tree.Rows))
	for _, row := range tree.Rows {
		rows = append(rows, rowNode(row, bp))
	}

	return h.Div(
		h.Class("relative"),
		g.If(tree.Connector != nil, connector(bp)),
		h.Div(
			h.Class("space-y-12"),
			g.Group(rows),
		),
	)
}

func connector(bp layout.Breakpoint) g.Node {
	return h.Div(
		classes("hidden", bp.Class("block"), "absolute left-1/2 -translate-x-1/2 h-full w-0.5 bg-blue-200 dark:bg-blue-900"),
		g.Attr("aria-hidden", "true"),
	)
}

func rowNode(row layout.Row, bp layout.Breakpoint) g.Node {
	return h.Div(
		classes("relative", bp.Class("flex"), bp.Class("items-center")),
		h.Data("step", row.Card.Number),
		card(row, bp),
		spacer(row.Spacer, bp),
		dot(bp),
	)
}

func card(row layout.Row, bp layout.Breakpoint) g.Node {
	cls := []string{bp.Class("w-1/2")}
	if row.Side == steps.Left {
		cls = append(cls, bp.Class("pr-12"), bp.Class("text-right"))
	} else {
		cls = append(cls, bp.Class("pl-12"), bp.Class("order-2"))
	}

	c := row.Card
	return h.Div(
		classes(cls...),
		h.Div(
			h.Class("bg-gray-50 dark:bg-gray-800 rounded-lg p-6 shadow-sm"),
			h.Span(
				h.Class("text-sm font-semibold text-blue-600 dark:text-blue-400"),
				g.Text(c.Number),
			),
			h.H3(
				h.Class("text-xl font-semibold text-gray-900 dark:text-white mt-2 mb-2"),
				g.Text(c.Title),
			),
			g.If(c.Description != "", h.P(
				h.Class("text-gray-600 dark:text-gray-300"),
				g.Text(c.Description),
			)),
		),
	)
}

func spacer(s layout.Spacer, bp layout.Breakpoint) g.Node {
	cls := []string{"hidden", bp.Class("block"), bp.Class("w-1/2")}
	if s.Side == steps.Left {
		cls = append(cls, bp.Class("order-1"))
	}
	return h.Div(classes(cls...), g.Attr("aria-hidden", "true"))
}

func dot(bp layout.Breakpoint) g.Node {
	return h.Div(
		classes("hidden", bp.Class("flex"), "absolute left-1/2 -translate-x-1/2 w-4 h-4 rounded-full bg-blue-600 dark:bg-blue-400 ring-4 ring-white dark:ring-gray-900 z-10"),
		g.Attr("aria-hidden", "true"),
	)
}

// Page wraps Section in a complete HTML5 document.
func Page(tree layout.Tree, opts Options) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			g.If(opts.Dark, h.Class("dark")),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(tree.Header.Title)),
				h.Script(h.Src(TailwindCDN)),
				h.Script(g.Raw("tailwind.config = { darkMode: 'class' }")),
			),
			h.Body(
				h.Class("bg-white dark:bg-gray-900"),
				Section(tree, opts),
			),
		),
	)
}

// RenderString renders node to a string.
func RenderString(node g.Node) (string, error) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
