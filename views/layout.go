// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package views renders the site's pages and fragments.

Fragments are built as gomponents nodes. Pages are exposed as templ
components so handlers can render them with Render(ctx, w) and so they can be
composed with other templ components.
*/
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,stylecheck // element builders read better unqualified

	"github.com/pypeclub/openpype-website/core/baseurl"
	"github.com/pypeclub/openpype-website/core/site"
)

// LogoPath is the site-relative path of the OpenPype logo.
const LogoPath = "/img/logos/openpype_color.svg"

// PageConfig holds the props the layout needs to supply page chrome.
type PageConfig struct {
	Title       string
	Description string
	Site        site.Config

	// CurrentPath is the site-relative path of the page, used for the
	// canonical link. Defaults to "/".
	CurrentPath string
}

// Component adapts a gomponents node to a templ.Component.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Layout wraps children with the document head, navigation bar and footer.
func Layout(cfg PageConfig, children ...g.Node) g.Node {
	base := baseurl.Normalize(cfg.Site.BaseURL)

	currentPath := cfg.CurrentPath
	if currentPath == "" {
		currentPath = "/"
	}

	return Doctype(
		HTML(
			g.If(cfg.Site.Locale != "", Lang(cfg.Site.Locale)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(cfg.Title)),
				Meta(Name("description"), Content(cfg.Description)),
				Meta(g.Attr("property", "og:title"), Content(cfg.Title)),
				Meta(g.Attr("property", "og:description"), Content(cfg.Description)),
				g.If(cfg.Site.URL != "",
					Link(Rel("canonical"), Href(baseurl.Absolute(cfg.Site.URL, base, currentPath))),
				),
				Link(Rel("icon"), Href(baseurl.Resolve(base, "/img/favicon.svg")), Type("image/svg+xml")),
				Link(Rel("manifest"), Href(baseurl.Resolve(base, "/manifest.json"))),
				Link(Rel("stylesheet"), Href(baseurl.Resolve(base, "/css/custom.css"))),
			),
			Body(
				navbar(cfg.Site, base),
				g.Group(children),
				footer(base),
			),
		),
	)
}

func navbar(cfg site.Config, base string) g.Node {
	return Nav(Class("navbar navbar--fixed-top"),
		Div(Class("navbar__inner"),
			Div(Class("navbar__items"),
				A(Class("navbar__brand"), Href(base),
					Img(Class("navbar__logo"), Src(baseurl.Resolve(base, LogoPath)), Alt(cfg.Title)),
					Strong(Class("navbar__title"), g.Text(cfg.Title)),
				),
				A(Class("navbar__item navbar__link"), Href(baseurl.Resolve(base, "features")), g.Text("Features")),
				A(Class("navbar__item navbar__link"), Href(baseurl.Resolve(base, "docs/artist_getting_started")), g.Text("User Docs")),
				A(Class("navbar__item navbar__link"), Href(baseurl.Resolve(base, "docs/system_introduction")), g.Text("Admin Docs")),
			),
			Div(Class("navbar__items navbar__items--right"),
				A(Class("navbar__item navbar__link"), Href(contributeURL), g.Text("GitHub")),
			),
		),
	)
}

func footer(base string) g.Node {
	return Footer(Class("footer footer--dark"),
		Div(Class("container"),
			Div(Class("row footer__links"),
				Div(Class("col footer__col"),
					H4(Class("footer__title"), g.Text("Docs")),
					Ul(Class("footer__items"),
						Li(Class("footer__item"), A(Class("footer__link-item"), Href(baseurl.Resolve(base, "features")), g.Text("Features"))),
						Li(Class("footer__item"), A(Class("footer__link-item"), Href(baseurl.Resolve(base, "docs/artist_getting_started")), g.Text("User Docs"))),
					),
				),
				Div(Class("col footer__col"),
					H4(Class("footer__title"), g.Text("Community")),
					Ul(Class("footer__items"),
						Li(Class("footer__item"), A(Class("footer__link-item"), Href(chatURL), g.Text("Discord"))),
						Li(Class("footer__item"), A(Class("footer__link-item"), Href(contributeURL), g.Text("GitHub"))),
					),
				),
			),
			Div(Class("footer__bottom text--center"),
				Div(Class("footer__copyright"), g.Text("Copyright © pype.club")),
			),
		),
	)
}
