// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,stylecheck

	"github.com/pypeclub/openpype-website/core/baseurl"
	"github.com/pypeclub/openpype-website/core/site"
)

// Service renders one feature blurb as a heading followed by a paragraph.
func Service(entry site.ServiceEntry) g.Node {
	return Div(Class("col col--3 feature"),
		H3(g.Text(entry.Title)),
		P(g.Text(entry.Description)),
	)
}

// Client renders a studio logo linking to the studio's site.
//
// InfoLink and Image are used verbatim.
func Client(entry site.PartnerEntry) g.Node {
	return partner("client", entry)
}

// Collaborator renders a contributor logo linking to the contributor's site.
//
// InfoLink and Image are used verbatim.
func Collaborator(entry site.PartnerEntry) g.Node {
	return partner("collab", entry)
}

// Maintainer renders the logo of a team maintaining the product.
func Maintainer(entry site.PartnerEntry) g.Node {
	return partner("pype_logo", entry)
}

func partner(class string, entry site.PartnerEntry) g.Node {
	return A(Class(class), Href(entry.InfoLink),
		Img(Src(entry.Image), Alt(""), Title(entry.Title)),
	)
}

// IntegrationTile renders one showcase tile with its caption.
//
// Tiles with an anchor link to the matching section of the features page,
// resolved against base. Tiles without one get an empty href.
func IntegrationTile(base string, integration site.Integration) g.Node {
	href := ""
	if integration.Anchor != "" {
		href = baseurl.Resolve(base, "features#"+integration.Anchor)
	}

	return A(Class("link"), Href(href),
		Img(Src(integration.Image), Alt(""), Title("")),
		Span(Class("caption"), g.Text(integration.Name)),
	)
}

// badge is a status image shown at the bottom of the homepage.
type badge struct {
	alt   string
	image string
	link  string
}

var badges = []badge{
	{alt: "License", image: "https://img.shields.io/github/license/pypeclub/pype", link: contributeURL},
	{alt: "Release", image: "https://img.shields.io/github/v/release/pypeclub/pype", link: contributeURL + "/releases"},
	{alt: "Contributors", image: "https://img.shields.io/github/contributors/pypeclub/pype", link: contributeURL + "/graphs/contributors"},
	{alt: "Last commit", image: "https://img.shields.io/github/last-commit/pypeclub/pype/develop", link: contributeURL + "/commits/develop"},
}

// BadgesSection renders the project status badges.
func BadgesSection() g.Node {
	return Div(Class("badges"),
		g.Map(badges, func(b badge) g.Node {
			return A(Class("badge"), Href(b.link),
				Img(Src(b.image), Alt(b.alt)),
			)
		}),
	)
}
