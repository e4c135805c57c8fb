// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,stylecheck

	"github.com/pypeclub/openpype-website/core/baseurl"
	"github.com/pypeclub/openpype-website/core/site"
)

// Outbound destinations of the hero buttons.
const (
	contributeURL = "https://github.com/pypeclub/pype"
	contactURL    = "mailto:info@pype.club"
	chatURL       = "https://discord.gg/sFNPWXG"
	supportURL    = "https://pype.club"
)

const (
	homeTitleSuffix = "- pipeline with support"
	homeDescription = "VFX and Animation Pipeline for studios and remote teams <head />"
)

// HeroLink is one outbound button of the hero banner.
type HeroLink struct {
	Label string
	URL   string
}

// HeroLinks lists the hero buttons in display order.
//
// The destinations are fixed and do not depend on the page content.
var HeroLinks = []HeroLink{
	{Label: "Contribute", URL: contributeURL},
	{Label: "Get in touch", URL: contactURL},
	{Label: "Join our chat", URL: chatURL},
	{Label: "Get Support", URL: supportURL},
}

// HomeData is the data used to render the homepage.
type HomeData struct {
	Site    site.Config
	Content site.Content
}

// Home renders the full homepage.
//
// Output depends only on data; rendering the same data twice yields the
// same bytes.
func Home(data HomeData) templ.Component {
	return Component(HomePage(data))
}

// HomePage is Home as a gomponents node.
func HomePage(data HomeData) g.Node {
	base := baseurl.Normalize(data.Site.BaseURL)

	return Layout(
		PageConfig{
			Title:       data.Site.Title + homeTitleSuffix,
			Description: homeDescription,
			Site:        data.Site,
			CurrentPath: "/",
		},
		hero(data.Site, base),
		Main(
			servicesSection(data.Content.Services),
			whatIsSection(base),
			whyChooseSection(base),
			integrationsSection(base, data.Content.Integrations, data.Content.InDevelopment),
			maintainersSection(data.Content.Maintainers),
			collaboratorsSection(data.Content.Collaborators),
			clientsSection(data.Content.Clients),
			Div(Class("container"), BadgesSection()),
		),
	)
}

func hero(cfg site.Config, base string) g.Node {
	return Header(Class("hero hero--primary heroBanner"),
		Div(Class("container"),
			H1(Class("hero__title"),
				Img(Src(baseurl.Resolve(base, LogoPath)), Alt(cfg.Title)),
			),
			H2(Small(Class("hero__subtitle"), g.Text(cfg.Tagline))),
			Div(Class("buttons"),
				g.Map(HeroLinks, func(link HeroLink) g.Node {
					return A(Class("button button--outline button--primary"), Href(link.URL), g.Text(link.Label))
				}),
			),
			P(
				g.Text("OpenPYPE is developed, maintained and supported by "),
				B(A(Href(supportURL), g.Text("PYPE.club"))),
			),
		),
	)
}

func servicesSection(services []site.ServiceEntry) g.Node {
	if len(services) == 0 {
		return nil
	}

	return Section(Class("features center"),
		Div(Class("container"),
			Div(Class("row"), g.Map(services, Service)),
		),
	)
}

func whatIsSection(base string) g.Node {
	return Section(Class("features darkBackground"),
		Div(Class("container"),
			Div(Class("row"),
				Div(Class("col col--6"),
					Img(Src(baseurl.Resolve(base, "/img/frontpage/undraw_mindmap.svg")), Alt("")),
				),
				Div(Class("col col--6"),
					H2(g.Text("What is openPype?")),
					P(
						g.Text("Open-source pipeline for visual effects and animation built on top of the "),
						A(Href("https://getavalon.github.io/2.0/"), g.Text("Avalon")),
						g.Text(" framework, expanding it with extra features and integrations. "+
							"OpenPype connects your DCCs, asset database, project management and time tracking into a single system. "+
							"It has a tight integration with Ftrack, but can also run independently or be integrated into a different project management solution."),
					),
					P(g.Text("OpenPype provides a robust platform for your studio, without the worry of a vendor lock. " +
						"You will always have full access to the source-code and your project database will run locally or in the cloud of your choice.")),
				),
			),
		),
	)
}

func whyChooseSection(base string) g.Node {
	return Section(Class("features"),
		Div(Class("container"),
			Div(Class("row"),
				Div(Class("col col--6"),
					H2(g.Text("Why choose openPype?")),
					P(g.Text("Pipeline is the technical backbone of your production. " +
						"It means, that whatever solution you use, it will cause vendor-lock to some extend. " +
						"You can mitigate this risk by developing purely in-house tools, however, that just shifts the problem from a software vendor to your developers. " +
						"Sooner or later, you'll hit the limits of such solution. " +
						"In-house tools tend to be undocumented, narrow focused and heavily dependent on a very few or even a single developer.")),
					P(g.Text("OpenPYPE aims to solve these problems. " +
						"It has dedicated and growing team of developers and support staff, that can provide the comfort of a commercial solution, while giving you the benefit of a full source-code access. " +
						"You can build and deploy it yourself, or even fork and continue in-house if you're not happy about where openPYPE is heading in the future.")),
				),
				Div(Class("col col--6"),
					Img(Src(baseurl.Resolve(base, "/img/frontpage/undraw_programming.svg")), Alt("")),
				),
			),
		),
	)
}

func integrationsSection(base string, integrations, inDevelopment []site.Integration) g.Node {
	tile := func(integration site.Integration) g.Node {
		return IntegrationTile(base, integration)
	}

	return Section(Class("gallery center darkBackground"),
		Div(Class("container"),
			H2(g.Text("Integrations")),
			Div(Class("showcase"), g.Map(integrations, tile)),
			P(Span(
				g.Text("In development by us or a community of "),
				A(Href("https://github.com/getavalon/core/pulls"), g.Text("avalon core")),
				g.Text(" developers."),
			)),
			Div(Class("showcase"), g.Map(inDevelopment, tile)),
		),
	)
}

func maintainersSection(maintainers []site.PartnerEntry) g.Node {
	return Section(Class("collaborators"),
		Div(
			H2(g.Text("Maintainers")),
			Div(Class("showcase"), g.Map(maintainers, Maintainer)),
		),
	)
}

func collaboratorsSection(collaborators []site.PartnerEntry) g.Node {
	if len(collaborators) == 0 {
		return nil
	}

	return Section(Class("collaborators"),
		Div(
			H2(g.Text("Contributors")),
			Div(Class("showcase"), g.Map(collaborators, Collaborator)),
		),
	)
}

func clientsSection(clients []site.PartnerEntry) g.Node {
	if len(clients) == 0 {
		return nil
	}

	return Section(Class("gallery"),
		Div(Class("container"),
			H2(g.Text("Studios using openPYPE")),
			Div(Class("showcase"), g.Map(clients, Client)),
		),
	)
}
