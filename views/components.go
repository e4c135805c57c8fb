// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,stylecheck

	"github.com/pypeclub/openpype-website/core/baseurl"
	"github.com/pypeclub/openpype-website/core/site"
	"github.com/pypeclub/openpype-website/server/template"
)

// Components renders every homepage fragment in isolation, one example each.
//
// Only served in development.
func Components(data HomeData) templ.Component {
	base := baseurl.Normalize(data.Site.BaseURL)

	example := func(name string, n g.Node) g.Node {
		return Section(Class("dev-component"),
			H2(Code(g.Text(name))),
			Div(Class("dev-component__preview"), n),
			Pre(Code(g.Text(template.RenderToString(Component(n))))),
		)
	}

	var sample struct {
		service     site.ServiceEntry
		partner     site.PartnerEntry
		integration site.Integration
	}

	if len(data.Content.Services) > 0 {
		sample.service = data.Content.Services[0]
	}

	if len(data.Content.Clients) > 0 {
		sample.partner = data.Content.Clients[0]
	}

	if len(data.Content.Integrations) > 0 {
		sample.integration = data.Content.Integrations[0]
	}

	return Component(Layout(
		PageConfig{
			Title:       "Components - " + data.Site.Title,
			Description: "Fragment previews",
			Site:        data.Site,
			CurrentPath: "/dev/components",
		},
		Main(Class("container"),
			example("Service", Service(sample.service)),
			example("Client", Client(sample.partner)),
			example("Collaborator", Collaborator(sample.partner)),
			example("IntegrationTile", IntegrationTile(base, sample.integration)),
			example("BadgesSection", BadgesSection()),
		),
	))
}
