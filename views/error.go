// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,stylecheck

	"github.com/pypeclub/openpype-website/core/baseurl"
	"github.com/pypeclub/openpype-website/core/site"
)

// ErrorData is the data used to render the error page.
type ErrorData struct {
	Title      string
	Site       site.Config
	Error      error
	StatusCode int

	// ShowDetails renders the error message in the page body.
	ShowDetails bool
}

// Error renders a themed error page.
func Error(data ErrorData) templ.Component {
	base := baseurl.Normalize(data.Site.BaseURL)

	statusText := http.StatusText(data.StatusCode)
	if statusText == "" {
		statusText = "Error"
	}

	return Component(Layout(
		PageConfig{
			Title:       data.Title + " - " + data.Site.Title,
			Description: statusText,
			Site:        data.Site,
		},
		Main(Class("container margin-vert--xl"),
			H1(Class("hero__title"), g.Text(strconv.Itoa(data.StatusCode)+" "+statusText)),
			g.Iff(data.ShowDetails && data.Error != nil, func() g.Node {
				return Pre(Class("error__details"), g.Text(data.Error.Error()))
			}),
			P(A(Href(base), g.Text("Back to the homepage"))),
		),
	))
}
