// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pypeclub/openpype-website/core/site"
)

var testSite = site.Config{
	Title:   "OpenPype",
	Tagline: "Pipeline with support, for studios and remote teams.",
	BaseURL: "/",
	Locale:  "en",
}

func renderHome(t *testing.T, data HomeData) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, Home(data).Render(context.Background(), &buf))

	return buf.String()
}

func parseHome(t *testing.T, data HomeData) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(renderHome(t, data))))
	require.NoError(t, err)

	return doc
}

func sectionHeadings(doc *goquery.Document) []string {
	return doc.Find("main section h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func TestHomeHead(t *testing.T) {
	t.Parallel()

	doc := parseHome(t, HomeData{Site: testSite, Content: site.DefaultContent()})

	assert.Equal(t, "OpenPype- pipeline with support", doc.Find("head title").Text())

	description, ok := doc.Find(`head meta[name="description"]`).Attr("content")
	require.True(t, ok)
	assert.Equal(t, "VFX and Animation Pipeline for studios and remote teams <head />", description)

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "en", lang)

	assert.Equal(t, 0, doc.Find(`link[rel="canonical"]`).Length(), "no canonical link without a site URL")
}

func TestHomeCanonicalLink(t *testing.T) {
	t.Parallel()

	cfg := testSite
	cfg.URL = "https://openpype.io"
	cfg.BaseURL = "/site/"

	doc := parseHome(t, HomeData{Site: cfg, Content: site.DefaultContent()})

	href, ok := doc.Find(`link[rel="canonical"]`).Attr("href")
	require.True(t, ok)
	assert.Equal(t, "https://openpype.io/site/", href)
}

func TestHomeServices(t *testing.T) {
	t.Parallel()

	content := site.DefaultContent()
	doc := parseHome(t, HomeData{Site: testSite, Content: content})

	blurbs := doc.Find("section.features.center .feature")
	require.Equal(t, len(content.Services), blurbs.Length())

	blurbs.Each(func(i int, s *goquery.Selection) {
		assert.Equal(t, content.Services[i].Title, s.Find("h3").Text())
		assert.Equal(t, content.Services[i].Description, s.Find("p").Text())
	})
}

func TestHomeOmitsEmptySections(t *testing.T) {
	t.Parallel()

	full := parseHome(t, HomeData{Site: testSite, Content: site.DefaultContent()})
	assert.Equal(t, []string{
		"What is openPype?",
		"Why choose openPype?",
		"Integrations",
		"Maintainers",
		"Contributors",
		"Studios using openPYPE",
	}, sectionHeadings(full))
	assert.Equal(t, 1, full.Find("section.features.center").Length())

	tests := []struct {
		name     string
		mutate   func(*site.Content)
		selector string
		heading  string
	}{
		{
			name:     "no services",
			mutate:   func(c *site.Content) { c.Services = nil },
			selector: "section.features.center",
		},
		{
			name:     "empty services",
			mutate:   func(c *site.Content) { c.Services = []site.ServiceEntry{} },
			selector: "section.features.center",
		},
		{
			name:     "no collaborators",
			mutate:   func(c *site.Content) { c.Collaborators = nil },
			selector: "a.collab",
			heading:  "Contributors",
		},
		{
			name:     "no clients",
			mutate:   func(c *site.Content) { c.Clients = []site.PartnerEntry{} },
			selector: "a.client",
			heading:  "Studios using openPYPE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content := site.DefaultContent()
			tt.mutate(&content)

			doc := parseHome(t, HomeData{Site: testSite, Content: content})

			assert.Equal(t, 0, doc.Find(tt.selector).Length())

			if tt.heading != "" {
				assert.NotContains(t, sectionHeadings(doc), tt.heading)
			}

			// Other sections are unaffected.
			assert.Contains(t, sectionHeadings(doc), "Integrations")
			assert.Contains(t, sectionHeadings(doc), "Maintainers")
		})
	}
}

func TestHomePartnerGalleries(t *testing.T) {
	t.Parallel()

	content := site.DefaultContent()
	content.Clients = []site.PartnerEntry{
		{Title: "First", Image: "relative/first.png", InfoLink: "https://first.example/"},
		{Title: "Second", Image: "/img/second.png", InfoLink: "not a url"},
	}

	doc := parseHome(t, HomeData{Site: site.Config{Title: "OpenPype", BaseURL: "/prefix/"}, Content: content})

	check := func(selector string, want []site.PartnerEntry) {
		anchors := doc.Find(selector)
		require.Equal(t, len(want), anchors.Length(), selector)

		anchors.Each(func(i int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			src, _ := s.Find("img").Attr("src")
			title, _ := s.Find("img").Attr("title")
			alt, hasAlt := s.Find("img").Attr("alt")

			assert.Equal(t, want[i].InfoLink, href)
			assert.Equal(t, want[i].Image, src, "image paths are used verbatim")
			assert.Equal(t, want[i].Title, title)
			assert.True(t, hasAlt)
			assert.Empty(t, alt)
		})
	}

	check("a.client", content.Clients)
	check("a.collab", content.Collaborators)
	check("a.pype_logo", content.Maintainers)
}

func TestHomeHeroLinks(t *testing.T) {
	t.Parallel()

	want := []string{
		"https://github.com/pypeclub/pype",
		"mailto:info@pype.club",
		"https://discord.gg/sFNPWXG",
		"https://pype.club",
	}

	for _, content := range []site.Content{site.DefaultContent(), {}} {
		doc := parseHome(t, HomeData{Site: testSite, Content: content})

		links := doc.Find("header.hero .buttons a").Map(func(_ int, s *goquery.Selection) string {
			href, _ := s.Attr("href")

			return href
		})
		assert.Equal(t, want, links)

		assert.Equal(t, testSite.Tagline, doc.Find("header.hero .hero__subtitle").Text())
	}
}

func TestHomeIntegrations(t *testing.T) {
	t.Parallel()

	cfg := testSite
	cfg.BaseURL = "openpype"

	content := site.DefaultContent()
	doc := parseHome(t, HomeData{Site: cfg, Content: content})

	tiles := doc.Find("section.gallery.darkBackground .showcase").First().Find("a.link")
	require.Equal(t, len(content.Integrations), tiles.Length())

	tiles.Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		require.True(t, ok)

		if content.Integrations[i].Anchor == "" {
			assert.Empty(t, href)
		} else {
			assert.Equal(t, "/openpype/features#"+content.Integrations[i].Anchor, href)
		}

		assert.Equal(t, content.Integrations[i].Name, s.Find(".caption").Text())
	})

	devTiles := doc.Find("section.gallery.darkBackground .showcase").Last().Find("a.link")
	assert.Equal(t, len(content.InDevelopment), devTiles.Length())
}

func TestHomeIsDeterministic(t *testing.T) {
	t.Parallel()

	data := HomeData{Site: testSite, Content: site.DefaultContent()}

	first := renderHome(t, data)
	second := renderHome(t, data)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestHomeEscapesContent(t *testing.T) {
	t.Parallel()

	content := site.Content{
		Services: []site.ServiceEntry{{Title: "<script>alert(1)</script>", Description: "a & b"}},
	}

	html := renderHome(t, HomeData{Site: testSite, Content: content})

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "a &amp; b")
}
