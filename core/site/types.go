// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package site holds the authored content of the OpenPype homepage.

Every value in this package is defined at load time and only read at render
time. Nothing here is created, mutated or destroyed while serving requests.

You may use this package independently as follows:

	package main

	import (
		"fmt"

		"github.com/pypeclub/openpype-website/core/site"
	)

	func main() {
		content := site.DefaultContent()
		for _, client := range content.Clients {
			fmt.Println(client.Title, client.InfoLink)
		}
	}
*/
package site

// ServiceEntry describes one product-feature blurb.
type ServiceEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// PartnerEntry describes one logo link, either a collaborator or a client.
//
// Entries have no identity beyond their position in the backing slice.
type PartnerEntry struct {
	Title    string `yaml:"title"`
	Image    string `yaml:"image"`
	InfoLink string `yaml:"infoLink"`
}

// Integration describes one tile of the integrations showcase.
//
// Anchor is the fragment on the features page that documents the
// integration. An empty Anchor renders an inert link.
type Integration struct {
	Name   string `yaml:"name"`
	Image  string `yaml:"image"`
	Anchor string `yaml:"anchor"`
}

// Content is the whole authored data set rendered by the homepage.
//
// Empty slices make their corresponding sections disappear from the page,
// except for Integrations and Maintainers which are always rendered.
type Content struct {
	Services      []ServiceEntry `yaml:"services"`
	Collaborators []PartnerEntry `yaml:"collaborators"`
	Clients       []PartnerEntry `yaml:"clients"`
	Integrations  []Integration  `yaml:"integrations"`
	InDevelopment []Integration  `yaml:"inDevelopment"`
	Maintainers   []PartnerEntry `yaml:"maintainers"`
}

// Config is the site-configuration object consumed by the page layout.
type Config struct {
	// Title is the product name, e.g. "OpenPype".
	Title string

	// Tagline is shown under the hero logo.
	Tagline string

	// BaseURL is the path prefix the site is deployed under. Always starts
	// and ends with "/".
	BaseURL string

	// URL is the public origin of the site, e.g. "https://openpype.io".
	// May be empty, in which case no canonical link is emitted.
	URL string

	// Locale is a BCP 47 tag used for the html lang attribute.
	Locale string
}
