// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package export

import (
	"bytes"
	"path"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pypeclub/openpype-website/core/baseurl"
)

// referenceSelectors pick the attributes that name an asset of the page.
var referenceSelectors = []struct {
	selector string
	attr     string
}{
	{"img[src]", "src"},
	{`link[rel="stylesheet"][href]`, "href"},
	{`link[rel="icon"][href]`, "href"},
	{`link[rel="manifest"][href]`, "href"},
}

// scanReferences returns the distinct asset paths page refers to, sorted.
//
// inside holds site-relative paths without the base prefix and leading
// slash. outside holds the absolute paths that fall outside base, which the
// deployed site cannot serve. External URLs and in-page fragments are ignored.
func scanReferences(page []byte, base string) (inside, outside []string, err error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, nil, err
	}

	base = baseurl.Normalize(base)

	seenInside := make(map[string]bool)
	seenOutside := make(map[string]bool)

	for _, ref := range referenceSelectors {
		doc.Find(ref.selector).Each(func(_ int, s *goquery.Selection) {
			v, _ := s.Attr(ref.attr)

			name, inBase, ok := siteRelative(v, base)
			switch {
			case !ok:
			case inBase:
				seenInside[name] = true
			default:
				seenOutside[name] = true
			}
		})
	}

	return sortedKeys(seenInside), sortedKeys(seenOutside), nil
}

// siteRelative classifies ref against base. Relative refs resolve against
// the page, which is served at base. ok is false for refs that are not
// local assets, including the page itself.
func siteRelative(ref, base string) (name string, inBase, ok bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || baseurl.HasProtocol(ref) {
		return "", false, false
	}

	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}

	if !strings.HasPrefix(ref, "/") {
		ref = path.Join(base, ref)
	}

	if ref == base || ref+"/" == base {
		return "", false, false
	}

	name, found := strings.CutPrefix(ref, base)
	if !found {
		return ref, false, true
	}

	return name, true, true
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
