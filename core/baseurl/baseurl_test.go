// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package baseurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"openpype", "/openpype/"},
		{"/openpype", "/openpype/"},
		{"/openpype/", "/openpype/"},
		{"//docs/site//", "/docs/site/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"empty path", "/openpype/", "", ""},
		{"fragment", "/openpype/", "#maya", "#maya"},
		{"https", "/openpype/", "https://pype.club", "https://pype.club"},
		{"mailto", "/openpype/", "mailto:info@pype.club", "mailto:info@pype.club"},
		{"protocol relative", "/openpype/", "//cdn.example.com/a.png", "//cdn.example.com/a.png"},
		{"root base, rooted path", "/", "/img/app_maya.png", "/img/app_maya.png"},
		{"root base, relative path", "/", "features#maya", "/features#maya"},
		{"prefixed base, rooted path", "/openpype/", "/img/app_maya.png", "/openpype/img/app_maya.png"},
		{"prefixed base, relative path", "/openpype/", "features#nuke", "/openpype/features#nuke"},
		{"already prefixed", "/openpype/", "/openpype/img/a.png", "/openpype/img/a.png"},
		{"base without slash", "/openpype/", "/openpype", "/openpype/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Resolve(tt.base, tt.path))
		})
	}
}

func TestAbsolute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://openpype.io/img/a.png", Absolute("https://openpype.io/", "/", "/img/a.png"))
	assert.Equal(t, "https://openpype.io/docs/", Absolute("https://openpype.io", "/docs/", "/"))
	assert.Equal(t, "/img/a.png", Absolute("", "/", "img/a.png"))
	assert.Equal(t, "https://pype.club", Absolute("https://openpype.io", "/", "https://pype.club"))
	assert.Equal(t, "#top", Absolute("https://openpype.io", "/", "#top"))
}
