// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig verifies env handling and validation. It cannot run in
// parallel since it mutates the process environment.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
		check   func(t *testing.T, cfg *ServerConfig)
	}{
		{
			name: "Valid configuration",
			env: map[string]string{
				"OPENPYPE_HOST":     "0.0.0.0",
				"OPENPYPE_PORT":     "9000",
				"OPENPYPE_BASE_URL": "openpype",
				"OPENPYPE_LOCALE":   "en-gb",
				"OPENPYPE_SITE_URL": "https://openpype.io/ignored/",
			},
			check: func(t *testing.T, cfg *ServerConfig) {
				t.Helper()

				assert.Equal(t, "0.0.0.0", cfg.Basic.Host)
				assert.Equal(t, "9000", cfg.Basic.Port)
				assert.Equal(t, "/openpype/", cfg.Site.BaseURL)
				assert.Equal(t, "en-GB", cfg.Site.Locale)
				assert.Equal(t, "https://openpype.io", cfg.Site.URL)
				assert.Len(t, cfg.Site.Content.Services, 4)
				assert.Equal(t, "OpenPype", cfg.SiteConfig().Title)
			},
		},
		{
			name: "Durations and floats",
			env: map[string]string{
				"OPENPYPE_CACHE_CONTROL_MAX_AGE": "1h",
				"OPENPYPE_LIMITER":               "true",
				"OPENPYPE_LIMITER_RATE":          "2.5",
				"OPENPYPE_LIMITER_PASS_IPS":      "10.0.0.1, 10.0.0.2,,",
			},
			check: func(t *testing.T, cfg *ServerConfig) {
				t.Helper()

				assert.Equal(t, time.Hour, cfg.HTTPCache.MaxAge)
				assert.True(t, cfg.Limiter.Enabled)
				assert.InDelta(t, 2.5, cfg.Limiter.RequestsPerSecond, 0.0001)
				assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.Limiter.PassIPs)
			},
		},
		{
			name: "Empty typed values reset to zero",
			env: map[string]string{
				"OPENPYPE_COMPRESSION":           "",
				"OPENPYPE_CACHE_CONTROL_MAX_AGE": "",
				"OPENPYPE_LIMITER_BURST":         "",
			},
			check: func(t *testing.T, cfg *ServerConfig) {
				t.Helper()

				assert.False(t, cfg.Response.Compression)
				assert.Zero(t, cfg.HTTPCache.MaxAge)
				assert.Zero(t, cfg.Limiter.Burst)
				assert.Equal(t, defaultHTTPCacheStaleWhileRevalidateSeconds*time.Second, cfg.HTTPCache.StaleWhileRevalidate)

				value, ok := os.LookupEnv("OPENPYPE_COMPRESSION")
				assert.True(t, ok, "the variable is restored after loading")
				assert.Empty(t, value)
			},
		},
		{
			name:    "Invalid locale",
			env:     map[string]string{"OPENPYPE_LOCALE": "not a locale!"},
			wantErr: errInvalidLocale,
		},
		{
			name:    "Base URL with protocol",
			env:     map[string]string{"OPENPYPE_BASE_URL": "https://openpype.io/"},
			wantErr: errBaseURLHasProtocol,
		},
		{
			name:    "Empty title",
			env:     map[string]string{"OPENPYPE_SITE_TITLE": ""},
			wantErr: errEmptySiteTitle,
		},
		{
			name: "Invalid limiter prefix",
			env: map[string]string{
				"OPENPYPE_LIMITER":             "true",
				"OPENPYPE_LIMITER_IPV4_PREFIX": "33",
			},
			wantErr: errInvalidIPv4Prefix,
		},
		{
			name:    "Malformed number",
			env:     map[string]string{"OPENPYPE_LIMITER_BURST": "many"},
			wantErr: errInvalidEnv,
		},
		{
			name: "Unix socket with host",
			env: map[string]string{
				"OPENPYPE_UNIXSOCKET": "/tmp/openpype.sock",
			},
			wantErr: errUnixSocketWithHostPort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENPYPE_CONFIGFILE", filepath.Join(t.TempDir(), "missing.yaml"))

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := &ServerConfig{}

			err := cfg.LoadConfig()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()

	contentPath := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(contentPath, []byte("services: []\n"), 0o600))

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
site:
  title: Studio Pipeline
  baseUrl: /docs
  contentFile: `+contentPath+`
httpCache:
  cacheControlMaxAge: 10m
`), 0o600))

	t.Setenv("OPENPYPE_CONFIGFILE", configPath)

	cfg := &ServerConfig{}
	require.NoError(t, cfg.LoadConfig())

	assert.Equal(t, "Studio Pipeline", cfg.Site.Title)
	assert.Equal(t, "/docs/", cfg.Site.BaseURL)
	assert.Equal(t, 10*time.Minute, cfg.HTTPCache.MaxAge)
	assert.Empty(t, cfg.Site.Content.Services)
	assert.NotEmpty(t, cfg.Site.Content.Clients, "unlisted content keeps defaults")
}

func TestLoadConfigRejectsUnknownYAMLKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("site:\n  colour: blue\n"), 0o600))

	t.Setenv("OPENPYPE_CONFIGFILE", configPath)

	cfg := &ServerConfig{}
	assert.Error(t, cfg.LoadConfig())
}

func TestShouldSkipServerLogging(t *testing.T) {
	t.Parallel()

	cfg := &ServerConfig{}

	assert.True(t, cfg.ShouldSkipServerLogging("/img/favicon.svg"))
	assert.True(t, cfg.ShouldSkipServerLogging("/css/custom.css"))
	assert.True(t, cfg.ShouldSkipServerLogging("/healthz"))
	assert.False(t, cfg.ShouldSkipServerLogging("/"))

	cfg.Development.InDevelopment = true
	assert.False(t, cfg.ShouldSkipServerLogging("/img/favicon.svg"))
}

func TestCompactList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, compactList(nil))
	assert.Equal(t, []string{"a", "b"}, compactList([]string{" a", "", "b ", "  "}))
	assert.Empty(t, compactList([]string{""}))
}

func TestUseDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"# comment\nOPENPYPE_DOTENV_SAMPLE=\"from file\"\nOPENPYPE_SITE_TAGLINE=from file\n"), 0o600))

	t.Chdir(dir)
	t.Setenv("OPENPYPE_SITE_TAGLINE", "from env")
	t.Cleanup(func() { _ = os.Unsetenv("OPENPYPE_DOTENV_SAMPLE") })

	require.NoError(t, useDotEnv())

	assert.Equal(t, "from file", os.Getenv("OPENPYPE_DOTENV_SAMPLE"))
	assert.Equal(t, "from env", os.Getenv("OPENPYPE_SITE_TAGLINE"), "existing variables win")
}

func TestParseSocketMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    os.FileMode
		wantErr bool
	}{
		{raw: "", want: 0o666},
		{raw: "660", want: 0o660},
		{raw: "0600", want: 0o600},
		{raw: "rw-rw----", want: 0o660},
		{raw: "rwxr-xr-x", want: 0o755},
		{raw: "999", wantErr: true},
		{raw: "rw-", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseSocketMode(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, errUnixSocketInvalidPermissions, tt.raw)

			continue
		}

		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestCollapseSpan(t *testing.T) {
	t.Parallel()

	httpEvent := map[string]any{"sys": "http", "method": "GET", "url": "/openpype/", "status_code": 200, "request_id": "x", "dur": "1ms"}
	require.NoError(t, collapseSpan(httpEvent))
	assert.Equal(t, map[string]any{"message": "200 GET   /openpype/", "dur": "1ms"}, httpEvent)

	exportEvent := map[string]any{"sys": "export", "method": "WRITE", "path": "index.html"}
	require.NoError(t, collapseSpan(exportEvent))
	assert.Equal(t, map[string]any{"message": "WRITE index.html"}, exportEvent)

	other := map[string]any{"message": "hello"}
	require.NoError(t, collapseSpan(other))
	assert.Equal(t, map[string]any{"message": "hello"}, other)
}
