// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pypeclub/openpype-website/core/baseurl"
	"github.com/pypeclub/openpype-website/core/idgen"
	"github.com/pypeclub/openpype-website/core/site"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `ignored:"true" yaml:"-"`

	Basic struct {
		Host                     string      `envconfig:"OPENPYPE_HOST" yaml:"host"`
		Port                     string      `envconfig:"OPENPYPE_PORT" yaml:"port"`
		UnixSocket               string      `envconfig:"OPENPYPE_UNIXSOCKET" yaml:"unixSocket"`
		RawUnixSocketPermissions string      `envconfig:"OPENPYPE_UNIXSOCKET_PERMISSIONS" yaml:"unixSocketPermissions"`
		UnixSocketPermissions    os.FileMode `ignored:"true" yaml:"-"`
		UnixSocketUser           string      `envconfig:"OPENPYPE_UNIXSOCKET_USER" yaml:"unixSocketUser"`
		UnixSocketGroup          string      `envconfig:"OPENPYPE_UNIXSOCKET_GROUP" yaml:"unixSocketGroup"`
	} `yaml:"basic"`

	Site struct {
		Title   string `envconfig:"OPENPYPE_SITE_TITLE" yaml:"title"`
		Tagline string `envconfig:"OPENPYPE_SITE_TAGLINE" yaml:"tagline"`
		// BaseURL is the path prefix the site is served under.
		BaseURL string `envconfig:"OPENPYPE_BASE_URL" yaml:"baseUrl"`
		// URL is the public origin, used for canonical links. Optional.
		URL    string `envconfig:"OPENPYPE_SITE_URL" yaml:"url"`
		Locale string `envconfig:"OPENPYPE_LOCALE" yaml:"locale"`
		// ContentFile optionally overrides the built-in homepage content.
		ContentFile string `envconfig:"OPENPYPE_CONTENT_FILE" yaml:"contentFile"`

		Content site.Content `ignored:"true" yaml:"-"`
	} `yaml:"site"`

	HTTPCache struct {
		MaxAge               time.Duration `envconfig:"OPENPYPE_CACHE_CONTROL_MAX_AGE" yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `envconfig:"OPENPYPE_CACHE_CONTROL_STALE_WHILE_REVALIDATE" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	Response struct {
		Compression bool `envconfig:"OPENPYPE_COMPRESSION" yaml:"compression"`
	} `yaml:"response"`

	Instance struct {
		StartingTime      string `yaml:"-"`
		FileServerCacheID string `yaml:"-"`
	} `ignored:"true" yaml:"-"`

	Metrics struct {
		// Enabled serves Prometheus metrics at /metrics.
		Enabled bool `envconfig:"OPENPYPE_METRICS" yaml:"enabled"`
	} `yaml:"metrics"`

	Development struct {
		InDevelopment bool `envconfig:"OPENPYPE_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `envconfig:"OPENPYPE_LOG_LEVEL" yaml:"logLevel"`
		Outputs []string `envconfig:"OPENPYPE_LOG_OUTPUTS" yaml:"logOutputs"`
		Format  string   `envconfig:"OPENPYPE_LOG_FORMAT" yaml:"logFormat"`
	} `yaml:"log"`

	Limiter struct {
		Enabled           bool     `envconfig:"OPENPYPE_LIMITER" yaml:"enabled"`
		RequestsPerSecond float64  `envconfig:"OPENPYPE_LIMITER_RATE" yaml:"requestsPerSecond"`
		Burst             int      `envconfig:"OPENPYPE_LIMITER_BURST" yaml:"burst"`
		PassIPs           []string `envconfig:"OPENPYPE_LIMITER_PASS_IPS" yaml:"passList"`
		BlockIPs          []string `envconfig:"OPENPYPE_LIMITER_BLOCK_IPS" yaml:"blockList"`
		IPv4Prefix        int      `envconfig:"OPENPYPE_LIMITER_IPV4_PREFIX" yaml:"ipv4Prefix"`
		IPv6Prefix        int      `envconfig:"OPENPYPE_LIMITER_IPV6_PREFIX" yaml:"ipv6Prefix"`
	} `yaml:"limiter"`

	Export struct {
		OutputDir   string `envconfig:"OPENPYPE_EXPORT_DIR" yaml:"outputDir"`
		Precompress bool   `envconfig:"OPENPYPE_EXPORT_PRECOMPRESS" yaml:"precompress"`
	} `yaml:"export"`
}

// LoadConfig builds the configuration in layers: defaults, then the YAML
// file, then .env, then the environment. The result is validated before
// the logger is reconfigured from it.
func (cfg *ServerConfig) LoadConfig() error {
	configFilePath := resolveConfigPath()

	cfg.SetDefaults()
	cfg.Build.load()

	cfg.Instance.FileServerCacheID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	layers := []struct {
		name string
		load func() error
	}{
		{"YAML config", func() error { return cfg.readYAML(configFilePath) }},
		{".env file", useDotEnv},
		{"environment variables", func() error { return readEnv(cfg) }},
	}

	for _, layer := range layers {
		if err := layer.load(); err != nil {
			return fmt.Errorf("error loading %s: %w", layer.name, err)
		}
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()
	cfg.print()

	if cfg.Basic.UnixSocket == "" && !isWildcardHost(cfg.Basic.Host) && isContainerized() {
		log.Warn().
			Str("host", cfg.Basic.Host).
			Msg("Running in a container but not bound to a wildcard address; the site may be unreachable from outside")
	}

	return nil
}

// SiteConfig returns the site-configuration object consumed by the views.
func (cfg *ServerConfig) SiteConfig() site.Config {
	return site.Config{
		Title:   cfg.Site.Title,
		Tagline: cfg.Site.Tagline,
		BaseURL: baseurl.Normalize(cfg.Site.BaseURL),
		URL:     cfg.Site.URL,
		Locale:  cfg.Site.Locale,
	}
}

var staticSkippedPathPrefixes = []string{"/img/", "/css/"}

// ShouldSkipServerLogging determines if a request should bypass the logging middleware.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	if cfg.Development.InDevelopment {
		return false
	}

	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return path == "/healthz"
}
