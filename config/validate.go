package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/pypeclub/openpype-website/core/baseurl"
	"github.com/pypeclub/openpype-website/core/site"
	"github.com/pypeclub/openpype-website/server/utils"
)

// validation errors.
var (
	errUnixSocketWithHostPort       = errors.New("unix socket configured - cannot specify Host and Port simultaneously")
	errUnixSocketInvalidPermissions = errors.New("invalid Basic.UnixSocketPermissions value")
	errUnixSocketUserDoesNotExist   = errors.New("user does not exist")
	errUnixSocketGroupDoesNotExist  = errors.New("group does not exist")
	errEmptySiteTitle               = errors.New("site.title cannot be empty")
	errInvalidLocale                = errors.New("invalid site.locale")
	errBaseURLHasProtocol           = errors.New("site.baseUrl must be a path, not a URL")
	errNegativeCacheDuration        = errors.New("httpCache durations cannot be negative")
	errInvalidLimiterRate           = errors.New("limiter.requestsPerSecond must be positive")
	errInvalidLimiterBurst          = errors.New("limiter.burst must be positive")
	errInvalidIPv4Prefix            = errors.New("IPv4 prefix must be between 0 and 32")
	errInvalidIPv6Prefix            = errors.New("IPv6 prefix must be between 0 and 128")
	errEmptyExportDir               = errors.New("export.outputDir cannot be empty")
)

const (
	defaultHost       = "localhost"
	defaultPort       = "8282"
	defaultSocketMode = os.FileMode(0o666)
)

var (
	fileModeOctalRegexp  = regexp.MustCompile(`^0?[0-7]{3}$`)
	fileModeStringRegexp = regexp.MustCompile(`^(?:[r-][w-][x-]){3}$`)
	digitsRegexp         = regexp.MustCompile(`^[0-9]+$`)
)

// validateAndSet checks every section in order, canonicalizing values as it goes.
func (cfg *ServerConfig) validateAndSet() error {
	steps := []func() error{
		cfg.validateListener,
		cfg.validateSite,
		cfg.validateHTTPCache,
		cfg.validateExport,
		cfg.validateLimiter,
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

func (cfg *ServerConfig) validateListener() error {
	basic := &cfg.Basic

	if basic.UnixSocket == "" {
		if basic.Host == "" {
			basic.Host = defaultHost
			log.Info().Str("host", basic.Host).Msg("Binding to default host")
		}

		if basic.Port == "" {
			basic.Port = defaultPort
			log.Info().Str("port", basic.Port).Msg("Using default port")
		}

		return nil
	}

	if basic.Host != "" || basic.Port != "" {
		return errUnixSocketWithHostPort
	}

	mode, err := parseSocketMode(basic.RawUnixSocketPermissions)
	if err != nil {
		return err
	}

	basic.UnixSocketPermissions = mode

	if err := checkAccount(basic.UnixSocketUser, user.LookupId, user.Lookup); err != nil {
		return errUnixSocketUserDoesNotExist
	}

	if err := checkAccount(basic.UnixSocketGroup, user.LookupGroupId, user.LookupGroup); err != nil {
		return errUnixSocketGroupDoesNotExist
	}

	return nil
}

// parseSocketMode accepts an octal mode ("660", "0660") or a symbolic one
// ("rw-rw----"). An empty string yields defaultSocketMode.
func parseSocketMode(raw string) (os.FileMode, error) {
	switch {
	case raw == "":
		return defaultSocketMode, nil
	case fileModeOctalRegexp.MatchString(raw):
		mode, err := strconv.ParseUint(raw, 8, 32)
		if err != nil {
			return 0, errUnixSocketInvalidPermissions
		}

		return os.FileMode(mode), nil
	case fileModeStringRegexp.MatchString(raw):
		var mode os.FileMode

		for i, c := range raw {
			if c != '-' {
				mode |= 1 << (len(raw) - 1 - i)
			}
		}

		return mode, nil
	default:
		return 0, errUnixSocketInvalidPermissions
	}
}

// checkAccount resolves a user or group given either as a numeric ID or a name.
func checkAccount[T any](account string, byID, byName func(string) (T, error)) error {
	if account == "" {
		return nil
	}

	lookup := byName
	if digitsRegexp.MatchString(account) {
		lookup = byID
	}

	_, err := lookup(account)

	return err
}

// validateSite checks the Site section, canonicalizes it and loads the homepage content.
func (cfg *ServerConfig) validateSite() error {
	s := &cfg.Site

	if s.Title == "" {
		return errEmptySiteTitle
	}

	if s.Locale != "" {
		tag, err := language.Parse(s.Locale)
		if err != nil {
			return fmt.Errorf("%w %q: %w", errInvalidLocale, s.Locale, err)
		}

		s.Locale = tag.String()
	}

	if baseurl.HasProtocol(s.BaseURL) {
		return errBaseURLHasProtocol
	}

	s.BaseURL = baseurl.Normalize(s.BaseURL)

	if s.URL != "" {
		// The base URL carries the path; only the origin is kept here.
		origin, err := utils.ParseOrigin(s.URL)
		if err != nil {
			return fmt.Errorf("invalid site URL: %w", err)
		}

		s.URL = origin
	}

	content, err := site.LoadContent(s.ContentFile)
	if err != nil {
		return fmt.Errorf("failed to load site content: %w", err)
	}

	s.Content = content

	return nil
}

func (cfg *ServerConfig) validateHTTPCache() error {
	if cfg.HTTPCache.MaxAge < 0 || cfg.HTTPCache.StaleWhileRevalidate < 0 {
		return errNegativeCacheDuration
	}

	return nil
}

func (cfg *ServerConfig) validateExport() error {
	if cfg.Export.OutputDir == "" {
		return errEmptyExportDir
	}

	return nil
}

// validateLimiter is skipped entirely while the limiter is off.
func (cfg *ServerConfig) validateLimiter() error {
	l := cfg.Limiter
	if !l.Enabled {
		return nil
	}

	switch {
	case l.RequestsPerSecond <= 0:
		return errInvalidLimiterRate
	case l.Burst <= 0:
		return errInvalidLimiterBurst
	case l.IPv4Prefix < 0 || l.IPv4Prefix > 32:
		return errInvalidIPv4Prefix
	case l.IPv6Prefix < 0 || l.IPv6Prefix > 128:
		return errInvalidIPv6Prefix
	}

	return nil
}
