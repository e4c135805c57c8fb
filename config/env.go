// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

var errInvalidEnv = errors.New("invalid environment variable")

// readEnv overlays environment variables onto cfg.
//
// Every field tagged with envconfig is read from the bare variable name.
// A variable that is set, even to an empty string, replaces the value
// loaded from defaults or YAML. An empty bool, number or duration resets
// the field to its zero value.
func readEnv(cfg *ServerConfig) error {
	var blank []string

	walkEnvFields(reflect.ValueOf(cfg).Elem(), func(name string, field reflect.Value) {
		if value, ok := os.LookupEnv(name); !ok || value != "" {
			return
		}

		switch field.Kind() {
		case reflect.String, reflect.Slice:
			return
		default:
			field.SetZero()
			blank = append(blank, name)
		}
	})

	// envconfig cannot parse "" into a typed field, so hide those while it runs.
	for _, name := range blank {
		_ = os.Unsetenv(name)
	}

	defer func() {
		for _, name := range blank {
			_ = os.Setenv(name, "")
		}
	}()

	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("%w: %w", errInvalidEnv, err)
	}

	cfg.Log.Outputs = compactList(cfg.Log.Outputs)
	cfg.Limiter.PassIPs = compactList(cfg.Limiter.PassIPs)
	cfg.Limiter.BlockIPs = compactList(cfg.Limiter.BlockIPs)

	return nil
}

// walkEnvFields calls fn for every field of v carrying an envconfig tag,
// descending into nested structs and skipping ignored ones.
func walkEnvFields(v reflect.Value, fn func(name string, field reflect.Value)) {
	t := v.Type()

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Tag.Get("ignored") == "true" {
			continue
		}

		field := v.Field(i)

		if name := sf.Tag.Get("envconfig"); name != "" {
			fn(name, field)

			continue
		}

		if field.Kind() == reflect.Struct {
			walkEnvFields(field, fn)
		}
	}
}

// compactList trims every entry and drops the empty ones left by
// stray commas in a list variable.
func compactList(list []string) []string {
	if list == nil {
		return nil
	}

	out := list[:0]

	for _, item := range list {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// dotEnvCandidates lists the .env files to try, in order.
func dotEnvCandidates() []string {
	var paths []string

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	} else {
		log.Warn().Err(err).Msg("Could not get current working directory")
	}

	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), ".env"))
	}

	return paths
}

// useDotEnv loads the first .env file found next to the process.
//
// Variables already present in the environment are left untouched.
// A missing file is not an error.
func useDotEnv() error {
	for _, path := range dotEnvCandidates() {
		err := godotenv.Load(path)
		if err == nil {
			log.Info().Str("path", path).Msg("Loaded configuration from .env file")

			return nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	log.Info().Msg("No .env file found, skipping")

	return nil
}
