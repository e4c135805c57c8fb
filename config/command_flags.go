// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"os"
)

const (
	defaultConfigPath  = "./config.yaml"
	fallbackConfigPath = "./config.yml"
)

// resolveConfigPath picks the YAML file to read. An explicit -config flag
// wins over OPENPYPE_CONFIGFILE, which wins over the default path. When the
// default path is missing, ./config.yml is tried instead.
func resolveConfigPath() string {
	if flag.Lookup("config") == nil {
		flag.String("config", defaultConfigPath, "Path to a configuration file in YAML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if path, ok := explicitFlag("config"); ok {
		return path
	}

	if env := os.Getenv("OPENPYPE_CONFIGFILE"); env != "" {
		return env
	}

	if _, err := os.Stat(defaultConfigPath); os.IsNotExist(err) {
		if _, err := os.Stat(fallbackConfigPath); err == nil {
			return fallbackConfigPath
		}
	}

	return defaultConfigPath
}

// explicitFlag reports the value of a flag only if it was given on the command line.
func explicitFlag(name string) (value string, ok bool) {
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			value, ok = f.Value.String(), true
		}
	})

	return value, ok
}
