// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command genconfig regenerates the example configuration files under deploy/
// from the built-in defaults.
package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"github.com/pypeclub/openpype-website/config"
	"github.com/pypeclub/openpype-website/core/audit"
	"github.com/pypeclub/openpype-website/core/site"
)

const (
	envOutputFile     = "deploy/.env.example"
	yamlOutputFile    = "deploy/config.yaml.example"
	contentOutputFile = "deploy/content.yaml.example"
	filePerm          = 0o644
	dirPerm           = 0o755

	envFileHeader = `# OpenPype website configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# OpenPype website configuration (via configuration file)
#
# Copy this file to config.yaml and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
	contentFileHeader = `# OpenPype homepage content
#
# Point site.contentFile (or OPENPYPE_CONTENT_FILE) at a copy of this file to
# replace the built-in lists. An empty list hides its section.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
)

// uncommentedEnvVars are written active in the .env example.
var uncommentedEnvVars = map[string]bool{
	"OPENPYPE_HOST": true,
	"OPENPYPE_PORT": true,
}

func main() {
	audit.SetDefaultLogger()

	if err := os.MkdirAll("deploy", dirPerm); err != nil {
		log.Fatal().Err(err).Msg("Failed to create deploy directory")
	}

	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	write(envOutputFile, renderEnvFile(cfg))

	yamlFile, err := renderYAMLFile(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	write(yamlOutputFile, yamlFile)

	contentFile, err := site.MarshalContent(site.DefaultContent())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal content to YAML")
	}

	write(contentOutputFile, contentFileHeader+string(contentFile))
}

func write(path, content string) {
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write file")
	}

	log.Info().Str("path", path).Msg("Successfully generated file")
}

// renderEnvFile lists every env-tagged field of cfg, grouped by section.
func renderEnvFile(cfg *config.ServerConfig) string {
	var sb strings.Builder
	sb.WriteString(envFileHeader)

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	// Iterate over the top-level struct fields.
	for i := range typ.NumField() {
		structField := typ.Field(i)
		structValue := val.Field(i)

		if structValue.Kind() != reflect.Struct || structField.Name == "Build" {
			continue
		}

		var section strings.Builder

		// Iterate over the fields of the nested struct.
		innerTyp := structValue.Type()
		for j := range innerTyp.NumField() {
			envVarName, ok := innerTyp.Field(j).Tag.Lookup("envconfig")
			if !ok {
				continue
			}

			value := structValue.Field(j)

			switch {
			case uncommentedEnvVars[envVarName]:
				fmt.Fprintf(&section, "%s=\"%v\"\n", envVarName, value.Interface())
			case value.Kind() == reflect.Slice:
				fmt.Fprintf(&section, "# %s=%s\n", envVarName, joinSlice(value))
			case value.Kind() == reflect.String && value.Len() == 0:
				// Omit the value to prompt user input.
				fmt.Fprintf(&section, "# %s=\n", envVarName)
			default:
				fmt.Fprintf(&section, "# %s=%v\n", envVarName, value.Interface())
			}
		}

		if section.Len() == 0 {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n%s\n", structField.Name, section.String())
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// joinSlice renders a slice as the comma separated form envconfig reads back.
func joinSlice(v reflect.Value) string {
	parts := make([]string, v.Len())
	for i := range v.Len() {
		parts[i] = fmt.Sprint(v.Index(i).Interface())
	}

	return strings.Join(parts, ",")
}

// renderYAMLFile marshals cfg and comments out every value so the example
// documents the defaults without pinning them.
func renderYAMLFile(cfg *config.ServerConfig) (string, error) {
	var yamlContent strings.Builder

	encoderOpts := []yaml.EncodeOption{
		config.GetDurationEncoderOption(),
		yaml.Indent(2),
	}
	if err := yaml.NewEncoder(&yamlContent, encoderOpts...).Encode(cfg); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	// Process the marshaled YAML line-by-line to create a clean template.
	for line := range strings.SplitSeq(yamlContent.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Top-level keys (e.g., "basic:") are treated as section headers.
		if !strings.HasPrefix(line, " ") {
			fmt.Fprintf(&sb, "\n%s\n", line)

			continue
		}

		indentSize := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	return sb.String(), nil
}
