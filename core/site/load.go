// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package site

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

var errEmptyContentFile = errors.New("content file is empty")

// LoadContent returns the homepage content, optionally overridden by a YAML file.
//
// An empty path returns DefaultContent. Otherwise the file is decoded over
// the defaults, so keys missing from the file keep their built-in values
// while a key set to an empty list removes the corresponding section.
func LoadContent(path string) (Content, error) {
	content := DefaultContent()

	if path == "" {
		return content, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- Only loading a content file named by the operator
	if err != nil {
		return Content{}, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	if err := decodeContent(data, &content); err != nil {
		return Content{}, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("services", len(content.Services)).
		Int("collaborators", len(content.Collaborators)).
		Int("clients", len(content.Clients)).
		Msg("Loaded homepage content")

	return content, nil
}

func decodeContent(data []byte, content *Content) error {
	if len(data) == 0 {
		return errEmptyContentFile
	}

	return yaml.UnmarshalWithOptions(data, content, yaml.Strict())
}

// MarshalContent encodes content as YAML, in the layout LoadContent expects.
func MarshalContent(content Content) ([]byte, error) {
	return yaml.MarshalWithOptions(content, yaml.IndentSequence(true))
}
