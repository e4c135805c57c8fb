// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package template holds helpers shared by the page renderers
and the static exporter.
*/
package template

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
)

// Render renders c into memory.
func Render(ctx context.Context, c templ.Component) ([]byte, error) {
	var buffer bytes.Buffer

	if err := c.Render(ctx, &buffer); err != nil {
		return nil, fmt.Errorf("templ: failed to render component: %w", err)
	}

	return buffer.Bytes(), nil
}

// RenderToString converts a templ.Component to its string representation.
//
// Handling errors in templates is awkward, so if an error occurs during rendering,
// it is formatted into a string and returned.
func RenderToString(c templ.Component) string {
	b, err := Render(context.Background(), c)
	if err != nil {
		return err.Error()
	}

	return string(b)
}
