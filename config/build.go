// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"runtime/debug"
	"strings"
)

// BuildVersion is the latest tagged release of the website server.
const BuildVersion string = "v1.0.0"

const shortRevisionLength = 8

// buildInfo holds the VCS stamp the Go toolchain embeds in the binary.
type buildInfo struct {
	VcsRevision string
	VcsTime     string
	VcsModified bool
}

// Revision formats the stamp as "<date>-<short hash>[+dirty]", or "unknown"
// for binaries built without VCS information.
func (b *buildInfo) Revision() string {
	if b.VcsRevision == "" {
		return "unknown"
	}

	date, _, _ := strings.Cut(b.VcsTime, "T")

	var sb strings.Builder

	sb.WriteString(date)
	sb.WriteByte('-')
	sb.WriteString(b.VcsRevision[:min(shortRevisionLength, len(b.VcsRevision))])

	if b.VcsModified {
		sb.WriteString("+dirty")
	}

	return sb.String()
}

func (b *buildInfo) load() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			b.VcsRevision = setting.Value
		case "vcs.time":
			b.VcsTime = setting.Value
		case "vcs.modified":
			b.VcsModified = setting.Value == "true"
		}
	}
}
