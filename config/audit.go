// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFilePermissions = 0o666

// setupAudit points the global logger at the configured outputs. The level
// stays at debug while developing.
func (cfg *ServerConfig) setupAudit() {
	if !cfg.Development.InDevelopment {
		if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil && level != zerolog.NoLevel {
			zerolog.SetGlobalLevel(level)
		}
	}

	var writers []io.Writer

	for _, output := range cfg.Log.Outputs {
		w, err := cfg.openLogOutput(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", output, err)

			continue
		}

		writers = append(writers, w)
	}

	if len(writers) == 0 {
		writers = []io.Writer{ConsoleWriter(os.Stderr)}
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
}

// openLogOutput returns a console writer for the stdio pseudo-paths. Other
// paths are opened for append and honor Log.Format.
func (cfg *ServerConfig) openLogOutput(output string) (io.Writer, error) {
	if stdio, ok := map[string]*os.File{"/dev/stdout": os.Stdout, "/dev/stderr": os.Stderr}[output]; ok {
		return ConsoleWriter(stdio), nil
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec:G302,G304
	if err != nil {
		return nil, err
	}

	if cfg.Log.Format == "json" {
		return file, nil
	}

	return ConsoleWriter(file), nil
}

// ConsoleWriter returns a human readable writer for f. On a terminal,
// colors are on and span events are collapsed into a single line.
func ConsoleWriter(f *os.File) io.Writer {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())

	w := zerolog.ConsoleWriter{Out: f, NoColor: !tty, TimeFormat: time.DateTime}
	if tty {
		w.FormatPrepare = collapseSpan
	}

	return w
}

// collapseSpan rewrites an audit span event into "<status> <method> <url>"
// for HTTP, or "<method> <path>" for the exporter.
func collapseSpan(m map[string]any) error {
	switch m["sys"] {
	case "http":
		m["message"] = fmt.Sprintf("%v %-5v %v", m["status_code"], m["method"], m["url"])
		deleteKeys(m, "sys", "method", "status_code", "url", "request_id")
	case "export":
		m["message"] = fmt.Sprintf("%-5v %v", m["method"], m["path"])
		deleteKeys(m, "sys", "method", "path")
	}

	return nil
}

func deleteKeys(m map[string]any, keys ...string) {
	for _, k := range keys {
		delete(m, k)
	}
}
