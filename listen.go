// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/user"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/pypeclub/openpype-website/config"
)

var (
	errChmodSocket = errors.New("failed to change unix socket permissions")
	errChownSocket = errors.New("failed to change unix socket ownership")
)

// listen opens the unix socket when one is configured and a TCP listener otherwise.
func listen(ctx context.Context, cfg *config.ServerConfig) (net.Listener, error) {
	var lc net.ListenConfig

	if path := cfg.Basic.UnixSocket; path != "" {
		ln, err := lc.Listen(ctx, "unix", path)
		if err != nil {
			return nil, fmt.Errorf("failed to start Unix socket listener on %v: %w", path, err)
		}

		if err := prepareSocket(cfg); err != nil {
			_ = ln.Close()

			return nil, err
		}

		log.Info().Str("address", path).Msg("Listening on Unix domain socket")

		return ln, nil
	}

	ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort(cfg.Basic.Host, cfg.Basic.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener: %w", err)
	}

	addr := ln.Addr().String()

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		_ = ln.Close()

		return nil, fmt.Errorf("failed to parse listener address %q: %w", addr, err)
	}

	log.Info().
		Str("address", addr).
		Str("url", "http://localhost:"+port+cfg.SiteConfig().BaseURL).
		Msg("Listening on address")

	return ln, nil
}

// prepareSocket applies the configured owner and mode to the socket file.
func prepareSocket(cfg *config.ServerConfig) error {
	basic := cfg.Basic

	uid, err := resolveID(basic.UnixSocketUser, func(name string) (string, error) {
		u, err := user.Lookup(name)
		if err != nil {
			return "", err
		}

		return u.Uid, nil
	})
	if err != nil {
		return fmt.Errorf("unix socket user %q: %w", basic.UnixSocketUser, err)
	}

	gid, err := resolveID(basic.UnixSocketGroup, func(name string) (string, error) {
		g, err := user.LookupGroup(name)
		if err != nil {
			return "", err
		}

		return g.Gid, nil
	})
	if err != nil {
		return fmt.Errorf("unix socket group %q: %w", basic.UnixSocketGroup, err)
	}

	if uid != -1 || gid != -1 {
		if err := os.Chown(basic.UnixSocket, uid, gid); err != nil {
			return fmt.Errorf("%w: %w", errChownSocket, err)
		}
	}

	if err := os.Chmod(basic.UnixSocket, basic.UnixSocketPermissions); err != nil {
		return fmt.Errorf("%w: %w", errChmodSocket, err)
	}

	return nil
}

// resolveID turns a numeric ID or an account name into a numeric ID.
// An empty value yields -1, which os.Chown leaves unchanged.
func resolveID(value string, lookup func(name string) (string, error)) (int, error) {
	if value == "" {
		return -1, nil
	}

	if id, err := strconv.Atoi(value); err == nil {
		return id, nil
	}

	raw, err := lookup(value)
	if err != nil {
		return -1, err
	}

	return strconv.Atoi(raw)
}
