// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"os"
	"strings"
)

var (
	containerMarkerFiles = []string{"/.dockerenv", "/.containerenv"}
	// Substrings of /proc/self/cgroup written by common runtimes. ".machine" is systemd-nspawn.
	containerCgroupHints = []string{"docker", "kubepods", "containerd", "lxc", "crio", ".machine"}
)

func isWildcardHost(host string) bool {
	return host == "0.0.0.0" || host == "::"
}

// isContainerized guesses whether the process runs inside a container.
func isContainerized() bool {
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}

	for _, path := range containerMarkerFiles {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}

	cgroup, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}

	for _, hint := range containerCgroupHints {
		if strings.Contains(string(cgroup), hint) {
			return true
		}
	}

	return false
}
