// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"os"
	"strings"
)

// LoadProxies reads the newline-delimited proxy list at path. Blank lines
// and lines starting with '#' are ignored. A missing or unreadable file is
// not an error condition for the application — the caller falls back to
// direct connections — so it is reported through the error return and left
// to the caller to log as a warning.
func LoadProxies(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var proxies []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return proxies, nil
}
