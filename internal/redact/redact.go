// Copyright 2026 The Docsmith Authors
// SPDX-License-Identifier: MIT

// Package redact strips provider credentials from strings before they
// appear in CLI output, logs, or error messages. Provider SDK errors can
// echo request headers, so anything printed on an error path goes
// through here first.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output. Add new entries here as providers are added.
var sensitiveEnvVars = []string{
	"OPENAI_API_KEY",
	"ANTHROPIC_API_KEY",
	"OPENROUTER_API_KEY",
}

var (
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// resetCache clears the cached secrets. Used by tests that change env vars
// between calls.
func resetCache() {
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// ResetForTest clears the cached secrets so tests in other packages can
// verify redaction behavior after setting env vars with t.Setenv.
func ResetForTest() { resetCache() }

// String replaces any occurrence of a known credential value with
// "[REDACTED]". Returns the original string if no secrets are found.
// Secret values are cached on first call.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}
