// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version exposes build version information.
package version

// Version is the application version, overridden at build time via ldflags.
var Version = "dev"
