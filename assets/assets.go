// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package assets embeds the screen fragments served under views/.
package assets

import "embed"

// Views holds views/*.html, one fragment per route.
//
//go:embed views/*.html
var Views embed.FS
