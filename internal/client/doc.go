// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the credit-risk
// gateway.
//
// Each subcommand maps to one gateway call made through
// [adapter.ServerAdapter]; results are rendered with lipgloss.
package client
