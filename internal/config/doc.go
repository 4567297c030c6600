// SPDX-License-Identifier: MPL-2.0

// Package config loads plugorder configuration from CUE files layered
// over defaults and PLUGORDER_* environment variables.
package config
