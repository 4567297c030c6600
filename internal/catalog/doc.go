// SPDX-License-Identifier: MPL-2.0

// Package catalog discovers plugin manifests on disk and builds the
// descriptor catalog handed to resolution. It also provides the
// TOML-backed disabled-plugin store.
package catalog
