// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The package consolidates the 3-step CUE parsing pattern used by the
// manifest and config packages:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// # Usage
//
//	//go:embed manifest_schema.cue
//	var schemaStr string
//
//	result, err := cueutil.ParseAndDecodeString[Manifest](
//	    schemaStr,
//	    fileBytes,
//	    "#Manifest",
//	    cueutil.WithFilename("plugin.cue"),
//	)
//	if err != nil {
//	    return nil, err // error includes the CUE path to the invalid field
//	}
//	return result.Value, nil
package cueutil
