// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Thing: {
	name:  string & !=""
	count: int & >=0
}
`

type thing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	res, err := ParseAndDecodeString[thing](testSchema, []byte(`
name:  "widget"
count: 3
`), "#Thing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value.Name != "widget" || res.Value.Count != 3 {
		t.Errorf("decoded = %+v", res.Value)
	}
	if !res.Unified.Exists() {
		t.Error("unified value must be retained")
	}
}

func TestParseAndDecodeRejectsSchemaViolation(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecodeString[thing](testSchema, []byte(`
name:  "widget"
count: -1
`), "#Thing", WithFilename("thing.cue"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "thing.cue") {
		t.Errorf("error must carry the filename: %v", err)
	}
}

func TestParseAndDecodeRejectsMissingField(t *testing.T) {
	t.Parallel()

	if _, err := ParseAndDecodeString[thing](testSchema, []byte(`name: "widget"`), "#Thing"); err == nil {
		t.Fatal("missing required field must fail concreteness")
	}
}

func TestParseAndDecodeWithoutConcrete(t *testing.T) {
	t.Parallel()

	// Optional-field validation: incomplete data passes when concreteness
	// is not required.
	if _, err := ParseAndDecodeString[thing](testSchema, []byte(`name: "widget"`), "#Thing", WithoutConcrete()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseAndDecodeSizeLimit(t *testing.T) {
	t.Parallel()

	data := []byte(`name: "widget"` + strings.Repeat(" ", 100) + "\ncount: 1\n")
	_, err := ParseAndDecodeString[thing](testSchema, data, "#Thing", WithMaxFileSize(16))
	if err == nil {
		t.Fatal("oversized input must be rejected")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("error = %v", err)
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "f"); err != nil {
		t.Errorf("at-limit data must pass: %v", err)
	}
	if err := CheckFileSize(make([]byte, 11), 10, "f"); err == nil {
		t.Error("over-limit data must fail")
	}
}
