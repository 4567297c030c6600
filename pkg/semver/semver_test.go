// SPDX-License-Identifier: MPL-2.0

package semver

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		major   int
		minor   int
		patch   int
		pre     string
		wantErr bool
	}{
		{input: "1.2.3", major: 1, minor: 2, patch: 3},
		{input: "v2.0.1", major: 2, patch: 1},
		{input: "0.9", minor: 9},
		{input: "3", major: 3},
		{input: "1.0.0-alpha.1", major: 1, pre: "alpha.1"},
		{input: "1.0.0+build.5", major: 1},
		{input: "not-a-version", wantErr: true},
		{input: "", wantErr: true},
		{input: "1.2.x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, v)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Major != tt.major || v.Minor != tt.minor || v.Patch != tt.patch || v.Prerelease != tt.pre {
				t.Errorf("Parse(%q) = %d.%d.%d-%s, want %d.%d.%d-%s",
					tt.input, v.Major, v.Minor, v.Patch, v.Prerelease,
					tt.major, tt.minor, tt.patch, tt.pre)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2.0", "1.10.0", -1},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0", "1.0.0-beta", 1},
		{"1.0.0-alpha", "1.0.0-beta", -1},
	}

	for _, tt := range tests {
		got := MustParse(tt.a).Compare(MustParse(tt.b))
		if got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestConstraintMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		constraint string
		version    string
		want       bool
	}{
		{"=1.2.3", "1.2.3", true},
		{"1.2.3", "1.2.3", true},
		{"1.2.3", "1.2.4", false},
		{"^1.2.3", "1.9.0", true},
		{"^1.2.3", "2.0.0", false},
		{"^1.2.3", "1.2.2", false},
		{"^0.2.3", "0.2.9", true},
		{"^0.2.3", "0.3.0", false},
		{"^0.0.3", "0.0.3", true},
		{"^0.0.3", "0.0.4", false},
		{"~1.2.3", "1.2.9", true},
		{"~1.2.3", "1.3.0", false},
		{">1.0.0", "1.0.1", true},
		{">1.0.0", "1.0.0", false},
		{">=1.0.0", "1.0.0", true},
		{"<2.0.0", "1.9.9", true},
		{"<=2.0.0", "2.0.0", true},
	}

	for _, tt := range tests {
		c, err := ParseConstraint(tt.constraint)
		if err != nil {
			t.Fatalf("ParseConstraint(%q): %v", tt.constraint, err)
		}
		if got := c.Matches(MustParse(tt.version)); got != tt.want {
			t.Errorf("%q.Matches(%s) = %v, want %v", tt.constraint, tt.version, got, tt.want)
		}
	}
}

func TestParseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr    string
		version string
		want    bool
		wantErr bool
	}{
		{expr: ">=1.0.0 <2.0.0", version: "1.5.0", want: true},
		{expr: ">=1.0.0 <2.0.0", version: "2.0.0", want: false},
		{expr: ">=1.0.0 <2.0.0", version: "0.9.0", want: false},
		{expr: ">=1.0.0", version: "3.0.0", want: true},
		{expr: "^1.0.0", version: "1.1.0", want: true},
		{expr: "", wantErr: true},
		{expr: ">=x.y", wantErr: true},
	}

	for _, tt := range tests {
		r, err := ParseRange(tt.expr)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRange(%q): expected error", tt.expr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRange(%q): %v", tt.expr, err)
		}
		if got := r.Matches(MustParse(tt.version)); got != tt.want {
			t.Errorf("%q.Matches(%s) = %v, want %v", tt.expr, tt.version, got, tt.want)
		}
	}
}

func TestSortDescending(t *testing.T) {
	t.Parallel()

	versions := []*Version{
		MustParse("1.0.0"),
		MustParse("2.1.0"),
		MustParse("0.9.0"),
		MustParse("2.1.0-rc.1"),
	}
	SortDescending(versions)

	want := []string{"2.1.0", "2.1.0-rc.1", "1.0.0", "0.9.0"}
	for i, w := range want {
		if versions[i].Original != w {
			t.Errorf("position %d: got %s, want %s", i, versions[i].Original, w)
		}
	}
}
