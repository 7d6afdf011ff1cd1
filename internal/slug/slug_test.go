// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Tree Restoration & Refurbishment!", "tree-restoration-refurbishment"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-Slugged", "already-slugged"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"UPPER case", "upper-case"},
		{"numbers 123 ok", "numbers-123-ok"},
		{"!!!", ""},
		{"", ""},
		{"Green Walls (Indoor)", "green-walls-indoor"},
	}

	for _, tt := range tests {
		if got := Generate(tt.in); got != tt.want {
			t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
