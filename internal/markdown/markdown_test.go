// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	html, err := ToHTML("## Maintenance\n\nWe visit **monthly**.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<h2") {
		t.Errorf("heading not rendered: %s", html)
	}
	if !strings.Contains(html, "<strong>monthly</strong>") {
		t.Errorf("bold not rendered: %s", html)
	}
}

func TestToHTMLTables(t *testing.T) {
	src := "| Plan | Visits |\n|------|--------|\n| Basic | 1/mo |\n"
	html, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("GFM table not rendered: %s", html)
	}
}

func TestToHTMLEmpty(t *testing.T) {
	html, err := ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.TrimSpace(html) != "" {
		t.Errorf("empty source produced %q", html)
	}
}
