package render

import (
	"strings"
	"testing"

	"folioswift/internal/portfolio"
)

func TestExportFilename(t *testing.T) {
	cases := []struct{ name, want string }{
		{"Ada Lovelace", "adalovelace-portfolio.html"},
		{"  Grace   Hopper ", "gracehopper-portfolio.html"},
		{"ada", "ada-portfolio.html"},
		{"", "-portfolio.html"},
	}
	for _, tc := range cases {
		if got := ExportFilename(tc.name); got != tc.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestExportStandaloneCoverage(t *testing.T) {
	doc := testDocument()
	html, err := ExportStandalone(doc)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Ada Lovelace",
		"I write programs for machines that do not exist yet.",
		"Distributed Systems",
		"Mentoring",
		"Note G",
		"youtube.com/embed/dQw4w9WgXcQ",
		"cdn.tailwindcss.com",
		"fonts.googleapis.com",
		"IntersectionObserver",
		"translateY(80px)",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("export missing %q", want)
		}
	}
	// 导出只覆盖 header/vsl/about/skills/projects 子集。
	for _, absent := range []string{"1833-1852", "Analytical Methods"} {
		if strings.Contains(html, absent) {
			t.Errorf("export unexpectedly contains %q", absent)
		}
	}
}

func TestExportCardClass(t *testing.T) {
	cases := []struct {
		style portfolio.UIStyle
		want  string
	}{
		{portfolio.StyleGlass, "glass"},
		{portfolio.StyleMinimal, "minimal"},
		{portfolio.StyleNeobrutal, "neobrutal"},
		{portfolio.StyleSwiss, "elegant"},
		{portfolio.StyleNeon, "elegant"},
		{portfolio.StyleEditorial, "elegant"},
	}
	for _, tc := range cases {
		if got := exportCardClass(tc.style); got != tc.want {
			t.Errorf("exportCardClass(%q) = %q, want %q", tc.style, got, tc.want)
		}
	}
}

func TestExportDarkTheme(t *testing.T) {
	doc := testDocument()
	doc.Settings.Theme = portfolio.ThemeDark
	html, err := ExportStandalone(doc)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(html, "bg-slate-950") {
		t.Error("dark theme body class missing")
	}

	doc.Settings.Theme = portfolio.ThemeLight
	html, err = ExportStandalone(doc)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(html, "bg-slate-50") {
		t.Error("light theme body class missing")
	}
}

func TestExportSkipsGuardedSections(t *testing.T) {
	doc := testDocument()
	doc.VSLURL = "https://example.com/not-a-video"
	doc.Projects = nil
	html, err := ExportStandalone(doc)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.Contains(html, "youtube.com/embed") {
		t.Error("vsl must not export without a valid video id")
	}
	if strings.Contains(html, "Selected Works") {
		t.Error("projects section must not export when empty")
	}
}
