package render

import (
	"testing"

	"folioswift/internal/portfolio"
)

func TestResolveSectionStyleInheritsGlobals(t *testing.T) {
	s := portfolio.Default().Settings
	s.BackgroundColor = "#111111"
	s.TextColor = "#222222"
	s.HeadingColor = "#333333"

	got := ResolveSectionStyle(&s, portfolio.SectionProjects)
	if got.Background != "#111111" || got.Text != "#222222" || got.Heading != "#333333" {
		t.Errorf("unexpected resolved style: %+v", got)
	}
	if got.HeadingFont != string(s.HeadingFont) || got.BodyFont != string(s.BodyFont) {
		t.Errorf("fonts must always be global: %+v", got)
	}
}

func TestResolveSectionStylePartialOverride(t *testing.T) {
	s := portfolio.Default().Settings
	s.TextColor = "#222222"
	s.HeadingColor = "#333333"
	s.SectionColors["about"] = portfolio.SectionColor{Background: "#abcdef"}

	got := ResolveSectionStyle(&s, portfolio.SectionAbout)
	if got.Background != "#abcdef" {
		t.Errorf("background override not applied: %q", got.Background)
	}
	if got.Text != "#222222" || got.Heading != "#333333" {
		t.Errorf("unoverridden fields must fall back to globals: %+v", got)
	}
}

func TestResolveSectionStyleFullOverride(t *testing.T) {
	s := portfolio.Default().Settings
	s.SectionColors["skills"] = portfolio.SectionColor{
		Background: "#000001", Text: "#000002", Heading: "#000003",
	}
	got := ResolveSectionStyle(&s, portfolio.SectionSkills)
	if got.Background != "#000001" || got.Text != "#000002" || got.Heading != "#000003" {
		t.Errorf("full override not applied: %+v", got)
	}
}

func TestResolveVibe(t *testing.T) {
	cases := []struct {
		style portfolio.UIStyle
		want  portfolio.UIStyle
	}{
		{portfolio.StyleGlass, portfolio.StyleGlass},
		{portfolio.StyleMinimal, portfolio.StyleMinimal},
		{portfolio.StyleNeobrutal, portfolio.StyleNeobrutal},
		{portfolio.StyleSwiss, portfolio.StyleSwiss},
		{portfolio.StyleNeon, portfolio.StyleNeon},
		{portfolio.StyleEditorial, portfolio.StyleEditorial},
		{"Vaporwave", portfolio.StyleGlass},
		{"", portfolio.StyleGlass},
	}
	for _, tc := range cases {
		if got := ResolveVibe(tc.style); got.Name != tc.want {
			t.Errorf("ResolveVibe(%q).Name = %q, want %q", tc.style, got.Name, tc.want)
		}
	}
}

func TestVibeSpanClass(t *testing.T) {
	glass := ResolveVibe(portfolio.StyleGlass)
	if got := glass.SpanClass(portfolio.SectionAbout); got != "md:col-span-2" {
		t.Errorf("glass about span = %q", got)
	}
	if got := glass.SpanClass(portfolio.SectionVSL); got != "md:col-span-2" {
		t.Errorf("glass vsl span = %q, vsl must always span full width", got)
	}
	if got := glass.SpanClass(portfolio.SectionSkills); got != "" {
		t.Errorf("glass skills span = %q, want empty", got)
	}

	swiss := ResolveVibe(portfolio.StyleSwiss)
	if !swiss.FlatGrid {
		t.Fatal("swiss must require the flat 12-column grid")
	}
	if got := swiss.SpanClass(portfolio.SectionProjects); got != "md:col-span-8" {
		t.Errorf("swiss projects span = %q", got)
	}
	if got := swiss.SpanClass(portfolio.SectionGallery); got != "md:col-span-4" {
		t.Errorf("swiss gallery span = %q", got)
	}
	if got := swiss.SpanClass(portfolio.SectionVSL); got != "md:col-span-12" {
		t.Errorf("swiss vsl span = %q", got)
	}

	if !ResolveVibe(portfolio.StyleNeobrutal).BentoCapable {
		t.Error("neobrutal must be bento capable")
	}
	if ResolveVibe(portfolio.StyleSwiss).BentoCapable {
		t.Error("swiss must not be bento capable")
	}
}

func TestHiddenStateCSS(t *testing.T) {
	if got := HiddenStateCSS(portfolio.AnimationNone); got != "" {
		t.Errorf("none must have no hidden state, got %q", got)
	}
	for _, a := range []portfolio.Animation{
		portfolio.AnimationFade, portfolio.AnimationSlideUp, portfolio.AnimationScaleIn,
		portfolio.AnimationBlurIn, portfolio.AnimationBounce, portfolio.AnimationSkewIn,
		portfolio.AnimationFlip,
	} {
		if got := HiddenStateCSS(a); got == "" {
			t.Errorf("animation %q has no hidden-state css", a)
		}
	}
	if got := HiddenStateCSS("wobble"); got != "" {
		t.Errorf("unknown animation must behave like none, got %q", got)
	}
}
