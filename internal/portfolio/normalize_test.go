package portfolio

import (
	"reflect"
	"testing"
)

func TestNormalizeSectionOrder(t *testing.T) {
	cases := []struct {
		name string
		in   []SectionID
		want []SectionID
	}{
		{
			name: "empty order gets full default",
			in:   nil,
			want: DefaultSectionOrder,
		},
		{
			name: "user order preserved, missing appended",
			in:   []SectionID{SectionProjects, SectionAbout},
			want: []SectionID{
				SectionProjects, SectionAbout,
				SectionVSL, SectionSkills, SectionExperience,
				SectionAchievements, SectionCertifications,
				SectionGallery, SectionResume, SectionContact,
			},
		},
		{
			name: "unknown kinds dropped",
			in:   []SectionID{SectionAbout, "sponsors", SectionContact},
			want: []SectionID{
				SectionAbout, SectionContact,
				SectionVSL, SectionSkills, SectionExperience,
				SectionProjects, SectionAchievements, SectionCertifications,
				SectionGallery, SectionResume,
			},
		},
		{
			name: "duplicates collapsed to first occurrence",
			in:   []SectionID{SectionAbout, SectionAbout, SectionSkills},
			want: []SectionID{
				SectionAbout, SectionSkills,
				SectionVSL, SectionExperience, SectionProjects,
				SectionAchievements, SectionCertifications,
				SectionGallery, SectionResume, SectionContact,
			},
		},
		{
			name: "education kept where the user put it",
			in:   []SectionID{SectionEducation, SectionAbout},
			want: []SectionID{
				SectionEducation, SectionAbout,
				SectionVSL, SectionSkills, SectionExperience,
				SectionProjects, SectionAchievements, SectionCertifications,
				SectionGallery, SectionResume, SectionContact,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Default()
			doc.SectionOrder = tc.in
			Normalize(&doc)
			if !reflect.DeepEqual(doc.SectionOrder, tc.want) {
				t.Errorf("order = %v, want %v", doc.SectionOrder, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	doc := Default()
	doc.SectionOrder = []SectionID{SectionContact, "bogus", SectionVSL}
	doc.Settings.Animation = ""
	doc.Settings.PrimaryColor = ""

	Normalize(&doc)
	first := doc
	firstOrder := append([]SectionID(nil), doc.SectionOrder...)

	Normalize(&doc)
	if !reflect.DeepEqual(doc.SectionOrder, firstOrder) {
		t.Errorf("second pass changed order: %v vs %v", doc.SectionOrder, firstOrder)
	}
	if !reflect.DeepEqual(doc.Settings, first.Settings) {
		t.Errorf("second pass changed settings")
	}
}

func TestNormalizeFillsSettingsDefaults(t *testing.T) {
	doc := Document{}
	Normalize(&doc)

	def := Default().Settings
	if doc.Settings.Animation != def.Animation {
		t.Errorf("animation = %q, want %q", doc.Settings.Animation, def.Animation)
	}
	if doc.Settings.UIStyle != def.UIStyle {
		t.Errorf("uiStyle = %q, want %q", doc.Settings.UIStyle, def.UIStyle)
	}
	if doc.Settings.PrimaryColor != def.PrimaryColor {
		t.Errorf("primaryColor = %q, want %q", doc.Settings.PrimaryColor, def.PrimaryColor)
	}
	if doc.Settings.SectionColors == nil {
		t.Error("sectionColors not initialized")
	}
	if doc.SectionTitles == nil {
		t.Error("sectionTitles not initialized")
	}
}

func TestNormalizeKeepsUserColors(t *testing.T) {
	doc := Default()
	doc.Settings.PrimaryColor = "#ff0000"
	doc.Settings.SectionColors["about"] = SectionColor{Background: "#000000"}
	Normalize(&doc)
	if doc.Settings.PrimaryColor != "#ff0000" {
		t.Errorf("user primary color overwritten: %q", doc.Settings.PrimaryColor)
	}
	if doc.Settings.SectionColors["about"].Background != "#000000" {
		t.Errorf("section color overwritten")
	}
}
