package render

import (
	"strings"
	"testing"

	"folioswift/internal/portfolio"
)

// testDocument 构造一份各区块都有内容的文档。
func testDocument() portfolio.Document {
	doc := portfolio.Default()
	doc.Name = "Ada Lovelace"
	doc.Subheading = "Analytical Engine Programmer"
	doc.Bio = "I write programs for machines that do not exist yet."
	doc.Education = "University of London"
	doc.Skills = "Go, SQL, Distributed Systems"
	doc.SoftSkills = "Mentoring, Writing"
	doc.Email = "ada@example.com"
	doc.Phone = "+44 20 7946 0000"
	doc.GitHub = "https://github.com/ada"
	doc.Resume = "https://example.com/ada.pdf"
	doc.VSLURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	doc.Projects = []portfolio.Project{
		{Title: "Note G", Description: "The first published computer program.",
			Links: []portfolio.Link{{Label: "GitHub", URL: "https://github.com/ada/note-g"}}},
	}
	doc.Experiences = []portfolio.Experience{
		{Role: "Mathematician", Company: "Royal Society", Period: "1833-1852", Description: "Foundational work."},
	}
	doc.Achievements = []portfolio.Achievement{{Title: "First Programmer", Description: "Recognized posthumously."}}
	doc.Certifications = []portfolio.Certification{{Title: "Analytical Methods", Issuer: "Royal Society", Date: "1843"}}
	doc.Gallery = []portfolio.GalleryItem{{Image: "https://example.com/a.jpg", Caption: "Engine"}}
	return doc
}

func sectionIDs(page *Page) []portfolio.SectionID {
	var all []*Section
	if page.Bento != nil {
		all = append(all, page.Bento.Lead...)
		// 左右列按渲染顺序重新交错还原。
		l, r := page.Bento.Left, page.Bento.Right
		for i := 0; i < len(l) || i < len(r); i++ {
			if i < len(l) {
				all = append(all, l[i])
			}
			if i < len(r) {
				all = append(all, r[i])
			}
		}
	} else {
		all = page.Sections
	}
	ids := make([]portfolio.SectionID, len(all))
	for i, s := range all {
		ids[i] = s.ID
	}
	return ids
}

func TestComposeIdempotent(t *testing.T) {
	doc := testDocument()
	first, err := Compose(doc, Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	second, err := Compose(doc, Options{})
	if err != nil {
		t.Fatalf("compose again: %v", err)
	}

	a, b := sectionIDs(first), sectionIDs(second)
	if len(a) != len(b) {
		t.Fatalf("section counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("section %d differs: %s vs %s", i, a[i], b[i])
		}
	}
	h1, err := first.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	h2, err := second.Render()
	if err != nil {
		t.Fatalf("render again: %v", err)
	}
	if h1 != h2 {
		t.Error("rendered html differs between identical compositions")
	}
}

func TestComposeDoesNotMutateInput(t *testing.T) {
	doc := testDocument()
	doc.SectionOrder = []portfolio.SectionID{portfolio.SectionContact, "bogus"}
	if _, err := Compose(doc, Options{}); err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(doc.SectionOrder) != 2 || doc.SectionOrder[1] != "bogus" {
		t.Errorf("caller document mutated: %v", doc.SectionOrder)
	}
}

func TestComposePresenceGuards(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*portfolio.Document)
		absent  portfolio.SectionID
		present bool
	}{
		{"empty projects skipped", func(d *portfolio.Document) { d.Projects = nil }, portfolio.SectionProjects, false},
		{"one project rendered", func(d *portfolio.Document) {}, portfolio.SectionProjects, true},
		{"empty resume skipped", func(d *portfolio.Document) { d.Resume = "" }, portfolio.SectionResume, false},
		{"resume url rendered", func(d *portfolio.Document) { d.Resume = "http://x/y.pdf" }, portfolio.SectionResume, true},
		{"empty bio skipped", func(d *portfolio.Document) { d.Bio = "  " }, portfolio.SectionAbout, false},
		{"no skills skipped", func(d *portfolio.Document) { d.Skills, d.SoftSkills = "", " , " }, portfolio.SectionSkills, false},
		{"empty gallery skipped", func(d *portfolio.Document) { d.Gallery = nil }, portfolio.SectionGallery, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := testDocument()
			doc.Settings.BentoView = false
			tc.mutate(&doc)
			page, err := Compose(doc, Options{})
			if err != nil {
				t.Fatalf("compose: %v", err)
			}
			found := false
			for _, id := range sectionIDs(page) {
				if id == tc.absent {
					found = true
				}
			}
			if found != tc.present {
				t.Errorf("section %s present = %v, want %v", tc.absent, found, tc.present)
			}
		})
	}
}

func TestComposeVSLGuard(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		present bool
	}{
		{"watch url renders", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"short url renders", "https://youtu.be/dQw4w9WgXcQ", true},
		{"non-video absent", "https://example.com/not-a-video", false},
		{"short id absent", "https://www.youtube.com/watch?v=dQw4w9WgXc", false},
		{"empty absent", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := testDocument()
			doc.Settings.BentoView = false
			doc.VSLURL = tc.url
			page, err := Compose(doc, Options{})
			if err != nil {
				t.Fatalf("compose: %v", err)
			}
			found := false
			for _, sec := range page.Sections {
				if sec.ID == portfolio.SectionVSL {
					found = true
					if !strings.Contains(string(sec.Body), "youtube.com/embed/dQw4w9WgXcQ") {
						t.Errorf("embed url missing from body: %s", sec.Body)
					}
				}
			}
			if found != tc.present {
				t.Errorf("vsl present = %v, want %v", found, tc.present)
			}
		})
	}
}

func TestComposeVSLEmbedParams(t *testing.T) {
	doc := testDocument()
	doc.Settings.BentoView = false
	doc.VSLAutoplay = true
	doc.VSLShowPlayer = false
	page, err := Compose(doc, Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	for _, sec := range page.Sections {
		if sec.ID == portfolio.SectionVSL {
			if !strings.Contains(string(sec.Body), "autoplay=1") || !strings.Contains(string(sec.Body), "controls=0") {
				t.Errorf("embed params not mapped: %s", sec.Body)
			}
			return
		}
	}
	t.Fatal("vsl section missing")
}

func TestComposeBentoParitySplit(t *testing.T) {
	doc := testDocument()
	doc.VSLURL = ""
	doc.Settings.UIStyle = portfolio.StyleGlass
	doc.Settings.BentoView = true
	doc.SectionOrder = []portfolio.SectionID{
		portfolio.SectionAbout, portfolio.SectionSkills, portfolio.SectionExperience,
		portfolio.SectionProjects, portfolio.SectionGallery,
	}
	// 归一化会把缺的区块补到末尾，把它们的数据清掉以免干扰拆分断言。
	doc.Achievements = nil
	doc.Certifications = nil
	doc.Resume = ""
	doc.Phone, doc.Email, doc.GitHub = "", "", ""

	page, err := Compose(doc, Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if page.Bento == nil {
		t.Fatal("bento layout expected for glass with bentoView on")
	}
	if len(page.Bento.Lead) != 1 || page.Bento.Lead[0].ID != portfolio.SectionAbout {
		t.Fatalf("lead = %v, want [about]", sectionNames(page.Bento.Lead))
	}
	wantLeft := []portfolio.SectionID{portfolio.SectionSkills, portfolio.SectionProjects}
	wantRight := []portfolio.SectionID{portfolio.SectionExperience, portfolio.SectionGallery}
	assertColumn(t, "left", page.Bento.Left, wantLeft)
	assertColumn(t, "right", page.Bento.Right, wantRight)
}

func sectionNames(secs []*Section) []portfolio.SectionID {
	out := make([]portfolio.SectionID, len(secs))
	for i, s := range secs {
		out[i] = s.ID
	}
	return out
}

func assertColumn(t *testing.T, label string, got []*Section, want []portfolio.SectionID) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s column = %v, want %v", label, sectionNames(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("%s[%d] = %s, want %s", label, i, got[i].ID, want[i])
		}
	}
}

func TestComposeBentoRequiresCapableVibe(t *testing.T) {
	doc := testDocument()
	doc.Settings.BentoView = true
	doc.Settings.UIStyle = portfolio.StyleSwiss
	page, err := Compose(doc, Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if page.Bento != nil {
		t.Error("swiss must not produce a bento layout")
	}
}

func TestComposeNav(t *testing.T) {
	doc := testDocument()
	page, err := Compose(doc, Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(page.Nav) == 0 {
		t.Fatal("nav expected when navbarEnabled")
	}
	if len(page.Nav) > maxNavItems {
		t.Errorf("nav has %d items, cap is %d", len(page.Nav), maxNavItems)
	}
	rendered := map[portfolio.SectionID]bool{}
	for _, id := range sectionIDs(page) {
		rendered[id] = true
	}
	for _, item := range page.Nav {
		if !rendered[item.ID] {
			t.Errorf("nav lists %s which did not render", item.ID)
		}
	}

	doc.NavbarEnabled = false
	page, err = Compose(doc, Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(page.Nav) != 0 {
		t.Error("nav must be empty when navbar disabled")
	}
}

func TestComposeCustomTitlesAndOrder(t *testing.T) {
	doc := testDocument()
	doc.Settings.BentoView = false
	doc.SectionTitles = map[portfolio.SectionID]string{portfolio.SectionProjects: "Things I Built"}
	doc.SectionOrder = []portfolio.SectionID{portfolio.SectionProjects, portfolio.SectionAbout}
	page, err := Compose(doc, Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	ids := sectionIDs(page)
	if ids[0] != portfolio.SectionProjects || ids[1] != portfolio.SectionAbout {
		t.Errorf("user order not honored: %v", ids)
	}
	for _, sec := range page.Sections {
		if sec.ID == portfolio.SectionProjects && sec.Title != "Things I Built" {
			t.Errorf("title override ignored: %q", sec.Title)
		}
		if sec.ID == portfolio.SectionAbout && sec.Title != "About" {
			t.Errorf("default title wrong: %q", sec.Title)
		}
	}
}

func TestPageRender(t *testing.T) {
	doc := testDocument()
	page, err := Compose(doc, Options{ScrollContainerID: "preview-scroll-container"})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	html, err := page.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"Ada Lovelace",
		"preview-scroll-container",
		"IntersectionObserver",
		"rootMargin: '0px 0px -50px 0px'",
		"threshold: 0.1",
		"translateY(80px)", // 默认动画 slide-up 的隐藏态
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestComposeContactWhatsApp(t *testing.T) {
	doc := testDocument()
	doc.Settings.BentoView = false
	doc.WhatsApp = "+44 (20) 7946-0000"
	page, err := Compose(doc, Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	for _, sec := range page.Sections {
		if sec.ID == portfolio.SectionContact {
			if !strings.Contains(string(sec.Body), "https://wa.me/442079460000") {
				t.Errorf("whatsapp link not transformed: %s", sec.Body)
			}
			return
		}
	}
	t.Fatal("contact section missing")
}

func TestLinkIcon(t *testing.T) {
	cases := []struct{ label, want string }{
		{"GitHub", "github"},
		{"youtube", "youtube"},
		{"Instagram", "instagram"},
		{"FACEBOOK", "facebook"},
		{"My Blog", "link"},
		{"", "link"},
	}
	for _, tc := range cases {
		if got := linkIcon(tc.label); got != tc.want {
			t.Errorf("linkIcon(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}
