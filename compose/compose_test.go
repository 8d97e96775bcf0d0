package compose

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/cvpdf/contactcode"
	"github.com/lvillar/cvpdf/imageres"
	"github.com/lvillar/cvpdf/layout"
	"github.com/lvillar/cvpdf/resume"
)

type stubResolver struct {
	result imageres.Result
	paths  []string
}

func (s *stubResolver) Resolve(path string) imageres.Result {
	s.paths = append(s.paths, path)
	if path == "" {
		return imageres.Result{Placeholder: imageres.ReasonPhoto}
	}
	return s.result
}

func emptyDocument() *resume.Document {
	return &resume.Document{
		FullName:           "Jane Doe",
		CoreCompetencies:   []string{},
		Attachments:        []string{},
		WorkExperience:     []resume.WorkExperience{},
		DevelopmentEntries: []resume.Development{},
		LanguageSkills:     []resume.LanguageSkill{},
		HardSkills:         []string{},
		SoftSkills:         []string{},
	}
}

// findSection returns the content block of the section titled title.
func findSection(root layout.Fragment, title string) *layout.Stack {
	var found *layout.Stack
	layout.Walk(root, func(f layout.Fragment) bool {
		s, ok := f.(*layout.Stack)
		if !ok || found != nil || len(s.Items) != 2 {
			return found == nil
		}
		if t, ok := s.Items[0].(*layout.Text); ok && t.Content == title && t.Style == sectionStyle {
			found, _ = s.Items[1].(*layout.Stack)
			return false
		}
		return true
	})
	return found
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestSectionEmptyBuilderEmitsNothing(t *testing.T) {
	assert.Nil(t, Section("X", func() *layout.Stack { return &layout.Stack{} }))
	assert.Nil(t, Section("X", func() *layout.Stack { return nil }))
	assert.Nil(t, SkillCategory("X", func() *layout.Stack { return &layout.Stack{} }))
}

func TestSectionTitleThenContent(t *testing.T) {
	f := Section("Profile", func() *layout.Stack {
		return &layout.Stack{Items: []layout.Fragment{&layout.Text{Content: "body"}}}
	})
	require.NotNil(t, f)

	s := f.(*layout.Stack)
	assert.True(t, s.KeepHead)
	assert.Equal(t, float64(SectionGap), s.Spacing)
	assert.Equal(t, []string{"Profile", "body"}, layout.Texts(f))
}

func TestJoinSkills(t *testing.T) {
	assert.Equal(t, "Go, Rust, C++", JoinSkills([]string{"Go", "Rust", "C++"}))
	assert.Equal(t, "Go", JoinSkills([]string{"Go"}))
	assert.Equal(t, "b, a, b", JoinSkills([]string{"b", "a", "b"}), "no sorting or dedup")
	assert.Nil(t, SkillParagraph(nil))
}

func TestWorkEntry(t *testing.T) {
	f := WorkEntry(resume.WorkExperience{
		DateRange:        "2020 - now",
		JobTitle:         "SRE",
		Company:          "Acme",
		Responsibilities: []string{"pager", "toil", "postmortems"},
	})
	assert.Equal(t, []string{
		"2020 - now", "SRE", "Acme",
		Bullet, "pager", Bullet, "toil", Bullet, "postmortems",
	}, layout.Texts(f))

	entry := f.(*layout.Stack)
	require.Len(t, entry.Items, 2)
	inset, ok := entry.Items[1].(*layout.Inset)
	require.True(t, ok)
	assert.Equal(t, float64(ResponsibilityIndent), inset.Padding.Left)

	bare := WorkEntry(resume.WorkExperience{JobTitle: "Dev"}).(*layout.Stack)
	assert.Len(t, bare.Items, 1, "no list without responsibilities")
}

func TestDevelopmentEntryDetails(t *testing.T) {
	with := DevelopmentEntry(resume.Development{DateRange: "2021", TitleOrDescription: "CKA", Details: "passed"})
	assert.Equal(t, []string{"2021", "CKA", "passed"}, layout.Texts(with))

	without := DevelopmentEntry(resume.Development{TitleOrDescription: "CKA", Details: "  "})
	assert.Equal(t, []string{"", "CKA"}, layout.Texts(without))
}

func TestLanguageRowProportions(t *testing.T) {
	row := LanguageRow(resume.LanguageSkill{Language: "German", Level: "native"}).(*layout.Row)
	require.Len(t, row.Cells, 2)
	assert.Equal(t, layout.Relative(1), row.Cells[0].Width)
	assert.Equal(t, layout.Relative(2), row.Cells[1].Width)
	assert.Equal(t, []string{"German", "native"}, layout.Texts(row))
}

func TestComposeAllOptionalEmpty(t *testing.T) {
	photos := &stubResolver{}
	doc := New(photos).Compose(emptyDocument())

	assert.Contains(t, layout.Texts(doc.Header), DocumentTitle)
	assert.Contains(t, layout.Texts(doc.Content), "Jane Doe")
	assert.Equal(t, []string{"Page {page} of {pages}"}, layout.Texts(doc.Footer))
	assert.True(t, doc.Footer.(*layout.Text).PageFields)

	for _, title := range []string{
		"Profile", "Core Competencies", "Personal Data", "Attachments",
		"Work Experience", "Development and Education", "Skills and Knowledge",
	} {
		assert.Nil(t, findSection(doc.Content, title), title)
	}

	assert.Equal(t, []string{""}, photos.paths)
	assert.Contains(t, layout.Texts(doc.Content), "Photo")
}

func TestComposeDocumentSettings(t *testing.T) {
	d := emptyDocument()
	d.JobTitle = "Engineer"
	doc := New(&stubResolver{}, WithPageSize("Letter"), WithTitle("Lebenslauf")).Compose(d)

	assert.Equal(t, "Letter", doc.PageSize)
	assert.Equal(t, "Lebenslauf - Jane Doe", doc.Title)
	assert.Equal(t, "Jane Doe", doc.Author)
	assert.Equal(t, "Engineer", doc.Subject)
	assert.InDelta(t, 42.52, doc.Margins.Top, 0.01)
	assert.Contains(t, layout.Texts(doc.Header), "Lebenslauf")
}

func TestComposeContentGrid(t *testing.T) {
	doc := New(&stubResolver{}).Compose(emptyDocument())

	row, ok := doc.Content.(*layout.Row)
	require.True(t, ok)
	assert.True(t, row.Flow)
	require.Len(t, row.Cells, 4)
	assert.IsType(t, &layout.Bar{}, row.Cells[0].Content)
	assert.Equal(t, layout.Constant(AccentBarWidth), row.Cells[0].Width)
	assert.Nil(t, row.Cells[1].Content)
	assert.Equal(t, layout.Relative(3), row.Cells[2].Width)
	assert.Equal(t, layout.Relative(7), row.Cells[3].Width)
}

func TestComposeKeepsWorkOrder(t *testing.T) {
	d := emptyDocument()
	d.WorkExperience = []resume.WorkExperience{
		{DateRange: "2015", JobTitle: "Middle"},
		{DateRange: "2022", JobTitle: "Latest"},
		{DateRange: "2010", JobTitle: "Earliest"},
	}
	doc := New(&stubResolver{}).Compose(d)

	section := findSection(doc.Content, "Work Experience")
	require.NotNil(t, section)
	assert.Equal(t, 3, section.Len())

	texts := layout.Texts(section)
	mid, last, first := indexOf(texts, "Middle"), indexOf(texts, "Latest"), indexOf(texts, "Earliest")
	require.True(t, mid >= 0 && last >= 0 && first >= 0)
	assert.Less(t, mid, last)
	assert.Less(t, last, first)
}

func TestSkillsSectionVisibility(t *testing.T) {
	d := emptyDocument()
	d.DriversLicense = "   "
	doc := New(&stubResolver{}).Compose(d)
	assert.Nil(t, findSection(doc.Content, "Skills and Knowledge"))

	d.DriversLicense = "B"
	doc = New(&stubResolver{}).Compose(d)
	section := findSection(doc.Content, "Skills and Knowledge")
	require.NotNil(t, section)
	assert.Equal(t, 1, section.Len())
	assert.Equal(t, []string{"Driver's License", "B"}, layout.Texts(section))
}

func TestSkillsSectionCategories(t *testing.T) {
	d := emptyDocument()
	d.LanguageSkills = []resume.LanguageSkill{{Language: "German", Level: "native"}, {Language: "English", Level: "fluent"}}
	d.SoftSkills = []string{"patience", "curiosity"}
	doc := New(&stubResolver{}).Compose(d)

	section := findSection(doc.Content, "Skills and Knowledge")
	require.NotNil(t, section)
	assert.Equal(t, []string{
		"Languages", "German", "native", "English", "fluent",
		"Soft Skills", "patience, curiosity",
	}, layout.Texts(section))
}

func TestPersonalDataSkipsBlankRows(t *testing.T) {
	d := emptyDocument()
	d.PersonalData = resume.PersonalData{City: "Berlin"}
	doc := New(&stubResolver{}).Compose(d)

	section := findSection(doc.Content, "Personal Data")
	require.NotNil(t, section)
	assert.Equal(t, 1, section.Len())
	assert.Equal(t, []string{"City", "Berlin"}, layout.Texts(section))
}

func TestHeaderSkipsBlankContactLines(t *testing.T) {
	d := emptyDocument()
	d.PersonalData = resume.PersonalData{Street: "Main St 1", Phone: "+49 30 123", Nationality: "German"}
	doc := New(&stubResolver{}).Compose(d)

	assert.Equal(t, []string{DocumentTitle, "Main St 1", "+49 30 123"}, layout.Texts(doc.Header))
}

func TestComposeLeftColumnOrder(t *testing.T) {
	d := emptyDocument()
	d.ProfileSummary = "Summary"
	d.CoreCompetencies = []string{"Go"}
	d.PersonalData.Email = "jane@example.com"
	d.Attachments = []string{"References"}
	doc := New(&stubResolver{}).Compose(d)

	texts := layout.Texts(doc.Content)
	order := []string{"Photo", "Profile", "Core Competencies", "Personal Data", "Attachments", "Jane Doe"}
	prev := -1
	for _, s := range order {
		i := indexOf(texts, s)
		require.GreaterOrEqual(t, i, 0, s)
		assert.Greater(t, i, prev, s)
		prev = i
	}
	assert.Equal(t, []string{"References"}, layout.Texts(findSection(doc.Content, "Attachments")))
}

func TestPhotoVariants(t *testing.T) {
	loadErr := &stubResolver{result: imageres.Result{Placeholder: imageres.ReasonLoadError}}
	d := emptyDocument()
	d.ProfilePicturePath = "/me.png"
	assert.Contains(t, layout.Texts(New(loadErr).Compose(d).Content), "[Picture load error]")

	ok := &stubResolver{result: imageres.Result{Image: &imageres.Image{
		Path: "/me.png", Data: []byte{1}, Format: "PNG", Width: 200, Height: 300,
	}}}
	images := layout.Images(New(ok).Compose(d).Content)
	require.Len(t, images, 1)
	assert.Equal(t, "PNG", images[0].Format)
	assert.Equal(t, float64(PhotoSize), images[0].Width)
	assert.Equal(t, float64(PhotoSize), images[0].MaxHeight, "portrait photos stay inside the square box")
	assert.Equal(t, 200, images[0].PixelWidth)
}

func TestContactCode(t *testing.T) {
	d := emptyDocument()
	d.PersonalData.Email = "jane@example.com"

	doc := New(&stubResolver{}, WithContactCode(contactcode.KindQR)).Compose(d)
	images := layout.Images(doc.Content)
	require.Len(t, images, 1)
	assert.Equal(t, "contact-qr", images[0].Key)

	d.PersonalData.Email = ""
	doc = New(&stubResolver{}, WithContactCode(contactcode.KindQR)).Compose(d)
	assert.Empty(t, layout.Images(doc.Content), "nothing to encode")
}

func TestContactCodeFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	d := emptyDocument()
	d.PersonalData.City = "Berlin"

	doc := New(&stubResolver{},
		WithContactCode(contactcode.Kind("aztec")),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	).Compose(d)

	assert.Empty(t, layout.Images(doc.Content))
	assert.Contains(t, logs.String(), "contact code omitted")
}

func TestContactCodeUnencodableNameIsLogged(t *testing.T) {
	var logs bytes.Buffer
	d := emptyDocument()
	d.FullName = "Jürgen Müller"
	d.PersonalData.City = "München"

	var doc *layout.Document
	require.NotPanics(t, func() {
		doc = New(&stubResolver{},
			WithContactCode(contactcode.KindPDF417),
			WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		).Compose(d)
	})

	assert.Empty(t, layout.Images(doc.Content))
	assert.Contains(t, logs.String(), "contact code omitted")
	assert.Contains(t, layout.Texts(doc.Content), "Jürgen Müller")
}

func TestProfileSectionFollowsSummary(t *testing.T) {
	d := emptyDocument()
	d.ProfileSummary = "   "
	assert.Nil(t, findSection(New(&stubResolver{}).Compose(d).Content, "Profile"), "blank summary")

	d.ProfileSummary = "Builds boring infrastructure."
	profile := findSection(New(&stubResolver{}).Compose(d).Content, "Profile")
	require.NotNil(t, profile)
	assert.Equal(t, []string{"Builds boring infrastructure."}, layout.Texts(profile))
}
