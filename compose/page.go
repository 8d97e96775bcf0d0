// Package compose turns a resume.Document into a layout.Document: a
// repeating header with contact lines, a two-column content row behind an
// accent bar, and a "Page x of y" footer.
//
// Every optional block is omitted when its data is empty. Sections are
// never rendered as bare headings.
package compose

import (
	"log/slog"

	"github.com/lvillar/cvpdf/contactcode"
	"github.com/lvillar/cvpdf/imageres"
	"github.com/lvillar/cvpdf/layout"
	"github.com/lvillar/cvpdf/resume"
)

// PhotoResolver resolves the profile picture path.
type PhotoResolver interface {
	Resolve(path string) imageres.Result
}

// Composer builds composition trees. It holds no per-document state and
// can be reused.
type Composer struct {
	photos   PhotoResolver
	log      *slog.Logger
	contact  contactcode.Kind
	title    string
	pageSize string
	margins  layout.Padding
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger for non-fatal composition problems.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) {
		c.log = l
	}
}

// WithContactCode adds a vCard barcode below the personal data.
func WithContactCode(k contactcode.Kind) Option {
	return func(c *Composer) {
		c.contact = k
	}
}

// WithTitle replaces the header title text.
func WithTitle(title string) Option {
	return func(c *Composer) {
		c.title = title
	}
}

// WithPageSize sets the page format name, e.g. "A4" or "Letter".
func WithPageSize(size string) Option {
	return func(c *Composer) {
		c.pageSize = size
	}
}

// WithMargins sets the page margins in points.
func WithMargins(m layout.Padding) Option {
	return func(c *Composer) {
		c.margins = m
	}
}

// New returns a Composer resolving photos with photos.
func New(photos PhotoResolver, opts ...Option) *Composer {
	c := &Composer{
		photos:   photos,
		log:      slog.Default(),
		contact:  contactcode.KindNone,
		title:    DocumentTitle,
		pageSize: "A4",
		margins:  layout.Uniform(PageMargin),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds the composition tree for doc. It never fails: missing
// optional data only removes blocks.
func (c *Composer) Compose(doc *resume.Document) *layout.Document {
	return &layout.Document{
		Title:        c.title + " - " + doc.FullName,
		Author:       doc.FullName,
		Subject:      doc.JobTitle,
		Creator:      "cvpdf",
		PageSize:     c.pageSize,
		Margins:      c.margins,
		DefaultStyle: defaultStyle,
		Header:       c.header(doc.PersonalData),
		Content:      c.content(doc),
		Footer:       Footer(),
	}
}

func (c *Composer) header(pd resume.PersonalData) layout.Fragment {
	contact := &layout.Stack{}
	for _, line := range []string{pd.Street, pd.City, pd.Email, pd.Phone} {
		if !blank(line) {
			contact.Add(&layout.Text{Content: line, Style: contactStyle, Align: layout.AlignRight})
		}
	}
	cells := []layout.Cell{
		{Width: layout.Relative(1), Content: &layout.Text{Content: c.title, Style: titleStyle}},
	}
	if contact.Len() > 0 {
		cells = append(cells, layout.Cell{Width: layout.Auto(), Content: contact})
	}

	return &layout.Inset{
		Padding: layout.Padding{Bottom: HeaderBottom},
		Content: &layout.Stack{Spacing: HeaderSpacing, Items: []layout.Fragment{
			&layout.Row{Cells: cells},
			&layout.Rule{Thickness: 1, Color: DividerColor},
		}},
	}
}

// Footer is the centered page counter.
func Footer() layout.Fragment {
	return &layout.Text{
		Content:    "Page {page} of {pages}",
		Style:      footerStyle,
		Align:      layout.AlignCenter,
		PageFields: true,
	}
}

func (c *Composer) content(doc *resume.Document) layout.Fragment {
	return &layout.Row{
		Flow: true,
		Cells: []layout.Cell{
			{Width: layout.Constant(AccentBarWidth), Content: &layout.Bar{Color: AccentColor}},
			{Width: layout.Constant(AccentGap)},
			{
				Width:   layout.Relative(LeftColumnShare),
				Padding: layout.Padding{Right: ColumnGutter},
				Content: c.leftColumn(doc),
			},
			{
				Width:   layout.Relative(RightColumnShare),
				Padding: layout.Padding{Left: ColumnGutter},
				Content: c.rightColumn(doc),
			},
		},
	}
}

func (c *Composer) leftColumn(doc *resume.Document) *layout.Stack {
	col := &layout.Stack{Spacing: LeftColumnGap}
	col.Add(
		c.photo(doc.ProfilePicturePath),
		Section("Profile", func() *layout.Stack { return profile(doc.ProfileSummary) }),
		Section("Core Competencies", func() *layout.Stack { return bullets(doc.CoreCompetencies) }),
		Section("Personal Data", func() *layout.Stack { return personalData(doc.PersonalData) }),
		c.contactCode(doc),
		Section("Attachments", func() *layout.Stack { return lines(doc.Attachments) }),
	)
	return col
}

func (c *Composer) rightColumn(doc *resume.Document) *layout.Stack {
	col := &layout.Stack{Spacing: RightColumnGap}
	col.Add(
		&layout.Text{Content: doc.FullName, Style: nameStyle},
		Section("Work Experience", func() *layout.Stack { return workExperience(doc.WorkExperience) }),
		Section("Development and Education", func() *layout.Stack { return development(doc.DevelopmentEntries) }),
		Section("Skills and Knowledge", func() *layout.Stack { return skills(doc) }),
	)
	return col
}

func (c *Composer) photo(path string) layout.Fragment {
	res := c.photos.Resolve(path)
	if img := res.Image; img != nil {
		return &layout.Image{
			Key:         "profile-photo",
			Data:        img.Data,
			Format:      img.Format,
			Width:       PhotoSize,
			MaxHeight:   PhotoSize,
			PixelWidth:  img.Width,
			PixelHeight: img.Height,
		}
	}
	return Placeholder(res.Placeholder)
}

// Placeholder is the grey square shown instead of the profile picture.
func Placeholder(reason imageres.Reason) layout.Fragment {
	label := &layout.Text{Content: "Photo", Align: layout.AlignCenter}
	if reason == imageres.ReasonLoadError {
		label = &layout.Text{Content: "[Picture load error]", Style: errorStyle, Align: layout.AlignCenter}
	}
	fill := DividerColor
	return &layout.Box{Width: PhotoSize, Height: PhotoSize, Fill: &fill, Content: label}
}

func (c *Composer) contactCode(doc *resume.Document) layout.Fragment {
	if c.contact == contactcode.KindNone || !contactcode.HasContact(doc.PersonalData) {
		return nil
	}
	code, err := contactcode.Encode(c.contact, contactcode.VCard(doc.FullName, doc.JobTitle, doc.PersonalData))
	if err != nil {
		c.log.Warn("contact code omitted", "kind", c.contact, "error", err)
		return nil
	}
	return &layout.Image{
		Key:         "contact-" + string(code.Kind),
		Data:        code.PNG,
		Format:      "PNG",
		Width:       ContactCodeWidth,
		PixelWidth:  code.Width,
		PixelHeight: code.Height,
	}
}

func profile(summary string) *layout.Stack {
	s := &layout.Stack{}
	if !blank(summary) {
		s.Add(&layout.Text{Content: summary, Style: bodyStyle})
	}
	return s
}

func bullets(items []string) *layout.Stack {
	s := &layout.Stack{Spacing: CompetencyGap}
	for _, it := range items {
		s.Add(BulletItem(it))
	}
	return s
}

func lines(items []string) *layout.Stack {
	s := &layout.Stack{Spacing: AttachmentGap}
	for _, it := range items {
		s.Add(&layout.Text{Content: it})
	}
	return s
}

// personalData emits one label/value row per non-blank field.
func personalData(pd resume.PersonalData) *layout.Stack {
	s := &layout.Stack{Spacing: PersonalDataGap}
	for _, f := range []struct{ label, value string }{
		{"Street", pd.Street},
		{"City", pd.City},
		{"Email", pd.Email},
		{"Phone", pd.Phone},
		{"Date/PoB", pd.DateOfBirth},
		{"Nationality", pd.Nationality},
	} {
		if blank(f.value) {
			continue
		}
		s.Add(&layout.Row{Cells: []layout.Cell{
			{Width: layout.Relative(2), Content: &layout.Text{Content: f.label, Style: labelStyle}},
			{Width: layout.Relative(3), Content: &layout.Text{Content: f.value, Style: valueStyle}},
		}})
	}
	return s
}

func workExperience(entries []resume.WorkExperience) *layout.Stack {
	s := &layout.Stack{Spacing: EntryGap}
	for _, e := range entries {
		s.Add(WorkEntry(e))
	}
	return s
}

func development(entries []resume.Development) *layout.Stack {
	s := &layout.Stack{Spacing: EntryGap}
	for _, e := range entries {
		s.Add(DevelopmentEntry(e))
	}
	return s
}

// skills collects the four sub-categories; the section disappears when all
// of them are empty.
func skills(doc *resume.Document) *layout.Stack {
	s := &layout.Stack{Spacing: SkillGap}
	s.Add(
		SkillCategory("Languages", func() *layout.Stack {
			langs := &layout.Stack{Spacing: LanguageGap}
			for _, l := range doc.LanguageSkills {
				langs.Add(LanguageRow(l))
			}
			return langs
		}),
		SkillCategory("Hard Skills", func() *layout.Stack {
			return &layout.Stack{Items: nonNil(SkillParagraph(doc.HardSkills))}
		}),
		SkillCategory("Soft Skills", func() *layout.Stack {
			return &layout.Stack{Items: nonNil(SkillParagraph(doc.SoftSkills))}
		}),
		SkillCategory("Driver's License", func() *layout.Stack {
			license := &layout.Stack{}
			if !blank(doc.DriversLicense) {
				license.Add(&layout.Text{Content: doc.DriversLicense})
			}
			return license
		}),
	)
	return s
}

func nonNil(f layout.Fragment) []layout.Fragment {
	if f == nil {
		return nil
	}
	return []layout.Fragment{f}
}
