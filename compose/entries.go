package compose

import (
	"strings"

	"github.com/lvillar/cvpdf/layout"
	"github.com/lvillar/cvpdf/resume"
)

// WorkEntry renders one position: the date range in the label column, job
// title and company beside it, then the responsibilities as an indented
// bulleted list in input order.
func WorkEntry(e resume.WorkExperience) layout.Fragment {
	entry := &layout.Stack{Spacing: EntryInnerGap}
	entry.Add(labelledRow(e.DateRange, &layout.Stack{Items: []layout.Fragment{
		&layout.Text{Content: e.JobTitle, Style: boldStyle},
		&layout.Text{Content: e.Company, Style: labelStyle},
	}}))

	if len(e.Responsibilities) > 0 {
		list := &layout.Stack{Spacing: ResponsibilityGap}
		for _, r := range e.Responsibilities {
			list.Add(BulletItem(r))
		}
		entry.Add(&layout.Inset{Padding: layout.Padding{Left: ResponsibilityIndent}, Content: list})
	}
	return entry
}

// DevelopmentEntry renders one education or development record. Details
// appear below the title only when they are not blank.
func DevelopmentEntry(e resume.Development) layout.Fragment {
	body := &layout.Stack{}
	body.Add(&layout.Text{Content: e.TitleOrDescription, Style: boldStyle})
	if !blank(e.Details) {
		body.Add(&layout.Inset{
			Padding: layout.Padding{Top: DetailsTop},
			Content: &layout.Text{Content: e.Details, Style: bodyStyle},
		})
	}
	return &layout.Stack{Spacing: EntryInnerGap, Items: []layout.Fragment{labelledRow(e.DateRange, body)}}
}

// LanguageRow renders a language and its level at a 1:2 width ratio.
func LanguageRow(l resume.LanguageSkill) layout.Fragment {
	return &layout.Row{Cells: []layout.Cell{
		{Width: layout.Relative(1), Content: &layout.Text{Content: l.Language, Style: semiBold}},
		{Width: layout.Relative(2), Content: &layout.Text{Content: l.Level}},
	}}
}

// JoinSkills joins skills with ", " keeping input order.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

// SkillParagraph renders a skill list as one paragraph, or nil when empty.
func SkillParagraph(skills []string) layout.Fragment {
	if len(skills) == 0 {
		return nil
	}
	return &layout.Text{Content: JoinSkills(skills), Style: skillStyle}
}

// BulletItem renders text after an accent-colored bullet.
func BulletItem(text string) layout.Fragment {
	return &layout.Row{Cells: []layout.Cell{
		{Width: layout.Constant(BulletWidth), Content: &layout.Text{Content: Bullet, Style: bulletStyle}},
		{Width: layout.Relative(1), Content: &layout.Text{Content: text, Style: bodyStyle}},
	}}
}

// labelledRow puts label in the fixed label column and body beside it so
// labels line up across every entry of a section.
func labelledRow(label string, body layout.Fragment) *layout.Row {
	return &layout.Row{Cells: []layout.Cell{
		{Width: layout.Constant(LabelColumnWidth), Content: &layout.Text{Content: label, Style: labelStyle}},
		{Width: layout.Relative(1), Content: body},
	}}
}
