package compose

import (
	"strings"

	"github.com/lvillar/cvpdf/layout"
)

// Section renders title above the block returned by build. When the block
// has no items nothing is emitted, not even the title.
func Section(title string, build func() *layout.Stack) layout.Fragment {
	content := build()
	if content.Len() == 0 {
		return nil
	}
	return &layout.Stack{
		Spacing:  SectionGap,
		KeepHead: true,
		Items: []layout.Fragment{
			&layout.Text{Content: title, Style: sectionStyle},
			content,
		},
	}
}

// SkillCategory renders a labelled sub-block of the skills section: the
// label in a fixed-width column, the block beside it. Empty blocks yield nil.
func SkillCategory(label string, build func() *layout.Stack) layout.Fragment {
	content := build()
	if content.Len() == 0 {
		return nil
	}
	return &layout.Row{
		Spacing: SkillLabelGap,
		Cells: []layout.Cell{
			{Width: layout.Constant(LabelColumnWidth), Content: &layout.Text{Content: label, Style: skillLabel}},
			{Width: layout.Relative(1), Content: content},
		},
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
