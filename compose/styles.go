package compose

import "github.com/lvillar/cvpdf/layout"

// Colors of the template.
var (
	AccentColor  = layout.Hex("#D3002E")
	HeadingColor = layout.Hex("#424242")
	TextColor    = layout.Hex("#000000")
	MutedColor   = layout.Hex("#757575")
	DividerColor = layout.Hex("#EEEEEE")
	ErrorColor   = layout.Hex("#F44336")
)

// Font sizes, in points.
const (
	BaseFontSize    = 10
	TitleFontSize   = 24
	NameFontSize    = 20
	SectionFontSize = 14
	LabelFontSize   = 9
	ContactFontSize = 8
	FooterFontSize  = 8
)

// Geometry, in points.
const (
	// PageMargin is 1.5 cm.
	PageMargin = 1.5 * 72 / 2.54

	AccentBarWidth       = 3
	AccentGap            = 15
	ColumnGutter         = 10
	LabelColumnWidth     = 100
	BulletWidth          = 10
	ResponsibilityIndent = 10
	PhotoSize            = 100
	ContactCodeWidth     = 80
)

// Column proportions of the two-column grid.
const (
	LeftColumnShare  = 3
	RightColumnShare = 7
)

// Vertical spacing, in points.
const (
	HeaderSpacing     = 5
	HeaderBottom      = 10
	LeftColumnGap     = 20
	RightColumnGap    = 25
	SectionGap        = 8
	CompetencyGap     = 5
	PersonalDataGap   = 4
	AttachmentGap     = 4
	EntryGap          = 15
	EntryInnerGap     = 5
	ResponsibilityGap = 3
	SkillGap          = 15
	SkillLabelGap     = 10
	LanguageGap       = 4
	DetailsTop        = 2
)

// DocumentTitle is the fixed text in the top left corner of every page.
const DocumentTitle = "Curriculum Vitae"

// Bullet prefixes list items.
const Bullet = "•"

func colorRef(c layout.Color) *layout.Color {
	return &c
}

var (
	defaultStyle = layout.Style{Size: BaseFontSize, Color: colorRef(TextColor), LineHeight: 1}

	titleStyle   = layout.Style{Size: TitleFontSize, Weight: layout.WeightBold, Color: colorRef(AccentColor)}
	contactStyle = layout.Style{Size: ContactFontSize, Color: colorRef(MutedColor)}
	nameStyle    = layout.Style{Size: NameFontSize, Weight: layout.WeightSemiBold, Color: colorRef(HeadingColor)}
	sectionStyle = layout.Style{Size: SectionFontSize, Weight: layout.WeightSemiBold, Color: colorRef(AccentColor)}
	labelStyle   = layout.Style{Size: LabelFontSize, Color: colorRef(MutedColor)}
	skillLabel   = layout.Style{Size: LabelFontSize, Weight: layout.WeightSemiBold, Color: colorRef(MutedColor)}
	valueStyle   = layout.Style{Size: LabelFontSize}
	boldStyle    = layout.Style{Weight: layout.WeightBold}
	semiBold     = layout.Style{Weight: layout.WeightSemiBold}
	bodyStyle    = layout.Style{LineHeight: 1.2}
	skillStyle   = layout.Style{LineHeight: 1.3}
	bulletStyle  = layout.Style{Color: colorRef(AccentColor)}
	footerStyle  = layout.Style{Size: FooterFontSize, Color: colorRef(MutedColor)}
	errorStyle   = layout.Style{Color: colorRef(ErrorColor)}
)
