package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lvillar/cvpdf"
	"github.com/lvillar/cvpdf/contactcode"
)

// defaultData is the data file read when none is given.
const defaultData = "cv_data.json"

// generateCmd renders a data file into a PDF.
var generateCmd = &cobra.Command{
	Use:   "generate [data-file]",
	Short: "Render a CV data file into a PDF",
	Long: `Load the CV data file (default cv_data.json), validate it and render
the PDF. Files named in "attachments" are appended when --attachments-dir
is set and a matching PDF exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath := defaultData
		if len(args) == 1 {
			dataPath = args[0]
		}
		return runGenerate(cmd.OutOrStdout(), dataPath)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.StringP("output", "o", cvpdf.DefaultOutput, "output PDF path")
	flags.String("page-size", "A4", "page size: A4, A5, Letter or Legal")
	flags.Float64("margin-cm", 1.5, "page margin in centimeters")
	flags.String("title", "", "header title (default \"Curriculum Vitae\")")
	flags.String("font-dir", "", "directory containing font files")
	flags.String("contact-code", "none", "vCard barcode in the left column: none, qr or pdf417")
	flags.String("attachments-dir", "", "directory with attachment PDFs to append")

	for key, flag := range map[string]string{
		"output":          "output",
		"page_size":       "page-size",
		"margin_cm":       "margin-cm",
		"title":           "title",
		"font_dir":        "font-dir",
		"contact_code":    "contact-code",
		"attachments.dir": "attachments-dir",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

// runGenerate implements the generate command.
func runGenerate(w io.Writer, dataPath string) error {
	opts, err := generatorOptions()
	if err != nil {
		return err
	}

	slog.Debug("generating", "data", dataPath, "output", viper.GetString("output"))
	report, err := cvpdf.New(opts...).Generate(dataPath, viper.GetString("output"))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "PDF created: %s (%d pages)\n", report.Output, report.Pages)
	for _, a := range report.Appended {
		fmt.Fprintf(w, "  appended %s\n", a)
	}
	return nil
}

// generatorOptions maps the configuration onto generator options.
func generatorOptions() ([]cvpdf.Option, error) {
	kind, err := contactcode.ParseKind(viper.GetString("contact_code"))
	if err != nil {
		return nil, err
	}

	opts := []cvpdf.Option{
		cvpdf.WithLogger(slog.Default()),
		cvpdf.WithPageSize(viper.GetString("page_size")),
		cvpdf.WithMargins(viper.GetFloat64("margin_cm")),
		cvpdf.WithFontDir(viper.GetString("font_dir")),
		cvpdf.WithContactCode(kind),
		cvpdf.WithAttachmentDir(viper.GetString("attachments.dir")),
	}
	if title := viper.GetString("title"); title != "" {
		opts = append(opts, cvpdf.WithTitle(title))
	}
	if family := viper.GetString("font.family"); family != "" {
		opts = append(opts, cvpdf.WithUTF8Font(family, viper.GetString("font.regular"), viper.GetString("font.bold")))
	}
	return opts, nil
}
