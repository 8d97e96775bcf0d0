package cvpdf_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/lvillar/cvpdf"
)

const minimalCV = `{
	"fullName": "Jane Doe",
	"jobTitle": "Platform Engineer",
	"personalData": {"city": "Berlin"},
	"profilePicturePath": "",
	"profileSummary": "",
	"coreCompetencies": [],
	"attachments": [],
	"workExperience": [],
	"developmentAndEducation": [],
	"languageSkills": [],
	"hardSkills": ["Go", "Rust", "C++"],
	"softSkills": [],
	"driversLicense": ""
}`

// ExampleGenerator_Generate renders a data file into a PDF.
func ExampleGenerator_Generate() {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "cv_data.json", []byte(minimalCV), 0o644)

	gen := cvpdf.New(
		cvpdf.WithFS(fs),
		cvpdf.WithPageSize("A4"),
		cvpdf.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	report, err := gen.Generate("cv_data.json", cvpdf.DefaultOutput)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pages:", report.Pages)
	// Output:
	// pages: 1
}

// ExampleKindOf shows how a failure is classified.
func ExampleKindOf() {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "cv_data.json", []byte(`{"FULLNAME": "Jane Doe"}`), 0o644)

	_, err := cvpdf.New(cvpdf.WithFS(fs)).Generate("cv_data.json", "")
	fmt.Println(cvpdf.KindOf(err))
	// Output:
	// missing-field
}
