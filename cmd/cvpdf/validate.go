package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lvillar/cvpdf"
)

// validateCmd checks a data file without rendering it.
var validateCmd = &cobra.Command{
	Use:   "validate <data-file>",
	Short: "Check that a CV data file is complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(w io.Writer, dataPath string) error {
	doc, err := cvpdf.New(cvpdf.WithLogger(slog.Default())).Load(dataPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: valid (%s, %d work entries, %d development entries)\n",
		dataPath, doc.FullName, len(doc.WorkExperience), len(doc.DevelopmentEntries))
	return nil
}
