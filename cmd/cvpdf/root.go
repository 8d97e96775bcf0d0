package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lvillar/cvpdf"
)

var cfgFile string

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "cvpdf",
	Short: "Curriculum vitae PDF generator",
	Long: `cvpdf renders a structured curriculum vitae (JSON or YAML) into a
two-column PDF with a repeating header, an accent bar and page numbers.
Attachment PDFs can be appended after the CV pages.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportFailure(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	setDefaults()

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.cvpdf.yaml, then $HOME/.cvpdf.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func setDefaults() {
	viper.SetDefault("output", cvpdf.DefaultOutput)
	viper.SetDefault("page_size", "A4")
	viper.SetDefault("margin_cm", 1.5)
	viper.SetDefault("contact_code", "none")
	viper.SetDefault("log_format", "text")
}

// initConfig loads configuration from .env, the config file and the
// environment.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env file", "error", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cvpdf")
	}

	viper.SetEnvPrefix("CVPDF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		slog.Error("failed to read config file", "file", cfgFile, "error", err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	// TextHandler by default for CLI friendliness
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if strings.EqualFold(viper.GetString("log_format"), "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// reportFailure logs the failure kind, the message and every nested cause
// in order.
func reportFailure(err error) {
	kind := cvpdf.KindOf(err)
	if kind == "" {
		kind = "usage"
	}
	slog.Error("cvpdf failed", "kind", kind, "error", err)
	for i, cause := range cvpdf.Chain(err)[1:] {
		slog.Error("caused by", "depth", i+1, "error", cause)
	}
}
