// Package cmd contains all CLI commands for ireum.
package cmd

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/ireum/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ireum",
	Short: "Korean baby-name suggestions from a language model",
	Long: `ireum suggests Korean given names for a baby.

Fill in the surname, gender, style, name length and an optional
generation character (돌림자). A language model proposes names with
hanja, meaning and character notes, shown as expandable cards.

Running 'ireum' without arguments launches the interactive TUI.
Use 'ireum serve' for the browser form.

The API key is read from OPENAI_API_KEY (or GEMINI_API_KEY with
--provider gemini). A .env file in the working directory is loaded
first.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ireum/config.yaml)")
	pf.Bool("verbose", false, "verbose output")
	pf.String("provider", "", "language model provider: openai or gemini")
	pf.String("model", "", "model name (default depends on the provider)")
	pf.String("format", "", "answer format requested from the model: json or text")

	for _, name := range []string{"verbose", "provider", "model", "format"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
}

// initConfig loads .env, resolves the config file and binds IREUM_* variables.
func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if cfgFile == "" {
		if dir, err := config.GetConfigDir(); err == nil {
			cfgFile = filepath.Join(dir, config.FileName)
		}
	}

	viper.SetEnvPrefix("IREUM")
	viper.AutomaticEnv()
}

// loadConfig reads the config file and overlays flags and environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}

	overlay := map[string]*string{
		"provider":   &cfg.Provider,
		"model":      &cfg.Model,
		"format":     &cfg.Format,
		"base_url":   &cfg.BaseURL,
		"addr":       &cfg.Addr,
		"dictionary": &cfg.Dictionary,
		"log_level":  &cfg.LogLevel,
		"log_format": &cfg.LogFormat,
	}
	for key, dst := range overlay {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
	if viper.IsSet("temperature") {
		cfg.Temperature = viper.GetFloat64("temperature")
	}
	if viper.GetBool("verbose") {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}
