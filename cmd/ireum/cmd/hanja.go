package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/ireum/internal/hanja"
	"github.com/f3rmion/ireum/internal/logger"
)

var hanjaCmd = &cobra.Command{
	Use:   "hanja <characters>",
	Short: "Break down the hanja of a name",
	Long: `Show each Chinese character of a hanja name with its:
  - Mandarin reading(s) and tone (Korean 음/훈 readings are not shown)
  - English meaning
  - Structure and components
  - Etymology hint

Meaning, structure and etymology need the Make Me a Hanzi
dictionary.jsonl (see the dictionary setting).

Example:
  ireum hanja 道潤`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHanja,
}

func init() {
	rootCmd.AddCommand(hanjaCmd)
}

func runHanja(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.Discard()
	if cfg.LogLevel == "debug" {
		if log, err = newLogger(cfg); err != nil {
			return err
		}
	}

	breaker := hanja.NewBreaker(loadDictionary(cfg.Dictionary, log))
	glyphs := breaker.Breakdown(strings.Join(args, ""))
	if len(glyphs) == 0 {
		return fmt.Errorf("no hanja in %q", strings.Join(args, " "))
	}

	printGlyphs(os.Stdout, glyphs)
	return nil
}

func printGlyphs(w io.Writer, glyphs []hanja.Glyph) {
	for _, g := range glyphs {
		fmt.Fprintf(w, "Character: %s\n", g.Char)
		if len(g.Pinyin) == 0 {
			fmt.Fprintln(w, "  Mandarin: (not found)")
		} else {
			fmt.Fprintf(w, "  Mandarin: %s (tone %d)\n", strings.Join(g.Pinyin, ", "), g.Tone)
		}
		if g.Definition != "" {
			fmt.Fprintf(w, "  Meaning: %s\n", g.Definition)
		}
		if g.Structure != "" && g.Structure != "unknown" {
			fmt.Fprintf(w, "  Structure: %s\n", g.Structure)
		}
		if len(g.Components) > 0 {
			fmt.Fprintf(w, "  Components: %s\n", strings.Join(g.Components, ", "))
		}
		if g.Hint != "" {
			fmt.Fprintf(w, "  Etymology: %s\n", g.Hint)
		}
		fmt.Fprintln(w)
	}
}
