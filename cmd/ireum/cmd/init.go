package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/ireum/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ireum configuration",
	Long: `Write a config.yaml with the default settings to your config
directory ($HOME/.config/ireum, or the path given with --config).

Edit it to choose the provider, model, temperature, answer format,
listen address and the hanja dictionary location.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := cfgFile
	if path == "" {
		return errors.New("could not determine the config directory; use --config")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := config.Save(path, config.Defaults()); err != nil {
		return err
	}

	fmt.Printf("Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Put OPENAI_API_KEY in your environment or a .env file")
	fmt.Println("  2. Run 'ireum' for the terminal form or 'ireum serve' for the browser")
	fmt.Println("  3. Run 'ireum suggest 김' for a quick check")

	return nil
}
