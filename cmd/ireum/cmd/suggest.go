package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/ireum/internal/naming"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <surname>",
	Short: "Suggest names once and print them",
	Long: `Request one batch of name suggestions and print them.

Examples:
  ireum suggest 김
  ireum suggest 이 --gender girl --style classic --length 2
  ireum suggest 박 --dollimja 준 --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

var (
	suggestGender   string
	suggestStyle    string
	suggestLength   string
	suggestDollimja string
	suggestOutput   string
)

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVarP(&suggestGender, "gender", "g", string(naming.GenderBoy), "boy or girl")
	suggestCmd.Flags().StringVarP(&suggestStyle, "style", "s", string(naming.StyleTrendy), "trendy or classic")
	suggestCmd.Flags().StringVarP(&suggestLength, "length", "l", "", "syllables in the given name: 1, 2 or 3")
	suggestCmd.Flags().StringVarP(&suggestDollimja, "dollimja", "d", "", "generation character to include")
	suggestCmd.Flags().StringVarP(&suggestOutput, "output", "o", "text", "output: text or json")
}

// suggestOutputJSON mirrors the /api/suggest response.
type suggestOutputJSON struct {
	Format     naming.Format    `json:"format"`
	Names      naming.ResultSet `json:"names"`
	Disclaimer string           `json:"disclaimer"`
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if suggestOutput != "text" && suggestOutput != "json" {
		return fmt.Errorf("unknown output %q: must be text or json", suggestOutput)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	req := naming.Request{
		Surname:  args[0],
		Gender:   naming.Gender(suggestGender),
		Style:    naming.Style(suggestStyle),
		Length:   naming.Length(suggestLength),
		Dollimja: suggestDollimja,
	}

	records, err := a.svc.Suggest(cmd.Context(), req, a.format)
	if err != nil {
		if naming.Warning(err) {
			return errors.New(naming.UserMessage(err))
		}
		return err
	}

	if suggestOutput == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(suggestOutputJSON{Format: a.format, Names: records, Disclaimer: naming.Disclaimer})
	}

	printCards(os.Stdout, records)
	return nil
}

// printCards writes the cards as plain text followed by the disclaimer.
func printCards(w io.Writer, records naming.ResultSet) {
	if len(records) == 0 {
		fmt.Fprintln(w, "추천 결과가 비어 있습니다. 다시 시도해주세요.")
		return
	}
	for _, card := range naming.Cards(records) {
		fmt.Fprintln(w, card.Text())
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, naming.Disclaimer)
}
