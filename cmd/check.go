package cmd

import (
	"fmt"
	"strings"

	"quickcap/pkg/terrors"
	"quickcap/pkg/token"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	checkCmd.Flags().String("ref", "", "reference date as YYYY-MM-DD; defaults to today")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <text>...",
	Short: "report how each token substring classifies",
	Long: `check <text>...
  scans the text and prints one line per decoded token: its source
  span, kind, the exact matched substring and its canonical form.
  Useful for debugging why a substring did or didn't tokenize.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return terrors.ErrNoArgsProvided
		}
		ref, err := refDate(cmd)
		if err != nil {
			return err
		}
		res := token.Parse(strings.Join(args, " "), ref, parseConfig())
		if viper.GetBool("debug") {
			token.DebugResult(res)
			return nil
		}
		if len(res.Tokens) == 0 {
			fmt.Println("no tokens")
			return nil
		}
		res.Tokens.ForEach(func(tk *token.Token) {
			fmt.Printf("%3d:%-3d %-8s %-24q -> %s\n", tk.Start, tk.End, tk.Kind, tk.FullText, tk.String())
		})
		return nil
	},
}
