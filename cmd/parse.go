package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"quickcap/pkg/logging"
	"quickcap/pkg/terrors"
	"quickcap/pkg/token"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	parseCmd.Flags().String("ref", "", "reference date as YYYY-MM-DD; defaults to today")
	parseCmd.Flags().Bool("json", false, "emit the full parse result as json")
	rootCmd.AddCommand(parseCmd)
}

func parseConfig() token.Config {
	return token.Config{
		Companies: viper.GetStringSlice("parse.companies"),
		MaxValue:  viper.GetFloat64("limits.max-value"),
		MaxEffort: viper.GetFloat64("limits.max-effort"),
	}
}

func refDate(cmd *cobra.Command) (time.Time, error) {
	arg, err := cmd.Flags().GetString("ref")
	if err != nil {
		return time.Time{}, err
	}
	if arg == "" {
		return time.Now(), nil
	}
	ref, err := time.ParseInLocation("2006-01-02", arg, time.Local)
	if err != nil {
		return time.Time{}, terrors.ErrorArgParse("--ref", err)
	}
	return ref, nil
}

var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "extract task metadata tokens from text",
	Long: `parse <text>...
  runs the token pipeline over the given text and prints the clean
  content plus a chip per decoded field. Inline tokens:
    $10M      value        ~4h       effort
    >tomorrow due date     @john     assignee
    &AIC      company      #website  tag
  any marker also takes an explicit 'key:value' payload, e.g. @due:+3.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return terrors.ErrNoArgsProvided
		}
		ref, err := refDate(cmd)
		if err != nil {
			return err
		}
		res := token.Parse(strings.Join(args, " "), ref, parseConfig())
		logging.Logger.Debugf("parsed tokens=%d clean=%q", len(res.Tokens), res.CleanContent)

		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		if asJSON {
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(res.CleanContent)
		vals := res.Values
		if vals.Value != nil {
			fmt.Printf("  value:    %s\n", token.FormatValue(*vals.Value))
		}
		if vals.Effort != nil {
			fmt.Printf("  effort:   %s\n", token.FormatEffort(*vals.Effort))
		}
		if vals.DueDate != nil {
			fmt.Printf("  due:      %s\n", token.FormatDueDate(vals.DueDate, ref))
		}
		if vals.Assignee != nil {
			fmt.Printf("  assignee: %s\n", *vals.Assignee)
		}
		if vals.Company != nil {
			fmt.Printf("  company:  %s\n", *vals.Company)
		}
		if len(vals.Tags) > 0 {
			fmt.Printf("  tags:     %s\n", strings.Join(vals.Tags, ", "))
		}
		return nil
	},
}
