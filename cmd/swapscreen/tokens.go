package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/csheth/swapscreen/internal/catalog"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "tokens",
		Aliases: []string{"list-tokens", "ls"},
		Short:   "List the token catalog",
		Long: `List the tokens offered by the pickers, in picker order.

Examples:
  swapscreen tokens
  swapscreen tokens --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, machine, err := opts.loadMachine()
			if err != nil {
				return err
			}
			return printTokens(cmd.OutOrStdout(), machine.Settings().Catalog.Tokens(), asJSON)
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output in JSON format")
	return cmd
}

func printTokens(w io.Writer, tokens []catalog.Token, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	}

	rule := strings.Repeat("=", 48)
	fmt.Fprintln(w, rule)
	color.New(color.FgGreen, color.Bold).Fprintln(w, "TOKENS")
	fmt.Fprintln(w, rule)

	symbol := color.New(color.FgCyan, color.Bold)
	muted := color.New(color.FgHiBlack)
	for idx, token := range tokens {
		fmt.Fprintf(w, "%2d. %s %s %s\n",
			idx+1,
			symbol.Sprintf("%-8s", token.Label()),
			fmt.Sprintf("%-18s", token.Name),
			muted.Sprintf("balance %s", token.Balance),
		)
	}
	return nil
}
