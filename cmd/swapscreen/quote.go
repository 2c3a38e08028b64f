package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/csheth/swapscreen/internal/swap"
)

var (
	errQuoteFormat = errors.New("expected '<amount> <token> to <token>' (e.g. '2 ETH to USDC')")
	errQuoteAmount = errors.New("amount is not a number")

	quotePattern = regexp.MustCompile(`^(\S+)\s+(\S+)\s+TO\s+(\S+)$`)
)

type quoteRequest struct {
	Amount string
	From   string
	To     string
}

// parseQuote reads "<amount> <from> to <to>", with an optional leading
// "swap". Symbols are upper-cased; the amount is kept as typed.
func parseQuote(text string) (quoteRequest, error) {
	fields := strings.Fields(text)
	if len(fields) > 0 && strings.EqualFold(fields[0], "swap") {
		fields = fields[1:]
	}
	upper := strings.ToUpper(strings.Join(fields, " "))
	matches := quotePattern.FindStringSubmatch(upper)
	if matches == nil {
		return quoteRequest{}, errQuoteFormat
	}
	req := quoteRequest{Amount: fields[0], From: matches[2], To: matches[3]}
	if _, ok := swap.ParseAmount(req.Amount); !ok {
		return quoteRequest{}, fmt.Errorf("%q: %w", req.Amount, errQuoteAmount)
	}
	return req, nil
}

type quoteResult struct {
	Amount   string `json:"amount"`
	From     string `json:"from"`
	To       string `json:"to"`
	Rate     string `json:"rate"`
	Estimate string `json:"estimate"`
}

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "quote <amount> <token> to <token>",
		Short: "Print the screen's illustrative estimate for an amount",
		Long: `Print the same estimate the swap card shows, without opening the screen.
The estimate uses the configured flat rates, never a live price.

Examples:
  swapscreen quote 2 ETH to USDC
  swapscreen quote "0.5 usdt to dai" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseQuote(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, machine, err := opts.loadMachine()
			if err != nil {
				return err
			}
			result, err := quote(machine, req)
			if err != nil {
				return err
			}
			return printQuote(cmd.OutOrStdout(), result, asJSON)
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output in JSON format")
	return cmd
}

// quote runs the sell-amount edit on a fresh screen bound to the requested
// pair, so the figure matches what the card would display.
func quote(machine swap.Machine, req quoteRequest) (quoteResult, error) {
	cat := machine.Settings().Catalog
	from, ok := cat.Lookup(req.From)
	if !ok {
		return quoteResult{}, fmt.Errorf("sell token %q: %w", req.From, swap.ErrUnknownToken)
	}
	to, ok := cat.Lookup(req.To)
	if !ok {
		return quoteResult{}, fmt.Errorf("buy token %q: %w", req.To, swap.ErrUnknownToken)
	}
	s := machine.Initial()
	s = machine.SelectToken(s, swap.SideFrom, from)
	s = machine.SelectToken(s, swap.SideTo, to)
	s = machine.SetFromAmount(s, req.Amount)
	return quoteResult{
		Amount:   req.Amount,
		From:     from.Symbol,
		To:       to.Symbol,
		Rate:     machine.Settings().Rates.For(from.Symbol).String(),
		Estimate: s.ToAmount,
	}, nil
}

func printQuote(w io.Writer, result quoteResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	amount := color.New(color.FgCyan, color.Bold)
	fmt.Fprintf(w, "%s %s → %s %s\n",
		amount.Sprint(result.Amount), result.From,
		amount.Sprint(result.Estimate), result.To,
	)
	color.New(color.FgHiBlack).Fprintf(w, "rate 1 %s = %s (flat, illustrative)\n", result.From, result.Rate)
	return nil
}
