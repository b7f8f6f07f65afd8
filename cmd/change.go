package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/etnz/networth/settings"
	"github.com/google/subcommands"
)

type changeCmd struct {
	window string
}

func (*changeCmd) Name() string     { return "change" }
func (*changeCmd) Synopsis() string { return "print the net worth change over a time window" }
func (*changeCmd) Usage() string {
	return `networth change [-w <window>]

  Prints the change of the net worth over a time window, one of 1D, 1W, 1M, 3M, 1Y, All.
`
}

func (c *changeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "1Y", "time window of the change")
}

func (c *changeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := networth.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	hidden := userPreference(settings.NumbersHidden)
	fmt.Println(formatChange(NewLedger().ChangeForPeriod(w), hidden))
	return subcommands.ExitSuccess
}

// formatChange formats a change as "▲ $100.50 (5.25%) Past Day".
func formatChange(c networth.Change, hidden bool) string {
	arrow := "▲"
	if c.IsLoss() {
		arrow = "▼"
	}
	amount, percent := c.Amount.Abs().String(), c.Percentage.Abs().String()
	if hidden {
		amount, percent = renderer.Mask, renderer.Mask
	}
	return fmt.Sprintf("%s %s (%s) %s", arrow, amount, percent, c.Window.Description())
}
