package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/etnz/networth/renderer"
	"github.com/etnz/networth/settings"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write the net worth chart as an HTML page" }
func (*chartCmd) Usage() string {
	return `networth chart [-o <file>]

  Writes the chart of the net worth history as a standalone HTML page.
  The chart follows the dark mode setting.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "networth.html", "output file")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dark := userPreference(settings.DarkMode)
	if err := writeChart(c.output, NewLedger().Series(), dark); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}

func writeChart(path string, series *date.History[networth.Money], dark bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create chart file: %w", err)
	}
	defer f.Close()
	if err := renderer.RenderChart(f, series, dark); err != nil {
		return fmt.Errorf("cannot render chart: %w", err)
	}
	log.Printf("write-chart path=%s points=%d dark=%t", path, series.Len(), dark)
	return f.Close()
}
