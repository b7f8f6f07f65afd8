package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/etnz/networth/settings"
	"github.com/google/subcommands"
)

type settingsCmd struct{}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "read or change a preference" }
func (*settingsCmd) Usage() string {
	return `networth settings [<key> [true|false]]

  Without arguments, prints all preferences. With a key, prints its value.
  With a key and a value, changes it.

  Keys: isDarkMode, isNumbersHidden.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *settingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: too many arguments")
		return subcommands.ExitUsageError
	}
	store, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}

	keys := f.Args()
	if len(keys) == 2 {
		if _, ok := settings.Defaults[keys[0]]; !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown setting %q\n", keys[0])
			return subcommands.ExitUsageError
		}
		v, err := strconv.ParseBool(keys[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid value %q: %v\n", keys[1], err)
			return subcommands.ExitUsageError
		}
		if err := store.SetBool(keys[0], v); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if len(keys) == 0 {
		for k := range settings.Defaults {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}
	for _, k := range keys {
		v, err := store.Bool(k)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s=%t\n", k, v)
	}
	return subcommands.ExitSuccess
}
