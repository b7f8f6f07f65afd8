// Package cmd implements the CLI application to track a net worth.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/networth"
	"github.com/etnz/networth/settings"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands are the subcommands of the networth application.
var Commands = []subcommands.Command{
	&sessionCmd{},
	&changeCmd{},
	&chartCmd{},
	&settingsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	currency     = flag.String("currency", networth.DefaultCurrency, "Currency of all amounts (ISO 4217 code).")
	settingsFile = flag.String("settings-file", "", "Path to the settings file. Defaults to the user configuration folder.")
	refreshDelay = flag.Duration("refresh-delay", time.Second, "Simulated duration of a data refresh.")
	Verbose      = flag.Bool("v", false, "Print logs to stderr.")
)

const (
	EnvCurrency     = "NETWORTH_CURRENCY"
	EnvSettingsFile = "NETWORTH_SETTINGS_FILE"
	EnvRefreshDelay = "NETWORTH_REFRESH_DELAY"
	EnvVerbose      = "NETWORTH_VERBOSE"
)

// Configure completes the parsed flags with the environment.
//
// A .env file in the working directory is loaded first, without overriding the
// existing environment. Flags set on the command line take precedence over the
// environment.
func Configure(f *flag.FlagSet) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var errs error
	fromEnv := func(name, env string) {
		v, ok := os.LookupEnv(env)
		if !ok || set[name] {
			return
		}
		if err := f.Set(name, v); err != nil {
			errs = errors.Join(errs, fmt.Errorf("invalid %s=%q: %w", env, v, err))
		}
	}
	fromEnv("currency", EnvCurrency)
	fromEnv("settings-file", EnvSettingsFile)
	fromEnv("refresh-delay", EnvRefreshDelay)
	fromEnv("v", EnvVerbose)

	if !*Verbose {
		log.SetOutput(io.Discard)
	}
	return errs
}

// environ returns the configuration as environment variables, for extensions.
func environ() []string {
	return []string{
		EnvCurrency + "=" + *currency,
		EnvSettingsFile + "=" + *settingsFile,
		EnvRefreshDelay + "=" + refreshDelay.String(),
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}

// OpenSettings opens the settings file store.
func OpenSettings() (*settings.FileStore, error) {
	path := *settingsFile
	if path == "" {
		path = settings.DefaultPath()
	}
	return settings.Open(path)
}

// NewLedger creates the process-wide ledger.
func NewLedger() *networth.Ledger {
	return networth.NewLedger(networth.WithCurrency(*currency))
}

// markdownRenderer returns a function rendering markdown for the terminal, in the
// dark or light style. It falls back to the raw markdown if glamour fails.
func markdownRenderer(dark bool) func(string) string {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("glamour-init style=%s err=%v", style, err)
		return func(md string) string { return md }
	}
	return func(md string) string {
		out, err := r.Render(md)
		if err != nil {
			log.Printf("glamour-render err=%v", err)
			return md
		}
		return out
	}
}

// preference reads a boolean setting from store. Errors are logged and read as false.
func preference(store settings.Store, key string) bool {
	v, err := store.Bool(key)
	if err != nil {
		log.Printf("read-setting key=%s err=%v", key, err)
		return false
	}
	return v
}

// userPreference reads a boolean setting from the settings file. Errors are logged
// and read as false.
func userPreference(key string) bool {
	store, err := OpenSettings()
	if err != nil {
		log.Printf("open-settings err=%v", err)
		return false
	}
	return preference(store, key)
}

// printMarkdown prints markdown to stdout, styled after the dark mode setting.
func printMarkdown(md string) {
	fmt.Print(markdownRenderer(userPreference(settings.DarkMode))(md))
}
