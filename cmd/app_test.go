package cmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/settings"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestFlags returns a flag set bound to the global flags, restored at the end of the test.
func newTestFlags(t *testing.T) *flag.FlagSet {
	t.Helper()
	oldCurrency, oldSettings, oldDelay, oldVerbose := *currency, *settingsFile, *refreshDelay, *Verbose
	t.Cleanup(func() {
		*currency, *settingsFile, *refreshDelay, *Verbose = oldCurrency, oldSettings, oldDelay, oldVerbose
	})

	f := flag.NewFlagSet("networth", flag.ContinueOnError)
	f.StringVar(currency, "currency", oldCurrency, "")
	f.StringVar(settingsFile, "settings-file", oldSettings, "")
	f.DurationVar(refreshDelay, "refresh-delay", oldDelay, "")
	f.BoolVar(Verbose, "v", oldVerbose, "")
	return f
}

func TestConfigureFromEnv(t *testing.T) {
	f := newTestFlags(t)
	t.Setenv(EnvCurrency, "EUR")
	t.Setenv(EnvRefreshDelay, "2s")
	require.NoError(t, f.Parse(nil))

	require.NoError(t, Configure(f))
	assert.Equal(t, "EUR", *currency)
	assert.Equal(t, 2*time.Second, *refreshDelay)
	assert.Equal(t, "EUR", NewLedger().Currency())
}

func TestConfigureFlagsWin(t *testing.T) {
	f := newTestFlags(t)
	t.Setenv(EnvCurrency, "EUR")
	require.NoError(t, f.Parse([]string{"-currency", "CHF"}))

	require.NoError(t, Configure(f))
	assert.Equal(t, "CHF", *currency)
}

func TestConfigureInvalidEnv(t *testing.T) {
	f := newTestFlags(t)
	t.Setenv(EnvRefreshDelay, "soon")
	t.Setenv(EnvVerbose, "maybe")
	require.NoError(t, f.Parse(nil))

	err := Configure(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvRefreshDelay)
	assert.Contains(t, err.Error(), EnvVerbose)
}

func TestEnviron(t *testing.T) {
	f := newTestFlags(t)
	require.NoError(t, f.Parse([]string{"-currency", "XYZ", "-refresh-delay", "3s"}))
	assert.Contains(t, environ(), EnvCurrency+"=XYZ")
	assert.Contains(t, environ(), EnvRefreshDelay+"=3s")
}

func TestSettingsCommand(t *testing.T) {
	f := newTestFlags(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, f.Parse([]string{"-settings-file", path}))

	args := flag.NewFlagSet("settings", flag.ContinueOnError)
	require.NoError(t, args.Parse([]string{settings.DarkMode, "true"}))
	assert.Equal(t, subcommands.ExitSuccess, (&settingsCmd{}).Execute(context.Background(), args))

	store, err := settings.Open(path)
	require.NoError(t, err)
	dark, err := store.Bool(settings.DarkMode)
	require.NoError(t, err)
	assert.True(t, dark)

	require.NoError(t, args.Parse([]string{"isLoud", "true"}))
	assert.Equal(t, subcommands.ExitUsageError, (&settingsCmd{}).Execute(context.Background(), args))

	require.NoError(t, args.Parse([]string{settings.DarkMode, "yes please"}))
	assert.Equal(t, subcommands.ExitUsageError, (&settingsCmd{}).Execute(context.Background(), args))
}

func TestChangeCommandInvalidWindow(t *testing.T) {
	c := &changeCmd{window: "2Y"}
	assert.Equal(t, subcommands.ExitUsageError, c.Execute(context.Background(), flag.NewFlagSet("change", flag.ContinueOnError)))
}

func TestCompletion(t *testing.T) {
	c := Completion(newTestFlags(t))

	for _, sub := range Commands {
		assert.Contains(t, c.Sub, sub.Name())
	}
	assert.Contains(t, c.Flags, "currency")
	assert.Equal(t, []string{"1D", "1W", "1M", "3M", "1Y", "All"}, c.Sub["change"].Flags["w"].Predict(""))
	assert.Contains(t, c.Sub["chart"].Flags, "o")
	assert.Contains(t, c.Sub["settings"].Args.Predict(""), settings.DarkMode)
	assert.Contains(t, c.Sub["topic"].Args.Predict(""), "session")
}

func TestFormatChange(t *testing.T) {
	loss := networth.Change{Window: networth.Week, Amount: networth.M(-12.5, "USD"), Percentage: -1.5}
	assert.Equal(t, "▼ $12.50 (1.50%) Past Week", formatChange(loss, false))
	assert.Equal(t, "▼ **** (****) Past Week", formatChange(loss, true))
}

func TestTopicCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listTopics(&out))
	assert.Equal(t, "session\nsettings\nwindows\n", out.String())

	args := flag.NewFlagSet("topic", flag.ContinueOnError)
	require.NoError(t, args.Parse([]string{"nope"}))
	assert.Equal(t, subcommands.ExitUsageError, (&topicCmd{}).Execute(context.Background(), args))
}
