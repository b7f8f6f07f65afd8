package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/etnz/networth/settings"
	"github.com/google/subcommands"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start an interactive tracking session" }
func (*sessionCmd) Usage() string {
	return `networth session

  Starts an interactive session over an empty ledger. Assets and loans added
  during the session live until it ends. Type "help" for the list of commands.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}

	s := NewSession(NewLedger(), store, os.Stdout)
	defer s.Close()
	s.Delay = *refreshDelay
	if err := s.Run(ctx, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// errQuit ends a session.
var errQuit = errors.New("quit")

// Session is an interactive presentation layer bound to one ledger.
type Session struct {
	ledger   *networth.Ledger
	settings settings.Store
	out      io.Writer
	window   networth.Window
	cancel   func()

	// Delay is the simulated duration of a refresh.
	Delay time.Duration
	// Render turns markdown into terminal output. Defaults to glamour, after the dark mode setting.
	Render func(md string) string
}

// NewSession creates a session on l, printing to out. The session subscribes to l
// and reports every mutation until Close.
func NewSession(l *networth.Ledger, store settings.Store, out io.Writer) *Session {
	s := &Session{ledger: l, settings: store, out: out, window: networth.Year}
	s.cancel = l.Subscribe(s.onChange)
	return s
}

// Close stops reporting the mutations of the ledger. It is safe to call it more than once.
func (s *Session) Close() { s.cancel() }

func (s *Session) onChange(e networth.Event) {
	switch e.Kind {
	case networth.AssetAdded:
		fmt.Fprintf(s.out, "✔ added asset %q (%s)\n", e.Asset.Name(), s.figure(e.Asset.Amount().String()))
	case networth.LoanAdded:
		fmt.Fprintf(s.out, "✔ added loan %q (%s)\n", e.Loan.Name(), s.figure(e.Loan.Amount().String()))
	case networth.Refreshed:
		fmt.Fprintf(s.out, "✔ refreshed at %s\n", e.At.Format("15:04:05"))
	}
	fmt.Fprintf(s.out, "  net worth: %s\n", s.figure(s.ledger.NetWorth().String()))
}

// Run executes the commands read from in, one per line, until "quit" or the end of in.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, "> ")
	for scanner.Scan() {
		err := s.Exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(s.out, "✘ %v\n", err)
		}
		fmt.Fprint(s.out, "> ")
	}
	return scanner.Err()
}

// Exec executes a single command line.
func (s *Session) Exec(ctx context.Context, line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	name, args := args[0], args[1:]
	switch name {
	case "add-asset":
		return s.addAsset(args)
	case "add-loan":
		return s.addLoan(args)
	case "assets":
		s.print(renderer.RenderRecords(renderer.NewAssetList(s.ledger, s.hidden())))
	case "loans":
		s.print(renderer.RenderRecords(renderer.NewLoanList(s.ledger, s.hidden())))
	case "summary":
		if len(args) > 0 {
			w, err := networth.ParseWindow(args[0])
			if err != nil {
				return err
			}
			s.window = w
		}
		s.print(renderer.RenderDashboard(renderer.NewDashboard(s.ledger, s.window, s.hidden())))
	case "change":
		return s.change(args)
	case "chart":
		return s.chart(args)
	case "refresh":
		return s.refresh(ctx)
	case "export":
		return s.export(args)
	case "dark":
		return s.toggle(settings.DarkMode, "dark mode")
	case "hide":
		return s.toggle(settings.NumbersHidden, "hidden numbers")
	case "help":
		fmt.Fprint(s.out, sessionHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type help for the list of commands", name)
	}
	return nil
}

const sessionHelp = `commands:
  add-asset <name> <amount> [cash|stock|fund|real-estate]
  add-loan <name> <amount>
  assets | loans               list records
  summary [window]             dashboard, window is one of 1D 1W 1M 3M 1Y All
  change <window>              change over a window
  chart <file.html>            write the chart of the net worth
  refresh                      refresh the data
  export [jsonpath]            print the ledger as JSON, optionally queried
  dark | hide                  toggle dark mode or hidden numbers
  quit
`

func (s *Session) addAsset(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("usage: add-asset <name> <amount> [kind]")
	}
	amount, err := networth.ParseAmount(args[1])
	if err != nil {
		return err
	}
	kind := networth.Cash
	if len(args) == 3 {
		if kind, err = networth.ParseAssetKind(args[2]); err != nil {
			return err
		}
	}
	_, err = s.ledger.AddAssetOf(kind, args[0], amount)
	return err
}

func (s *Session) addLoan(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: add-loan <name> <amount>")
	}
	amount, err := networth.ParseAmount(args[1])
	if err != nil {
		return err
	}
	_, err = s.ledger.AddLoan(args[0], amount)
	return err
}

func (s *Session) change(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: change <window>")
	}
	w, err := networth.ParseWindow(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatChange(s.ledger.ChangeForPeriod(w), s.hidden()))
	return nil
}

func (s *Session) chart(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: chart <file.html>")
	}
	dark, err := s.settings.Bool(settings.DarkMode)
	if err != nil {
		return err
	}
	if err := writeChart(args[0], s.ledger.Series(), dark); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "chart written to %s\n", args[0])
	return nil
}

// refresh waits for the simulated delay, then refreshes the ledger.
func (s *Session) refresh(ctx context.Context) error {
	fmt.Fprintln(s.out, "refreshing...")
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.Delay):
	}
	s.ledger.Refresh()
	return nil
}

func (s *Session) export(args []string) error {
	data, err := json.Marshal(s.ledger.Snapshot())
	if err != nil {
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return err
	}
	if len(args) > 0 {
		query := strings.Join(args, " ")
		if result, err = jsonpath.Get(query, result); err != nil {
			return fmt.Errorf("invalid query %q: %w", query, err)
		}
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, string(out))
	return nil
}

func (s *Session) toggle(key, label string) error {
	v, err := settings.Toggle(s.settings, key)
	if err != nil {
		return err
	}
	state := "off"
	if v {
		state = "on"
	}
	fmt.Fprintf(s.out, "%s %s\n", label, state)
	return nil
}

func (s *Session) hidden() bool { return preference(s.settings, settings.NumbersHidden) }

func (s *Session) figure(v string) string {
	if s.hidden() {
		return renderer.Mask
	}
	return v
}

func (s *Session) print(md string) {
	render := s.Render
	if render == nil {
		render = markdownRenderer(preference(s.settings, settings.DarkMode))
	}
	fmt.Fprint(s.out, render(md))
}

// splitArgs splits a command line on spaces; double quotes group words.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		inArg   bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			inArg = true
		case (r == ' ' || r == '\t') && !quoted:
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}
