// Package main provides the lexsort command, which sorts lines of text
// lexicographically and naturally.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/scalecode-solutions/lexsort"
	"github.com/scalecode-solutions/lexsort/internal/lines"
	"github.com/scalecode-solutions/lexsort/internal/logging"
	"github.com/scalecode-solutions/lexsort/sqlite"
)

const version = "0.1.0"

// ErrInteractiveStdin is returned when input would be read from a terminal.
var ErrInteractiveStdin = errors.New("`-` should be used with a pipe for stdin")

// App holds the streams a command reads from and writes to.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdinIsTerminal reports whether Stdin is an interactive terminal. Nil
	// means it is not.
	StdinIsTerminal func() bool
}

func newApp() *App {
	return &App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		StdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// readsTerminal reports whether reading files would read from an interactive
// terminal.
func (a *App) readsTerminal(files []string) bool {
	if a.StdinIsTerminal == nil {
		return false
	}
	if len(files) > 0 && !slices.Contains(files, lines.StdioName) {
		return false
	}
	return a.StdinIsTerminal()
}

// CLI defines the command-line interface for lexsort.
type CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" env:"LEXSORT_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" env:"LEXSORT_LOG_FORMAT" default:"text" enum:"text,json" help:"Log format (${enum})"`

	Sort     SortCmd     `cmd:"" help:"Sort lines of text"`
	Compare  CompareCmd  `cmd:"" help:"Compare two strings and print -1, 0, or 1"`
	Translit TranslitCmd `cmd:"" help:"Print the ASCII transliteration of a string"`
	Modes    ModesCmd    `cmd:"" help:"List comparison modes and their SQL collation names"`
	Collate  CollateCmd  `cmd:"" help:"Print a SQLite column ordered by a lexsort collation"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// execute configures logging and runs the selected command.
func (c *CLI) execute(ctx *kong.Context, app *App) error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(app.Stderr, level, format)
	logging.Debug("command", "name", ctx.Command())

	return ctx.Run(app)
}

// SortCmd sorts the lines of its input files.
type SortCmd struct {
	Mode    lexsort.Mode `short:"m" env:"LEXSORT_MODE" default:"natural-lexical" help:"Comparison mode (see 'lexsort modes')"`
	Stable  bool         `short:"s" help:"Keep the input order of lines whose keys compare equal"`
	Reverse bool         `short:"r" help:"Reverse the result"`
	Unique  bool         `short:"u" help:"Output only the first of lines whose keys compare equal"`
	Trim    bool         `short:"t" help:"Ignore leading and trailing whitespace when comparing"`
	NFD     bool         `name:"nfd" help:"Compare canonical decompositions, so precomposed and decomposed accents are equal"`
	Digest  bool         `help:"Print the BLAKE3 digest of the output to stderr"`
	Output  string       `short:"o" default:"-" help:"Output file ('-' for stdout; .xz and .gz are compressed)"`
	Files   []string     `arg:"" optional:"" help:"Input files ('-' for stdin; .xz and .gz are decompressed)"`
}

// key returns the key function selected by the flags, or nil.
func (c *SortCmd) key() func(string) string {
	switch {
	case c.Trim && c.NFD:
		return func(s string) string { return lexsort.Decompose(strings.TrimSpace(s)) }
	case c.Trim:
		return strings.TrimSpace
	case c.NFD:
		return lexsort.Decompose
	default:
		return nil
	}
}

// Run reads, sorts and writes the input lines.
func (c *SortCmd) Run(app *App) error {
	if app.readsTerminal(c.Files) {
		return ErrInteractiveStdin
	}
	start := time.Now()

	input, err := lines.ReadFiles(c.Files, app.Stdin)
	if err != nil {
		var fe *lines.FileError
		if errors.As(err, &fe) {
			logging.InputError(fe.Path, fe.Err)
		}
		return fmt.Errorf("failed to read input: %w", err)
	}

	cmp := c.Mode.Func()
	if key := c.key(); key != nil {
		base := cmp
		cmp = func(a, b string) int { return base(key(a), key(b)) }
	}
	if c.Stable {
		lexsort.StringsStable(input, cmp)
	} else {
		lexsort.Strings(input, cmp)
	}
	if c.Unique {
		input = lines.Unique(input, cmp)
	}
	if c.Reverse {
		slices.Reverse(input)
	}

	w, err := lines.Create(c.Output, app.Stdout)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := lines.Write(w, input); err != nil {
		w.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	var args []any
	if c.Digest {
		digest := lines.Digest(input)
		fmt.Fprintf(app.Stderr, "blake3 %s\n", digest)
		args = append(args, "blake3", digest)
	}
	logging.Sorted(c.Mode.String(), len(input), time.Since(start), args...)
	return nil
}

// CompareCmd compares two strings.
type CompareCmd struct {
	Mode  lexsort.Mode `short:"m" env:"LEXSORT_MODE" default:"natural-lexical" help:"Comparison mode (see 'lexsort modes')"`
	Left  string       `arg:"" help:"Left string"`
	Right string       `arg:"" help:"Right string"`
}

// Run prints -1, 0 or 1.
func (c *CompareCmd) Run(app *App) error {
	_, err := fmt.Fprintln(app.Stdout, c.Mode.Func()(c.Left, c.Right))
	return err
}

// TranslitCmd prints the transliteration used by the lexical modes.
type TranslitCmd struct {
	OnlyAlnum bool   `name:"only-alnum" short:"a" help:"Drop characters that are not alphanumeric"`
	Text      string `arg:"" help:"Text to transliterate"`
}

// Run prints the transliteration of Text.
func (c *TranslitCmd) Run(app *App) error {
	policy := lexsort.KeepNonAlnum
	if c.OnlyAlnum {
		policy = lexsort.DropNonAlnum
	}
	_, err := fmt.Fprintln(app.Stdout, lexsort.Transliterate(c.Text, policy))
	return err
}

// ModesCmd lists the comparison modes.
type ModesCmd struct{}

// Run prints one mode name per line.
func (c *ModesCmd) Run(app *App) error {
	for _, m := range lexsort.Modes() {
		if _, err := fmt.Fprintf(app.Stdout, "%-28s %s\n", m, m.CollationName()); err != nil {
			return err
		}
	}
	return nil
}

// CollateCmd prints one column of a SQLite table in collation order.
type CollateCmd struct {
	Mode     lexsort.Mode `short:"m" env:"LEXSORT_MODE" default:"natural-lexical" help:"Comparison mode (see 'lexsort modes')"`
	Reverse  bool         `short:"r" help:"Sort in descending order"`
	Database string       `arg:"" type:"existingfile" help:"SQLite database file"`
	Table    string       `arg:"" help:"Table name"`
	Column   string       `arg:"" help:"Column name"`
}

// quoteIdent quotes an SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Run queries the column with the mode's collation and prints the rows.
func (c *CollateCmd) Run(app *App) error {
	db, err := sqlite.Open(c.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	order := "ASC"
	if c.Reverse {
		order = "DESC"
	}
	column := quoteIdent(c.Column)
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s COLLATE %s %s",
		column, quoteIdent(c.Table), column, c.Mode.CollationName(), order)
	logging.Debug("query", "sql", query, "driver", sqlite.DriverType())

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var value sql.NullString
		if err := rows.Scan(&value); err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		out = append(out, value.String)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	return lines.Write(app.Stdout, out)
}

// VersionCmd prints the version and the SQLite driver in use.
type VersionCmd struct{}

// Run prints the version line.
func (c *VersionCmd) Run(app *App) error {
	info := sqlite.GetInfo()
	_, err := fmt.Fprintf(app.Stdout, "lexsort version %s (sqlite: %s, %s)\n", version, info.DriverType, info.Package)
	return err
}

// newParser builds the command line parser for cli.
func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{
		kong.Name("lexsort"),
		kong.Description("Sort and compare text lexicographically and naturally"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, options...)...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = cli.execute(ctx, newApp())
	ctx.FatalIfErrorf(err)
}
