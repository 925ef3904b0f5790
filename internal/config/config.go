package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/pick/internal/decode"
	"github.com/jacoelho/pick/internal/exit"
	"github.com/jacoelho/pick/internal/output"
	"github.com/jacoelho/pick/internal/selector"
	"github.com/jacoelho/pick/internal/tree"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

// Stdin is the file name that selects standard input.
const Stdin = "-"

var (
	ErrNoArguments        = errors.New("no arguments provided")
	ErrNoQuery            = errors.New("no query specified")
	ErrTooManyArguments   = errors.New("too many arguments")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrInvalidWhere       = errors.New("where must be in format field=value")
	ErrEmptyWhereField    = errors.New("where field cannot be empty")
	ErrInvalidLimit       = errors.New("limit cannot be negative")
	ErrConflictingFlags   = errors.New("conflicting flags")
	ErrRootAllWithoutRoot = errors.New("--root-all requires --root")
	ErrPlanFileNotFound   = errors.New("plan file not found")
	ErrInputFileNotFound  = errors.New("input file not found")
)

// Config represents the complete configuration for the pick tool.
type Config struct {
	// Query is the path expression; empty when PlanFile is set.
	Query string
	// File is the input document; empty or "-" reads standard input.
	File string

	Input  decode.Format // empty means detect from File
	Output output.Format

	Default *tree.Value
	Focus   string
	Root    string
	RootAll bool
	Where   *selector.Condition
	Limit   int

	PlanFile string
	Strict   bool
	Compact  bool
	Debug    bool
}

// ReadsStdin reports whether the document comes from standard input.
func (c *Config) ReadsStdin() bool {
	return c.File == "" || c.File == Stdin
}

// InputFormat returns the explicit input format or the one implied by File.
func (c *Config) InputFormat() decode.Format {
	if c.Input != "" {
		return c.Input
	}
	if c.ReadsStdin() {
		return decode.FormatJSON
	}
	return decode.FormatFromPath(c.File)
}

// Request builds the selector request for a single query run.
func (c *Config) Request() selector.Request {
	return selector.Request{
		Find:    c.Query,
		Where:   c.Where,
		Limit:   c.Limit,
		Default: c.Default,
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.PlanFile == "" && c.Query == "" {
		return ErrNoQuery
	}

	if c.PlanFile != "" {
		if c.Where != nil || c.Default != nil || c.Limit != 0 {
			return fmt.Errorf("%w: --plan cannot be combined with --where, --default or --limit", ErrConflictingFlags)
		}
		if _, err := os.Stat(c.PlanFile); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPlanFileNotFound, c.PlanFile, err)
		}
	}

	if c.RootAll && c.Root == "" {
		return ErrRootAllWithoutRoot
	}

	if c.Limit < 0 {
		return fmt.Errorf("%w, got: %d", ErrInvalidLimit, c.Limit)
	}

	if !c.ReadsStdin() {
		if _, err := os.Stat(c.File); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInputFileNotFound, c.File, err)
		}
	}

	return nil
}

// inputFlag implements flag.Value for --input.
type inputFlag struct{ format *decode.Format }

func (f inputFlag) String() string {
	if f.format == nil {
		return ""
	}
	return string(*f.format)
}

func (f inputFlag) Set(value string) error {
	format, err := decode.ParseFormat(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	*f.format = format
	return nil
}

// outputFlag implements flag.Value for --output.
type outputFlag struct{ format *output.Format }

func (f outputFlag) String() string {
	if f.format == nil {
		return ""
	}
	return string(*f.format)
}

func (f outputFlag) Set(value string) error {
	format, err := output.ParseFormat(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	*f.format = format
	return nil
}

// literalFlag implements flag.Value for --default.
type literalFlag struct{ value **tree.Value }

func (f literalFlag) String() string {
	if f.value == nil || *f.value == nil {
		return ""
	}
	return (*f.value).String()
}

func (f literalFlag) Set(value string) error {
	literal := ParseLiteral(value)
	*f.value = &literal
	return nil
}

// whereFlag implements flag.Value for --where in field=value format.
type whereFlag struct{ condition **selector.Condition }

func (f whereFlag) String() string {
	if f.condition == nil || *f.condition == nil {
		return ""
	}
	return (*f.condition).Field + "=" + (*f.condition).Value.String()
}

func (f whereFlag) Set(value string) error {
	field, raw, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("%w, got: %s", ErrInvalidWhere, value)
	}

	field = strings.TrimSpace(field)
	if field == "" {
		return ErrEmptyWhereField
	}

	*f.condition = &selector.Condition{Field: field, Value: ParseLiteral(raw)}
	return nil
}

// ParseLiteral reads s as a JSON literal, falling back to a plain string.
func ParseLiteral(s string) tree.Value {
	if v, err := decode.JSON([]byte(s)); err == nil {
		return v
	}
	return tree.String(s)
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help or version is requested, returns nil config and
// exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Usage and errors are reported through exit results.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	config := &Config{Output: output.FormatJSON}

	fs.Var(inputFlag{&config.Input}, "input", "Input format: json or yaml")
	fs.Var(outputFlag{&config.Output}, "output", "Output format: json, yaml or text")
	fs.Var(literalFlag{&config.Default}, "default", "Default value, JSON literal or string")
	fs.Var(whereFlag{&config.Where}, "where", "Keep context items whose field equals value")
	fs.StringVar(&config.Focus, "focus", "", "Re-root the document at this path before querying")
	fs.StringVar(&config.Root, "root", "", "Select the starting node with a JSONPath expression")
	fs.BoolVar(&config.RootAll, "root-all", false, "Start from the list of every node --root selects")
	fs.IntVar(&config.Limit, "limit", 0, "Return a list of at most N results when N > 1")
	fs.StringVar(&config.PlanFile, "plan", "", "Run a YAML query plan")
	fs.BoolVar(&config.Strict, "strict", false, "Reject malformed paths")
	fs.BoolVar(&config.Compact, "compact", false, "Compact JSON output")
	fs.BoolVar(&config.Debug, "debug", false, "Enable debug logging on stderr")

	var version bool
	fs.BoolVar(&version, "version", false, "Show version information")
	fs.BoolVar(&version, "v", false, "Show version information")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	if version {
		return nil, exit.Success("pick " + Version)
	}

	positional := fs.Args()
	if config.PlanFile == "" {
		if len(positional) == 0 {
			return nil, exit.Errorf("Error: %v\n\n%s", ErrNoQuery, Usage())
		}
		config.Query, positional = positional[0], positional[1:]
	}

	switch len(positional) {
	case 0:
	case 1:
		config.File = positional[0]
	default:
		return nil, exit.Errorf("Error: %v: %s\n\n%s", ErrTooManyArguments, strings.Join(positional, " "), Usage())
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `pick - query JSON and YAML documents with dotted paths

Usage: pick [options] <query> [file]
       pick [options] --plan FILE [file]

Query forms:
  a.b.c                   first value reached by the path
  [a.b.c]                 every value reached by the path, as a list
  {a.keys : a.values}     keys zipped with values, as an object
  a.b | a.c               alternatives, the first one that resolves wins

Options:
  --input FORMAT          Input format: json or yaml (default: by file extension, json for stdin)
  --output FORMAT         Output format: json, yaml or text (default: json)
  --default VALUE         Default value, JSON literal or string
  --focus PATH            Re-root the document at PATH before querying
  --root JSONPATH         Select the starting node with an RFC 9535 JSONPath
  --root-all              With --root, start from the list of every selected node
  --where FIELD=VALUE     Keep context items whose FIELD equals VALUE
  --limit N               With N > 1 return a list of at most N results
  --plan FILE             Run a YAML query plan instead of a single query
  --strict                Reject malformed paths instead of returning defaults
  --compact               Compact JSON output
  --debug                 Enable debug logging on stderr
  -h, --help              Show this help message
  -v, --version           Show version information

Examples:
  pick user.name data.json                         # First value
  pick '[users.email]' data.json                   # All values
  pick '{users.id : users.name}' data.json         # Object from two paths
  pick 'user.nick | user.name' data.json           # Fallback path
  pick --where authors=Kevin --limit 5 books b.json # Filter context items
  cat data.yaml | pick --input yaml user.name      # Read standard input`
}
