// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command parsing, usage text and shared handler environment.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/jeranaias/basecalc/internal/config"
	"github.com/jeranaias/basecalc/internal/history"
	"github.com/jeranaias/basecalc/internal/radix"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdConvert
	CmdMenu
	CmdTable
	CmdHistory
	CmdConfig
	CmdDoctor
	CmdVersion
	CmdHelp
	CmdUnknown
)

// String returns the command name as typed on the command line.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdConvert:
		return "convert"
	case CmdMenu:
		return "menu"
	case CmdTable:
		return "table"
	case CmdHistory:
		return "history"
	case CmdConfig:
		return "config"
	case CmdDoctor:
		return "doctor"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet      bool
	Verbose    bool
	JSON       bool
	NoColor    bool
	ConfigPath string

	// Name is the command word as typed ("dec2bin", "convert", ...).
	Name string

	// convert and the shortcut commands
	Number string
	From   string
	To     string
	Group  string // raw --group value, "" when absent

	// config
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args after the command word
	Raw []string
}

// shortcut maps the two-way shortcut commands onto a base pair.
type shortcut struct {
	from, to radix.Base
}

var shortcuts = map[string]shortcut{
	"dec2bin": {radix.Decimal, radix.Binary},
	"dec2hex": {radix.Decimal, radix.Hexadecimal},
	"bin2dec": {radix.Binary, radix.Decimal},
	"bin2hex": {radix.Binary, radix.Hexadecimal},
	"hex2dec": {radix.Hexadecimal, radix.Decimal},
	"hex2bin": {radix.Hexadecimal, radix.Binary},
}

const usageText = `# basecalc

Convert non-negative integers between **decimal**, **binary** and
**hexadecimal**.

## Usage

    basecalc                          open the interactive converter (default)
    basecalc tui                      same as above
    basecalc convert <n> [flags]      convert a single number
    basecalc dec2bin <n>              decimal to binary
    basecalc dec2hex <n>              decimal to hexadecimal
    basecalc bin2dec <n>              binary to decimal
    basecalc bin2hex <n>              binary to hexadecimal
    basecalc hex2dec <n>              hexadecimal to decimal
    basecalc hex2bin <n>              hexadecimal to binary
    basecalc menu                     step-by-step text menu
    basecalc table [start] [end]      print a conversion table (default 0-15)
    basecalc history [list|clear|export]  show, clear or export past conversions
    basecalc config [show|get|set|path|init]
    basecalc doctor [fix]             check config, history and terminal
    basecalc version
    basecalc help

## Convert flags

    -f, --from <base>     source base (default: converter.default_from)
    -t, --to <base>       target base (default: converter.default_to)
    -g, --group <n>       group output digits in blocks of n

Bases may be written as 2, bin, binary, 10, dec, decimal, 16, hex or
hexadecimal. Hexadecimal digits are accepted in either case and printed
in uppercase. Prefixes such as 0x are not accepted.

## Global flags

    --json                machine-readable output
    -q, --quiet           print only the result
    -v, --verbose         debug logging
    --no-color            disable colors
    --config <path>       use a specific config file

## Examples

    basecalc convert 255 --to hex        # FF
    basecalc bin2hex 1010                # A
    basecalc hex2bin ff --group 4        # 1111 1111
    basecalc history list --limit 5

## Exit codes

    0  success
    1  general error
    2  usage error
    3  configuration error
    4  invalid number for the given base

Version: %s
`

// UsageMarkdown returns the help text as Markdown.
func UsageMarkdown() string {
	return fmt.Sprintf(usageText, Version)
}

// PrintUsage writes the help text, rendered with glamour when w is a
// terminal with colors.
func PrintUsage(w io.Writer) {
	text := UsageMarkdown()
	if w == os.Stdout && ColorsEnabled() {
		if rendered, err := renderMarkdown(text); err == nil {
			text = rendered
		}
	}
	fmt.Fprint(w, text)
}

func renderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()-4),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses a command line without the program name.
func ParseArgs(raw []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(raw)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Name = cmd
	parsedArgs.Raw = remaining

	if sc, ok := shortcuts[cmd]; ok {
		parseConvertArgs(&parsedArgs, remaining)
		parsedArgs.From = sc.from.String()
		parsedArgs.To = sc.to.String()
		return CmdConvert, parsedArgs
	}

	switch cmd {
	case "tui", "gui":
		return CmdTUI, parsedArgs

	case "convert", "c":
		parseConvertArgs(&parsedArgs, remaining)
		return CmdConvert, parsedArgs

	case "menu":
		return CmdMenu, parsedArgs

	case "table":
		return CmdTable, parsedArgs

	case "history":
		if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
			parsedArgs.Subcommand = strings.ToLower(remaining[0])
		}
		return CmdHistory, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "doctor", "diag":
		if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
			parsedArgs.Subcommand = strings.ToLower(remaining[0])
		}
		return CmdDoctor, parsedArgs

	case "version", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns the rest.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			remaining = append(remaining, args[i:]...)
			break
		}

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--no-color":
			parsedArgs.NoColor = true
		case "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--config=") {
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			} else {
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, parsedArgs
}

// parseConvertArgs reads the number and the --from/--to/--group flags.
func parseConvertArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Number = p.Positional(0)
	args.From = p.FlagAny("from", "f")
	args.To = p.FlagAny("to", "t")
	args.Group = p.FlagAny("group", "g")
}

// parseConfigArgs parses "config <sub> [key] [value]".
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) > 0 {
		args.Subcommand = strings.ToLower(remaining[0])
	}
	if len(remaining) > 1 {
		args.ConfigKey = remaining[1]
	}
	if len(remaining) > 2 {
		args.ConfigVal = strings.Join(remaining[2:], " ")
	}
}

// =============================================================================
// HANDLER ENVIRONMENT
// =============================================================================

// Env carries what command handlers share.
type Env struct {
	Config     *config.Config
	ConfigPath string // file config get/set/init operate on
	Logger     *zap.Logger
	History    *history.Store // nil when history is disabled
	Out        io.Writer
	Err        io.Writer
}

// NewEnv builds an Env writing to the process's stdout and stderr.
func NewEnv(cfg *config.Config, logger *zap.Logger) (*Env, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	env := &Env{
		Config: cfg,
		Logger: logger,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
	if cfg.History.Enabled {
		path, err := cfg.HistoryPath()
		if err != nil {
			return nil, &ConfigError{Err: err}
		}
		env.History = history.NewStore(path, cfg.History.MaxEntries)
	}
	return env, nil
}

// =============================================================================
// SIMPLE HANDLERS
// =============================================================================

// HandleVersion handles the "version" command.
func HandleVersion(env *Env, args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse("version", data).Write(env.Out)
	}
	fmt.Fprintf(env.Out, "basecalc version %s\n", Version)
	if !args.Quiet {
		fmt.Fprintf(env.Out, "  Git commit: %s\n", GitCommit)
		fmt.Fprintf(env.Out, "  Build date: %s\n", BuildDate)
	}
	return nil
}

// HandleUnknown reports an unrecognised command, with a suggestion when a
// known command is close.
func HandleUnknown(args Args) error {
	example := "basecalc help"
	if s := SuggestCommand(args.Name); s != "" {
		example = fmt.Sprintf("did you mean 'basecalc %s'?", s)
	}
	return NewValidationErrorWithExample("command", args.Name, "unknown command", example)
}
