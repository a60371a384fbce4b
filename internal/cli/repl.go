// Package cli provides the terminal front end of fixcalc: the interactive
// REPL, bench presentation and shell completion.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/agbru/fixcalc/internal/calc"
	"github.com/agbru/fixcalc/internal/logging"
	"github.com/agbru/fixcalc/internal/scalar"
	"github.com/agbru/fixcalc/internal/ui"
)

// lastResult is the register holding the value of the last expression.
const lastResult = "_"

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// HexOutput also displays results as one contiguous hex number.
	HexOutput bool
	// Source supplies the words of rand; the secure source when nil.
	Source scalar.Source
	// Logger receives debug traces of evaluated commands.
	Logger logging.Logger
}

// REPL is an interactive calculator session over one engine. Values can be
// kept in registers $a to $z; $_ holds the last result.
type REPL struct {
	config    REPLConfig
	engine    calc.Engine
	registers map[string]string
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a new REPL instance evaluating with engine.
func NewREPL(engine calc.Engine, config REPLConfig) *REPL {
	if config.Source == nil {
		config.Source = scalar.DefaultSource()
	}
	if config.Logger == nil {
		config.Logger = logging.NewLogger(io.Discard, "repl")
	}
	return &REPL{
		config:    config,
		engine:    engine,
		registers: make(map[string]string),
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start runs the session until exit or EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"fix> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(input) == "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !r.processCommand(input) {
			return
		}
		if errors.Is(err, io.EOF) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintln(r.out, ui.Box("fixcalc", "Fixed-width unsigned arithmetic, "+r.engine.Describe().String()))
}

func (r *REPL) printHelp() {
	y, reset := ui.ColorYellow(), ui.ColorReset()
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), reset)
	fmt.Fprintf(r.out, "  %sA op B%s            - Evaluate (%s)\n", y, reset, strings.Join(calc.Operators.Binary, " "))
	fmt.Fprintf(r.out, "  %sop A%s              - Unary operation (%s)\n", y, reset, strings.Join(calc.Operators.Unary, " "))
	fmt.Fprintf(r.out, "  %sfma|fms A B C%s     - Fused A + B*C, A - B*C (fms3 A B C D: A - B*C*D)\n", y, reset)
	fmt.Fprintf(r.out, "  %sset x EXPR%s        - Store the result in register $x (also: $x = EXPR)\n", y, reset)
	fmt.Fprintf(r.out, "  %sshow [x]%s          - Display registers\n", y, reset)
	fmt.Fprintf(r.out, "  %srand [x]%s          - Random value, optionally stored in $x\n", y, reset)
	fmt.Fprintf(r.out, "  %swidth BITS WORDS%s  - Change the word size and count (clears registers)\n", y, reset)
	fmt.Fprintf(r.out, "  %shex%s               - Toggle contiguous hexadecimal display\n", y, reset)
	fmt.Fprintf(r.out, "  %shelp%s              - Display this help\n", y, reset)
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s       - Exit interactive mode\n", y, reset, y, reset)
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	r.config.Logger.Debug("repl command", logging.String("input", input))

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "set":
		if len(args) < 2 {
			r.printError("Usage: set x EXPR")
			return true
		}
		r.cmdSet(args[0], args[1:])
	case "show", "ls":
		r.cmdShow(args)
	case "rand":
		r.cmdRand(args)
	case "width", "w":
		r.cmdWidth(args)
	case "hex":
		r.cmdHex()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if len(parts) > 2 && parts[1] == "=" && strings.HasPrefix(parts[0], "$") {
			r.cmdSet(parts[0], parts[2:])
			return true
		}
		if res, ok := r.eval(parts); ok {
			r.display(res)
		}
	}
	return true
}

// registerName validates x or $x and returns x.
func registerName(s string) (string, bool) {
	name := strings.TrimPrefix(s, "$")
	if len(name) != 1 || (name[0] < 'a' || name[0] > 'z') && name != lastResult {
		return "", false
	}
	return name, true
}

// eval substitutes registers into tokens and evaluates them.
func (r *REPL) eval(tokens []string) (calc.Result, bool) {
	resolved := make([]string, len(tokens))
	for i, tok := range tokens {
		resolved[i] = tok
		if !strings.HasPrefix(tok, "$") {
			continue
		}
		name, ok := registerName(tok)
		if !ok {
			r.printError(fmt.Sprintf("Invalid register: %s (use $a to $z or $_)", tok))
			return calc.Result{}, false
		}
		v, ok := r.registers[name]
		if !ok {
			r.printError(fmt.Sprintf("Register $%s is empty", name))
			return calc.Result{}, false
		}
		resolved[i] = v
	}

	res, err := r.engine.Eval(resolved...)
	if err != nil {
		r.printError(fmt.Sprintf("Error: %v", err))
		return calc.Result{}, false
	}
	if res.Kind == calc.KindScalar {
		r.registers[lastResult] = res.Value
	}
	return res, true
}

func (r *REPL) display(res calc.Result) {
	if r.config.HexOutput {
		fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorGreen(), FormatResult(res), ui.ColorReset())
		return
	}
	DisplayResult(res, false, r.out)
}

func (r *REPL) cmdSet(reg string, expr []string) {
	name, ok := registerName(reg)
	if !ok || name == lastResult {
		r.printError(fmt.Sprintf("Invalid register: %s (use a to z)", reg))
		return
	}
	res, ok := r.eval(expr)
	if !ok {
		return
	}
	if res.Kind != calc.KindScalar {
		r.printError(fmt.Sprintf("Only values can be stored, got %s", res.Value))
		return
	}
	r.registers[name] = res.Value
	fmt.Fprintf(r.out, "%s$%s%s = ", ui.ColorCyan(), name, ui.ColorReset())
	r.display(res)
}

func (r *REPL) cmdShow(args []string) {
	names := make([]string, 0, len(r.registers))
	if len(args) > 0 {
		name, ok := registerName(args[0])
		if !ok {
			r.printError(fmt.Sprintf("Invalid register: %s", args[0]))
			return
		}
		names = append(names, name)
	} else {
		for name := range r.registers {
			names = append(names, name)
		}
		slices.Sort(names)
	}
	if len(names) == 0 {
		fmt.Fprintln(r.out, "No registers set.")
		return
	}
	for _, name := range names {
		v, ok := r.registers[name]
		if !ok {
			v = "(empty)"
		}
		fmt.Fprintf(r.out, "  %s$%s%s = %s\n", ui.ColorCyan(), name, ui.ColorReset(), v)
	}
}

func (r *REPL) cmdRand(args []string) {
	v := r.engine.Random(r.config.Source)
	if len(args) > 0 {
		name, ok := registerName(args[0])
		if !ok || name == lastResult {
			r.printError(fmt.Sprintf("Invalid register: %s (use a to z)", args[0]))
			return
		}
		r.registers[name] = v
		fmt.Fprintf(r.out, "%s$%s%s = ", ui.ColorCyan(), name, ui.ColorReset())
	}
	r.registers[lastResult] = v
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorGreen(), v, ui.ColorReset())
}

func (r *REPL) cmdWidth(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Width: %s%s%s\n", ui.ColorCyan(), r.engine.Describe(), ui.ColorReset())
		return
	}
	if len(args) != 2 {
		r.printError("Usage: width BITS WORDS")
		return
	}
	bits, err1 := strconv.Atoi(args[0])
	words, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		r.printError("Usage: width BITS WORDS")
		return
	}
	engine, err := calc.New(bits, words)
	if err != nil {
		r.printError(fmt.Sprintf("Error: %v", err))
		return
	}
	r.engine = engine
	clear(r.registers)
	fmt.Fprintf(r.out, "Width changed to: %s%s%s\n", ui.ColorGreen(), engine.Describe(), ui.ColorReset())
}

func (r *REPL) cmdHex() {
	r.config.HexOutput = !r.config.HexOutput
	status := "disabled"
	if r.config.HexOutput {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Contiguous hexadecimal display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

func (r *REPL) printError(msg string) {
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorRed(), msg, ui.ColorReset())
}
