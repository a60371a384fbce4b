package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/fixcalc/internal/config"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag only needs an entry there.
type FlagCompletion struct {
	Long      string   // flag name without the dash (e.g., "words")
	Short     string   // one-letter alias without the dash, if any
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free value)
	ValueName string   // label for the value; empty for boolean flags
}

var flagRegistry = []FlagCompletion{
	{Long: "word", Help: "Word size in bits", Values: []string{"8", "16", "32", "64"}, ValueName: "bits"},
	{Long: "words", Help: "Number of words per scalar", Values: []string{"1", "2", "4", "8", "16", "32", "64"}, ValueName: "count"},
	{Long: "iterations", Help: "Trials per check for bench", Values: []string{"100", "1000", "10000", "100000"}, ValueName: "count"},
	{Long: "workers", Help: "Concurrent checks for bench", ValueName: "count"},
	{Long: "timeout", Help: "Maximum run time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "seed", Help: "Seed for reproducible random values", ValueName: "seed"},
	{Long: "verbose", Short: "v", Help: "Verbose output"},
	{Long: "quiet", Short: "q", Help: "Print results only"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "metrics", Help: "Print Prometheus metrics after bench"},
	{Long: "tui", Help: "Run bench in the interactive dashboard"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
}

// completionShells lists the shells GenerateCompletion supports.
var completionShells = []string{"bash", "zsh", "fish"}

// GenerateCompletion writes a completion script for shell to out.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %q (accepted values: %s)", shell, strings.Join(completionShells, ", "))
	}
}

func generateBashCompletion(out io.Writer) error {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, "-"+f.Long)
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
		if len(f.Values) > 0 {
			fmt.Fprintf(&cases, "        -%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				f.Long, strings.Join(f.Values, " "))
		}
	}

	_, err := fmt.Fprintf(out, `# Bash completion script for fixcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_fixcalc_completions() {
    local cur prev opts commands
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    commands="%s"

    case "${prev}" in
%s        completion)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    else
        COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
    fi
}

complete -F _fixcalc_completions fixcalc
`, strings.Join(opts, " "), strings.Join(config.Commands, " "), cases.String(), strings.Join(completionShells, " "))
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a flag as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	} else if f.ValueName != "" {
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}
	if f.Short != "" {
		return fmt.Sprintf("        '(-%s -%s)'{-%s,-%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func generateZshCompletion(out io.Writer) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	args = append(args, fmt.Sprintf("        '1:command:(%s)'", strings.Join(config.Commands, " ")))

	_, err := fmt.Fprintf(out, `#compdef fixcalc

# Zsh completion script for fixcalc
# Place this file in a directory listed in $fpath

_fixcalc() {
    _arguments -s \
%s
}

_fixcalc "$@"
`, strings.Join(args, " \\\n"))
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

func fishCompleteLine(f FlagCompletion) string {
	parts := []string{"complete -c fixcalc", "-o " + f.Long}
	if f.Short != "" {
		parts = append(parts, "-o "+f.Short)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
	if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	} else if f.ValueName != "" {
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func generateFishCompletion(out io.Writer) error {
	lines := []string{
		"# Fish completion script for fixcalc",
		"# Add this to ~/.config/fish/completions/fixcalc.fish",
		"",
		"complete -c fixcalc -f",
		fmt.Sprintf("complete -c fixcalc -n '__fish_use_subcommand' -a '%s'", strings.Join(config.Commands, " ")),
		fmt.Sprintf("complete -c fixcalc -n '__fish_seen_subcommand_from completion' -a '%s'", strings.Join(completionShells, " ")),
		"",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f))
	}
	if _, err := fmt.Fprintln(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}
