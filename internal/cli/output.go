// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayProgress], [DisplayMemoryStats].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatResult].

package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/fixcalc/internal/calc"
	"github.com/agbru/fixcalc/internal/config"
	"github.com/agbru/fixcalc/internal/ui"
)

// FormatResult renders r without colors. Scalars show the grouped form and,
// when the words are wider than one digit pair, the contiguous form as well.
func FormatResult(r calc.Result) string {
	s := r.String()
	if r.Kind == calc.KindScalar && r.Hex != "" && strings.Contains(r.Value, " ") {
		s += "\n= 0x" + r.Hex
	}
	return s
}

// DisplayResult prints r. In quiet mode only the grouped value is written.
func DisplayResult(r calc.Result, quiet bool, out io.Writer) {
	if quiet {
		fmt.Fprintln(out, r.Value)
		return
	}
	color := ui.ColorGreen()
	if r.Carry {
		color = ui.ColorYellow()
	}
	fmt.Fprintf(out, "%s%s%s\n", color, r.Value, ui.ColorReset())
	if r.Carry {
		fmt.Fprintf(out, "%s(result wrapped modulo 2^N)%s\n", ui.ColorGrey(), ui.ColorReset())
	}
}

// CPUFeatures lists the instruction set extensions relevant to widening
// multiplication and carry chains.
func CPUFeatures() []string {
	var features []string
	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasBMI2 {
			features = append(features, "BMI2")
		}
		if cpu.X86.HasADX {
			features = append(features, "ADX")
		}
		if cpu.X86.HasAVX2 {
			features = append(features, "AVX2")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "ASIMD")
		}
	}
	return features
}

// PrintExecutionConfig displays the configuration of a bench run.
func PrintExecutionConfig(cfg config.AppConfig, desc calc.Description, numChecks int, out io.Writer) {
	features := strings.Join(CPUFeatures(), " ")
	if features == "" {
		features = "none detected"
	}
	seed := "secure random"
	if cfg.Seed != 0 {
		seed = fmt.Sprintf("seed %d", cfg.Seed)
	}
	body := fmt.Sprintf("Width:       %s\nChecks:      %d x %d trials, %d workers\nOperands:    %s\nTimeout:     %s\nEnvironment: %d CPUs, Go %s, %s/%s\nCPU flags:   %s",
		desc, numChecks, cfg.Iterations, cfg.Workers, seed, cfg.Timeout,
		runtime.NumCPU(), runtime.Version(), runtime.GOOS, runtime.GOARCH, features)
	fmt.Fprintln(out, ui.Box("fixcalc bench", body))
}
