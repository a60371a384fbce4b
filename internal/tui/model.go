package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fixcalc/internal/calc"
	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/format"
	"github.com/agbru/fixcalc/internal/metrics"
	"github.com/agbru/fixcalc/internal/orchestration"
	"github.com/agbru/fixcalc/internal/sysmon"
	"github.com/agbru/fixcalc/internal/ui"
)

// TickInterval is the sampling period of the dashboard.
const TickInterval = 500 * time.Millisecond

// ExecutionState holds the execution-related fields of a dashboard session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	checks     []calc.Check
	generation uint64
	done       bool
	exitCode   int
}

// Model is the root bubbletea model of the bench dashboard.
type Model struct {
	header HeaderModel
	rows   ChecksModel
	system SystemModel
	help   help.Model
	keymap KeyMap

	ExecutionState

	parentCtx context.Context
	opts      orchestration.Options
	collector *metrics.MemoryCollector
	ref       *programRef

	width, height int
	paused        bool
	average       float64
	eta           time.Duration
	lastErr       error
}

// NewModel creates a dashboard that runs checks with opts.
func NewModel(parentCtx context.Context, checks []calc.Check, desc calc.Description, opts orchestration.Options, version string) Model {
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.Name()
	}
	ctx, cancel := context.WithCancel(parentCtx)

	return Model{
		header: NewHeaderModel(desc.String(), version),
		rows:   NewChecksModel(names, ui.GetCurrentTheme().Name != "none"),
		system: NewSystemModel(),
		help:   help.New(),
		keymap: DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			checks:   checks,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		opts:      opts,
		collector: metrics.NewMemoryCollector(),
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startBenchCmd(m.ref, m.ctx, m.checks, m.opts, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.rows.SetWidth(msg.Width - 4)
		m.system.SetWidth(msg.Width - 4)
		m.help.Width = msg.Width
		return m, nil

	case ProgressMsg:
		if msg.Generation == m.generation && !m.paused {
			m.rows.SetProgress(msg.CheckIndex, msg.Value)
			m.average = msg.AverageProgress
			m.eta = msg.ETA
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ResultsMsg:
		if msg.Generation == m.generation {
			m.rows.SetResults(msg.Results)
			m.average = 1
		}
		return m, nil

	case ErrorMsg:
		if msg.Generation == m.generation {
			m.lastErr = msg.Err
		}
		return m, nil

	case BenchCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if !m.done {
			m.done = true
			m.header.SetDone()
			m.exitCode = apperrors.HandleError(msg.Err, m.header.Elapsed(), io.Discard, nil)
		}
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		if m.paused {
			return m, tickCmd()
		}
		return m, tea.Batch(sampleMemStatsCmd(m.collector), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.system.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.system.UpdateSysStats(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Restart):
		if m.cancel != nil {
			m.cancel()
		}
		wasDone := m.done

		m.generation++
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)
		m.header.Reset()
		m.rows.Reset()
		m.done = false
		m.paused = false
		m.average = 0
		m.eta = 0
		m.lastErr = nil
		m.exitCode = apperrors.ExitSuccess

		cmds := []tea.Cmd{
			startBenchCmd(m.ref, m.ctx, m.checks, m.opts, m.generation),
			watchContextCmd(m.ctx, m.generation),
		}
		if wasDone {
			cmds = append(cmds, tickCmd())
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	inner := m.width - 2
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		panelStyle.Width(inner).Render(m.rows.View()),
		" "+m.statusLine(),
		panelStyle.Width(inner).Render(m.system.View()),
		" "+m.help.View(m.keymap),
	)
}

func (m Model) statusLine() string {
	var mismatch apperrors.MismatchError
	switch {
	case !m.done && m.paused:
		return statusPausedStyle.Render("PAUSED") + dimStyle.Render(fmt.Sprintf("  %.1f%%", m.average*100))
	case !m.done:
		return statusRunningStyle.Render("RUNNING") +
			dimStyle.Render(fmt.Sprintf("  %.1f%%  ETA %s", m.average*100, format.FormatETA(m.eta)))
	case errors.As(m.lastErr, &mismatch):
		return statusErrorStyle.Render("MISMATCH") + dimStyle.Render("  "+mismatch.Error())
	case m.lastErr != nil:
		return statusErrorStyle.Render("FAILED") + dimStyle.Render("  "+m.lastErr.Error())
	default:
		return statusDoneStyle.Render("DONE") + dimStyle.Render("  all checks agree with their reference forms")
	}
}

// Run is the entry point of the dashboard. It runs the checks until they
// finish and the user quits, and returns the exit code of the last run.
func Run(ctx context.Context, checks []calc.Check, desc calc.Description, opts orchestration.Options, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, checks, desc, opts, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.attach(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startBenchCmd returns a tea.Cmd that runs the checks through the
// orchestration layer.
func startBenchCmd(ref *programRef, ctx context.Context, checks []calc.Check, opts orchestration.Options, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		presenter := &TUIResultPresenter{ref: ref, generation: gen}
		results := orchestration.ExecuteChecks(ctx, checks, opts, reporter, io.Discard)
		exitCode := orchestration.AnalyzeCheckResults(results, presenter, io.Discard)
		return BenchCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd(mc *metrics.MemoryCollector) tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg{Snapshot: mc.Snapshot(), NumGoroutine: runtime.NumGoroutine()}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
