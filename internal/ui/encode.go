package ui

import (
	"context"
	"fmt"
	"strings"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"xten/internal/progress"
)

type updateMsg progress.Update

type resultMsg progress.Result

// chanReporter bridges executor callbacks into bubbletea messages.
type chanReporter struct {
	ch chan tea.Msg
}

func (r chanReporter) Update(u progress.Update) { r.ch <- updateMsg(u) }
func (r chanReporter) Result(t progress.Result) { r.ch <- resultMsg(t) }

type encodeModel struct {
	cancel context.CancelFunc
	events chan tea.Msg

	bar     bubblesprogress.Model
	spin    spinner.Model
	styles  Styles
	total   float64
	message string

	percent float64
	seconds float64
	done    bool
	err     error
}

// RunEncode drives run under a live progress view. run receives a
// Reporter that feeds the display; RunEncode blocks until the job ends
// or the user cancels, and returns the job's error.
func RunEncode(ctx context.Context, totalSec float64, message string, run func(ctx context.Context, rep progress.Reporter) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tea.Msg, 16)
	m := encodeModel{
		cancel:  cancel,
		events:  events,
		bar:     bubblesprogress.New(bubblesprogress.WithDefaultGradient(), bubblesprogress.WithWidth(40)),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  DefaultStyles(),
		total:   totalSec,
		message: message,
	}

	done := make(chan error, 1)
	go func() {
		err := run(ctx, chanReporter{ch: events})
		// The executor reports its own Result; this covers failures
		// before the subprocess ever started.
		events <- resultMsg{Err: err}
		done <- err
	}()

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()

	// The display is gone but the job may still be unwinding: keep the
	// event channel drained until run returns, or a blocked reporter
	// send would stop the job from ever reaching its cleanup.
	runErr := drainUntilDone(events, done)

	if err != nil && ctx.Err() == nil {
		return err
	}
	if fm, ok := final.(encodeModel); ok && fm.done {
		return fm.err
	}
	if runErr != nil {
		return runErr
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return context.Canceled
}

func drainUntilDone(events chan tea.Msg, done chan error) error {
	for {
		select {
		case <-events:
		case err := <-done:
			return err
		}
	}
}

func listen(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m encodeModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, listen(m.events))
}

func (m encodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.percent = msg.Percent
		m.seconds = msg.Seconds
		if msg.Message != "" {
			m.message = msg.Message
		}
		return m, listen(m.events)

	case resultMsg:
		if m.done {
			return m, nil
		}
		m.done = true
		m.err = msg.Err
		if msg.Err == nil {
			m.percent = 100
		}
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		w := msg.Width - 30
		if w > 10 {
			m.bar.Width = w
		}
		return m, nil
	}
	return m, nil
}

func (m encodeModel) View() string {
	var b strings.Builder

	status := m.spin.View() + " " + m.message
	if m.done {
		if m.err != nil {
			status = m.styles.Error.Render("✗ " + m.message + " failed")
		} else {
			status = m.styles.Success.Render("✓ " + m.message + " complete")
		}
	}
	b.WriteString(status)
	b.WriteString("\n")

	b.WriteString(m.bar.ViewAs(m.percent / 100))
	b.WriteString(fmt.Sprintf(" %3.0f%%", m.percent))
	if m.total > 0 {
		b.WriteString(m.styles.Faint.Render(fmt.Sprintf("  %.1fs / %.1fs", m.seconds, m.total)))
	}
	b.WriteString("\n")
	return b.String()
}
