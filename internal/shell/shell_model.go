package shell

import (
	"context"
	"errors"

	"go-roster/internal/roster"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Model is the interactive menu over a roster.Service.
type Model struct {
	ctx    context.Context
	svc    roster.Service
	logger *zap.Logger

	state  State
	format roster.Format
	input  textinput.Model

	notice string
	title  string
	lines  []string
}

func New(ctx context.Context, svc roster.Service, logger ...*zap.Logger) Model {
	l := zap.L().Named("shell")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shell")
	}

	ti := textinput.New()
	ti.Placeholder = "employees"
	ti.CharLimit = 64
	ti.Prompt = "> "

	return Model{
		ctx:    ctx,
		svc:    svc,
		logger: l,
		state:  StateMain,
		input:  ti,
	}
}

func (m Model) State() State          { return m.state }
func (m Model) Notice() string        { return m.notice }
func (m Model) Title() string         { return m.title }
func (m Model) Lines() []string       { return m.lines }
func (m Model) Format() roster.Format { return m.format }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == StateExportName {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		m.logger.Debug("interrupt received", zap.Stringer("state", m.state))
		return exit(m)
	}

	from := m.state
	next, cmd := m.handleKey(key)
	if next.state != from {
		m.logger.Debug("menu transition",
			zap.Stringer("from", from),
			zap.Stringer("to", next.state),
		)
	}
	return next, cmd
}

func (m Model) handleKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch m.state {
	case StateExportName:
		switch key.Type {
		case tea.KeyEnter:
			return submitName(m)
		case tea.KeyEsc:
			m.input.Blur()
			m.notice = ""
			m.state = StateExportFormat
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd

	case StateResult:
		m.title, m.lines = "", nil
		m.state = StateMain
		return m, nil
	}

	act, ok := transitions[m.state][key.String()]
	if !ok {
		if m.state == StateMain {
			m.notice = msgCheckData
		} else {
			m.notice = msgCheckInput
		}
		return m, nil
	}
	m.notice = ""
	return act(m)
}

func (m Model) result(title string, lines ...string) Model {
	m.state = StateResult
	m.notice = ""
	m.title = title
	m.lines = lines
	return m
}

// fail returns to the main menu with the uniform "check your input" notice.
func (m Model) fail(err error) Model {
	m.logger.Warn("menu action failed", zap.Stringer("state", m.state), zap.Error(err))
	m.state = StateMain
	m.title, m.lines = "", nil
	m.notice = msgCheckInput + ": " + err.Error()
	return m
}

// Run drives the menu until the user exits or ctx is cancelled. An
// interrupt is a normal way to leave the session.
func Run(ctx context.Context, svc roster.Service, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, svc), opts...)
	_, err := p.Run()
	if err != nil && (ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled)) {
		return nil
	}
	return err
}
