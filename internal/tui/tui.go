// Package tui терминальный интерфейс поверх контроллера на Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Totarae/URLShortenerClient/internal/controller"
	"github.com/Totarae/URLShortenerClient/internal/view"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	hintInvalidInput = "Please enter a URL."
	helpLine         = "enter: shorten • ctrl+y: copy • esc: quit"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	disabledStyle = buttonStyle.Faint(true)
	labelStyle    = lipgloss.NewStyle().MarginTop(1)
	linkStyle     = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("39"))
	errorStyle    = lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("160"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle     = lipgloss.NewStyle().MarginTop(1).Faint(true)
)

// Controller операции контроллера, которые нужны терминальному интерфейсу.
type Controller interface {
	Submit(ctx context.Context, url string) error
	Copy(ctx context.Context) (bool, error)
	Subscribe() (<-chan controller.State, func())
}

type stateMsg controller.State

type errMsg struct{ err error }

// Model модель Bubble Tea. Состояние берётся только из подписки на контроллер.
type Model struct {
	ctx    context.Context
	ctrl   Controller
	states <-chan controller.State

	input textinput.Model
	view  view.View
	hint  string
	err   error
}

// New подписывается на контроллер. Вторым значением возвращается отписка.
func New(ctx context.Context, ctrl Controller) (Model, func()) {
	in := textinput.New()
	in.Placeholder = view.Placeholder
	in.Prompt = "> "
	in.Width = 48
	in.Focus()

	states, unsubscribe := ctrl.Subscribe()
	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		states: states,
		input:  in,
		view:   view.Render(controller.State{}),
	}, unsubscribe
}

// Run запускает программу и блокирует до выхода пользователя или отмены ctx.
func Run(ctx context.Context, ctrl Controller, opts ...tea.ProgramOption) error {
	m, unsubscribe := New(ctx, ctrl)
	defer unsubscribe()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Err ошибка, из-за которой интерфейс завершился сам.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForState(m.states))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.view = view.Render(controller.State(msg))
		return m, waitForState(m.states)

	case errMsg:
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.view.SubmitDisabled {
				return m, nil
			}
			raw := strings.TrimSpace(m.input.Value())
			if !view.ValidInput(raw) {
				m.hint = hintInvalidInput
				return m, nil
			}
			m.hint = ""
			return m, m.submit(raw)
		case tea.KeyCtrlY:
			if !m.view.ShowResult {
				return m, nil
			}
			return m, m.copy()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.view.Title))
	b.WriteString("\n")

	button := buttonStyle
	if m.view.SubmitDisabled {
		button = disabledStyle
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", button.Render(m.view.SubmitLabel)))
	b.WriteString("\n")

	if m.hint != "" {
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n")
	}

	if m.view.ShowResult {
		b.WriteString(labelStyle.Render(m.view.ResultLabel))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			linkStyle.Render(m.view.ShortURL), " ", buttonStyle.Render(m.view.CopyLabel)))
		b.WriteString("\n")
	}

	if m.view.ShowError {
		b.WriteString(errorStyle.Render(m.view.ErrorText))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")
	return b.String()
}

func (m Model) submit(raw string) tea.Cmd {
	return func() tea.Msg {
		if err := m.ctrl.Submit(m.ctx, raw); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

// copy результат копирования виден через состояние; ошибка буфера обмена не показывается.
func (m Model) copy() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.ctrl.Copy(m.ctx); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func waitForState(states <-chan controller.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg(s)
	}
}
