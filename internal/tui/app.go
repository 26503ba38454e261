// Package tui implements the interactive login and expense forms.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/lucianookdp/HomeWise/internal/cli"
	"github.com/lucianookdp/HomeWise/internal/common"
	"github.com/lucianookdp/HomeWise/internal/expense"
	"github.com/lucianookdp/HomeWise/internal/model"
	"github.com/lucianookdp/HomeWise/internal/session"
)

type mode int

const (
	modeLogin mode = iota
	modeExpense
)

// Field order within each mode.
const (
	loginFieldPerson = iota
	loginFieldPIN
)

const (
	expenseFieldAmount = iota
	expenseFieldCategory
	expenseFieldDescription
)

type loginResultMsg struct {
	session *model.Session
	err     error
}

type submitResultMsg struct {
	confirmation string
	err          error
}

// Model drives both forms. At most one gateway call is in flight per
// form; keys are ignored while loading so the submit affordance stays
// effectively disabled.
type Model struct {
	sessions  *session.Manager
	submitter *expense.Submitter
	clock     clockwork.Clock

	mode  mode
	focus int

	personCursor int
	pinInput     textinput.Model
	showPin      bool

	draft          *model.ExpenseDraft
	amountInput    textinput.Model
	descInput      textinput.Model
	categoryCursor int

	spin    spinner.Model
	loading bool
	status  model.Status

	width int
}

// NewModel builds the form, starting on the expense view when a
// session is already active.
func NewModel(sessions *session.Manager, submitter *expense.Submitter, clock clockwork.Clock) Model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	pinInput := textinput.New()
	pinInput.Placeholder = "Digite aqui"
	pinInput.CharLimit = session.MaxPinDigits
	pinInput.EchoMode = textinput.EchoPassword
	pinInput.EchoCharacter = '•'

	amountInput := textinput.New()
	amountInput.Placeholder = "0,00"

	descInput := textinput.New()
	descInput.Placeholder = "Ex: padaria, farmácia"

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(cli.PrimaryColor)

	m := Model{
		sessions:    sessions,
		submitter:   submitter,
		clock:       clock,
		pinInput:    pinInput,
		amountInput: amountInput,
		descInput:   descInput,
		spin:        spin,
	}

	if sessions.IsActive() {
		m.enterExpenseMode()
	} else {
		m.enterLoginMode()
	}
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loginResultMsg:
		m.loading = false
		if msg.err != nil {
			m.status = model.Status{Kind: model.StatusError, Message: common.UserMessage(msg.err)}
			return m, nil
		}
		m.enterExpenseMode()
		m.status = model.Status{Kind: model.StatusSuccess, Message: "Acesso liberado."}
		return m, textinput.Blink

	case submitResultMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, common.ErrSessionExpired) {
				m.enterLoginMode()
			}
			m.status = model.Status{Kind: model.StatusError, Message: common.UserMessage(msg.err)}
			return m, nil
		}
		m.status = model.Status{Kind: model.StatusSuccess, Message: msg.confirmation}
		m.amountInput.SetValue("")
		m.descInput.SetValue("")
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}
		if m.mode == modeLogin {
			return m.updateLogin(msg)
		}
		return m.updateExpense(msg)
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		if m.focus == loginFieldPerson {
			m.focus = loginFieldPIN
			m.pinInput.Focus()
		} else {
			m.focus = loginFieldPerson
			m.pinInput.Blur()
		}
		return m, nil

	case "up", "down":
		if m.focus == loginFieldPerson {
			m.personCursor = step(m.personCursor, len(model.People), msg.String())
		}
		return m, nil

	case "ctrl+o":
		m.showPin = !m.showPin
		if m.showPin {
			m.pinInput.EchoMode = textinput.EchoNormal
		} else {
			m.pinInput.EchoMode = textinput.EchoPassword
		}
		return m, nil

	case "enter":
		m.loading = true
		m.status = model.Status{Kind: model.StatusLoading, Message: "Entrando..."}
		return m, tea.Batch(m.spin.Tick, m.loginCmd())
	}

	if m.focus == loginFieldPIN {
		var cmd tea.Cmd
		m.pinInput, cmd = m.pinInput.Update(msg)
		// Mirror the PIN rules as the user types.
		if value := m.pinInput.Value(); value != session.NormalizePin(value) {
			m.pinInput.SetValue(session.NormalizePin(value))
			m.pinInput.CursorEnd()
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) updateExpense(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+l":
		if err := m.sessions.Logout(); err != nil {
			m.status = model.Status{Kind: model.StatusError, Message: common.UserMessage(err)}
			return m, nil
		}
		m.enterLoginMode()
		m.status = model.Status{Kind: model.StatusIdle}
		return m, textinput.Blink

	case "tab":
		m.focus = (m.focus + 1) % 3
		m.syncExpenseFocus()
		return m, nil

	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		m.syncExpenseFocus()
		return m, nil

	case "up", "down":
		if m.focus == expenseFieldCategory {
			m.categoryCursor = step(m.categoryCursor, len(model.Categories), msg.String())
		}
		return m, nil

	case "enter":
		m.draft.Amount = m.amountInput.Value()
		m.draft.Category = model.Categories[m.categoryCursor]
		m.draft.Description = m.descInput.Value()
		m.loading = true
		m.status = model.Status{Kind: model.StatusLoading, Message: "Salvando..."}
		return m, tea.Batch(m.spin.Tick, m.submitCmd())
	}

	var cmd tea.Cmd
	switch m.focus {
	case expenseFieldAmount:
		m.amountInput, cmd = m.amountInput.Update(msg)
	case expenseFieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) enterLoginMode() {
	m.mode = modeLogin
	m.focus = loginFieldPerson
	m.personCursor = 0
	m.showPin = false
	m.pinInput.SetValue("")
	m.pinInput.EchoMode = textinput.EchoPassword
	m.pinInput.Blur()
	m.status = model.Status{Kind: model.StatusIdle}
}

func (m *Model) enterExpenseMode() {
	m.mode = modeExpense
	m.focus = expenseFieldAmount
	m.draft = expense.NewDraft(m.clock)
	m.categoryCursor = 0
	m.amountInput.SetValue("")
	m.descInput.SetValue("")
	m.syncExpenseFocus()
}

func (m *Model) syncExpenseFocus() {
	m.amountInput.Blur()
	m.descInput.Blur()
	switch m.focus {
	case expenseFieldAmount:
		m.amountInput.Focus()
	case expenseFieldDescription:
		m.descInput.Focus()
	}
}

func (m Model) loginCmd() tea.Cmd {
	sessions := m.sessions
	person := model.People[m.personCursor]
	pin := m.pinInput.Value()
	return func() tea.Msg {
		sess, err := sessions.Login(context.Background(), person, pin)
		return loginResultMsg{session: sess, err: err}
	}
}

func (m Model) submitCmd() tea.Cmd {
	submitter := m.submitter
	draft := m.draft
	return func() tea.Msg {
		confirmation, err := submitter.Submit(context.Background(), draft)
		return submitResultMsg{confirmation: confirmation, err: err}
	}
}

func step(cursor, length int, key string) int {
	if key == "up" {
		return (cursor + length - 1) % length
	}
	return (cursor + 1) % length
}

// Run starts the interactive form and blocks until the user quits.
func Run(sessions *session.Manager, submitter *expense.Submitter, clock clockwork.Clock) error {
	program := tea.NewProgram(NewModel(sessions, submitter, clock))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run interactive form: %w", err)
	}
	return nil
}
