package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/auth"
)

type loginMode int

const (
	loginModeSignIn loginMode = iota
	loginModeSignUp
)

// SignedInMsg carries the authenticated user out of the login view.
type SignedInMsg struct {
	UserID uuid.UUID
	Email  string
}

type LoginModel struct {
	CommonModel
	authService *auth.Service

	mode    loginMode
	form    *huh.Form
	loading bool
	status  string

	formEmail    string
	formPassword string
}

func NewLoginModel(authSvc *auth.Service) LoginModel {
	m := LoginModel{authService: authSvc}
	m.form = m.newForm()

	return m
}

func (m LoginModel) Title() string { return "Sign In" }

func (m LoginModel) ShortHelp() string {
	return "Tab: next field | Enter: submit | Ctrl+S: toggle sign in / sign up"
}

func (m *LoginModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.formEmail).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return fmt.Errorf("a valid email is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.formPassword),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			if m.mode == loginModeSignIn {
				m.mode = loginModeSignUp
			} else {
				m.mode = loginModeSignIn
			}

			m.form = m.newForm()
			m.status = ""

			return m, m.form.Init()
		}

	case signInResultMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.form = m.newForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg {
			return SignedInMsg{UserID: msg.userID, Email: msg.email}
		}
	}

	if m.loading {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.loading = true

	return m, m.signInCmd()
}

func (m LoginModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Signing in...")
	}

	header := "Sign in to ExpenseTrack"
	if m.mode == loginModeSignUp {
		header = "Create an ExpenseTrack account"
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.status) + "\n\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(
		header + "\n\n" + statusLine + m.form.View() + "\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)
}

type signInResultMsg struct {
	userID uuid.UUID
	email  string
	err    error
}

func (m LoginModel) signInCmd() tea.Cmd {
	mode := m.mode
	email := m.formEmail
	password := m.formPassword
	svc := m.authService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var (
			user *auth.User
			err  error
		)

		if mode == loginModeSignUp {
			user, _, err = svc.SignUp(ctx, email, password)
		} else {
			user, _, err = svc.SignIn(ctx, email, password)
		}

		if err != nil {
			return signInResultMsg{err: err}
		}

		return signInResultMsg{userID: user.ID, email: user.Email}
	}
}
