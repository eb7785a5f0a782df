package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DEFAULT_PORT = "8080"
	ENV_FILE     = ".env"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringPort step = iota
	stepEnteringDBURL
	stepEnteringAPIKey
	stepWritingEnv
	stepProbingServer
	stepComplete
)

type model struct {
	step         step
	port         string
	dbURL        string
	apiKey       string
	currentInput string
	message      string
	serverUp     bool
	quitting     bool
}

type envWrittenMsg struct{}
type healthMsg struct{ up bool }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step: stepEnteringPort,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func writeEnvFile(port, dbURL, apiKey string) tea.Cmd {
	return func() tea.Msg {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("PORT=%s\n", port))
		b.WriteString(fmt.Sprintf("DB_URL=%s\n", dbURL))
		b.WriteString(fmt.Sprintf("OPENAI_API_KEY=%s\n", apiKey))

		if err := os.WriteFile(ENV_FILE, []byte(b.String()), 0o600); err != nil {
			return errMsg{fmt.Errorf("failed to write %s: %w", ENV_FILE, err)}
		}
		return envWrittenMsg{}
	}
}

func probeHealth(port string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 3 * time.Second}

		resp, err := client.Get(fmt.Sprintf("http://localhost:%s/health", port))
		if err != nil {
			return healthMsg{up: false}
		}
		defer resp.Body.Close()

		return healthMsg{up: resp.StatusCode == http.StatusOK}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringPort || m.step == stepEnteringDBURL || m.step == stepEnteringAPIKey {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringPort:
				m.port = m.currentInput
				if m.port == "" {
					m.port = DEFAULT_PORT
				}
				m.currentInput = ""
				m.step = stepEnteringDBURL

			case stepEnteringDBURL:
				if m.currentInput != "" {
					m.dbURL = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringAPIKey
				}

			case stepEnteringAPIKey:
				m.apiKey = m.currentInput
				m.currentInput = ""
				m.step = stepWritingEnv
				m.message = "Writing " + ENV_FILE + "..."
				return m, writeEnvFile(m.port, m.dbURL, m.apiKey)

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case envWrittenMsg:
		m.step = stepProbingServer
		m.message = "Checking for a running server..."
		return m, probeHealth(m.port)

	case healthMsg:
		m.serverUp = msg.up
		m.step = stepComplete
		if msg.up {
			m.message = successStyle.Render("✓ Config saved. Server is up on port " + m.port)
		} else {
			m.message = successStyle.Render("✓ Config saved.") + "\n" +
				warnStyle.Render("Server not running yet; start it with: go run .")
		}

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepEnteringPort
		m.currentInput = ""
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🎨 Aestheti-QR Server Setup\n\n"))

	switch m.step {
	case stepEnteringPort:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("HTTP port (empty for " + DEFAULT_PORT + "):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringDBURL:
		s.WriteString(promptStyle.Render("Postgres connection URL:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringAPIKey:
		s.WriteString(promptStyle.Render("OpenAI API key (empty to skip image generation):\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepWritingEnv, stepProbingServer:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
