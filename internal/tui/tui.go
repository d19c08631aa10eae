// Package tui is a terminal front end that plays the story against an
// in-process session service.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/orchestrators/session"
)

type screen int

const (
	screenStarting screen = iota
	screenName
	screenPlaying
	screenOver
	screenError
)

var (
	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	storyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87AFFF"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAF5F")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// Config holds the dependencies of the terminal UI
type Config struct {
	Service session.Service
	// PlayerID enables resume and saving, empty plays anonymously
	PlayerID string
	// HeroName skips the name prompt when set
	HeroName string
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Service == nil {
		return errors.InvalidArgument("session service is required")
	}
	return nil
}

// Model is the bubbletea model for one play-through
type Model struct {
	service  session.Service
	playerID string
	heroName string

	screen    screen
	sessionID string
	status    *session.Status
	log       []string
	err       error

	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
}

type sessionStartedMsg struct {
	sessionID string
	status    *session.Status
}

type nameRequiredMsg struct {
	reason string
}

type outcomeMsg struct {
	outcome *session.Outcome
	status  *session.Status
}

type noticeMsg struct {
	text string
}

type actionErrMsg struct {
	err error
}

type endedMsg struct{}

// NewModel creates the model; the session starts on Init
func NewModel(cfg *Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "Enter — дальше"
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 50

	return Model{
		service:  cfg.Service,
		playerID: cfg.PlayerID,
		heroName: cfg.HeroName,
		screen:   screenStarting,
		input:    ti,
		viewport: viewport.New(80, 20),
		width:    110,
		height:   26,
	}, nil
}

// Init starts or resumes the session
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startSession(m.heroName, false))
}

// Update handles one message
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, m.endSession()
		case tea.KeyEnter:
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.72)
		m.viewport.Height = msg.Height - 6
		m.refreshLog()
		return m, nil

	case sessionStartedMsg:
		m.screen = screenPlaying
		m.sessionID = msg.sessionID
		m.status = msg.status
		m.input.Placeholder = "Enter — дальше"
		m.appendLog(titleStyle.Render(msg.status.LocationName) + "\n" + storyStyle.Render(msg.status.LocationDescription))
		m.appendLog(helpStyle.Render(helpText))
		return m, nil

	case nameRequiredMsg:
		m.screen = screenName
		m.input.Placeholder = "Имя Фамилия"
		if msg.reason != "" {
			m.appendLog(noticeStyle.Render(msg.reason))
		}
		return m, nil

	case outcomeMsg:
		if msg.status != nil {
			m.status = msg.status
		}
		m.appendLog(renderOutcome(msg.outcome))
		if msg.outcome.Kind == session.OutcomeGameOver {
			m.screen = screenOver
			m.input.Placeholder = "Enter — выйти"
		}
		return m, nil

	case noticeMsg:
		m.appendLog(noticeStyle.Render(msg.text))
		return m, nil

	case actionErrMsg:
		switch {
		case errors.IsGameOver(msg.err):
			m.screen = screenOver
		case errors.IsInvalidHeroName(msg.err):
			m.screen = screenName
			m.appendLog(noticeStyle.Render("Введите имя и фамилию, по два буквенных символа минимум."))
		case errors.IsInvalidArgument(msg.err), errors.IsInvalidDirection(msg.err), errors.IsNotFound(msg.err):
			m.appendLog(noticeStyle.Render(errors.GetMessage(msg.err)))
		default:
			m.screen = screenError
			m.err = msg.err
		}
		return m, nil

	case endedMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.input.Reset()

	switch m.screen {
	case screenName:
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.screen = screenStarting
		return m, m.startSession(text, m.playerID != "")
	case screenOver, screenError:
		return m, m.endSession()
	case screenStarting:
		return m, nil
	}

	if text != "" {
		m.appendLog(playerStyle.Render("> " + text))
	}

	cmd := parseCommand(text)
	switch cmd.kind {
	case cmdQuit:
		return m, m.endSession()
	case cmdHelp:
		m.appendLog(helpStyle.Render(helpText))
		return m, nil
	case cmdUnknown:
		m.appendLog(noticeStyle.Render("Не понимаю. " + helpText))
		return m, nil
	}
	return m, m.perform(cmd)
}

func (m *Model) appendLog(entry string) {
	m.log = append(m.log, entry)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(strings.Join(m.log, "\n\n")))
	m.viewport.GotoBottom()
}

// View renders the story log, the status panel and the input line
func (m Model) View() string {
	switch m.screen {
	case screenStarting:
		return "\n  Загрузка...\n"
	case screenName:
		return fmt.Sprintf("\n%s\n\nКак зовут вашего героя?\n\n%s\n", strings.Join(m.log, "\n"), m.input.View())
	case screenError:
		return fmt.Sprintf("\n  Ошибка: %v\n\nEnter или Esc — выход.\n", m.err)
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), m.renderPanel())
	return lipgloss.JoinVertical(lipgloss.Left,
		main,
		"\n"+m.input.View(),
		"\n"+helpStyle.Render("Esc — сохранить и выйти"),
	)
}

func (m Model) renderPanel() string {
	st := m.status
	if st == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ГЕРОЙ") + "\n" + st.HeroName + "\n\n")
	b.WriteString(titleStyle.Render("ЛОКАЦИЯ") + "\n" + st.LocationName + "\n\n")
	b.WriteString(titleStyle.Render("СОСТОЯНИЕ") + "\n")
	fmt.Fprintf(&b, "Здоровье: %d\nОпыт: %d\nПациент: %d\n\n", st.ProtagonistHP, st.ProtagonistXP, st.AntagonistHP)
	b.WriteString(titleStyle.Render("ИНВЕНТАРЬ") + "\n")
	if len(st.Inventory) == 0 {
		b.WriteString("(пусто)")
	}
	for _, item := range st.Inventory {
		b.WriteString("- " + item + "\n")
	}

	width := m.width - m.viewport.Width - 4
	if width < 20 {
		width = 20
	}
	return panelStyle.Width(width).Height(m.viewport.Height).Render(b.String())
}

func renderOutcome(o *session.Outcome) string {
	switch o.Kind {
	case session.OutcomeDialogue:
		text := storyStyle.Render(o.Dialogue.Text)
		if o.Dialogue.Fork {
			text += "\n" + optionStyle.Render("A) "+o.Dialogue.OptionA)
			if o.Dialogue.OptionB != "" {
				text += "\n" + optionStyle.Render("B) "+o.Dialogue.OptionB)
			}
		}
		return text
	case session.OutcomeLocation:
		lines := []string{
			titleStyle.Render(o.Location.Name),
			storyStyle.Render(o.Location.Description),
			"Куда пойти?",
		}
		for _, dir := range o.Location.Directions {
			lines = append(lines, optionStyle.Render("/go "+dir))
		}
		return strings.Join(lines, "\n")
	default:
		return noticeStyle.Render(o.Message)
	}
}

func (m Model) startSession(name string, register bool) tea.Cmd {
	service, playerID := m.service, m.playerID
	return func() tea.Msg {
		ctx := context.Background()
		if register {
			if _, err := service.RegisterHero(ctx, &session.RegisterHeroInput{PlayerID: playerID, Name: name}); err != nil {
				return actionErrMsg{err: err}
			}
			name = ""
		}

		out, err := service.CreateSession(ctx, &session.CreateSessionInput{PlayerID: playerID, HeroName: name})
		if errors.IsInvalidHeroName(err) {
			return nameRequiredMsg{}
		}
		if err != nil {
			return actionErrMsg{err: err}
		}
		return sessionStartedMsg{sessionID: out.SessionID, status: out.Status}
	}
}

func (m Model) perform(cmd command) tea.Cmd {
	service, sessionID := m.service, m.sessionID
	return func() tea.Msg {
		ctx := context.Background()

		var outcome *session.Outcome
		switch cmd.kind {
		case cmdAdvance:
			out, err := service.Advance(ctx, &session.AdvanceInput{SessionID: sessionID})
			if err != nil {
				return actionErrMsg{err: err}
			}
			outcome = out.Outcome
		case cmdChoose:
			out, err := service.ChooseOption(ctx, &session.ChooseOptionInput{SessionID: sessionID, Option: cmd.option})
			if err != nil {
				return actionErrMsg{err: err}
			}
			outcome = out.Outcome
		case cmdMove:
			out, err := service.Move(ctx, &session.MoveInput{SessionID: sessionID, Direction: cmd.arg})
			if err != nil {
				return actionErrMsg{err: err}
			}
			outcome = out.Outcome
		case cmdWhere:
			out, err := service.LocationPrompt(ctx, &session.LocationPromptInput{SessionID: sessionID})
			if err != nil {
				return actionErrMsg{err: err}
			}
			outcome = out.Outcome
		case cmdInventory:
			out, err := service.GetInventory(ctx, &session.GetInventoryInput{SessionID: sessionID})
			if err != nil {
				return actionErrMsg{err: err}
			}
			if len(out.Items) == 0 {
				return noticeMsg{text: "Инвентарь пуст."}
			}
			return noticeMsg{text: "Инвентарь: " + strings.Join(out.Items, ", ")}
		case cmdGive:
			if _, err := service.GiveItem(ctx, &session.GiveItemInput{
				SessionID: sessionID,
				Item:      cmd.arg,
				Receiver:  cmd.receiver,
			}); err != nil {
				return actionErrMsg{err: err}
			}
			return noticeMsg{text: fmt.Sprintf("Вы отдали «%s»: %s.", cmd.arg, cmd.receiver)}
		case cmdUse:
			out, err := service.UseItem(ctx, &session.UseItemInput{SessionID: sessionID, Item: cmd.arg})
			if err != nil {
				return actionErrMsg{err: err}
			}
			return noticeMsg{text: fmt.Sprintf("Вы использовали «%s». Здоровье: %d, опыт: %d.",
				cmd.arg, out.ProtagonistHP, out.ProtagonistXP)}
		}

		if outcome.Kind == session.OutcomeGameOver {
			return outcomeMsg{outcome: outcome}
		}
		st, err := service.GetStatus(ctx, &session.GetStatusInput{SessionID: sessionID})
		if err != nil {
			return actionErrMsg{err: err}
		}
		return outcomeMsg{outcome: outcome, status: st.Status}
	}
}

func (m Model) endSession() tea.Cmd {
	service, sessionID := m.service, m.sessionID
	return func() tea.Msg {
		if sessionID != "" {
			// the game is leaving either way
			_, _ = service.EndSession(context.Background(), &session.EndSessionInput{SessionID: sessionID}) // nolint:errcheck
		}
		return endedMsg{}
	}
}

// Run plays until the player quits
func Run(cfg *Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
