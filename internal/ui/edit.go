package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"telinput/internal/phone"
	"telinput/internal/session"
)

// EditOptions configures the edit model.
type EditOptions struct {
	Title string
	// CountryName renders a country for the status lines; nil shows codes.
	CountryName func(phone.CountryCode) string
}

// EditModel is a Bubble Tea model around one input session: every change
// of the text field becomes a session edit and the interpreted state is
// shown below the field.
type EditModel struct {
	sess     *session.Session
	input    textinput.Model
	opts     EditOptions
	prev     string
	state    session.State
	err      error
	width    int
	accepted bool
}

// NewEditModel returns a model editing sess.
func NewEditModel(sess *session.Session, opts EditOptions) *EditModel {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "+1 201 555 0123"
	in.Focus()
	if opts.Title == "" {
		opts.Title = "phone number"
	}
	return &EditModel{
		sess:  sess,
		input: in,
		opts:  opts,
		state: sess.State(),
		width: 80,
	}
}

// Result returns the last state and whether the user accepted it.
func (m *EditModel) Result() (session.State, bool) { return m.state, m.accepted }

// Err returns the last session error, if any.
func (m *EditModel) Err() error { return m.err }

func (m *EditModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.accepted = true
			return m, tea.Quit
		case tea.KeyCtrlU:
			m.sess.Reset()
			m.input.SetValue("")
			m.prev = ""
			m.state = m.sess.State()
			m.err = nil
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sync()
	return m, cmd
}

// sync feeds the text field change into the session. Restored symbols make
// the session text longer than what was typed, so the field and its cursor
// follow the session.
func (m *EditModel) sync() {
	value := m.input.Value()
	if value == m.prev {
		return
	}
	st, err := m.sess.Apply(session.Diff(m.prev, value))
	m.state, m.err = st, err

	text := m.sess.Text()
	if text != value {
		pos := m.input.Position() + runeCount(text) - runeCount(value)
		m.input.SetValue(text)
		m.input.SetCursor(pos)
	}
	m.prev = text
}

func (m *EditModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	maskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.opts.Title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	line := func(label, value string) {
		b.WriteString(labelStyle.Render(pad(label, 10)))
		b.WriteString(truncate(value, m.width-12))
		b.WriteString("\n")
	}

	if m.state.Display != "" {
		line("display", maskStyle.Render(m.state.Display))
	}
	if m.state.Country != "" {
		line("country", m.countryLabel(m.state.Country))
	}
	if len(m.state.Parsed.PossibleCountries) > 1 {
		codes := make([]string, len(m.state.Parsed.PossibleCountries))
		for i, c := range m.state.Parsed.PossibleCountries {
			codes[i] = string(c)
		}
		line("possible", strings.Join(codes, " "))
	}
	if m.state.Verdict != "" {
		line("status", styleVerdict(m.state.Verdict).Render(verdictText(m.state.Verdict)))
	}
	if m.err != nil {
		line("error", lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("enter accept • esc quit • ctrl+u clear"))
	b.WriteString("\n")
	return b.String()
}

func (m *EditModel) countryLabel(c phone.CountryCode) string {
	label := string(c)
	if m.opts.CountryName != nil {
		if name := m.opts.CountryName(c); name != "" {
			label = fmt.Sprintf("%s %s", c, name)
		}
	}
	if m.state.Parsed.CallingCode != "" {
		label += fmt.Sprintf(" (+%s)", m.state.Parsed.CallingCode)
	}
	return label
}

func verdictText(v phone.Verdict) string {
	if v.OK() {
		return "valid"
	}
	return v.Message()
}

func styleVerdict(v phone.Verdict) lipgloss.Style {
	switch {
	case v.OK():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case v.Structural():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	}
}

func runeCount(s string) int { return len([]rune(s)) }

func pad(value string, width int) string {
	return runewidth.FillRight(value, width)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
