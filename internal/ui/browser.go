package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	northlight "github.com/northlight/northlight-go"
	"github.com/northlight/northlight-go/votes"
)

// browserKeyMap defines key bindings for the feedback browser
type browserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Vote    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Vote, k.Refresh, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Vote, k.Refresh, k.Quit},
	}
}

var defaultBrowserKeys = browserKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Vote:    key.NewBinding(key.WithKeys("v", "enter"), key.WithHelp("v/enter", "vote")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Messages delivered by background commands
type feedbackLoadedMsg struct {
	items []northlight.FeedbackItem
	err   error
}

type voteResultMsg struct {
	feedbackID string
	count      int
	err        error
}

// BrowserModel is the interactive public feedback browser. It lists the
// project's feedback items, marks the ones this device already voted for,
// and lets the user cast votes through the ledger.
type BrowserModel struct {
	client *northlight.Client
	ledger *votes.Ledger

	items   []northlight.FeedbackItem
	cursor  int
	loading bool
	lastErr error
	notice  string

	spinner spinner.Model
	help    help.Model
	keys    browserKeyMap
	width   int
}

// NewBrowser creates a browser over the given client and ledger
func NewBrowser(client *northlight.Client, ledger *votes.Ledger) BrowserModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SelectedStyle

	return BrowserModel{
		client:  client,
		ledger:  ledger,
		loading: true,
		spinner: s,
		help:    help.New(),
		keys:    defaultBrowserKeys,
		width:   MaxContentWidth,
	}
}

// Init starts the spinner and the initial feedback fetch
func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchFeedback())
}

// fetchFeedback loads the public feedback list in the background
func (m BrowserModel) fetchFeedback() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.GetPublicFeedback(context.Background())
		return feedbackLoadedMsg{items: items, err: err}
	}
}

// castVote votes for the item through the ledger, which short-circuits
// duplicates before any network call
func (m BrowserModel) castVote(feedbackID string) tea.Cmd {
	client := m.client
	ledger := m.ledger
	return func() tea.Msg {
		count, err := ledger.VoteFor(context.Background(), feedbackID, func(ctx context.Context) (int, error) {
			return client.Vote(ctx, feedbackID)
		})
		return voteResultMsg{feedbackID: feedbackID, count: count, err: err}
	}
}

// Update handles messages and key presses
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > MaxContentWidth {
			m.width = MaxContentWidth
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case feedbackLoadedMsg:
		m.loading = false
		m.lastErr = msg.err
		if msg.err == nil {
			m.items = msg.items
			if m.cursor >= len(m.items) {
				m.cursor = 0
			}
		}
		return m, nil

	case voteResultMsg:
		if msg.err != nil {
			if northlight.IsAlreadyVoted(msg.err) {
				m.notice = "You have already voted for this feature request."
			} else if e, ok := msg.err.(*northlight.Error); ok {
				m.notice = e.UserMessage()
			} else {
				m.notice = msg.err.Error()
			}
			return m, nil
		}
		northlight.ApplyVote(m.items, msg.feedbackID, msg.count)
		m.notice = fmt.Sprintf("Voted! New count: %d", msg.count)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Vote):
			if !m.loading && len(m.items) > 0 {
				return m, m.castVote(m.items[m.cursor].ID)
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.notice = ""
			return m, tea.Batch(m.spinner.Tick, m.fetchFeedback())
		}
	}

	return m, nil
}

// View renders the browser
func (m BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Northlight Feedback"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("%s Loading feedback...\n", m.spinner.View()))

	case m.lastErr != nil:
		msg := m.lastErr.Error()
		if e, ok := m.lastErr.(*northlight.Error); ok {
			msg = e.UserMessage()
		}
		b.WriteString(ErrorStyle.Render("Error: " + msg))
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render("Press r to retry."))
		b.WriteString("\n")

	case len(m.items) == 0:
		b.WriteString(MutedStyle.Render("No public feedback yet."))
		b.WriteString("\n")

	default:
		for i, item := range m.items {
			marker := "  "
			if i == m.cursor {
				marker = SelectedStyle.Render("> ")
			}

			voted := "  "
			if m.ledger.HasVoted(item.ID) {
				voted = VotedMarkerStyle.Render("✓ ")
			}

			line := fmt.Sprintf("%s%s%s %s %s",
				marker,
				voted,
				VoteCountStyle.Render(fmt.Sprintf("%3d", item.VoteCount)),
				StatusBadge(item.Status),
				ItemTitleStyle.Render(truncate(item.Title, m.width-30)),
			)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(StatusLineStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// truncate shortens s to max runes, appending an ellipsis when cut
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
