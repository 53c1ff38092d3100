package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solaceapp/solace/internal/app"
	"github.com/solaceapp/solace/internal/cli/formatter"
)

// recommendationLoadedMsg signals that a recommendation batch has been
// computed.
type recommendationLoadedMsg struct {
	resp *app.RecommendResponse
	err  error
}

// browserKeys are the key bindings for the recommendation browser.
type browserKeys struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var defaultBrowserKeys = browserKeys{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "steps")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reshuffle")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// recommendationBrowser is a standalone bubbletea model for stepping through
// one batch of recommended strategies. Each load is a fresh presentation
// event.
type recommendationBrowser struct {
	recommend app.RecommendUseCase
	req       app.RecommendRequest

	presentation *app.RecommendationPresentation
	usedDefault  bool
	keys         browserKeys
	cursor       int
	expanded     bool
	loading      bool
	err          error
}

func newRecommendationBrowser(recommend app.RecommendUseCase, req app.RecommendRequest) *recommendationBrowser {
	return &recommendationBrowser{
		recommend: recommend,
		req:       req,
		keys:      defaultBrowserKeys,
		loading:   true,
	}
}

func (m *recommendationBrowser) Init() tea.Cmd {
	return m.load()
}

func (m *recommendationBrowser) load() tea.Cmd {
	recommend := m.recommend
	req := m.req
	return func() tea.Msg {
		resp, err := recommend.Recommend(context.Background(), req)
		return recommendationLoadedMsg{resp: resp, err: err}
	}
}

func (m *recommendationBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recommendationLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.presentation = app.NewRecommendationPresentation(msg.resp.Strategies)
		m.usedDefault = msg.resp.UsedDefault
		m.cursor = 0
		m.expanded = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.expanded = false
			}
		case key.Matches(msg, m.keys.Down):
			if m.presentation != nil && m.cursor < len(m.presentation.Strategies())-1 {
				m.cursor++
				m.expanded = false
			}
		case key.Matches(msg, m.keys.Toggle):
			m.expanded = !m.expanded
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.err = nil
			return m, m.load()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *recommendationBrowser) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Looking for strategies...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}
	if m.presentation == nil || m.presentation.IsEmpty() {
		return "\n  " + formatter.Dim("No strategies to suggest right now.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	if m.usedDefault {
		b.WriteString("  " + formatter.Dim("Nothing specific matched; showing gentle defaults.") + "\n\n")
	}

	for i, s := range m.presentation.Strategies() {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			formatter.Bold(s.Title),
			formatter.CategoryBadge(s.Category),
			formatter.IntensityPill(s.Intensity),
		))

		if i == m.cursor && m.expanded {
			for n, step := range s.Steps {
				b.WriteString(fmt.Sprintf("      %s %s\n", formatter.StyleHeader.Render(fmt.Sprintf("%d.", n+1)), step))
			}
		}
	}

	b.WriteString("\n  " + formatter.Dim("↑/↓ move · enter steps · r reshuffle · q quit") + "\n")
	return b.String()
}
