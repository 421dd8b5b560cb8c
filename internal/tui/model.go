// Package tui is the interactive front end: a query box, a loading spinner
// and a ranked result list with match bars.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drew-myers/moviematch/internal/search"
)

type screenState int

const (
	inputScreen screenState = iota
	loadingScreen
	resultsScreen
	aboutScreen
	quitConfirmationScreen
)

const emptyQueryWarning = "Please enter a description first."

// Searcher is the part of search.Service the UI needs.
type Searcher interface {
	Search(ctx context.Context, text string) ([]search.Result, error)
	TopK() int
}

type searchCompleteMsg struct {
	query   string
	results []search.Result
	err     error
}

type Options struct {
	DefaultQuery string
	CatalogSize  int
	Dimension    int
}

type Model struct {
	ctx      context.Context
	searcher Searcher
	opts     Options

	input   textinput.Model
	spinner spinner.Model

	screen     screenState
	prevScreen screenState

	lastQuery    string
	results      []search.Result
	progressBars []progress.Model
	expanded     []bool
	selected     int

	searching bool
	warning   string
	err       error
}

func New(ctx context.Context, searcher Searcher, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Describe a movie..."
	ti.Prompt = "> "
	ti.CharLimit = 1000
	ti.Width = contentWidth - 4
	ti.SetValue(opts.DefaultQuery)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = labelStyle.Foreground(accent)

	return Model{
		ctx:      ctx,
		searcher: searcher,
		opts:     opts,
		input:    ti,
		spinner:  s,
		screen:   inputScreen,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case searchCompleteMsg:
		if !m.searching {
			return m, nil
		}
		m.searching = false

		next := resultsScreen
		if msg.err != nil {
			m.err = msg.err
			next = inputScreen
		} else {
			m.err = nil
			m.lastQuery = msg.query
			m.results = msg.results
			m.setupResults()
		}

		// A pending quit prompt stays up; answering "n" lands on the outcome.
		if m.screen == quitConfirmationScreen {
			m.prevScreen = next
		} else {
			m.screen = next
		}
		return m, nil

	case spinner.TickMsg:
		if m.searching {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			switch m.screen {
			case quitConfirmationScreen, aboutScreen:
				m.screen = m.prevScreen
			default:
				m.prevScreen = m.screen
				m.screen = quitConfirmationScreen
			}
			return m, nil
		case "y", "Y":
			if m.screen == quitConfirmationScreen {
				return m, tea.Quit
			}
		case "n", "N":
			if m.screen == quitConfirmationScreen {
				m.screen = m.prevScreen
				return m, nil
			}
		case "tab", "?":
			switch m.screen {
			case aboutScreen:
				m.screen = m.prevScreen
				return m, nil
			case resultsScreen:
				m.prevScreen = m.screen
				m.screen = aboutScreen
				return m, nil
			case inputScreen:
				if msg.String() == "tab" {
					m.prevScreen = m.screen
					m.screen = aboutScreen
					return m, nil
				}
			}
		case "enter":
			switch m.screen {
			case inputScreen:
				return m.submit()
			case resultsScreen:
				m.screen = inputScreen
				return m, nil
			}
		case "up", "k":
			if m.screen == resultsScreen {
				if m.selected > 0 {
					m.selected--
				}
				return m, nil
			}
		case "down", "j":
			if m.screen == resultsScreen {
				if m.selected < len(m.results)-1 {
					m.selected++
				}
				return m, nil
			}
		case " ", "space":
			if m.screen == resultsScreen {
				if m.selected < len(m.expanded) {
					m.expanded[m.selected] = !m.expanded[m.selected]
				}
				return m, nil
			}
		}
	}

	if m.screen == inputScreen {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// submit starts a search, or warns without searching when the box is blank.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.warning = emptyQueryWarning
		m.err = nil
		return m, nil
	}

	m.warning = ""
	m.err = nil
	m.searching = true
	m.screen = loadingScreen
	return m, tea.Batch(m.spinner.Tick, m.searchCmd(text))
}

func (m Model) searchCmd(text string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.searcher.Search(m.ctx, text)
		return searchCompleteMsg{
			query:   text,
			results: results,
			err:     err,
		}
	}
}

func (m *Model) setupResults() {
	m.progressBars = make([]progress.Model, len(m.results))
	m.expanded = make([]bool, len(m.results))
	for i := range m.results {
		prog := progress.New(progress.WithDefaultGradient())
		prog.Width = 60
		m.progressBars[i] = prog
		m.expanded[i] = true
	}
	m.selected = 0
}
