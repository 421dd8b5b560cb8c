package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/drew-myers/moviematch/internal/search"
)

const aboutText = `This app demonstrates Semantic Vector Search.

1. %s movie plots were pre-processed into %d-dimensional vectors
   with a sentence-embedding model.
2. The vectors are loaded once into an in-memory matrix.
3. When you search, your query is vectorized in real time.
4. Cosine similarity against every movie finds the closest matches.`

func (m Model) View() string {
	switch m.screen {
	case loadingScreen:
		return m.renderLoadingScreen()
	case resultsScreen:
		return m.renderResultsScreen()
	case aboutScreen:
		return m.renderAboutScreen()
	case quitConfirmationScreen:
		return m.renderQuitConfirmationScreen()
	default:
		return m.renderInputScreen()
	}
}

func (m Model) header(title string) string {
	return headerStyle.Render(title) + "\n\n"
}

func (m Model) renderInputScreen() string {
	var b strings.Builder

	b.WriteString(m.header("🎬 Semantic Movie Matcher"))
	b.WriteString(instructStyle.Render(fmt.Sprintf(
		"Describe a movie vaguely, and we'll find it by meaning, not keywords. Searching %s movies.",
		catalogSize(m.opts.CatalogSize))))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("What kind of movie are you looking for?") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")

	if m.warning != "" {
		b.WriteString(warningStyle.Render("⚠ "+m.warning) + "\n\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(errorLine(m.err)) + "\n\n")
	}

	b.WriteString(instructStyle.Render("Enter to find movies • Tab for how it works • Esc to quit") + "\n")
	return b.String()
}

func (m Model) renderLoadingScreen() string {
	var b strings.Builder

	b.WriteString(m.header("🎬 Semantic Movie Matcher"))
	b.WriteString(fmt.Sprintf("%s Searching vector space...\n", m.spinner.View()))
	return b.String()
}

func (m Model) renderResultsScreen() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Results for:\n%s\n\n", queryStyle.Render(m.lastQuery)))

	if len(m.results) == 0 {
		b.WriteString(warningStyle.Render("No movies in the catalog.") + "\n\n")
	} else {
		b.WriteString(m.header(fmt.Sprintf("Top %d Recommendations:", len(m.results))))
	}

	for i, r := range m.results {
		b.WriteString(m.renderResult(i, r))
	}

	b.WriteString(instructStyle.Render("↑/↓ to select • Space to fold plot • Enter for a new search • Esc to quit") + "\n")
	return b.String()
}

func (m Model) renderResult(i int, r search.Result) string {
	var b strings.Builder

	marker, style := "  ", titleStyle
	if i == m.selected {
		marker, style = "▸ ", selectedTitleStyle
	}
	b.WriteString(style.Render(marker+r.Heading()) + "\n")

	if i < len(m.progressBars) {
		b.WriteString("  " + m.progressBars[i].ViewAs(r.Progress()) + "\n")
	}
	if i < len(m.expanded) && m.expanded[i] {
		b.WriteString(plotStyle.Render(r.Movie.Plot) + "\n")
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderAboutScreen() string {
	var b strings.Builder

	b.WriteString(m.header("🧠 How it Works"))
	b.WriteString(plotStyle.Render(fmt.Sprintf(aboutText, catalogSize(m.opts.CatalogSize), m.opts.Dimension)))
	b.WriteString("\n\n")
	b.WriteString(instructStyle.Render("Tab or Esc to go back") + "\n")
	return b.String()
}

func (m Model) renderQuitConfirmationScreen() string {
	var b strings.Builder

	b.WriteString(m.header("⚠️  Are you sure you want to quit?"))
	b.WriteString(confirmStyle.Render("Press Y to quit • Press N or Esc to cancel") + "\n")
	return b.String()
}

func errorLine(err error) string {
	if search.IsInvalidInput(err) {
		return "Search rejected: " + err.Error()
	}
	var pe *search.ProviderError
	if errors.As(err, &pe) {
		return "Could not reach the embedding service: " + err.Error()
	}
	return "Search failed: " + err.Error()
}

func catalogSize(n int) string {
	return humanize.Comma(int64(n))
}
