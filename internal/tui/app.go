// Package tui provides the interactive Bubble Tea dashboard.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/ecomet/investor-dashboard/internal/output"
	"golang.org/x/text/language"
)

const (
	headerHeight = 4 // title, period, tab bar, rule
	footerHeight = 2
)

// App is the root Bubble Tea model. It is a read-only view over a Dashboard.
type App struct {
	dash  *domain.Dashboard
	views output.Views
	theme Theme

	activeTab int
	width     int
	height    int
	ready     bool

	viewport viewport.Model
	help     help.Model
	keys     keyMap
}

// NewApp creates the TUI model for the dashboard.
func NewApp(dash *domain.Dashboard, tag language.Tag, theme Theme) App {
	return App{
		dash:  dash,
		views: output.NewViews(tag),
		theme: theme,
		help:  help.New(),
		keys:  defaultKeyMap(),
	}
}

// ActiveTab returns the index of the selected tab.
func (a App) ActiveTab() int { return a.activeTab }

// Init implements tea.Model.
func (a App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		h := msg.Height - headerHeight - footerHeight
		if h < 1 {
			h = 1
		}
		if !a.ready {
			a.viewport = viewport.New(msg.Width, h)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = h
		}
		a.refresh()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		case key.Matches(msg, a.keys.Next):
			a.selectTab((a.activeTab + 1) % len(tabNames))
			return a, nil
		case key.Matches(msg, a.keys.Prev):
			a.selectTab((a.activeTab + len(tabNames) - 1) % len(tabNames))
			return a, nil
		case key.Matches(msg, a.keys.Jump):
			a.selectTab(int(msg.String()[0] - '1'))
			return a, nil
		}
	}

	if !a.ready {
		return a, nil
	}
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

func (a *App) selectTab(idx int) {
	if idx < 0 || idx >= len(tabNames) || idx == a.activeTab {
		return
	}
	a.activeTab = idx
	a.refresh()
}

// refresh re-renders the active tab into the viewport and scrolls to the top.
func (a *App) refresh() {
	if !a.ready {
		return
	}
	a.viewport.SetContent(a.body())
	a.viewport.GotoTop()
}

func (a App) body() string {
	if a.dash == nil || a.dash.Dataset == nil {
		return lipgloss.NewStyle().Foreground(a.theme.Warning).Render("No dashboard data loaded.")
	}
	return renderTab(a.activeTab, a.views, a.dash, a.width)
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(a.theme.Accent).Bold(true).Render("Ecomet Investor Dashboard")
	period := ""
	if a.dash != nil && a.dash.Dataset != nil {
		period = a.dash.Dataset.Meta.Period
	}
	b.WriteString(title + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(a.theme.TextMuted).Render(period) + "\n")
	b.WriteString(renderTabBar(a.activeTab, a.theme) + "\n")

	ruleWidth := a.width
	if ruleWidth <= 0 {
		ruleWidth = 60
	}
	b.WriteString(lipgloss.NewStyle().Foreground(a.theme.Border).Render(strings.Repeat("─", ruleWidth)) + "\n")

	if a.ready {
		b.WriteString(a.viewport.View())
	} else {
		b.WriteString(a.body())
	}
	b.WriteString("\n" + a.help.View(a.keys))
	return b.String()
}
