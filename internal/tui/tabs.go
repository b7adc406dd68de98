package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/ecomet/investor-dashboard/internal/output"
)

// Tab indices, in display order.
const (
	tabOverview = iota
	tabShipments
	tabFees
	tabReturns
	tabProfitability
	tabProjection
)

var tabNames = []string{"Overview", "Shipments", "Fees", "Returns", "Profitability", "Projection"}

// renderTab returns the body of tab idx for the dashboard.
func renderTab(idx int, v output.Views, d *domain.Dashboard, width int) string {
	switch idx {
	case tabOverview:
		barWidth := 30
		if width > 0 && width < 100 {
			barWidth = 15
		}
		return joinBlocks(v.KPIs(d), v.Funnel(d, barWidth), v.SalesQuality(d), v.Storage(d), v.Issues(d))
	case tabShipments:
		return v.Shipments(d)
	case tabFees:
		return joinBlocks(v.Fees(d), v.Reimbursements(d))
	case tabReturns:
		return v.Returns(d)
	case tabProfitability:
		return v.Profitability(d)
	case tabProjection:
		return v.Projection(d)
	default:
		return ""
	}
}

func joinBlocks(blocks ...string) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			parts = append(parts, strings.TrimRight(b, "\n"))
		}
	}
	return strings.Join(parts, "\n\n")
}

// renderTabBar renders the tab strip with the active tab highlighted.
func renderTabBar(active int, t Theme) string {
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(0, 1)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := keyStyle.Render(string(rune('1'+i))) + " " + name
		if i == active {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}
	return strings.Join(parts, keyStyle.Render("│"))
}
