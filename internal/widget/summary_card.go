package widget

import (
	"context"
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"noteboard/internal/bus"
	"noteboard/internal/i18n"
	"noteboard/internal/logging"
	"noteboard/internal/view"
)

// CountSource is the aggregate a summary card reads. The notes card's
// store satisfies it.
type CountSource interface {
	Counts() map[string]int
	Total() int
}

// SummaryCard is the second widget variant: no collection of its own,
// just the per-category totals. It proves the lifecycle is shared by
// composition, not by the notes card's shape.
type SummaryCard struct {
	*Base
	source CountSource
}

func NewSummaryCard(loader *i18n.Loader, events *bus.Bus, source CountSource, log logging.Logger, notify func()) *SummaryCard {
	return &SummaryCard{
		Base:   NewBase("summary", loader, events, log, notify),
		source: source,
	}
}

func (c *SummaryCard) Init(ctx context.Context) error {
	return c.Bootstrap(ctx)
}

func (c *SummaryCard) Render(width int) string {
	if !c.Ready() {
		return ""
	}
	if width < 20 {
		width = 20
	}
	inner := width - 4

	counts := c.source.Counts()
	lines := []string{
		cardTitleStyle.Render(c.T("summary.title", "Summary")),
		fmt.Sprintf("%s: %d", c.T("summary.total", "Total"), c.source.Total()),
	}
	for _, category := range view.FilterCycle()[1:] {
		if counts[category] == 0 {
			continue
		}
		line := fmt.Sprintf("%s: %d", c.T("category."+category, category), counts[category])
		lines = append(lines, noteMetaStyle.Render(xansi.Truncate(line, inner, "…")))
	}
	return cardBorderStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}
