// Package render draws a table as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/arcanaland/patience/internal/card"
	"github.com/arcanaland/patience/internal/pile"
	"github.com/arcanaland/patience/internal/table"
)

const (
	faceDown  = "##"
	emptyPile = "--"

	maxCellWidth = 6
	minCellWidth = 4
)

// Options controls the layout and colouring of a rendered table
type Options struct {
	// Width is the terminal width in columns; zero means unknown
	Width int
	Color bool
}

type renderer struct {
	t         *table.Table
	cellWidth int
	carrying  bool
	cond      *runewidth.Condition

	red       *color.Color
	source    *color.Color
	redSource *color.Color
}

func newRenderer(t *table.Table, opts Options) *renderer {
	r := &renderer{
		t:         t,
		cellWidth: maxCellWidth,
		carrying:  t.CardsInHand(),
		cond:      runewidth.NewCondition(),
		red:       color.New(color.FgRed),
		source:    color.New(color.ReverseVideo),
		redSource: color.New(color.FgRed, color.ReverseVideo),
	}
	// suit symbols are ambiguous width; count them as one column everywhere
	r.cond.EastAsianWidth = false

	if opts.Width > 0 {
		r.cellWidth = max(minCellWidth, min(maxCellWidth, opts.Width/len(pile.Tableaux)))
	}
	for _, c := range []*color.Color{r.red, r.source, r.redSource} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Table returns the full board followed by a status line
func Table(t *table.Table, opts Options) string {
	r := newRenderer(t, opts)

	var lines []string
	lines = append(lines, r.topRow(), "")
	lines = append(lines, r.tableauRows()...)
	lines = append(lines, "", r.status())

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *renderer) topRow() string {
	var b strings.Builder

	stock := r.t.Stock()
	label := faceDown
	if stock.Empty() {
		label = emptyPile
	}
	b.WriteString(r.cell(pile.Stock, label, r.style(false, r.selected(pile.Stock, stock.TopIndex()))))

	b.WriteString(r.topCard(pile.Waste))
	b.WriteString(strings.Repeat(" ", r.cellWidth))
	for _, id := range pile.Foundations {
		b.WriteString(r.topCard(id))
	}
	return b.String()
}

func (r *renderer) topCard(id pile.ID) string {
	p := r.t.Pile(id)
	c, ok := p.TopCard()
	if !ok {
		return r.cell(id, emptyPile, nil)
	}
	return r.cardCell(id, c, r.selected(id, p.TopIndex()))
}

func (r *renderer) tableauRows() []string {
	rows := 1
	for _, id := range pile.Tableaux {
		rows = max(rows, r.t.Pile(id).Len())
	}

	lines := make([]string, rows)
	for i := range rows {
		var b strings.Builder
		for _, id := range pile.Tableaux {
			p := r.t.Pile(id)
			switch c, ok := p.Card(i); {
			case ok:
				b.WriteString(r.cardCell(id, c, r.selected(id, i)))
			case i == 0:
				b.WriteString(r.cell(id, emptyPile, nil))
			default:
				b.WriteString(strings.Repeat(" ", r.cellWidth))
			}
		}
		lines[i] = b.String()
	}
	return lines
}

func (r *renderer) status() string {
	t := r.t
	if r.carrying {
		return fmt.Sprintf("carrying %s  from %s  target %s",
			joinCards(t.Hand().Cards()), t.Source(), t.Target())
	}
	return fmt.Sprintf("selecting  source %s  stock %d  waste %d",
		t.Source(), t.Stock().Len(), t.Waste().Len())
}

func (r *renderer) selected(id pile.ID, index int) bool {
	src := r.t.Source()
	return !r.carrying && src.Pile == id && src.Index == index
}

func (r *renderer) style(red, selected bool) *color.Color {
	switch {
	case red && selected:
		return r.redSource
	case red:
		return r.red
	case selected:
		return r.source
	}
	return nil
}

func (r *renderer) cardCell(id pile.ID, c card.Card, selected bool) string {
	if !c.FaceUp {
		return r.cell(id, faceDown, r.style(false, selected))
	}
	return r.cell(id, c.String(), r.style(c.Color() == card.Red, selected))
}

// cell pads label to the cell width, prefixed by the target marker
func (r *renderer) cell(id pile.ID, label string, style *color.Color) string {
	marker := " "
	if r.carrying && r.t.Target() == id {
		marker = ">"
	}
	pad := max(0, r.cellWidth-1-r.cond.StringWidth(label))
	if style != nil {
		label = style.Sprint(label)
	}
	return marker + label + strings.Repeat(" ", pad)
}

func joinCards(cards []card.Card) string {
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = c.String()
	}
	return strings.Join(labels, " ")
}
