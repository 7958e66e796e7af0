package game

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/assets"
	"github.com/mymath/mymath/internal/grouping"
	"github.com/mymath/mymath/internal/round"
	"github.com/mymath/mymath/internal/ui/theme"
)

// additionRow is the number of items per row under each addend.
const additionRow = 5

const shapeGlyph = "●"

func (g *GameScreen) View(width, height int) string {
	if g.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Cannot start the game:\n\n"+g.errMsg))
	}

	sections := []string{g.track.View(), ""}

	switch {
	case g.finished:
		sections = append(sections, theme.Title.Render("Well done!"))
	case !g.revealed:
		sections = append(sections, theme.Hint.Render("Get ready..."))
	default:
		sections = append(sections,
			g.renderQuestion(),
			"",
			g.renderItems(),
			"",
			g.answers.View(),
			"",
			g.renderFeedback(),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (g *GameScreen) renderQuestion() string {
	if g.current.Spec.Mode == round.Addition {
		// The sum itself is drawn with the items.
		return theme.Question.Render("How many altogether?")
	}
	return theme.Question.Render(g.current.Spec.Question())
}

func (g *GameScreen) renderItems() string {
	p := painter{image: g.current.Image}
	if g.current.Spec.Mode == round.Addition {
		return p.addition(g.current.Spec.OperandA, g.current.Spec.OperandB)
	}
	return p.groups(g.current.Groups, g.deps.Config.Game.GroupGap)
}

func (g *GameScreen) renderFeedback() string {
	if g.last == nil {
		return ""
	}
	if g.last.Outcome.IsCorrect {
		return theme.Correct.Render("Great job!")
	}
	return theme.Incorrect.Render(fmt.Sprintf("It was %d", g.last.Outcome.Correct))
}

// painter draws items either as the round's picture glyph or, when the round
// has no picture, as colored shapes.
type painter struct {
	image string
	next  int
}

func (p *painter) item(colorIdx int) string {
	if p.image == "" {
		return lipgloss.NewStyle().Foreground(theme.ShapeColor(colorIdx)).Render(shapeGlyph)
	}
	return assets.Glyph(p.image)
}

// groups draws one row per group. A full group of ten gets gap extra columns
// after its fifth item.
func (p *painter) groups(groups []int, gap int) string {
	rows := make([]string, 0, len(groups))
	for _, n := range groups {
		var b strings.Builder
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(" ")
			}
			if n == grouping.Full && i == 5 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			b.WriteString(p.item(p.next))
			p.next++
		}
		rows = append(rows, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// addition draws "a + b = ?" with each addend's items in rows of five under
// its number.
func (p *painter) addition(a, b int) string {
	left := p.addend(a, 0)
	right := p.addend(b, 1)
	sign := func(s string) string {
		return theme.Question.PaddingLeft(3).PaddingRight(3).Render(s)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		left, sign("+"), right, sign("="), theme.Question.Render("?"))
}

func (p *painter) addend(n, colorIdx int) string {
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(strconv.Itoa(n))
	rows := make([]string, 0, 2)
	for _, width := range grouping.Rows(n, additionRow) {
		cells := make([]string, width)
		for i := range cells {
			cells[i] = p.item(colorIdx)
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	items := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.JoinVertical(lipgloss.Center, label, "", items)
}
