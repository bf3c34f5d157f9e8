package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/keepercfg/internal/creature"
	"github.com/vovakirdan/keepercfg/internal/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// pointerStyles colours the pointer label by kind.
var pointerStyles = map[view.PointerKind]lipgloss.Style{
	view.PointerHidden: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	view.PointerSprite: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	view.PointerSpell:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

func flagList(names []string) string {
	s := strings.TrimSpace(strings.Join(names, " "))
	if s == "" {
		return "-"
	}
	return s
}

func properties(st creature.Stats) []string {
	var out []string
	add := func(on bool, name string) {
		if on {
			out = append(out, name)
		}
	}
	add(st.Bleeds, "bleeds")
	add(!st.AffectedByWind, "unaffected-by-wind")
	add(st.ImmuneToGas, "immune-to-gas")
	add(st.Humanoid, "humanoid")
	add(st.PissOnDead, "piss-on-dead")
	add(st.Flying, "flying")
	add(st.SeeInvisible, "see-invisible")
	add(st.GoLockedDoors, "pass-locked-doors")
	return out
}

// renderDetail renders the detail panel of one creature.
func renderDetail(name string, st creature.Stats, loaded bool, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n")
	if !loaded {
		b.WriteString(dimStyle.Render("model file not loaded, showing defaults"))
		b.WriteString("\n")
	}

	row := func(label string, value any) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(valueStyle.Render(fmt.Sprint(value)))
		b.WriteString("\n")
	}
	row("health", st.Health)
	row("strength", st.Strength)
	row("armour", st.Armour)
	row("dexterity", st.Dexterity)
	row("speed", st.BaseSpeed)
	row("pay", st.Pay)
	row("size", fmt.Sprintf("%d x %d", st.SizeXY, st.SizeYZ))
	row("attack", flagList([]string{creature.AttackPreferences.Name(st.AttackPreference)}))
	row("eye height", st.EyeHeight)
	row("field of view", st.FieldOfView)
	row("primary jobs", flagList(creature.Jobs.FlagNames(st.JobPrimary)))
	row("secondary", flagList(creature.Jobs.FlagNames(st.JobSecondary)))
	row("won't do", flagList(creature.Jobs.FlagNames(st.JobsNotDo)))
	row("anger jobs", flagList(creature.AngerJobs.FlagNames(st.JobsAnger)))
	row("properties", flagList(properties(st)))

	return panelStyle.Width(width).Render(b.String())
}

// renderPlayground renders the playground status panel.
func renderPlayground(pg *Playground, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pointer"))
	b.WriteString("\n")

	ptr := pg.Pointer()
	b.WriteString(pointerStyles[ptr.Kind].Render(DescribePointer(ptr)))
	b.WriteString("\n\n")

	row := func(label string, value any) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(valueStyle.Render(fmt.Sprint(value)))
		b.WriteString("\n")
	}
	row("turn", pg.Game.Turn)
	row("view", pg.Player.ViewType)
	row("mode", pg.Player.ViewMode)
	row("work state", pg.Player.WorkState)
	row("hand tool", cursorName(pg.Player.PrimaryCursor))
	row("holding", pg.Holding())
	row("possessable", pg.Possessable())
	row("big pointer", pg.Game.BigPointer)
	if pg.Paused() {
		b.WriteString(dimStyle.Render("paused"))
		b.WriteString("\n")
	}

	return panelStyle.Width(width).Render(b.String())
}

func cursorName(c view.CursorState) string {
	switch c {
	case view.CursorPickaxe:
		return "pickaxe"
	case view.CursorDoorKey:
		return "door key"
	case view.CursorPowerHand:
		return "hand"
	default:
		return "none"
	}
}
