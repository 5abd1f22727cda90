package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itohio/sunmon/pkg/report"
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	valueStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// printFlush renders one reporting cycle as a human-readable console line.
// Advisory output only; the record itself went through the gateway.
func printFlush(f report.Flush) {
	var b strings.Builder

	if f.Stats.Valid() {
		b.WriteString(labelStyle.Render("voltage "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2fV", f.Stats.VoltageAvg)))
		b.WriteString(labelStyle.Render("  power "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1fW", f.Stats.PowerAvg)))
		b.WriteString(labelStyle.Render(fmt.Sprintf(" [%.1f..%.1f]", f.Stats.PowerMin, f.Stats.PowerMax)))
		b.WriteString(labelStyle.Render(fmt.Sprintf("  n=%d", f.Stats.Count)))
	} else {
		b.WriteString(errStyle.Render("no samples this window"))
	}

	if f.CardTempF != nil {
		b.WriteString(labelStyle.Render("  card "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1fF", *f.CardTempF)))
	}

	for _, r := range f.Readings {
		b.WriteString(labelStyle.Render("  " + r.Label + " "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1fF", r.TempF)))
	}

	if f.SubmitErr != nil {
		b.WriteString("  ")
		b.WriteString(errStyle.Render("send failed: " + f.SubmitErr.Error()))
	}

	fmt.Println(b.String())
}
