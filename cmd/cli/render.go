package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/workout"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dateStyle  = lipgloss.NewStyle().Bold(true)
	todayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	restStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func joinTypes(ts []workout.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = string(t)
	}
	return strings.Join(parts, "+")
}

func renderAccount(acc *pb.Account) string {
	lines := []string{
		titleStyle.Render(acc.GetUsername()),
		fmt.Sprintf("energy  %d", acc.GetEnergy()),
		fmt.Sprintf("streak  %d", acc.GetStreak()),
	}
	if acc.GetAvatar() != "" {
		lines = append(lines, "avatar  "+acc.GetAvatar())
	}
	if acc.GetIsAdmin() {
		lines = append(lines, dimStyle.Render("admin"))
	}
	if len(acc.GetInventory()) > 0 {
		lines = append(lines, "", "inventory:")
		for _, it := range acc.GetInventory() {
			lines = append(lines, fmt.Sprintf("  %-16s x%d", it.GetSku(), it.GetQuantity()))
		}
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}

// renderCalendar prints one block per day; today is highlighted.
func renderCalendar(days []workout.DayWorkout, today string) string {
	var b strings.Builder
	for _, d := range days {
		b.WriteString(renderDay(d, today))
	}
	return b.String()
}

func renderDay(d workout.DayWorkout, today string) string {
	label := d.Date
	if t, err := workout.ParseDate(d.Date); err == nil {
		label += " " + t.Weekday().String()[:3]
	}
	head := dateStyle.Render(label)
	if d.Date == today {
		head = todayStyle.Render(label + " (today)")
	}
	types := joinTypes(d.Types)
	if d.IsRest() {
		types = restStyle.Render(types)
	}
	head += "  " + types
	if d.Completed {
		head += "  " + doneStyle.Render("[done]")
	} else if d.StreakSaver {
		head += "  " + dimStyle.Render("[saved]")
	}
	if m := d.Minutes(); m > 0 {
		head += dimStyle.Render(fmt.Sprintf("  ~%d min", m))
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteByte('\n')
	for i, e := range d.Workouts {
		fmt.Fprintf(&b, "  %d. %s", i+1, e.Name)
		var detail []string
		if e.Sets != nil && e.Reps != "" {
			detail = append(detail, fmt.Sprintf("%dx%s", *e.Sets, e.Reps))
		} else if e.Reps != "" {
			detail = append(detail, e.Reps+" reps")
		}
		if e.Duration != "" {
			detail = append(detail, e.Duration)
		}
		if len(detail) > 0 {
			b.WriteString(dimStyle.Render("  " + strings.Join(detail, ", ")))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderCatalog marks items the account already owns.
func renderCatalog(items []*pb.ShopItem, owned map[string]int64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("shop"))
	b.WriteByte('\n')
	for _, it := range items {
		line := fmt.Sprintf("%-16s %5d  %s", it.GetSku(), it.GetPrice(), it.GetName())
		if n := owned[it.GetSku()]; n > 0 {
			line += dimStyle.Render(fmt.Sprintf("  (owned x%d)", n))
		}
		b.WriteString(line)
		b.WriteByte('\n')
		if it.GetDescription() != "" {
			b.WriteString(dimStyle.Render("    " + it.GetDescription()))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderDiagnostics(d *pb.DiagnosticsResponse) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("server"),
		fmt.Sprintf("version   %s", d.GetVersion()),
		fmt.Sprintf("model     %s", d.GetModel()),
		fmt.Sprintf("started   %s", d.GetStartedAt().AsTime().Format(time.RFC3339)),
		fmt.Sprintf("users     %d", d.GetUsers()),
		fmt.Sprintf("progress  %d", d.GetProgress()),
	)) + "\n"
}
