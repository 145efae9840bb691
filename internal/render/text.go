package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hostsnap/internal/model"
	"hostsnap/internal/units"
)

var (
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

var (
	diskWidths = []int{20, 10, 10, 10, 6}
	procWidths = []int{8, 22, 6, 10}
	gpuWidths  = []int{4, 32, 6, 6, 10, 10, 6}
)

// Text writes the human-readable report. Every section header prints even
// when its body is an unavailable placeholder, so the report keeps a
// stable shape regardless of host capability.
func Text(w io.Writer, snap model.Snapshot) {
	rule := ruleStyle.Render(strings.Repeat("-", 80))

	fmt.Fprintf(w, "Host:        %s\n", snap.Host)
	fmt.Fprintf(w, "OS:          %s\n", snap.OS)
	fmt.Fprintf(w, "Uptime:      %s\n", formatUptime(snap.UptimeSeconds))
	if la := snap.LoadAvg; la != nil {
		fmt.Fprintf(w, "Load Avg:    1m: %.2f  5m: %.2f  15m: %.2f\n", la.Load1, la.Load5, la.Load15)
	} else {
		fmt.Fprintln(w, "Load Avg:    unavailable")
	}
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "CPU Usage:   %.1f%% (overall)\n", snap.CPUPercent)
	fmt.Fprintln(w, rule)

	m := snap.Memory
	fmt.Fprintln(w, titleStyle.Render("Memory:"))
	fmt.Fprintf(w, "  Total: %s  Used: %s  Free: %s  Used: %.1f%%\n",
		units.Humanize(m.Total), units.Humanize(m.Used), units.Humanize(m.Free), m.UsedPercent)
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, titleStyle.Render("Disk:"))
	fmt.Fprintln(w, fmtRow([]any{"Mount", "Total", "Used", "Free", "Use%"}, diskWidths))
	for _, d := range snap.Disks.PerMount {
		fmt.Fprintln(w, fmtRow([]any{
			d.Mount, units.Humanize(d.Total), units.Humanize(d.Used), units.Humanize(d.Free),
			fmt.Sprintf("%.0f%%", d.UsedPercent),
		}, diskWidths))
	}
	fmt.Fprintln(w, rule)
	tot := snap.Disks.Overall
	fmt.Fprintln(w, fmtRow([]any{
		tot.Mount, units.Humanize(tot.Total), units.Humanize(tot.Used), units.Humanize(tot.Free),
		fmt.Sprintf("%.1f%%", tot.UsedPercent),
	}, diskWidths))
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, titleStyle.Render("Top 5 Processes by CPU:"))
	fmt.Fprintln(w, fmtRow([]any{"PID", "NAME", "CPU%", "MEM"}, procWidths))
	for _, p := range snap.TopCPU {
		fmt.Fprintln(w, fmtRow([]any{
			int(p.PID), truncate(p.Name, 22), fmt.Sprintf("%.1f", p.CPU), units.Humanize(p.MemBytes),
		}, procWidths))
	}
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, titleStyle.Render("Top 5 Processes by Memory:"))
	fmt.Fprintln(w, fmtRow([]any{"PID", "NAME", "MEM", "CPU%"}, procWidths))
	for _, p := range snap.TopMem {
		fmt.Fprintln(w, fmtRow([]any{
			int(p.PID), truncate(p.Name, 22), units.Humanize(p.MemBytes), fmt.Sprintf("%.1f", p.CPU),
		}, procWidths))
	}
	fmt.Fprintln(w, rule)

	if len(snap.Users) > 0 {
		fmt.Fprintf(w, "Logged-in users: %s\n", strings.Join(snap.Users, ", "))
	} else {
		fmt.Fprintln(w, "Logged-in users: unavailable")
	}
	if snap.FailedLogins != nil {
		fmt.Fprintf(w, "Failed SSH login attempts: %d\n", *snap.FailedLogins)
	} else {
		fmt.Fprintln(w, "Failed SSH login attempts: unknown")
	}
	fmt.Fprintln(w, rule)

	writeGPU(w, snap.Gpu)
	writeTemperatures(w, snap.Temperatures)
	fmt.Fprintln(w, rule)
}

func writeGPU(w io.Writer, gpu *model.GpuReport) {
	if gpu == nil {
		fmt.Fprintln(w, "GPU: not detected / nvidia-smi not found")
		return
	}
	fmt.Fprintln(w, titleStyle.Render("GPU:"))
	if len(gpu.Gpus) == 0 {
		if gpu.Raw != "" {
			fmt.Fprintln(w, gpu.Raw)
		} else {
			fmt.Fprintln(w, "(detected, but no structured output)")
		}
		return
	}
	fmt.Fprintln(w, fmtRow([]any{"ID", "Model", "GPU%", "Mem%", "Used", "Total", "Temp"}, gpuWidths))
	for _, g := range gpu.Gpus {
		fmt.Fprintln(w, fmtRow([]any{
			g.ID, truncate(g.Model, 32),
			fmt.Sprintf("%.0f", g.GpuUtil), fmt.Sprintf("%.0f", g.MemUtil),
			fmt.Sprintf("%d MiB", int(g.MemUsedMiB)), fmt.Sprintf("%d MiB", int(g.MemTotalMiB)),
			fmt.Sprintf("%d°C", int(g.TempC)),
		}, gpuWidths))
	}
}

func writeTemperatures(w io.Writer, temps map[string][]model.TempReading) {
	if len(temps) == 0 {
		fmt.Fprintln(w, "Temperatures: unavailable (install lm-sensors)")
		return
	}
	fmt.Fprintln(w, titleStyle.Render("Temperatures (sensors):"))
	chips := make([]string, 0, len(temps))
	for chip := range temps {
		chips = append(chips, chip)
	}
	sort.Strings(chips)
	for _, chip := range chips {
		for _, t := range temps[chip] {
			fmt.Fprintf(w, "  %s: %s %.1f°C\n", chip, t.Label, t.Current)
		}
	}
}

// fmtRow pads each cell to its fixed column width: numbers are
// right-justified, text left-justified. Widths never stretch to content.
func fmtRow(cols []any, widths []int) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		w := widths[i]
		switch v := col.(type) {
		case int:
			cells[i] = fmt.Sprintf("%*d", w, v)
		case float64:
			cells[i] = fmt.Sprintf("%*g", w, v)
		default:
			cells[i] = fmt.Sprintf("%-*s", w, fmt.Sprint(col))
		}
	}
	return strings.Join(cells, "  ")
}

// formatUptime renders seconds in the "N days, H:MM:SS" shape.
func formatUptime(sec uint64) string {
	days := sec / 86400
	rem := sec % 86400
	hms := fmt.Sprintf("%d:%02d:%02d", rem/3600, rem%3600/60, rem%60)
	switch days {
	case 0:
		return hms
	case 1:
		return "1 day, " + hms
	default:
		return fmt.Sprintf("%d days, %s", days, hms)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
