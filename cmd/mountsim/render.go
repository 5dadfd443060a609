package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mount "github.com/grindlemire/go-mount"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	hostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4")).
			Padding(0, 1)
)

const outputFormat = "%-4s %-6s %-34s %-16s %-5s %-8s %s"

func outputHeader() string {
	return headerStyle.Render(fmt.Sprintf(outputFormat, "#", "TYPE", "KEY", "BOUNDS", "HOST", "STATE", "FLAGS"))
}

func outputLine(o *mount.Output) string {
	line := fmt.Sprintf(outputFormat,
		fmt.Sprint(o.Index),
		o.Type.Name,
		indent(o.Key),
		o.Bounds.String(),
		fmt.Sprint(o.HostMarker),
		o.UpdateState.String(),
		flagNames(o.Flags))
	if o.IsHost() {
		return hostStyle.Render(line)
	}
	return line
}

// indent shortens a global key to its last segment, indented by depth.
func indent(key string) string {
	depth := strings.Count(key, "/")
	if i := strings.LastIndex(key, "/"); i >= 0 {
		key = key[i+1:]
	}
	return strings.Repeat("  ", depth) + key
}

func flagNames(f mount.OutputFlags) string {
	var names []string
	for _, fl := range []struct {
		flag mount.OutputFlags
		name string
	}{
		{mount.FlagBackground, "bg"},
		{mount.FlagForeground, "fg"},
		{mount.FlagBorder, "border"},
		{mount.FlagTouchableDisabled, "disabled"},
		{mount.FlagDuplicateParentState, "dup"},
	} {
		if f.Has(fl.flag) {
			names = append(names, fl.name)
		}
	}
	return strings.Join(names, ",")
}

func writeOutputs(w io.Writer, outputs []*mount.Output) {
	fmt.Fprintln(w, outputHeader())
	for _, o := range outputs {
		fmt.Fprintln(w, outputLine(o))
	}
}

func summary(s *mount.LayoutState) string {
	counts := map[mount.UpdateState]int{}
	for _, o := range s.Outputs() {
		counts[o.UpdateState]++
	}
	return mutedStyle.Render(fmt.Sprintf(
		"generation %d: %d outputs, %d visibility, %dx%d, reuse=%d update=%d recreate=%d collisions=%d",
		s.Generation(), s.OutputCount(), len(s.VisibilityOutputs()), s.Width(), s.Height(),
		counts[mount.UpdateStateReuse], counts[mount.UpdateStateUpdate], counts[mount.UpdateStateRecreate],
		s.Collisions()))
}

func statsLine(st mount.Stats) string {
	return mutedStyle.Render(fmt.Sprintf(
		"passes=%d incremental=%d mounts=%d unmounts=%d binds=%d unbinds=%d recreates=%d moves=%d pool=%d scrap=%d",
		st.Passes, st.IncrementalPasses, st.Mounts, st.Unmounts, st.Binds, st.Unbinds,
		st.Recreates, st.Moves, st.PoolHits, st.ScrapHits))
}

func writeEvents(w io.Writer, events []string) {
	for _, ev := range events {
		fmt.Fprintln(w, eventStyle.Render("  event "+ev))
	}
}
