package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// PaneInfoSource supplies a fresh, authoritative layout section for a
// single pane. dock.Manager satisfies it.
type PaneInfoSource interface {
	SavePaneInfo(name string) (string, error)
}

// PatchPerspective rewrites raw's pane sections so that the i-th
// pane-describing section describes panes[i], regardless of the order the
// pane manager emitted them in (its serialization follows creation order,
// not the caller-visible display order). Non-pane sections pass through
// unchanged, in place. When rename is true, each substituted section's name
// and caption additionally get a sequential trailing index starting at 1.
//
// raw and panes must describe the same container: a mismatch between the
// number of pane sections and len(panes) is a caller bug and is reported as
// an error rather than guessed around.
func PatchPerspective(raw string, panes []string, src PaneInfoSource, rename bool) (string, error) {
	sections := splitSections(raw)
	next := 0
	for i, sec := range sections {
		if !isPaneSection(sec) {
			continue
		}
		if next >= len(panes) {
			return "", fmt.Errorf("patch perspective: more pane sections than panes (%d given)", len(panes))
		}
		info, err := src.SavePaneInfo(panes[next])
		if err != nil {
			return "", fmt.Errorf("patch perspective: %w", err)
		}
		if rename {
			info = renumberSection(info, next+1)
		}
		sections[i] = info
		next++
	}
	if next != len(panes) {
		return "", fmt.Errorf("patch perspective: %d pane sections, %d panes given", next, len(panes))
	}
	return strings.Join(sections, "|") + "|", nil
}

// renumberSection patches the name and caption fields of one pane section
// to carry index as their trailing token. All other fields pass through
// untouched, in their original order.
//
// Empty name/caption values are left alone. If the current trailing token
// is not numeric it is kept and the index is appended after it; only a
// numeric trailing token (a previous index) is replaced.
func renumberSection(section string, index int) string {
	fields := strings.Split(section, ";")
	for i, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok || (key != "name" && key != "caption") {
			continue
		}
		fields[i] = key + "=" + renumberValue(value, index)
	}
	return strings.Join(fields, ";")
}

func renumberValue(value string, index int) string {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return value
	}
	if _, err := strconv.Atoi(tokens[len(tokens)-1]); err == nil {
		tokens = tokens[:len(tokens)-1]
	}
	tokens = append(tokens, strconv.Itoa(index))
	return strings.Join(tokens, " ")
}

// splitSections splits a perspective string on '|' into trimmed, non-empty
// sections. This is the codec's entire knowledge of the perspective
// grammar; pane geometry stays opaque.
func splitSections(perspective string) []string {
	var out []string
	for _, sec := range strings.Split(perspective, "|") {
		sec = strings.TrimSpace(sec)
		if sec != "" {
			out = append(out, sec)
		}
	}
	return out
}

// isPaneSection reports whether a section describes a pane, i.e. contains
// a "name=" key.
func isPaneSection(sec string) bool {
	return strings.Contains(sec, "name=")
}
