package questionbank

import "strings"

// ParseLines splits raw model output into one field slice per line.
// Lines without the "|" delimiter (blank lines, stray prose, markdown
// fences) are discarded entirely. Fields are trimmed but otherwise
// untouched; empty input yields an empty result, never an error.
func ParseLines(raw string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "|") {
			continue
		}
		rows = append(rows, splitFields(line))
	}
	return rows
}

// ParseGroups handles the matching and sequencing formats, whose logical
// questions the model often wraps across several rendered lines. The
// whole text is flattened (newlines become spaces, runs of whitespace
// collapse), split once on "|", and chunked by the type's field arity:
// one chunk per logical question. A trailing partial chunk is not a
// complete group and is dropped.
//
// This is deliberately a separate strategy from ParseLines; the two must
// not be merged into a shared path.
func ParseGroups(raw string, size int) [][]string {
	flat := strings.Join(strings.Fields(raw), " ")
	if size <= 0 || !strings.Contains(flat, "|") {
		return nil
	}
	fields := splitFields(flat)

	var groups [][]string
	for i := 0; i+size <= len(fields); i += size {
		groups = append(groups, fields[i:i+size])
	}
	return groups
}

func splitFields(line string) []string {
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
