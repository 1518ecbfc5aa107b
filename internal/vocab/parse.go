package vocab

import (
	"fmt"
	"strings"
)

// WordEntry is a parsed character/pinyin pair before an id is assigned.
type WordEntry struct {
	Character string
	Pinyin    string
}

// splitWordLine splits a manual-entry line on either the ASCII or the
// full-width comma, since learners type both. Empty fields are kept so
// that "你好,," is rejected rather than silently collapsed.
func splitWordLine(line string) []string {
	return strings.Split(strings.ReplaceAll(line, "，", ","), ",")
}

// ParseWordText parses newline-separated "character,pinyin" lines.
// Blank lines are skipped. Any line that does not split into exactly two
// non-empty trimmed fields fails the whole parse with an error naming
// that line, and an empty result is also an error.
func ParseWordText(text string) ([]WordEntry, error) {
	var entries []WordEntry
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := splitWordLine(line)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid format on line %q: use \"character,pinyin\"", line)
		}
		char := strings.TrimSpace(parts[0])
		pinyin := strings.TrimSpace(parts[1])
		if char == "" || pinyin == "" {
			return nil, fmt.Errorf("invalid format on line %q: use \"character,pinyin\"", line)
		}
		entries = append(entries, WordEntry{Character: char, Pinyin: pinyin})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid words found")
	}
	return entries, nil
}

// FormatWordText renders words back into the manual-entry text format,
// used to prefill the editor when editing an existing lesson.
func FormatWordText(words []Word) string {
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = w.Character + "," + w.Pinyin
	}
	return strings.Join(lines, "\n")
}
