package parser

import (
	"regexp"
	"strings"

	"github.com/carbux/fuel-receipts/internal/ocr"
)

var reLineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// normalizeLines builds the line list every extraction rule operates on:
// per-page text joined in order when pages are present (concatenated text
// otherwise), split on any line break, whitespace-collapsed, empties dropped.
func normalizeLines(ex ocr.Extraction) []string {
	raw := ex.Text
	if len(ex.Pages) > 0 {
		raw = strings.Join(ex.Pages, "\n")
	}
	parts := reLineBreak.Split(raw, -1)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		line := strings.Join(strings.Fields(p), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
