package attachpipe

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	reTrailingWhitespace = regexp.MustCompile(`[ \t]+\n`)
	reMultipleNewlines   = regexp.MustCompile(`\n{3,}`)
	reCRLF               = regexp.MustCompile(`\r\n?`)
)

// normalizeText post-processes rendered text output:
//   - ensure valid UTF-8
//   - normalize line endings (CRLF -> LF)
//   - strip non-printable/control characters (keep \n, \t)
//   - strip trailing whitespace from each line
//   - collapse 3+ consecutive newlines to 2
//   - trim leading/trailing whitespace
func normalizeText(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	s = reCRLF.ReplaceAllString(s, "\n")

	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	s = reTrailingWhitespace.ReplaceAllString(s, "\n")
	s = reMultipleNewlines.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// markdownTable renders rows as a markdown table, first row as header.
func markdownTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	numCols := len(rows[0])

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("| ")
		for i := 0; i < numCols; i++ {
			if i < len(cells) {
				b.WriteString(cells[i])
			}
			b.WriteString(" | ")
		}
		b.WriteString("\n")
	}

	writeRow(rows[0])
	b.WriteString("| ")
	for i := 0; i < numCols; i++ {
		b.WriteString("--- | ")
	}
	b.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return b.String()
}
