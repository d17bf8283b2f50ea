package attachpipe

import (
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
)

// decodeText decodes raw bytes to UTF-8. A non-empty charset hint is tried
// first; otherwise the charset is detected.
func decodeText(data []byte, charsetHint string) string {
	if charsetHint != "" {
		if enc := lookupEncoding(charsetHint); enc != nil {
			if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
				return string(decoded)
			}
		}
	}
	return decodeWithDetection(data)
}

// decodeWithDetection detects the encoding of data and decodes it to
// UTF-8, falling back to interpreting the bytes as UTF-8 directly.
func decodeWithDetection(data []byte) string {
	if utf8.Valid(data) {
		s := string(data)
		if !strings.ContainsRune(s, '�') {
			return s
		}
	}

	results, err := chardet.NewTextDetector().DetectAll(data)
	if err != nil || len(results) == 0 {
		return string(data)
	}

	bestScore := -1 << 31
	best := ""
	for _, r := range results {
		enc := lookupEncoding(r.Charset)
		if enc == nil {
			continue
		}
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		s := string(decoded)
		if score := scoreDecoded(s, r.Confidence); score > bestScore {
			bestScore = score
			best = s
		}
	}
	if best != "" {
		return best
	}
	return string(data)
}

// scoreDecoded rates decoded text: detector confidence, penalized for
// replacement and control characters that indicate a wrong decode.
func scoreDecoded(s string, confidence int) int {
	score := confidence
	for _, r := range s {
		switch {
		case r == '�':
			score -= 10
		case r < 0x20 && r != '\n' && r != '\r' && r != '\t':
			score -= 5
		}
	}
	return score
}

// lookupEncoding maps a charset name to a Go encoding. A few detector and
// vendor spellings are aliased before consulting the WHATWG index.
func lookupEncoding(charset string) encoding.Encoding {
	switch strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(charset, "-", ""), "_", "")) {
	case "utf8", "utf8bom", "ascii", "usascii":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "cp932", "windows31j", "sjis", "shiftjis", "shiftjis2004":
		return japanese.ShiftJIS
	case "cp949":
		return korean.EUCKR
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil
	}
	return enc
}
