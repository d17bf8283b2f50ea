package attachpipe

import (
	"strings"
	"testing"
)

func TestDecodeTextUTF8Passthrough(t *testing.T) {
	in := "héllo wörld ☺"
	if got := decodeText([]byte(in), ""); got != in {
		t.Errorf("decodeText = %q, want unchanged UTF-8", got)
	}
}

func TestDecodeTextWithCharsetHint(t *testing.T) {
	latin1 := []byte{'c', 'a', 'f', 0xE9}
	got := decodeText(latin1, "ISO-8859-1")
	if got != "café" {
		t.Errorf("decodeText with hint = %q, want café", got)
	}
}

func TestDecodeTextUTF16Hint(t *testing.T) {
	// "hi" in UTF-16LE.
	got := decodeText([]byte{'h', 0, 'i', 0}, "utf-16le")
	if got != "hi" {
		t.Errorf("decodeText = %q, want hi", got)
	}
}

func TestDecodeTextDetection(t *testing.T) {
	// A longer Latin-1 sample so the detector has something to work with.
	raw := []byte("Les d\xE9cisions ont \xE9t\xE9 prises apr\xE8s la r\xE9union.")
	got := decodeText(raw, "")
	if strings.ContainsRune(got, '�') {
		t.Errorf("detected decode contains replacement characters: %q", got)
	}
	if !strings.Contains(got, "cisions") {
		t.Errorf("decoded text = %q", got)
	}
}

func TestLookupEncodingAliases(t *testing.T) {
	for _, name := range []string{"UTF-8", "us-ascii", "Shift_JIS", "ISO-8859-1", "windows-1252", "GB18030"} {
		if lookupEncoding(name) == nil {
			t.Errorf("lookupEncoding(%q) = nil", name)
		}
	}
	if lookupEncoding("no-such-charset") != nil {
		t.Error("unknown charset should yield nil")
	}
}
