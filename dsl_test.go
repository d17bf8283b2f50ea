package attachpipe

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		identifier  string
		wantLocator string
		wantBlock   string
	}{
		{"token with arg", "file.ext[token:arg]", "file.ext", "token:arg"},
		{"no block", "file.ext", "file.ext", ""},
		{"url query bracket", "url?x=[1,2][token]", "url?x=[1,2]", "token"},
		{"url query value only", "url?x=[1,2]", "url?x=[1,2]", ""},
		{"multiple tokens", "report.pdf[pages:1-3,limit:100]", "report.pdf", "pages:1-3,limit:100"},
		{"leading bracket only", "[token]", "[token]", ""},
		{"empty block", "file.ext[]", "file.ext[]", ""},
		{"whitespace block", "file.ext[   ]", "file.ext[   ]", ""},
		{"no trailing bracket", "file.ext[token", "file.ext[token", ""},
		{"empty identifier", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locator, block := Split(tt.identifier)
			if locator != tt.wantLocator || block != tt.wantBlock {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
					tt.identifier, locator, block, tt.wantLocator, tt.wantBlock)
			}
		})
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []Command
	}{
		{"empty", "", nil},
		{"single flag", "tile", []Command{{Name: "tile"}}},
		{"name and arg", "pages:1-3", []Command{{Name: "pages", Arg: "1-3"}}},
		{
			"ordered mix", "pages:1-3,join,limit:100",
			[]Command{{Name: "pages", Arg: "1-3"}, {Name: "join"}, {Name: "limit", Arg: "100"}},
		},
		{
			"nested brackets in arg", "select:[a,b],join",
			[]Command{{Name: "select", Arg: "[a,b]"}, {Name: "join"}},
		},
		{"surrounding whitespace", " pages : 1-3 , join ",
			[]Command{{Name: "pages", Arg: "1-3"}, {Name: "join"}}},
		{"empty tokens dropped", "a,,b", []Command{{Name: "a"}, {Name: "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommands(tt.block)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCommands(%q) = %v, want %v", tt.block, got, tt.want)
			}
		})
	}
}

func TestParseDirectives(t *testing.T) {
	got := ParseDirectives("format:plain,prompt:summarize,format:markdown")
	want := map[string]string{"format": "markdown", "prompt": "summarize"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseDirectives = %v, want %v", got, want)
	}
}

// TestSplitThenParseOrder checks token order survives the round trip from
// identifier to commands.
func TestSplitThenParseOrder(t *testing.T) {
	_, block := Split("doc.pdf[b,a,c:1]")
	cmds := ParseCommands(block)
	var names []string
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("command order = %v, want %v", names, want)
	}
}
