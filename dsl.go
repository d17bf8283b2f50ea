// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package attachpipe

import "strings"

// Command is one token from an identifier's command block. Argument-less
// tokens are boolean flags and carry an empty Arg.
type Command struct {
	Name string
	Arg  string
}

// Split separates an identifier into a locator and a trailing command
// block. The command block is the content between the last '[' and a
// closing ']' at the very end of the string.
//
// Heuristics, in order:
//   - no '[' or no trailing ']': locator only
//   - identifier begins with '[' and nothing precedes it: locator only
//   - the character before '[' is '=': the bracket looks like a URL query
//     value, so the whole identifier is the locator
//   - empty or whitespace-only block: locator only
func Split(identifier string) (locator, block string) {
	open := strings.LastIndex(identifier, "[")
	if open <= 0 || !strings.HasSuffix(identifier, "]") {
		return identifier, ""
	}
	if identifier[open-1] == '=' {
		return identifier, ""
	}
	inner := identifier[open+1 : len(identifier)-1]
	if strings.TrimSpace(inner) == "" {
		return identifier, ""
	}
	return identifier[:open], inner
}

// ParseCommands splits a command block on top-level commas into ordered
// name or name:argument tokens. Arguments are not interpreted here; nested
// brackets inside an argument do not break tokenization.
func ParseCommands(block string) []Command {
	var cmds []Command
	for _, tok := range splitTopLevel(block, ',') {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		name, arg, _ := strings.Cut(tok, ":")
		cmds = append(cmds, Command{
			Name: strings.TrimSpace(name),
			Arg:  strings.TrimSpace(arg),
		})
	}
	return cmds
}

// ParseDirectives parses a command block as a colon-delimited key to value
// mapping for directive-style usage. Later duplicates win.
func ParseDirectives(block string) map[string]string {
	dirs := make(map[string]string)
	for _, c := range ParseCommands(block) {
		dirs[c.Name] = c.Arg
	}
	return dirs
}

// splitTopLevel splits s on sep, ignoring separators nested inside square
// brackets.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
