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

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// ResolveIndexes parses a page/item selection expression into an ascending,
// deduplicated list of zero-based indices in [0,total).
//
// Grammar (comma-separated specs):
//
//	n      bare 1-based integer
//	N, -1  last element
//	a-b    two-sided 1-based inclusive range (endpoints may be N)
//	:b     first b elements
//	a:     from a (1-based) to the end
//	-k:    last k elements
//
// Malformed or out-of-range specs are dropped with a warning, never an
// error. An empty expression selects the full range. An empty result from a
// non-empty expression means "select nothing"; callers must not conflate
// the two.
func ResolveIndexes(expr string, total int) []int {
	return resolveIndexes(slog.Default(), expr, total)
}

func resolveIndexes(logger *slog.Logger, expr string, total int) []int {
	if total <= 0 {
		return nil
	}
	expr = strings.TrimSpace(expr)
	if expr == "" {
		all := make([]int, total)
		for i := range all {
			all[i] = i
		}
		return all
	}

	seen := make(map[int]bool)
	var out []int
	add := func(i int) {
		if i >= 0 && i < total && !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}

	for _, spec := range strings.Split(expr, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		if !resolveSpec(spec, total, add) {
			logger.Warn("dropping malformed or out-of-range index spec",
				"spec", spec, "total", total)
		}
	}

	sort.Ints(out)
	return out
}

// resolveSpec applies one spec, reporting whether it selected anything.
func resolveSpec(spec string, total int, add func(int)) bool {
	// Last-element literals.
	if spec == "N" || spec == "-1" {
		add(total - 1)
		return true
	}

	// Colon forms: ":b", "a:", "-k:".
	if left, right, ok := strings.Cut(spec, ":"); ok {
		switch {
		case left == "" && right != "": // :b — first b
			b, err := strconv.Atoi(right)
			if err != nil || b < 1 {
				return false
			}
			for i := 0; i < b && i < total; i++ {
				add(i)
			}
			return true
		case right == "" && strings.HasPrefix(left, "-"): // -k: — last k
			k, err := strconv.Atoi(left[1:])
			if err != nil || k < 1 {
				return false
			}
			start := total - k
			if start < 0 {
				start = 0
			}
			for i := start; i < total; i++ {
				add(i)
			}
			return true
		case right == "" && left != "": // a: — from a to end
			a, err := strconv.Atoi(left)
			if err != nil || a < 1 || a > total {
				return false
			}
			for i := a - 1; i < total; i++ {
				add(i)
			}
			return true
		}
		return false
	}

	// Two-sided range "a-b" (1-based inclusive, endpoints may be N).
	if left, right, ok := cutRange(spec); ok {
		a, aok := rangeEndpoint(left, total)
		b, bok := rangeEndpoint(right, total)
		if !aok || !bok || a > b {
			return false
		}
		selected := false
		for i := a; i <= b; i++ {
			if i >= 1 && i <= total {
				add(i - 1)
				selected = true
			}
		}
		return selected
	}

	// Bare 1-based integer.
	n, err := strconv.Atoi(spec)
	if err != nil || n < 1 || n > total {
		return false
	}
	add(n - 1)
	return true
}

// cutRange splits "a-b" without misreading a leading minus sign.
func cutRange(spec string) (left, right string, ok bool) {
	i := strings.Index(spec[1:], "-")
	if i < 0 {
		return "", "", false
	}
	i++
	return spec[:i], spec[i+1:], true
}

// rangeEndpoint parses one endpoint of a two-sided range.
func rangeEndpoint(s string, total int) (int, bool) {
	if s == "N" {
		return total, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
