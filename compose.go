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

// OrElse combines two loaders: try the left one, fall through to the
// right only when the left's Match rejects the locator. A payload error
// from a matched loader propagates; it never triggers fallback. The
// operator is associative, so chains compose into an arbitrary-length
// any-of loader.
func OrElse(a, b Loader) Loader {
	return &orElseLoader{a: a, b: b}
}

// AnyOf folds loaders left to right with OrElse.
func AnyOf(loaders ...Loader) Loader {
	if len(loaders) == 0 {
		return nil
	}
	combined := loaders[0]
	for _, l := range loaders[1:] {
		combined = OrElse(combined, l)
	}
	return combined
}

type orElseLoader struct {
	a, b Loader
}

func (l *orElseLoader) Name() string {
	return l.a.Name() + "|" + l.b.Name()
}

func (l *orElseLoader) Match(locator string) bool {
	return l.a.Match(locator) || l.b.Match(locator)
}

func (l *orElseLoader) Load(locator string) (Payload, error) {
	if l.a.Match(locator) {
		return l.a.Load(locator)
	}
	return l.b.Load(locator)
}
