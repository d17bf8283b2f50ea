package attachpipe

import (
	"os"
	"path/filepath"
	"strings"
)

// hasExt reports whether the locator's lowercase extension is one of exts.
func hasExt(locator string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(locator))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// isURL reports whether the locator is an http(s) URL.
func isURL(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

// isLocalFile reports whether the locator names an existing regular file.
func isLocalFile(locator string) bool {
	info, err := os.Stat(locator)
	return err == nil && info.Mode().IsRegular()
}
