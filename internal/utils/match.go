package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// ContainsFold reports whether s contains substr under Unicode case folding
func ContainsFold(s, substr string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}

// ContainsAnyFold reports whether s contains any of the keywords under case folding
func ContainsAnyFold(s string, keywords []string) bool {
	folder := cases.Fold()
	folded := folder.String(s)
	for _, kw := range keywords {
		if strings.Contains(folded, folder.String(kw)) {
			return true
		}
	}
	return false
}
