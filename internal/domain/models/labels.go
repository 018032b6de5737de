// internal/domain/models/labels.go
package models

import "strings"

// Label turns a backend code like "closed_won" into "Closed Won".
func Label(code string) string {
	words := strings.Fields(strings.ReplaceAll(code, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
