// Package id generates prefixed entity identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Lowercase alphanumerics keep the IDs readable in URLs and log lines;
// 16 characters is plenty of entropy for a marketplace-sized dataset.
const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	length   = 16
)

// Generate creates an ID of the form "prefix-x7f2k09qm3z8w1ab". It fails
// only when the system entropy source does.
func Generate(prefix string) (string, error) {
	suffix, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return prefix + "-" + suffix, nil
}
