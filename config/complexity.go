// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"
)

// Complexity is a named maze size tier.
type Complexity string

// Supported tiers.
const (
	Easy   Complexity = "easy"
	Medium Complexity = "medium"
	Hard   Complexity = "hard"
)

// Size returns the square side length of the tier: 15, 25 or 35.
// Unknown tiers fall back to the Medium size.
func (c Complexity) Size() int {
	switch c {
	case Easy:
		return 15
	case Hard:
		return 35
	default:
		return 25
	}
}

// ParseComplexity accepts a tier name case-insensitively. An empty string
// selects Medium.
func ParseComplexity(s string) (Complexity, error) {
	switch c := Complexity(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return Medium, nil
	case Easy, Medium, Hard:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, medium or hard)", ErrInvalidComplexity, s)
	}
}
