package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveDealID maps user input to a deal ID: exact UUID, UUID prefix,
// exact name (case-insensitive), then unique name substring.
func resolveDealID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("deal ID is required")
	}

	deals := app.Deals.List(ctx)

	for _, d := range deals {
		if d.ID == input {
			return d.ID, nil
		}
	}

	var matches []string
	for _, d := range deals {
		if strings.HasPrefix(d.ID, input) {
			matches = append(matches, d.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("deal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	for _, d := range deals {
		if strings.EqualFold(d.Name, input) {
			return d.ID, nil
		}
	}

	matches = matches[:0]
	lower := strings.ToLower(input)
	for _, d := range deals {
		if strings.Contains(strings.ToLower(d.Name), lower) {
			matches = append(matches, d.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("deal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("deal name %q is ambiguous (%d matches)", input, len(matches))
	}
}
