package probe

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// ToASCII converts a user-supplied name into the ASCII form sent to resolvers.
// Surrounding whitespace and a trailing root dot are dropped; internationalized
// labels are punycode-encoded.
func ToASCII(name string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(name), ".")
	if trimmed == "" {
		return "", fmt.Errorf("empty domain name")
	}

	ascii, err := idna.Lookup.ToASCII(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid domain name %q: %w", name, err)
	}
	return ascii, nil
}
