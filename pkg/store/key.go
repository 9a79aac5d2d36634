package store

import (
	"strings"
)

// KeyPrefix is prepended to every list key.
const KeyPrefix = "webkit"

// ListKey identifies a Redis list.
type ListKey struct {
	// Namespace groups related lists (e.g., "demo")
	Namespace string

	// Name is the list name within the namespace (e.g., "items")
	Name string
}

// String generates the Redis key.
// Format: webkit:namespace:name
//
// Example:
//
//	webkit:demo:items
func (k ListKey) String() string {
	parts := []string{KeyPrefix}

	if ns := strings.Trim(k.Namespace, ":"); ns != "" {
		parts = append(parts, ns)
	}
	if name := strings.Trim(k.Name, ":"); name != "" {
		parts = append(parts, name)
	}

	return strings.Join(parts, ":")
}
