//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips a request DTO through JSON so tests can send bodies the
// typed DTO cannot express.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

func Without(key string) func(m map[string]any) {
	return func(m map[string]any) { delete(m, key) }
}

// Set replaces a field with any JSON value, including ones of the wrong type.
func Set(key string, value any) func(m map[string]any) {
	return func(m map[string]any) { m[key] = value }
}
