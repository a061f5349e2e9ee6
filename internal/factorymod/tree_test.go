package factorymod

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

// nestedAliases builds a small document whose last list expands to
// width^levels scalars once its aliases are followed.
func nestedAliases(levels, width int) string {
	var sb strings.Builder
	sb.WriteString("default_fuel_consumption_intervall: 5s\n")
	sb.WriteString("l0: &l0 [" + strings.TrimSuffix(strings.Repeat("x, ", width), ", ") + "]\n")
	for i := 1; i < levels; i++ {
		ref := fmt.Sprintf("*l%d, ", i-1)
		fmt.Fprintf(&sb, "l%d: &l%d [%s]\n", i, i, strings.TrimSuffix(strings.Repeat(ref, width), ", "))
	}
	return sb.String()
}

func TestCheckExpansion(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"plain document", "a: 1\nb: [x, y]\n", false},
		{"merge keys", "base: &b {x: 1}\nderived: {<<: *b, y: 2}\n", false},
		{"moderate aliasing", nestedAliases(3, 10), false},
		{"nested aliases", nestedAliases(8, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var root yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.text), &root))

			err := checkExpansion(&root)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrMalformedValue)
				assert.Contains(t, err.Error(), "through aliases")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCountNodes_DoesNotFollowAliases(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(nestedAliases(8, 10)), &root))

	assert.Less(t, countNodes(&root), 200)
}
