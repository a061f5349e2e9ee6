package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVar = "FMX_TEST_VAR"

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{"unset", nil, 42},
		{"valid", ptr("100"), 100},
		{"zero", ptr("0"), 0},
		{"not a number", ptr("many"), 42},
		{"float", ptr("42.5"), 42},
		{"empty", ptr(""), 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, tt.value)
			assert.Equal(t, tt.want, getEnvAsInt(testVar, 42))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  []string
	}{
		{"unset", nil, nil},
		{"empty", ptr(""), nil},
		{"single", ptr("10.0.0.1"), []string{"10.0.0.1"}},
		{"trims and drops blanks", ptr(" a ,, b ,"), []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, tt.value)
			assert.Equal(t, tt.want, getEnvAsList(testVar))
		})
	}
}

func TestParseEnvDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		want    time.Duration
		wantErr bool
	}{
		{"unset uses default", nil, 5 * time.Minute, false},
		{"empty uses default", ptr(""), 5 * time.Minute, false},
		{"compound", ptr("1h30m45s"), time.Hour + 30*time.Minute + 45*time.Second, false},
		{"milliseconds", ptr("500ms"), 500 * time.Millisecond, false},
		{"zero is allowed", ptr("0s"), 0, false},
		{"missing unit", ptr("100"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, tt.value)

			got, err := parseEnvDuration(testVar, 5*time.Minute)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), testVar)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr(s string) *string { return &s }

// setOrUnset sets testVar for the test, or removes it when value is nil
func setOrUnset(t *testing.T, value *string) {
	t.Helper()
	if value == nil {
		clearVar(t, testVar)
		return
	}
	t.Setenv(testVar, *value)
}
