package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyFor_Bands(t *testing.T) {
	// The Standard/Premium overlap is intentional parity with the original
	// business rules; these assertions pin the table as written.
	tests := []struct {
		tier       string
		minYears   int
		maxYears   int
		maxClients int
		perWeek    int
		total      int
	}{
		{"Basic", 0, 5, 10, 1, 4},
		{"Standard", 5, 15, 7, 2, 8},
		{"Premium", 6, 30, 5, 4, 16},
	}

	for _, tt := range tests {
		p, err := PolicyFor(tt.tier)
		require.NoError(t, err)
		assert.Equal(t, tt.minYears, p.MinYears, tt.tier)
		assert.Equal(t, tt.maxYears, p.MaxYears, tt.tier)
		assert.Equal(t, tt.maxClients, p.MaxClients, tt.tier)
		assert.Equal(t, tt.perWeek, p.SessionsPerWeek, tt.tier)
		assert.Equal(t, tt.total, p.TotalSessions, tt.tier)
	}
}

func TestNormalizeTier(t *testing.T) {
	for in, want := range map[string]string{
		"basic":    "Basic",
		"STANDARD": "Standard",
		" premium ": "Premium",
		"Basic":    "Basic",
	} {
		got, err := NormalizeTier(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := NormalizeTier("gold")
	assert.Error(t, err)
}

func TestTherapyAllowed(t *testing.T) {
	assert.True(t, TherapyAllowed("Basic", "nutritional therapy"))
	assert.True(t, TherapyAllowed("basic", "Adolescent Therapy"))
	assert.False(t, TherapyAllowed("Basic", "clinical psychology"))

	assert.True(t, TherapyAllowed("Standard", "cognitive therapy"))
	assert.False(t, TherapyAllowed("Standard", "career & life coaching"))

	assert.True(t, TherapyAllowed("Premium", "career & life coaching"))
	assert.True(t, TherapyAllowed("Premium", "clinical psychology"))
}

func TestTherapyTypesFor_ReturnsCopy(t *testing.T) {
	a := TherapyTypesFor("Basic")
	require.NotEmpty(t, a)
	a[0] = "mutated"
	b := TherapyTypesFor("Basic")
	assert.NotEqual(t, a[0], b[0])
}
