package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "typical leg", input: "414", want: 254},
		{name: "four digit", input: "1005", want: 605},
		{name: "minutes only", input: "45", want: 45},
		{name: "zero", input: "0", want: 0},
		{name: "whitespace", input: " 107 ", want: 67},
		{name: "empty", input: "", want: 0},
		{name: "non-numeric", input: "abc", want: 0, wantErr: true},
		{name: "minute overflow", input: "599", want: 0, wantErr: true},
		{name: "negative", input: "-130", want: 0, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseBlockTime(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseBlockTimeOverflowError(t *testing.T) {
	_, err := ParseBlockTime("599")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlockOverflow)

	// Non-numeric input is an anomaly, not an overflow.
	_, err = ParseBlockTime("4:14")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBlockOverflow)
}

func TestParseClockTime(t *testing.T) {
	minutes, ok := ParseClockTime("8:58")
	require.True(t, ok)
	assert.Equal(t, 538, minutes)

	minutes, ok = ParseClockTime("23:59")
	require.True(t, ok)
	assert.Equal(t, 1439, minutes)

	// Past-midnight values pass through verbatim.
	minutes, ok = ParseClockTime("25:30")
	require.True(t, ok)
	assert.Equal(t, 1530, minutes)
}

func TestParseClockTimeAbsent(t *testing.T) {
	_, ok := ParseClockTime("")
	assert.False(t, ok, "empty input must be absent, not 00:00")

	_, ok = ParseClockTime("bad")
	assert.False(t, ok)

	_, ok = ParseClockTime("1:2:3")
	assert.False(t, ok)
}

func TestParseFlag(t *testing.T) {
	assert.True(t, ParseFlag("1"))
	assert.True(t, ParseFlag(" 1 "))
	assert.False(t, ParseFlag("0"))
	assert.False(t, ParseFlag(""))
	assert.False(t, ParseFlag("true"))
}

func TestParseCrew(t *testing.T) {
	position, name, id := ParseCrew("FO  ZURCA JULIAN [114706]")
	assert.Equal(t, "FO", position)
	assert.Equal(t, "ZURCA JULIAN", name)
	assert.Equal(t, "114706", id)
}

func TestParseCrewNicknameStripped(t *testing.T) {
	position, name, id := ParseCrew("CA  EVERS ROB *CKP* [58018]")
	assert.Equal(t, "CA", position)
	assert.Equal(t, "EVERS ROB", name)
	assert.Equal(t, "58018", id)
}

func TestParseCrewSentinels(t *testing.T) {
	for _, input := range []string{"Deadheading", "NOT AVAILABLE", "", "   "} {
		position, name, id := ParseCrew(input)
		assert.Empty(t, position, "input %q", input)
		assert.Empty(t, name, "input %q", input)
		assert.Empty(t, id, "input %q", input)
	}
}

func TestParseCrewDegradesToRawName(t *testing.T) {
	position, name, id := ParseCrew("CHECK AIRMAN SMITH")
	assert.Empty(t, position)
	assert.Equal(t, "CHECK AIRMAN SMITH", name)
	assert.Empty(t, id)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0:00", FormatMinutes(0))
	assert.Equal(t, "0:30", FormatMinutes(30))
	assert.Equal(t, "1:00", FormatMinutes(60))
	assert.Equal(t, "1:30", FormatMinutes(90))
	assert.Equal(t, "10:45", FormatMinutes(645))
	assert.Equal(t, "139:45", FormatMinutes(8385))
}
