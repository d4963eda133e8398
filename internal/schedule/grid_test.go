package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/club-backend/internal/pkg/validation"
)

func TestSlots(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		until    string
		interval int
		want     []string
	}{
		{
			name:     "Two hour window, hourly slots",
			from:     "08:00",
			until:    "10:00",
			interval: 60,
			want:     []string{"08:00", "09:00"},
		},
		{
			name:     "Half hour interval",
			from:     "09:00",
			until:    "10:30",
			interval: 30,
			want:     []string{"09:00", "09:30", "10:00"},
		},
		{
			name:     "Interval does not evenly divide window",
			from:     "08:00",
			until:    "09:30",
			interval: 60,
			want:     []string{"08:00", "09:00"},
		},
		{
			name:     "Empty window yields empty grid",
			from:     "10:00",
			until:    "10:00",
			interval: 60,
			want:     []string{},
		},
		{
			name:     "Inverted window yields empty grid",
			from:     "12:00",
			until:    "10:00",
			interval: 60,
			want:     []string{},
		},
		{
			name:     "Defaults applied when fields are absent",
			from:     "",
			until:    "",
			interval: 0,
			want: []string{
				"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
				"15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Slots(tt.from, tt.until, tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotsInvalidClock(t *testing.T) {
	_, err := Slots("8am", "10:00", 60)
	require.Error(t, err)

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "available_from", vErr.Field)
}

func TestEndTime(t *testing.T) {
	tests := []struct {
		start    string
		interval int
		want     string
	}{
		{"09:00", 60, "10:00"},
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"23:30", 60, "00:30"}, // wraps past midnight
		{"23:00", 90, "00:30"},
	}

	for _, tt := range tests {
		got, err := EndTime(tt.start, tt.interval)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "EndTime(%q, %d)", tt.start, tt.interval)
	}
}

// The grid must never silently extend past the operating window by more than
// the interval's rounding slack.
func TestGridStaysWithinWindow(t *testing.T) {
	windows := []struct {
		from, until string
		interval    int
	}{
		{"08:00", "22:00", 60},
		{"08:00", "22:00", 45},
		{"09:30", "21:00", 90},
		{"07:00", "23:30", 25},
	}

	for _, w := range windows {
		slots, err := Slots(w.from, w.until, w.interval)
		require.NoError(t, err)
		if len(slots) == 0 {
			continue
		}

		last := slots[len(slots)-1]
		end, err := EndTime(last, w.interval)
		require.NoError(t, err)

		endMin, err := ParseClock("end", end)
		require.NoError(t, err)
		untilMin, err := ParseClock("until", w.until)
		require.NoError(t, err)

		assert.LessOrEqual(t, endMin-untilMin, w.interval-1,
			"window %s-%s/%d overflows: last slot %s ends at %s", w.from, w.until, w.interval, last, end)
	}
}

func TestUnion(t *testing.T) {
	a := []string{"08:00", "09:00", "10:00"}
	b := []string{"08:30", "09:00", "09:30"}

	got := Union(a, b)
	assert.Equal(t, []string{"08:00", "08:30", "09:00", "09:30", "10:00"}, got)

	assert.Empty(t, Union())
	assert.Empty(t, Union(nil, []string{}))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:15", 495, false},
		{"23:59", 1439, false},
		{"09:00:00", 540, false}, // seconds tolerated
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock("time", tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseClock(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseClock(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:05", FormatClock(485))
	assert.Equal(t, "00:30", FormatClock(1470)) // past midnight wraps
	assert.Equal(t, "23:30", FormatClock(-30))
}
