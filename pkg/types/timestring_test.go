package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "12:60", wantErr: true},
		{name: "seconds suffix", input: "09:30:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringMinutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{"00:00", 0},
		{"01:00", 60},
		{"12:30", 750},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Minutes(%q)", tt.input)
	}

	// Minutes is as strict about the format as Validate
	_, err := TimeString("9:30").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		want    TimeString
		wantErr bool
	}{
		{name: "midnight", input: 0, want: "00:00"},
		{name: "noon", input: 720, want: "12:00"},
		{name: "last minute", input: 1439, want: "23:59"},
		{name: "full day wraps to midnight", input: 1440, want: "00:00"},
		{name: "negative", input: -1, wantErr: true},
		{name: "beyond day", input: 1441, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMinutes(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTimeOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("22:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:30"), got)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
}

func TestTimeStringOnDate(t *testing.T) {
	date := time.Date(2026, 3, 14, 17, 45, 12, 0, time.UTC) // time-of-day part is ignored

	got, err := TimeString("19:00").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC), got)

	_, err = TimeString("bad").OnDate(date)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
