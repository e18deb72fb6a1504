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
		{name: "valid morning time", input: "07:00", want: "07:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "7:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
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

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "simple shift", start: "07:00", minutes: 9, want: "07:09"},
		{name: "hour rollover", start: "07:55", minutes: 10, want: "08:05"},
		{name: "midnight wraparound", start: "23:50", minutes: 30, want: "00:20"},
		{name: "full day is identity", start: "12:30", minutes: 24 * 60, want: "12:30"},
		{name: "negative shift", start: "00:10", minutes: -20, want: "23:50"},
		{name: "zero shift", start: "09:00", minutes: 0, want: "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes_Invalid(t *testing.T) {
	_, err := TimeString("not-a-time").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:20"), NewTimeStringFromMinutes(20))
	assert.Equal(t, TimeString("07:18"), NewTimeStringFromMinutes(7*60+18))
	// Нормализация по модулю суток
	assert.Equal(t, TimeString("00:20"), NewTimeStringFromMinutes(24*60+20))
	assert.Equal(t, TimeString("23:50"), NewTimeStringFromMinutes(-10))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 5, 10, 14, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("07:00").IsBefore("07:09"))
	assert.False(t, TimeString("07:09").IsBefore("07:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:30"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("08:15"))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan([]byte("09:45")))
	assert.Equal(t, TimeString("09:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("11:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", v)

	_, err = TimeString("25:00").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
