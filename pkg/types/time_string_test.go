package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 15, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("9:05"), ts)

	ts = NewTimeString(time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC))
	assert.Equal(t, TimeString("14:30"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "10:00", want: "10:00"},
		{name: "valid single digit hour", input: "9:30", want: "9:30"},
		{name: "valid evening", input: "21:50", want: "21:50"},
		{name: "empty", input: "", wantErr: true},
		{name: "no colon", input: "1000", wantErr: true},
		{name: "single digit minutes", input: "10:0", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
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

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 600, TimeString("10:00").Minutes())
	assert.Equal(t, 1320, TimeString("22:00").Minutes())
	assert.Equal(t, 570, TimeString("9:30").Minutes())

	// Пустое и некорректное значение дают 0 без ошибки
	assert.Equal(t, 0, TimeString("").Minutes())
	assert.Equal(t, 0, TimeString("garbage").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = TimeString("21:50").AddMinutes(10)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:00"), got)

	_, err = TimeString("").AddMinutes(10)
	require.Error(t, err)

	_, err = TimeString("10:00").AddMinutes(-700)
	require.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:10"))
	assert.False(t, TimeString("10:10").IsBefore("10:10"))
	assert.True(t, TimeString("10:20").IsAfter("10:10"))
	assert.False(t, TimeString("10:10").IsAfter("10:10"))
	assert.True(t, TimeString("10:10").Equal("10:10"))
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("10:00"), NewTimeStringFromMinutes(600))
	assert.Equal(t, TimeString("22:00"), NewTimeStringFromMinutes(1320))
	assert.Equal(t, TimeString("9:05"), NewTimeStringFromMinutes(545))
}
