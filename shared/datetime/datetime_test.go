package datetime_test

import (
	"hotel/shared/datetime"
	"hotel/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "2024-06-01 12:00:00"},
		{name: "midnight", input: "2024-06-01 00:00:00"},
		{name: "date only", input: "2024-06-01", wantErr: true},
		{name: "iso separator", input: "2024-06-01T12:00:00", wantErr: true},
		{name: "missing seconds", input: "2024-06-01 12:00", wantErr: true},
		{name: "month out of range", input: "2024-13-01 12:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
		{name: "single digit hour", input: "2024-06-01 9:00:00", wantErr: true},
		{name: "single digit day", input: "2024-06-1 12:00:00", wantErr: true},
		{name: "fractional seconds", input: "2024-06-01 12:00:00.750", wantErr: true},
		{name: "comma fraction", input: "2024-06-01 12:00:00,5", wantErr: true},
		{name: "leading space", input: " 2024-06-01 12:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := datetime.Parse(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, dt.String())
		})
	}
}

func TestDateAndTimeStrings(t *testing.T) {
	dt := datetime.MustParse("2024-06-01 09:30:15")

	assert.Equal(t, "2024-06-01", dt.DateString())
	assert.Equal(t, "09:30:15", dt.TimeString())
}

func TestAddDays(t *testing.T) {
	dt := datetime.MustParse("2024-06-01 12:00:00")

	assert.Equal(t, "2024-06-03 12:00:00", dt.AddDays(2).String())
	assert.Equal(t, "2024-05-31 12:00:00", dt.AddDays(-1).String())
	assert.True(t, dt.AddDays(0).Equal(dt))
}

func TestDaysSince(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected int
	}{
		{name: "two nights", from: "2024-06-01 12:00:00", to: "2024-06-03 12:00:00", expected: 2},
		{name: "one hour short of a day", from: "2024-06-01 12:00:00", to: "2024-06-02 11:00:00", expected: 0},
		{name: "partial day truncated", from: "2024-06-01 12:00:00", to: "2024-06-03 20:00:00", expected: 2},
		{name: "same instant", from: "2024-06-01 12:00:00", to: "2024-06-01 12:00:00", expected: 0},
		{name: "negative truncates toward zero", from: "2024-06-03 12:00:00", to: "2024-06-01 20:00:00", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := datetime.MustParse(tt.from)
			to := datetime.MustParse(tt.to)

			assert.Equal(t, tt.expected, to.DaysSince(from))
		})
	}
}

func TestAtNoon(t *testing.T) {
	morning := datetime.MustParse("2024-06-01 08:15:00")
	evening := datetime.MustParse("2024-06-01 23:59:59")

	assert.Equal(t, "2024-06-01 12:00:00", morning.AtNoon().String())
	assert.Equal(t, "2024-06-01 12:00:00", evening.AtNoon().String())
	assert.True(t, evening.AfterOrEqual(evening.AtNoon()))
	assert.False(t, morning.AfterOrEqual(morning.AtNoon()))
}

func TestComparisons(t *testing.T) {
	a := datetime.MustParse("2024-06-01 12:00:00")
	b := datetime.MustParse("2024-06-02 12:00:00")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.BeforeOrEqual(a))
	assert.True(t, a.AfterOrEqual(a))
	assert.False(t, a.After(a))
	assert.False(t, b.BeforeOrEqual(a))
}

func TestScanAndValue(t *testing.T) {
	var dt datetime.DateTime

	require.NoError(t, dt.Scan(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-01 12:00:00", dt.String())

	require.NoError(t, dt.Scan([]byte("2024-06-03 12:00:00")))
	assert.Equal(t, "2024-06-03 12:00:00", dt.String())

	require.NoError(t, dt.Scan("2024-06-04 12:00:00"))
	assert.Equal(t, "2024-06-04 12:00:00", dt.String())

	assert.Error(t, dt.Scan(42))

	value, err := dt.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-04 12:00:00", value)
}

func TestParsedValuesKeepSecondPrecision(t *testing.T) {
	checkOut := datetime.MustParse("2024-06-03 12:00:00")

	again, err := datetime.Parse(checkOut.String())
	require.NoError(t, err)
	assert.True(t, checkOut.Equal(again))
	assert.Zero(t, checkOut.Time().Nanosecond())

	var scanned datetime.DateTime

	require.NoError(t, scanned.Scan("2024-06-03T12:00:00.750Z"))
	assert.Equal(t, "2024-06-03 12:00:00", scanned.String())
	assert.Zero(t, scanned.Time().Nanosecond())
	assert.True(t, scanned.Equal(checkOut))

	require.NoError(t, scanned.Scan(time.Date(2024, 6, 3, 12, 0, 0, 999, time.UTC)))
	assert.True(t, scanned.Equal(checkOut))
}
