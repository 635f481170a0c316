package timex

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/datakit/core/error"
)

func TestPadTo2Digits(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{0, "00"},
		{7, "07"},
		{12, "12"},
		{123, "123"},
		{uint8(4), "04"},
		{3.0, "03"},
		{2.5, "2.5"},
		{-5, "-5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PadTo2Digits(tt.input).MustUnwrap(), "%#v", tt.input)
	}

	for _, bad := range []any{nil, "7", true, math.NaN(), math.Inf(1), []int{1}} {
		r := PadTo2Digits(bad)
		require.True(t, r.IsErr(), "%#v", bad)
		assert.EqualError(t, r.Err(), "[dates.padTo2Digits] Expected number as input")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2023, time.April, 17, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "17/04/2023", FormatDate(d).MustUnwrap())
	assert.Equal(t, "2023-04-17", FormatDateISO(d).MustUnwrap())
	assert.Equal(t, "2023-04-17", FormatDateISO(&d).MustUnwrap())
	assert.Equal(t, "01/01/0001", FormatDate(time.Time{}).MustUnwrap())

	var nilTime *time.Time
	for _, bad := range []any{nil, nilTime, "2023-04-17", d.Unix()} {
		assert.True(t, FormatDate(bad).IsErr(), "%#v", bad)
	}
	assert.EqualError(t, FormatDateISO("2023-04-17").Err(), "[dates.formatDateISO] Expected date value as input")
}

func TestParseLoose(t *testing.T) {
	want := time.Date(2023, time.April, 17, 0, 0, 0, 0, time.UTC)
	inputs := []string{
		"2023-04-17",
		"2023-4-17",
		" 2023-04-17 ",
		"04/17/2023",
		"4/17/2023",
		"2023/04/17",
		"17.4.2023",
		"April 17, 2023",
		"Apr 17, 2023",
		"17 April 2023",
		"17 Apr 2023",
		"Mon Apr 17 2023",
		"20230417",
	}
	for _, in := range inputs {
		got, err := ParseLoose(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s parsed as %s", in, got)
	}

	withTime, err := ParseLoose("2023-04-17T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, 10, withTime.Hour())

	_, err = ParseLoose("")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
	_, err = ParseLoose("someday")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
	assert.EqualError(t, err, "[dates.parseLoose] Unable to parse date string")
}

func TestDayOfMonthAndMonthShort(t *testing.T) {
	assert.Equal(t, 17, DayOfMonth("Mon Apr 17 2023").MustUnwrap())
	assert.Equal(t, 5, DayOfMonth("04/05/2023").MustUnwrap())
	assert.Equal(t, "Apr", MonthShort("2023-04-17").MustUnwrap())
	assert.Equal(t, "Dec", MonthShort("31.12.1999").MustUnwrap())

	r := MonthShort("someday")
	require.True(t, r.IsErr())
	assert.EqualError(t, r.Err(), "[dates.monthShort] Invalid date")
	assert.True(t, mdwerror.HasCode(r.Err(), mdwerror.CodeInvalidFormat))

	assert.EqualError(t, DayOfMonth(17).Err(), "[dates.dayOfMonth] Expected date string as input")
}

func TestFormatRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("ISO output parses back to the same day", prop.ForAll(
		func(year, month, day int) bool {
			d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			parsed, err := ParseLoose(FormatDateISO(d).MustUnwrap())
			return err == nil && parsed.Equal(d)
		},
		gen.IntRange(1000, 9999),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	properties.Property("padding never shortens", prop.ForAll(
		func(n int) bool {
			s := PadTo2Digits(n).MustUnwrap()
			return len(s) >= 2
		},
		gen.IntRange(0, 10000),
	))

	properties.TestingRun(t)
}
