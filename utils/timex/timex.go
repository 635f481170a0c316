// File: timex.go
// Title: Date Formatting
// Description: Zero padding, fixed date formats and field extraction from
//              loosely formatted date strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with parsing, formatting and business days
// - 2026-10-02 v0.2.0: Reduced to datakit date semantics

package timex

import (
	"math"
	"reflect"
	"strconv"
	"time"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/utils/stringx"
)

// Output layouts
const (
	DayMonthYear = "02/01/2006"
	ISO8601Date  = "2006-01-02"
)

const (
	opPadTo2Digits  = "padTo2Digits"
	opFormatDate    = "formatDate"
	opFormatDateISO = "formatDateISO"
	opDayOfMonth    = "dayOfMonth"
	opMonthShort    = "monthShort"
)

// PadTo2Digits renders a number left padded with zeros to two digits
func PadTo2Digits(n any) result.Result[string] {
	fail := func() result.Result[string] {
		return result.Err[string](mdwerrors.InvalidType(mdwerrors.GroupDates, opPadTo2Digits, n, "number"))
	}
	if n == nil {
		return fail()
	}

	var s string
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s = strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s = strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fail()
		}
		s = strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return fail()
	}
	return result.Ok(stringx.PadLeft(s, 2, '0'))
}

// FormatDate renders a date as DD/MM/YYYY
func FormatDate(d any) result.Result[string] {
	return format(opFormatDate, d, DayMonthYear)
}

// FormatDateISO renders a date as YYYY-MM-DD
func FormatDateISO(d any) result.Result[string] {
	return format(opFormatDateISO, d, ISO8601Date)
}

// DayOfMonth returns the day of month of a loosely formatted date string
func DayOfMonth(s any) result.Result[int] {
	return result.Map(parseInput(opDayOfMonth, s), time.Time.Day)
}

// MonthShort returns the three letter English month name of a loosely
// formatted date string
func MonthShort(s any) result.Result[string] {
	return result.Map(parseInput(opMonthShort, s), func(t time.Time) string {
		return t.Month().String()[:3]
	})
}

func format(operation string, d any, layout string) result.Result[string] {
	return result.Map(asDate(operation, d), func(t time.Time) string {
		return t.Format(layout)
	})
}

func asDate(operation string, d any) result.Result[time.Time] {
	switch t := d.(type) {
	case time.Time:
		return result.Ok(t)
	case *time.Time:
		if t != nil {
			return result.Ok(*t)
		}
	}
	return result.Err[time.Time](mdwerrors.InvalidType(mdwerrors.GroupDates, operation, d, "date value"))
}

func parseInput(operation string, s any) result.Result[time.Time] {
	return result.AndThen(asDateString(operation, s), func(value string) result.Result[time.Time] {
		t, err := ParseLoose(value)
		if err != nil {
			return result.Err[time.Time](mdwerrors.InvalidFormat(mdwerrors.GroupDates, operation, value, "Invalid date"))
		}
		return result.Ok(t)
	})
}

func asDateString(operation string, s any) result.Result[string] {
	return result.MapErr(stringx.AsString(operation, s), func(error) error {
		return mdwerrors.InvalidType(mdwerrors.GroupDates, operation, s, "date string")
	})
}
