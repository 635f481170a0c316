// File: parse.go
// Title: Loose Date Parsing
// Description: Parses date strings in the common machine and human layouts.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-02
//
// Change History:
// - 2025-01-25 v0.1.0: Parse and ParseDate over the standard layouts
// - 2026-10-02 v0.2.0: Single ParseLoose with structured failures

package timex

import (
	"strings"
	"time"

	mdwerrors "github.com/msto63/datakit/core/errors"
)

// Accepted input layouts
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDateTime = "2006-01-02 15:04:05"

	DisplayDate       = "January 2, 2006"
	DisplayDateShort  = "Jan 2, 2006"
	DayMonthName      = "2 January 2006"
	DayMonthNameShort = "2 Jan 2006"
	WeekdayDate       = "Mon Jan 2 2006"

	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"
	SlashedISO    = "2006/01/02"
	DottedDate    = "2.1.2006"

	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
)

// looseLayouts are tried in order; the first match wins
var looseLayouts = []string{
	time.RFC3339Nano,
	ISO8601,
	ISO8601DateTime,
	BusinessDateTime,
	ISO8601Date,
	"2006-1-2",
	ShortDateTime,
	ShortDate,
	"1/2/2006",
	SlashedISO,
	DottedDate,
	DisplayDate,
	DisplayDateShort,
	DayMonthName,
	DayMonthNameShort,
	WeekdayDate,
	"Mon Jan _2 2006",
	"Mon, 2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	CompactDateTime,
	CompactDate,
}

// ParseLoose parses value with the first matching layout. Surrounding
// whitespace is ignored.
func ParseLoose(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, mdwerrors.InvalidInput(mdwerrors.GroupDates, "parseLoose", value, "Empty date string")
	}
	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, mdwerrors.InvalidFormat(mdwerrors.GroupDates, "parseLoose", value, "Unable to parse date string")
}
