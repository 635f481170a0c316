// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex provides the datakit date formatting helpers
//              and a loose date parser.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with parsing, formatting and business days
// - 2026-10-02 v0.2.0: Result based formatting on untyped input

// Package timex provides date formatting for datakit.
//
// Formatting functions accept a time.Time or a non-nil *time.Time and fail
// under the "dates" group for anything else:
//
//	d := time.Date(2023, time.April, 17, 0, 0, 0, 0, time.UTC)
//	timex.FormatDate(d)     // Ok("17/04/2023")
//	timex.FormatDateISO(d)  // Ok("2023-04-17")
//	timex.FormatDate("x")   // Err([dates.formatDate] Expected date value as input)
//
// DayOfMonth and MonthShort take loosely formatted date strings. ParseLoose
// tries the layouts in order and the first match wins, so "04/05/2023" is
// read as April 5th:
//
//	timex.DayOfMonth("Mon Apr 17 2023")  // Ok(17)
//	timex.MonthShort("2023-04-17")       // Ok("Apr")
//	timex.MonthShort("someday")          // Err([dates.monthShort] Invalid date)
package timex
