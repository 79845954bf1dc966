// Package edtf implements parsing of Extended Date/Time Format strings,
// covering the subset used in digital library descriptive metadata:
// calendar dates and date-times, intervals with open or unknown
// endpoints, uncertainty and approximation qualifiers, seasons and other
// year subdivisions, masked digits, and Y-prefixed long or exponential
// years.
package edtf

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the parsed value variants.
type Kind int

const (
	// KindDate is a single calendar date at year, month or day precision.
	KindDate Kind = iota
	// KindDateTime is a calendar date with a time (and optional zone).
	KindDateTime
	// KindInterval is a start/end pair, either side possibly open.
	KindInterval
	// KindSeason is a year subdivision (codes 21 through 41).
	KindSeason
	// KindUnspecified is a date with masked (X) digits.
	KindUnspecified
	// KindExponentialYear is a year in Y-prefixed exponential notation.
	KindExponentialYear
	// KindLongYear is a Y-prefixed year of more than four digits.
	KindLongYear
)

// Value is a parsed EDTF value.
type Value struct {
	Kind Kind

	// Year, Month, Day hold the calendar components of a point value.
	// Month and Day are zero when the value has less precision.
	Year  int
	Month int
	Day   int

	// DateTime is the cleaned ISO 8601 string of a KindDateTime value.
	DateTime string

	// Season holds the subdivision code of a KindSeason value.
	Season int

	// YearMask etc. hold the masked digit patterns of a KindUnspecified
	// value ("199X", "XX" for a fully masked month or day, "").
	YearMask  string
	MonthMask string
	DayMask   string

	// Mantissa and Exponent describe a KindExponentialYear value, or
	// the digits of a KindLongYear value (Exponent 0).
	Mantissa int
	Exponent int

	// Lower and Upper are the endpoints of a KindInterval value. A nil
	// endpoint is open or unknown.
	Lower *Value
	Upper *Value

	raw string
}

// qualifier characters may appear at whole-value or component level; the
// parser records their presence and otherwise ignores their position.
const qualifiers = "?~%"

var (
	yearRe      = regexp.MustCompile(`^[+-]?\d{4}$`)
	yearMonthRe = regexp.MustCompile(`^(-?\d{4})-(\d{2})$`)
	fullDateRe  = regexp.MustCompile(`^(-?\d{4})-(\d{2})-(\d{2})$`)
	maskedRe    = regexp.MustCompile(`^(\d{0,4}X{0,4})(?:-(\d{2}|XX))?(?:-(\d{2}|XX))?$`)
	expYearRe   = regexp.MustCompile(`^Y(-?\d+)E(\d+)$`)
	longYearRe  = regexp.MustCompile(`^Y(-?\d{5,})$`)
)

// Parse parses s as an EDTF string.
func Parse(s string) (*Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty EDTF string")
	}

	if start, end, found := strings.Cut(s, "/"); found {
		return parseInterval(s, start, end)
	}

	v, err := parsePoint(s)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func parseInterval(raw, start, end string) (*Value, error) {
	v := &Value{Kind: KindInterval, raw: raw}

	parseEndpoint := func(s string) (*Value, error) {
		if s == "" || s == ".." {
			return nil, nil
		}
		return parsePoint(s)
	}

	var err error
	if v.Lower, err = parseEndpoint(start); err != nil {
		return nil, fmt.Errorf("invalid interval start: %w", err)
	}
	if v.Upper, err = parseEndpoint(end); err != nil {
		return nil, fmt.Errorf("invalid interval end: %w", err)
	}
	if v.Lower == nil && v.Upper == nil && raw != "../.." {
		return nil, errors.New("interval with two unknown endpoints")
	}

	return v, nil
}

func parsePoint(s string) (*Value, error) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(qualifiers, r) {
			return -1
		}
		return r
	}, s)

	if cleaned == "" {
		return nil, fmt.Errorf("%q contains no date", s)
	}

	if m := expYearRe.FindStringSubmatch(cleaned); m != nil {
		mantissa, _ := strconv.Atoi(m[1])
		exponent, _ := strconv.Atoi(m[2])
		return &Value{Kind: KindExponentialYear, Mantissa: mantissa, Exponent: exponent, raw: s}, nil
	}

	if m := longYearRe.FindStringSubmatch(cleaned); m != nil {
		digits, _ := strconv.Atoi(m[1])
		return &Value{Kind: KindLongYear, Mantissa: digits, raw: s}, nil
	}

	if strings.ContainsRune(cleaned, 'T') {
		return parseDateTime(s, cleaned)
	}

	if strings.ContainsRune(cleaned, 'X') {
		return parseMasked(s, cleaned)
	}

	if yearRe.MatchString(cleaned) {
		year, _ := strconv.Atoi(cleaned)
		return &Value{Kind: KindDate, Year: year, raw: s}, nil
	}

	if m := yearMonthRe.FindStringSubmatch(cleaned); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return &Value{Kind: KindDate, Year: year, Month: month, raw: s}, nil
		}
		if _, ok := seasonSpans[month]; ok {
			return &Value{Kind: KindSeason, Year: year, Season: month, raw: s}, nil
		}
		return nil, fmt.Errorf("invalid month or subdivision code %02d", month)
	}

	if m := fullDateRe.FindStringSubmatch(cleaned); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
			return nil, fmt.Errorf("invalid calendar date %q", cleaned)
		}
		return &Value{Kind: KindDate, Year: year, Month: month, Day: day, raw: s}, nil
	}

	return nil, fmt.Errorf("unparseable EDTF value %q", s)
}

func parseDateTime(raw, cleaned string) (*Value, error) {
	layouts := []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return &Value{
				Kind:     KindDateTime,
				Year:     t.Year(),
				Month:    int(t.Month()),
				Day:      t.Day(),
				DateTime: cleaned,
				raw:      raw,
			}, nil
		}
	}
	return nil, fmt.Errorf("unparseable EDTF date-time %q", cleaned)
}

func parseMasked(raw, cleaned string) (*Value, error) {
	m := maskedRe.FindStringSubmatch(cleaned)
	if m == nil || len(m[1]) != 4 {
		return nil, fmt.Errorf("unparseable masked EDTF value %q", cleaned)
	}

	v := &Value{Kind: KindUnspecified, YearMask: m[1], raw: raw}
	if m[2] != "" {
		if m[2] == "XX" {
			v.MonthMask = "XX"
		} else {
			month, _ := strconv.Atoi(m[2])
			if month < 1 || month > 12 {
				return nil, fmt.Errorf("invalid month in masked value %q", cleaned)
			}
			v.Month = month
		}
	}
	if m[3] != "" {
		if m[3] == "XX" {
			v.DayMask = "XX"
		} else {
			day, _ := strconv.Atoi(m[3])
			v.Day = day
		}
	}
	return v, nil
}

// IsUncertain reports whether the value carries the uncertainty marker
// (? alone or combined with approximation as %) anywhere, including
// interval endpoints.
func (v *Value) IsUncertain() bool {
	return strings.ContainsAny(v.raw, "?%")
}

// IsApproximate reports whether the value carries the approximation
// marker (~ alone or combined as %) anywhere.
func (v *Value) IsApproximate() bool {
	return strings.ContainsAny(v.raw, "~%")
}

// IsUncertainAndApproximate reports whether the value is simultaneously
// uncertain and approximate.
func (v *Value) IsUncertainAndApproximate() bool {
	if strings.ContainsRune(v.raw, '%') {
		return true
	}
	return strings.ContainsRune(v.raw, '?') && strings.ContainsRune(v.raw, '~')
}

// String returns the cleaned (unqualified) form of a point value, or the
// raw input for other kinds.
func (v *Value) String() string {
	switch v.Kind {
	case KindDate:
		switch {
		case v.Day != 0:
			return fmt.Sprintf("%04d-%02d-%02d", v.Year, v.Month, v.Day)
		case v.Month != 0:
			return fmt.Sprintf("%04d-%02d", v.Year, v.Month)
		default:
			return fmt.Sprintf("%04d", v.Year)
		}
	case KindDateTime:
		return v.DateTime
	default:
		return v.raw
	}
}

func daysIn(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
