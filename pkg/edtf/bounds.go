package edtf

import (
	"fmt"
	"strings"
)

// monthDaySpan is the calendar span a year subdivision covers. A span
// with WrapYear set runs into the following year.
type monthDaySpan struct {
	FromMonth, FromDay int
	ToMonth, ToDay     int
	WrapYear           bool
}

// seasonSpans maps EDTF subdivision codes to calendar spans. Codes 21-24
// are hemisphere independent seasons, 25-28 the northern and 29-32 the
// southern hemisphere equivalents, 33-36 quarters, 37-39 quadrimesters
// and 40-41 semesters.
var seasonSpans = map[int]monthDaySpan{
	21: {3, 1, 5, 31, false},  // spring
	22: {6, 1, 8, 31, false},  // summer
	23: {9, 1, 11, 30, false}, // autumn
	24: {12, 1, 2, 28, true},  // winter
	25: {3, 1, 5, 31, false},  // spring, northern hemisphere
	26: {6, 1, 8, 31, false},
	27: {9, 1, 11, 30, false},
	28: {12, 1, 2, 28, true},
	29: {9, 1, 11, 30, false}, // spring, southern hemisphere
	30: {12, 1, 2, 28, true},
	31: {3, 1, 5, 31, false},
	32: {6, 1, 8, 31, false},
	33: {1, 1, 3, 31, false}, // quarters
	34: {4, 1, 6, 30, false},
	35: {7, 1, 9, 30, false},
	36: {10, 1, 12, 31, false},
	37: {1, 1, 4, 30, false}, // quadrimesters
	38: {5, 1, 8, 31, false},
	39: {9, 1, 12, 31, false},
	40: {1, 1, 6, 30, false}, // semesters
	41: {7, 1, 12, 31, false},
}

// YMD is a calendar day.
type YMD struct {
	Year, Month, Day int
}

func (d YMD) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LowerStrict returns the earliest calendar day consistent with the
// value. Interval kinds have no single span; callers handle them by
// recursing into the endpoints.
func (v *Value) LowerStrict() YMD {
	switch v.Kind {
	case KindSeason:
		span := seasonSpans[v.Season]
		return YMD{v.Year, span.FromMonth, span.FromDay}
	case KindUnspecified:
		year := maskBound(v.YearMask, '0')
		month, day := 1, 1
		if v.Month != 0 {
			month = v.Month
		}
		if v.Day != 0 {
			day = v.Day
		}
		return YMD{year, month, day}
	case KindExponentialYear:
		return YMD{v.ExponentialValue(), 1, 1}
	default:
		month, day := v.Month, v.Day
		if month == 0 {
			month = 1
		}
		if day == 0 {
			day = 1
		}
		return YMD{v.Year, month, day}
	}
}

// UpperStrict returns the latest calendar day consistent with the value.
func (v *Value) UpperStrict() YMD {
	switch v.Kind {
	case KindSeason:
		span := seasonSpans[v.Season]
		year := v.Year
		toDay := span.ToDay
		if span.WrapYear {
			year++
			toDay = daysIn(year, span.ToMonth)
		}
		return YMD{year, span.ToMonth, toDay}
	case KindUnspecified:
		year := maskBound(v.YearMask, '9')
		month := v.Month
		if month == 0 {
			month = 12
		}
		day := v.Day
		if day == 0 {
			day = daysIn(year, month)
		}
		return YMD{year, month, day}
	case KindExponentialYear:
		return YMD{v.ExponentialValue(), 12, 31}
	default:
		month, day := v.Month, v.Day
		if month == 0 {
			month = 12
		}
		if day == 0 {
			day = daysIn(v.Year, month)
		}
		return YMD{v.Year, month, day}
	}
}

// ExponentialValue computes the year a KindExponentialYear denotes.
func (v *Value) ExponentialValue() int {
	year := v.Mantissa
	for i := 0; i < v.Exponent; i++ {
		year *= 10
	}
	return year
}

func maskBound(mask string, fill byte) int {
	digits := strings.Map(func(r rune) rune {
		if r == 'X' {
			return rune(fill)
		}
		return r
	}, mask)

	var year int
	fmt.Sscanf(digits, "%d", &year)
	return year
}
