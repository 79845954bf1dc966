package edtf

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseYear(t *testing.T) {
	is := is.New(t)

	v, err := Parse("1984")
	is.NoErr(err)
	is.Equal(v.Kind, KindDate)
	is.Equal(v.Year, 1984)
	is.Equal(v.String(), "1984")
}

func TestParseYearMonth(t *testing.T) {
	is := is.New(t)

	v, err := Parse("1984-05")
	is.NoErr(err)
	is.Equal(v.Kind, KindDate)
	is.Equal(v.Month, 5)
	is.Equal(v.String(), "1984-05")
}

func TestParseFullDate(t *testing.T) {
	is := is.New(t)

	v, err := Parse("1984-05-31")
	is.NoErr(err)
	is.Equal(v.Kind, KindDate)
	is.Equal(v.String(), "1984-05-31")
}

func TestParseRejectsInvalidCalendarDate(t *testing.T) {
	is := is.New(t)

	_, err := Parse("1984-02-30")
	is.True(err != nil)
}

func TestParseSeason(t *testing.T) {
	is := is.New(t)

	v, err := Parse("2001-25")
	is.NoErr(err)
	is.Equal(v.Kind, KindSeason)
	is.Equal(v.Season, 25)
	is.Equal(v.LowerStrict().String(), "2001-03-01")
	is.Equal(v.UpperStrict().String(), "2001-05-31")
}

func TestParseWinterWrapsIntoNextYear(t *testing.T) {
	is := is.New(t)

	v, err := Parse("2003-24")
	is.NoErr(err)
	is.Equal(v.LowerStrict().String(), "2003-12-01")
	is.Equal(v.UpperStrict().String(), "2004-02-29") // 2004 is a leap year
}

func TestParseMaskedYear(t *testing.T) {
	is := is.New(t)

	v, err := Parse("199X")
	is.NoErr(err)
	is.Equal(v.Kind, KindUnspecified)
	is.Equal(v.LowerStrict().String(), "1990-01-01")
	is.Equal(v.UpperStrict().String(), "1999-12-31")
}

func TestParseMaskedMonth(t *testing.T) {
	is := is.New(t)

	v, err := Parse("1999-XX")
	is.NoErr(err)
	is.Equal(v.Kind, KindUnspecified)
	is.Equal(v.LowerStrict().String(), "1999-01-01")
	is.Equal(v.UpperStrict().String(), "1999-12-31")
}

func TestParseInterval(t *testing.T) {
	is := is.New(t)

	v, err := Parse("1964/2008")
	is.NoErr(err)
	is.Equal(v.Kind, KindInterval)
	is.Equal(v.Lower.Year, 1964)
	is.Equal(v.Upper.Year, 2008)
}

func TestParseOpenEndedInterval(t *testing.T) {
	is := is.New(t)

	v, err := Parse("1985-04-12/..")
	is.NoErr(err)
	is.Equal(v.Kind, KindInterval)
	is.True(v.Upper == nil)
}

func TestParseUnknownStartInterval(t *testing.T) {
	is := is.New(t)

	v, err := Parse("/1985-04-12")
	is.NoErr(err)
	is.True(v.Lower == nil)
	is.Equal(v.Upper.String(), "1985-04-12")
}

func TestParseRejectsFullyUnknownInterval(t *testing.T) {
	is := is.New(t)

	_, err := Parse("/")
	is.True(err != nil)
}

func TestParseExponentialYear(t *testing.T) {
	is := is.New(t)

	v, err := Parse("Y17E3")
	is.NoErr(err)
	is.Equal(v.Kind, KindExponentialYear)
	is.Equal(v.ExponentialValue(), 17000)
}

func TestParseLongYear(t *testing.T) {
	is := is.New(t)

	v, err := Parse("Y170000002")
	is.NoErr(err)
	is.Equal(v.Kind, KindLongYear)
}

func TestParseDateTime(t *testing.T) {
	is := is.New(t)

	v, err := Parse("2001-02-03T09:30:01")
	is.NoErr(err)
	is.Equal(v.Kind, KindDateTime)
	is.Equal(v.DateTime, "2001-02-03T09:30:01")
}

func TestQualifierFlags(t *testing.T) {
	is := is.New(t)

	uncertain, err := Parse("1984?")
	is.NoErr(err)
	is.True(uncertain.IsUncertain())
	is.True(!uncertain.IsApproximate())
	is.True(!uncertain.IsUncertainAndApproximate())

	approximate, err := Parse("1984~")
	is.NoErr(err)
	is.True(!approximate.IsUncertain())
	is.True(approximate.IsApproximate())
	is.True(!approximate.IsUncertainAndApproximate())

	both, err := Parse("1984%")
	is.NoErr(err)
	is.True(both.IsUncertainAndApproximate())
}

func TestQualifiersAcrossIntervalEndpoints(t *testing.T) {
	is := is.New(t)

	v, err := Parse("1984?/2004~")
	is.NoErr(err)
	is.True(v.IsUncertain())
	is.True(v.IsApproximate())
	is.True(v.IsUncertainAndApproximate())
}

func TestParseRejectsGarbage(t *testing.T) {
	is := is.New(t)

	_, err := Parse("last tuesday")
	is.True(err != nil)
}
