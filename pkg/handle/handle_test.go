package handle

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseRecognizedForms(t *testing.T) {
	is := is.New(t)

	for _, value := range []string{
		"hdl:1903.1/321",
		"info:hdl/1903.1/321",
		"http://hdl.handle.net/1903.1/321",
		"1903.1/321",
	} {
		h, err := Parse(value, "")
		is.NoErr(err)
		is.Equal(h.Prefix, "1903.1")
		is.Equal(h.Suffix, "321")
	}
}

func TestParseCustomProxyBase(t *testing.T) {
	is := is.New(t)

	h, err := Parse("https://hdl.example.org/1903.1/321", "https://hdl.example.org/")
	is.NoErr(err)
	is.Equal(h.String(), "1903.1/321")
}

func TestParseRejectsEmptyValue(t *testing.T) {
	is := is.New(t)

	_, err := Parse("", "")
	is.True(err != nil)
}

func TestParseRejectsMissingSuffix(t *testing.T) {
	is := is.New(t)

	_, err := Parse("hdl:1903.1/", "")
	is.True(err != nil)
}

func TestParseRejectsUnrecognizedValue(t *testing.T) {
	is := is.New(t)

	_, err := Parse("not-a-handle", "")
	is.True(err != nil)
}

func TestFormatting(t *testing.T) {
	is := is.New(t)

	h := Handle{Prefix: "1903.1", Suffix: "321"}

	is.Equal(h.String(), "1903.1/321")
	is.Equal(h.HdlURI(), "hdl:1903.1/321")
	is.Equal(h.InfoURI(), "info:hdl/1903.1/321")
	is.Equal(h.ProxyURL(""), "http://hdl.handle.net/1903.1/321")
	is.Equal(h.ProxyURL("https://hdl.example.org/"), "https://hdl.example.org/1903.1/321")
}
