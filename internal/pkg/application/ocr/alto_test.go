package ocr

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func altoDocument(unit, words string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<alto xmlns="http://www.loc.gov/standards/alto/ns-v2#">
  <Description>
    <MeasurementUnit>` + unit + `</MeasurementUnit>
  </Description>
  <Layout>
    <Page>
      <PrintSpace>
        <TextBlock>
          <TextLine>
            ` + words + `
          </TextLine>
        </TextBlock>
      </PrintSpace>
    </Page>
  </Layout>
</alto>`
}

func TestParseALTOPixelCoordinates(t *testing.T) {
	is := is.New(t)

	input := altoDocument("pixel",
		`<String CONTENT="Hello" HPOS="10" VPOS="20" WIDTH="50" HEIGHT="15"/>
             <String CONTENT="world" HPOS="70" VPOS="20" WIDTH="55" HEIGHT="15"/>`)

	doc, err := ParseALTO(strings.NewReader(input), 0, 0)
	is.NoErr(err)

	words := doc.Words()
	is.Equal(len(words), 2)
	is.Equal(words[0].Content, "Hello")
	is.Equal(words[0].Box.String(), "10,20,50,15")
	is.Equal(doc.Text(), "Hello world")
}

func TestParseALTOScalesInch1200(t *testing.T) {
	is := is.New(t)

	input := altoDocument("inch1200",
		`<String CONTENT="Hello" HPOS="2400" VPOS="1200" WIDTH="600" HEIGHT="300"/>`)

	doc, err := ParseALTO(strings.NewReader(input), 400, 300)
	is.NoErr(err)

	// 400 dpi horizontally, 300 vertically
	is.Equal(doc.Words()[0].Box, XYWH{X: 800, Y: 300, W: 200, H: 75})
}

func TestParseALTOScalesMM10(t *testing.T) {
	is := is.New(t)

	input := altoDocument("mm10",
		`<String CONTENT="Hello" HPOS="254" VPOS="127" WIDTH="508" HEIGHT="254"/>`)

	doc, err := ParseALTO(strings.NewReader(input), 300, 300)
	is.NoErr(err)

	is.Equal(doc.Words()[0].Box, XYWH{X: 300, Y: 150, W: 600, H: 300})
}

func TestParseALTOJoinsHyphenatedWords(t *testing.T) {
	is := is.New(t)

	input := altoDocument("pixel",
		`<String CONTENT="exam-" SUBS_CONTENT="example" SUBS_TYPE="HypPart1" HPOS="10" VPOS="20" WIDTH="50" HEIGHT="15"/>
             <String CONTENT="ple" SUBS_CONTENT="example" SUBS_TYPE="HypPart2" HPOS="0" VPOS="40" WIDTH="30" HEIGHT="15"/>`)

	doc, err := ParseALTO(strings.NewReader(input), 0, 0)
	is.NoErr(err)

	is.Equal(doc.Text(), "example")
}

func TestParseALTOMissingResolution(t *testing.T) {
	is := is.New(t)

	input := altoDocument("inch1200", `<String CONTENT="Hello" HPOS="10" VPOS="20"/>`)

	_, err := ParseALTO(strings.NewReader(input), 0, 0)
	is.True(errors.Is(err, ErrMissingResolution))
}

func TestParseALTOUnknownMeasurementUnit(t *testing.T) {
	is := is.New(t)

	input := altoDocument("furlongs", `<String CONTENT="Hello"/>`)

	_, err := ParseALTO(strings.NewReader(input), 300, 300)
	is.True(errors.Is(err, ErrUnsupportedFormat))
}

func TestParseALTORejectsNonXML(t *testing.T) {
	is := is.New(t)

	_, err := ParseALTO(strings.NewReader("just some plain text"), 0, 0)
	is.True(errors.Is(err, ErrUnsupportedFormat))
}
