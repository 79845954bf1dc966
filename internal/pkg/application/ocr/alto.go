// Package ocr reads OCR output formats and exposes the recognized text
// together with pixel word coordinates.
package ocr

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat is returned when a file is not in a recognized
// OCR format.
var ErrUnsupportedFormat = errors.New("unsupported OCR format")

// ErrMissingResolution is returned when coordinate scaling requires an
// image resolution that was not provided.
var ErrMissingResolution = errors.New("missing image resolution")

// XYWH is a word bounding box in pixel coordinates.
type XYWH struct {
	X, Y, W, H int
}

func (b XYWH) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", b.X, b.Y, b.W, b.H)
}

// Word is one recognized word with its bounding box.
type Word struct {
	Content string
	Box     XYWH
}

// Document is parsed OCR output.
type Document struct {
	words []Word
}

// Words returns the recognized words in reading order.
func (d *Document) Words() []Word {
	return d.words
}

// Text returns the full recognized text, words joined by spaces.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.words))
	for _, w := range d.words {
		parts = append(parts, w.Content)
	}
	return strings.Join(parts, " ")
}

type altoRoot struct {
	XMLName     xml.Name `xml:"alto"`
	Description struct {
		MeasurementUnit string `xml:"MeasurementUnit"`
	} `xml:"Description"`
	Layout struct {
		Pages []struct {
			PrintSpace struct {
				TextBlocks []struct {
					TextLines []struct {
						Strings []altoString `xml:"String"`
					} `xml:"TextLine"`
				} `xml:"TextBlock"`
			} `xml:"PrintSpace"`
		} `xml:"Page"`
	} `xml:"Layout"`
}

type altoString struct {
	Content     string `xml:"CONTENT,attr"`
	SubsContent string `xml:"SUBS_CONTENT,attr"`
	SubsType    string `xml:"SUBS_TYPE,attr"`
	HPos        string `xml:"HPOS,attr"`
	VPos        string `xml:"VPOS,attr"`
	Width       string `xml:"WIDTH,attr"`
	Height      string `xml:"HEIGHT,attr"`
}

// ParseALTO reads an ALTO XML document, scaling word coordinates to
// pixels using the given horizontal and vertical image resolution in
// dots per inch. Hyphenated words are joined on their first part.
func ParseALTO(r io.Reader, xRes, yRes int) (*Document, error) {
	var root altoRoot

	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, err.Error())
	}

	sx, sy, err := scaleFactors(root.Description.MeasurementUnit, xRes, yRes)
	if err != nil {
		return nil, err
	}

	doc := &Document{}

	for _, page := range root.Layout.Pages {
		for _, block := range page.PrintSpace.TextBlocks {
			for _, line := range block.TextLines {
				for _, s := range line.Strings {
					word, keep, err := pixelWord(s, sx, sy)
					if err != nil {
						return nil, err
					}
					if keep {
						doc.words = append(doc.words, word)
					}
				}
			}
		}
	}

	return doc, nil
}

// scaleFactors maps the ALTO measurement unit to per-axis multipliers
// converting coordinates into pixels.
func scaleFactors(unit string, xRes, yRes int) (float64, float64, error) {
	switch unit {
	case "pixel", "":
		return 1, 1, nil
	case "inch1200":
		if xRes == 0 || yRes == 0 {
			return 0, 0, ErrMissingResolution
		}
		return float64(xRes) / 1200, float64(yRes) / 1200, nil
	case "mm10":
		// tenths of a millimeter; 254 of them per inch
		if xRes == 0 || yRes == 0 {
			return 0, 0, ErrMissingResolution
		}
		return float64(xRes) / 254, float64(yRes) / 254, nil
	default:
		return 0, 0, fmt.Errorf("%w: measurement unit %q", ErrUnsupportedFormat, unit)
	}
}

func pixelWord(s altoString, sx, sy float64) (Word, bool, error) {
	content := s.Content
	if s.SubsType == "HypPart2" {
		return Word{}, false, nil
	}
	if s.SubsType == "HypPart1" && s.SubsContent != "" {
		content = s.SubsContent
	}
	if content == "" {
		return Word{}, false, nil
	}

	x, err := scaled(s.HPos, sx)
	if err != nil {
		return Word{}, false, err
	}
	y, err := scaled(s.VPos, sy)
	if err != nil {
		return Word{}, false, err
	}
	w, err := scaled(s.Width, sx)
	if err != nil {
		return Word{}, false, err
	}
	h, err := scaled(s.Height, sy)
	if err != nil {
		return Word{}, false, err
	}

	return Word{Content: content, Box: XYWH{X: x, Y: y, W: w, H: h}}, true, nil
}

func scaled(attr string, factor float64) (int, error) {
	if attr == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(attr, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: coordinate %q", ErrUnsupportedFormat, attr)
	}
	return int(math.Round(v * factor)), nil
}
