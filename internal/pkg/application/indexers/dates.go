package indexers

import (
	"context"
	"fmt"
	"strings"

	"github.com/digilib/solrizer/pkg/edtf"
	"github.com/digilib/solrizer/pkg/solr"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// unsupportedDate marks an EDTF value that parses but cannot be
// represented in a four digit year range field.
type unsupportedDate struct {
	reason string
}

func (e *unsupportedDate) Error() string {
	return e.reason
}

// DateFields post-processes every EDTF field the projection produced
// into a range queryable date field plus three qualifier flag fields.
// Unparseable or unsupported values are logged and leave no fields
// behind, so a bad date never fails the document.
func DateFields(ctx context.Context, ic *Context) (solr.Document, error) {
	log := logging.GetFromContext(ctx)
	fields := solr.Document{}

	for name, value := range ic.Doc {
		base, isEDTF := strings.CutSuffix(name, "__edtf")
		if !isEDTF {
			continue
		}

		raw, isString := value.(string)
		if !isString {
			continue
		}

		parsed, err := edtf.Parse(raw)
		if err != nil {
			log.Warn("skipping unparseable date value", "field", name, "value", raw, "err", err.Error())
			continue
		}

		dt, err := solrDate(parsed)
		if err != nil {
			log.Warn("skipping unsupported date value", "field", name, "value", raw, "err", err.Error())
			continue
		}

		both := parsed.IsUncertainAndApproximate()
		fields[base+"__dt"] = dt
		fields[base+"__dt_is_uncertain"] = parsed.IsUncertain() && !both
		fields[base+"__dt_is_approximate"] = parsed.IsApproximate() && !both
		fields[base+"__dt_is_uncertain_and_approximate"] = both
	}

	return fields, nil
}

// solrDate renders a parsed EDTF value in the date range syntax the
// search engine understands.
func solrDate(v *edtf.Value) (string, error) {
	switch v.Kind {
	case edtf.KindLongYear:
		return "", &unsupportedDate{reason: "years outside the range -9999 to 9999 are not supported"}

	case edtf.KindExponentialYear:
		if v.Exponent > 3 || v.Exponent < -3 {
			return "", &unsupportedDate{reason: "years outside the range -9999 to 9999 are not supported"}
		}
		return fmt.Sprintf("[%s TO %s]", v.LowerStrict(), v.UpperStrict()), nil

	case edtf.KindInterval:
		lower, err := solrEndpoint(v.Lower)
		if err != nil {
			return "", err
		}
		upper, err := solrEndpoint(v.Upper)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%s TO %s]", lower, upper), nil

	case edtf.KindSeason, edtf.KindUnspecified:
		return fmt.Sprintf("[%s TO %s]", v.LowerStrict(), v.UpperStrict()), nil

	case edtf.KindDateTime:
		return solr.Datetime(v.DateTime)

	default:
		return v.String(), nil
	}
}

// solrEndpoint renders one interval endpoint, where an absent endpoint
// means the interval is open on that side.
func solrEndpoint(v *edtf.Value) (string, error) {
	if v == nil {
		return "*", nil
	}
	return solrDate(v)
}
