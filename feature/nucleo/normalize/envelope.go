package normalize

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	apperrors "catalog-bridge/core/errors"
)

// NoDataSentinel is the fixed string the upstream returns in place of an
// embedded payload when a query matched nothing. It is the one recognized
// "expected absence" case and never an error.
const NoDataSentinel = "Not data found."

// soapEnvelope captures the outer response wrapper. The body is kept as raw
// inner XML because its single child element is named after the action.
type soapEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Inner string `xml:",innerxml"`
	} `xml:"Body"`
}

// payload extracts the embedded payload string from the action's result
// element. A structurally broken envelope (missing Envelope, Body, or the
// <action>Result element) yields ErrParse.
func payload(soapResponse, action string) (string, error) {
	var env soapEnvelope
	if err := xml.Unmarshal([]byte(soapResponse), &env); err != nil {
		return "", fmt.Errorf("%s: %w: %v", action, apperrors.ErrParse, err)
	}
	if strings.TrimSpace(env.Body.Inner) == "" {
		return "", fmt.Errorf("%s: %w: empty soap body", action, apperrors.ErrParse)
	}

	result, ok := innerResult(env.Body.Inner, action+"Result")
	if !ok {
		return "", fmt.Errorf("%s: %w: missing %sResult element", action, apperrors.ErrParse, action)
	}

	return result, nil
}

// innerResult walks the body's tokens for the named result element and
// returns its text content (the embedded payload is XML-escaped text, so
// decoding it into a string unescapes it).
func innerResult(inner, name string) (string, bool) {
	dec := xml.NewDecoder(strings.NewReader(inner))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			return "", false
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != name {
			continue
		}
		var s string
		if err := dec.DecodeElement(&s, &se); err != nil {
			return "", false
		}
		return s, true
	}
}
