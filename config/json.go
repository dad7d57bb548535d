package config

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// MarshalJSON encodes the tag the way the site generator expects it:
// a [tagName, attributes] pair.
func (h HeadTag) MarshalJSON() ([]byte, error) {
	attrs := h.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	return encode([]interface{}{h.TagName, attrs}, "")
}

func (h *HeadTag) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return errors.WithStack(err)
	}
	if len(pair) != 2 {
		return errors.Errorf("head tag must be a [tag, attributes] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &h.TagName); err != nil {
		return errors.Wrap(err, "head tag name")
	}
	if err := json.Unmarshal(pair[1], &h.Attributes); err != nil {
		return errors.Wrap(err, "head tag attributes")
	}
	return nil
}

// EncodeJSON renders the configuration in the generator's wire format.
// Output is stable for equal inputs.
func EncodeJSON(site SiteConfig) ([]byte, error) {
	return encode(site, "  ")
}

// encode is json.Marshal without HTML escaping, so "H&C" stays readable.
func encode(v interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, errors.WithStack(err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
