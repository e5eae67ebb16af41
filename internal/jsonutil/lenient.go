package jsonutil

import "encoding/json"

// Lenient is the result of decoding a payload that may or may not be JSON.
// Parsed reports which of Value or Raw carries the content.
type Lenient struct {
	Value  any
	Raw    string
	Parsed bool
}

// ParseLenient decodes data as JSON, falling back to the raw text when it is not valid JSON.
func ParseLenient(data []byte) Lenient {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Lenient{Raw: string(data)}
	}
	return Lenient{Value: v, Raw: string(data), Parsed: true}
}

// MarshalJSON emits the parsed value, or the raw text as a JSON string.
func (l Lenient) MarshalJSON() ([]byte, error) {
	if l.Parsed {
		return json.Marshal(l.Value)
	}
	return json.Marshal(l.Raw)
}
