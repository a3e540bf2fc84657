package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Metadata is a submitter metadata record (or a SONG analysis document)
// loaded from JSON. Values are kept as decoded so absent keys surface as
// JSON null in generated payloads.
type Metadata map[string]any

// Get returns the raw value for key, or nil when absent
func (m Metadata) Get(key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

// String returns the value for key rendered as a string.
// Only JSON strings and numbers render; the second return is false for
// absent, null, boolean, object and array values.
func (m Metadata) String(key string) (string, bool) {
	switch v := m.Get(key).(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

// Require returns the value for key or a FieldError when it is absent,
// blank or not a string or number
func (m Metadata) Require(key string) (string, error) {
	if m.Get(key) == nil {
		return "", missingField(key)
	}
	s, ok := m.String(key)
	if !ok {
		return "", invalidField(key)
	}
	if strings.TrimSpace(s) == "" {
		return "", missingField(key)
	}
	return s, nil
}

// Pick copies the listed keys into a new map, absent keys map to nil
func (m Metadata) Pick(keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[k] = m.Get(k)
	}
	return out
}

// InfoKeys are the metadata fields copied into a payload's info block
var InfoKeys = []string{
	"library_strategy",
	"program_id",
	"submitter_donor_id",
	"submitter_sample_id",
	"tumour_normal_designation",
}

// SampleDesignation collapses a tumour_normal_designation value to the
// "normal" or "tumour" suffix used in object keys.
func SampleDesignation(designation string) string {
	if strings.Contains(strings.ToLower(designation), "normal") {
		return "normal"
	}
	return "tumour"
}
