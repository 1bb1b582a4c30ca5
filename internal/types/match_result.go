//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strconv"
)

// Payload is the dynamic metadata attached to a vector point. Values are
// JSON-decoded, so numbers arrive as float64 and nested values as
// map[string]any. Access goes through the named extraction helpers below
// rather than ad-hoc type assertions.
type Payload map[string]any

// MatchResult is the raw output of a vector search: the stored point id,
// a similarity score in [0,1], and the payload stored at index time.
type MatchResult struct {
	PointID string  `json:"point_id"`
	Score   float64 `json:"score"`
	Payload Payload `json:"payload,omitempty"`
}

// EntityID extracts the source entity id from the payload under the given
// key. Numeric and numeric-string representations are both accepted;
// anything else reports false.
func (p Payload) EntityID(key string) (int64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		id, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return id, true
	case string:
		id, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// StringValue renders the payload value under key as a string. Non-string
// values are serialized to canonical JSON text; a missing key yields "".
func (p Payload) StringValue(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
