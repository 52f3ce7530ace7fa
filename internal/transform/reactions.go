package transform

import "encoding/json"

// ProjectReactions decodes the source reactions JSON object into a
// name→count map. Each value is coerced independently: a name whose value
// is not an integer is coerced to 0 rather than dropped, so one malformed
// count can't erase the rest of the object (unmarshaling the whole object
// straight into map[string]json.Number would fail outright the moment any
// single value isn't numeric).
func ProjectReactions(raw []byte) map[string]int32 {
	out := map[string]int32{}
	if len(raw) == 0 {
		return out
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return out
	}

	for name, v := range decoded {
		out[name] = coerceCount(v)
	}
	return out
}

// coerceCount parses a single reaction count, defaulting to 0 when the raw
// value isn't a JSON number at all.
func coerceCount(raw json.RawMessage) int32 {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		return 0
	}
	return int32(i)
}
