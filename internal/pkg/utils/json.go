package utils

import (
	"github.com/goccy/go-json"
)

// StructToMap serializes v into the generic string-keyed JSON object sent to
// the health information exchange.
func StructToMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	result := make(map[string]interface{})
	err = json.Unmarshal(raw, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
