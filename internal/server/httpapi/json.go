package httpapi

import (
	"encoding/json"
	"io"
)

// decodeJSONObject reads a request body into a generic map, keeping numbers
// as json.Number so decimal amounts survive the round trip to text columns.
func decodeJSONObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
