package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// bodyValues is a decoded request body. Clients send either form-encoded or
// JSON bodies; both flatten to string fields here, with JSON numbers rendered
// back to their literal form so "0" stays distinguishable from an absent
// field.
type bodyValues map[string]string

func (b bodyValues) get(key string) string { return b[key] }

func decodeBody(r *http.Request) (bodyValues, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		values := bodyValues{}
		for key, value := range raw {
			switch v := value.(type) {
			case string:
				values[key] = v
			case float64:
				values[key] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				values[key] = strconv.FormatBool(v)
			}
			// null, nested objects and arrays are treated as absent
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	values := bodyValues{}
	for key := range r.PostForm {
		values[key] = r.PostForm.Get(key)
	}
	return values, nil
}
