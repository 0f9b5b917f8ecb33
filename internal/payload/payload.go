package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cterryc/netlify-two/internal/apperr"
)

// Normalize converts an inbound request body into a canonical key-value
// object. Depending on the transport the body may arrive as raw bytes, a
// string, an already-parsed object, or nothing at all; every variant is
// reduced to one map. An absent or blank body yields an empty map so that
// missing fields surface as validation errors rather than parse errors.
func Normalize(body any) (map[string]any, error) {
	switch b := body.(type) {
	case nil:
		return map[string]any{}, nil
	case []byte:
		return parseText(string(b))
	case string:
		return parseText(b)
	case map[string]any:
		return b, nil
	default:
		return nil, apperr.MalformedBody(fmt.Errorf("unsupported body type %T", body))
	}
}

func parseText(text string) (map[string]any, error) {
	if strings.TrimSpace(text) == "" {
		return map[string]any{}, nil
	}

	fields := map[string]any{}
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, apperr.MalformedBody(err)
	}
	if fields == nil {
		// a JSON "null" body unmarshals to a nil map
		fields = map[string]any{}
	}
	return fields, nil
}
