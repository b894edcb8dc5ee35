package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a float64 that tolerates the numeric shapes upstream callers
// actually send: JSON numbers, numeric strings with or without thousands
// separators, null and anything else. Unparseable values decode to zero
// instead of failing the whole payload.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || string(raw) == "null" {
		*n = 0
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			*n = 0
			return nil
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

func (n Number) Float() float64 { return float64(n) }

// Int truncates toward zero.
func (n Number) Int() int64 { return int64(n) }
