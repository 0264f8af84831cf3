package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Count is a whole number entered on a form. Valid input is sent as a JSON
// number, anything else as the raw string so the API's own validation
// message comes back. Blank input is sent as 0.
type Count string

// Int returns the value and whether it is a whole number
func (c Count) Int() (int, bool) {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return 0, true
	}
	i, err := strconv.Atoi(s)
	return i, err == nil
}

// MarshalJSON implements json.Marshaler
func (c Count) MarshalJSON() ([]byte, error) {
	if i, ok := c.Int(); ok {
		return []byte(strconv.Itoa(i)), nil
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON accepts a number, a string or null
func (c *Count) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = Count(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = Count(n.String())
	return nil
}
