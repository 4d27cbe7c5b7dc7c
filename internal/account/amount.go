package account

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AmountField carries the raw JSON value of a request's amount field so
// the validation rules can distinguish an absent or falsy amount (a
// missing-field error) from a present but unparseable one (an invalid
// amount). This mirrors how the frontend may submit the amount either as
// a JSON number or as a string.
type AmountField struct {
	present bool
	raw     json.RawMessage
}

// NewAmount builds an AmountField from a numeric value. Test helper.
func NewAmount(v float64) AmountField {
	raw, _ := json.Marshal(v)
	return AmountField{present: true, raw: raw}
}

// NewAmountString builds an AmountField from a string value. Test helper.
func NewAmountString(s string) AmountField {
	raw, _ := json.Marshal(s)
	return AmountField{present: true, raw: raw}
}

// UnmarshalJSON records the raw value; interpretation is deferred.
func (a *AmountField) UnmarshalJSON(b []byte) error {
	a.present = true
	a.raw = append([]byte(nil), b...)
	return nil
}

// Missing reports whether the field is absent or falsy: not supplied,
// null, the empty string, or the number zero. The string "0" is not
// missing; it fails the positive-amount parse instead.
func (a AmountField) Missing() bool {
	if !a.present {
		return true
	}
	raw := strings.TrimSpace(string(a.raw))
	switch raw {
	case "", "null", `""`:
		return true
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil && v == 0 {
		return true
	}
	return false
}

// Value interprets the field as a monetary amount. JSON numbers are used
// as-is; strings are parsed leniently, accepting the longest leading
// numeric prefix the way parseFloat does. The second return is false
// when no numeric value could be extracted.
func (a AmountField) Value() (float64, bool) {
	raw := strings.TrimSpace(string(a.raw))
	if raw == "" || raw == "null" {
		return 0, false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(a.raw, &s); err != nil {
			return 0, false
		}
		return parseFloatPrefix(s)
	}
	var v float64
	if err := json.Unmarshal(a.raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

// parseFloatPrefix parses the longest leading decimal number in s after
// trimming whitespace, e.g. "1500.50 NGN" parses as 1500.5.
func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
