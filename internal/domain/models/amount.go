// internal/domain/models/amount.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Amount is a rupee value as sent by the CRM backend. Decimal fields arrive
// either as JSON numbers or as quoted decimal strings ("12000.00"); both
// decode to the same value. null and "" decode to zero.
type Amount float64

// UnmarshalJSON accepts a number, a quoted decimal string, or null.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount %q: %w", s, err)
		}
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

// Float returns the amount as a float64.
func (a Amount) Float() float64 { return float64(a) }

// Rupees formats the amount with Indian digit grouping, e.g. ₹12,34,567.
// Paise are dropped.
func (a Amount) Rupees() string {
	return "₹" + groupIndian(int64(a))
}

// Lakhs formats the amount in lakhs with one decimal, e.g. ₹2.5L.
func (a Amount) Lakhs() string {
	return fmt.Sprintf("₹%.1fL", float64(a)/100000)
}

func groupIndian(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		var buf bytes.Buffer
		for _, p := range parts {
			buf.WriteString(p)
			buf.WriteByte(',')
		}
		buf.WriteString(tail)
		s = buf.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
