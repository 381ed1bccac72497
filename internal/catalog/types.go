// Package catalog holds the storefront's server-backed collections: the wire
// types shared with the backend, the in-memory catalog store, the filter
// engine and the promotion/coupon association index.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Promotion is a discounted product listing. Field tags follow the backend
// wire contract, which keeps the original Portuguese JSON names.
type Promotion struct {
	ID             string   `json:"_id"`
	Title          string   `json:"titulo"`
	Category       string   `json:"categoria"`
	Description    string   `json:"descricao,omitempty"`
	OldPrice       float64  `json:"precoAntigo"`
	NewPrice       float64  `json:"precoNovo"`
	Store          string   `json:"loja"`
	Image          string   `json:"imagem"`
	Link           string   `json:"link"`
	RelatedCoupons []string `json:"cuponsRelacionados,omitempty"`
}

// Coupon is a store discount code with an expiry date.
type Coupon struct {
	ID          string       `json:"_id"`
	Code        string       `json:"codigo"`
	Description string       `json:"descricao"`
	Store       string       `json:"loja"`
	Link        string       `json:"link"`
	Validity    ValidityDate `json:"validade"`
}

// ValidityDate is a calendar date that the backend serializes either as a
// plain ISO date or as a full RFC 3339 timestamp. It always unmarshals to the
// UTC midnight of the encoded day so that downstream date math never sees a
// time-of-day component.
type ValidityDate struct {
	time.Time
}

// UnmarshalJSON accepts "2006-01-02" and RFC 3339 encodings.
func (d *ValidityDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("validity date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse("2006-01-02", raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid validity date %q", raw)
	}
	u := t.UTC()
	d.Time = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

// MarshalJSON always emits the plain ISO date form.
func (d ValidityDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format("2006-01-02"))
}

// ClickStat is the click counter for one promotion. It is maintained by the
// click tracker, never by the catalog itself.
type ClickStat struct {
	Total     int        `json:"total"`
	LastClick *time.Time `json:"ultimoClique,omitempty"`
}

// Admin is a back-office account.
type Admin struct {
	ID       string `json:"_id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}
