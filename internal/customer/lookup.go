// Package customer implements exact-match lookup over the customer
// registry snapshot. Lookup is deliberately never fuzzy: a till operator
// attaching the wrong customer to a payment is worse than no match.
package customer

import (
	"strings"

	"github.com/dukapos/payment-engine/internal/model"
	"github.com/dukapos/payment-engine/internal/phone"
)

// Lookup finds the single customer matching term, or nil. Match rules in
// order, each applied across the whole registry before the next:
//
//  1. case-insensitive equality against the loyalty card number
//  2. equality of normalized phone numbers
//  3. equality after both numbers share a 254/0 prefix form
//  4. a bare 9-digit term against the last 9 digits of the stored phone
//
// A card match anywhere in the registry beats a phone match anywhere
// else. A blank term is "no customer", not an error.
func Lookup(term string, customers []model.Customer) *model.Customer {
	search := strings.TrimSpace(term)
	if search == "" {
		return nil
	}

	for i := range customers {
		c := &customers[i]
		if c.LoyaltyCardNumber != "" && strings.EqualFold(c.LoyaltyCardNumber, search) {
			return c
		}
	}

	normalized := phone.Normalize(search)
	for i := range customers {
		c := &customers[i]
		if phoneMatches(normalized, phone.Normalize(c.Phone)) {
			return c
		}
	}
	return nil
}

func phoneMatches(search, candidate string) bool {
	if search == "" || candidate == "" {
		return false
	}
	if search == candidate {
		return true
	}

	// Same prefix convention on both sides: compare the shared form.
	if strings.HasPrefix(search, "254") && strings.HasPrefix(candidate, "254") {
		return search == candidate
	}
	if strings.HasPrefix(search, "0") && strings.HasPrefix(candidate, "0") {
		return search == candidate
	}

	// A bare 9-digit core matches the tail of the stored number.
	if len(search) == 9 && len(candidate) >= 9 {
		return candidate[len(candidate)-9:] == search
	}
	return false
}
