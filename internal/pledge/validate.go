package pledge

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// normalize trims free-text fields and fills omitted regions: the primary row
// falls back to the submitter's home region and dependents to the primary's.
func (p SubmitParams) normalize() SubmitParams {
	out := p
	out.Primary.Region = normalizeRegion(p.Primary.Region)

	if out.Primary.Region == "" {
		out.Primary.Region = normalizeRegion(p.Submitter.Region)
	}

	out.Dependents = make([]DependentPledge, len(p.Dependents))
	for i, d := range p.Dependents {
		d.Name = strings.TrimSpace(d.Name)
		d.Relationship = strings.ToLower(strings.TrimSpace(d.Relationship))
		d.Region = normalizeRegion(d.Region)

		if d.Region == "" {
			d.Region = out.Primary.Region
		}

		out.Dependents[i] = d
	}

	return out
}

// MaximumAmount bounds a single pledge row so sums fit the ledger's
// NUMERIC(14,2) columns.
var MaximumAmount = decimal.NewFromInt(1_000_000_000_000)

func normalizeRegion(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}

// validate checks every row against the rules that need no storage access.
func (p SubmitParams) validate(minimum decimal.Decimal) error {
	var (
		amountErrs []FieldError
		otherErrs  []FieldError
	)

	checkAmount := func(field string, amount decimal.Decimal) {
		var msg string

		switch {
		case !amount.IsPositive():
			msg = "must be greater than 0"
		case amount.LessThan(minimum):
			msg = fmt.Sprintf("must be at least %s", minimum.String())
		case !amount.Equal(amount.Round(2)):
			msg = "must have at most 2 decimal places"
		case amount.GreaterThanOrEqual(MaximumAmount):
			msg = fmt.Sprintf("must be less than %s", MaximumAmount.String())
		default:
			return
		}

		amountErrs = append(amountErrs, FieldError{Field: field, Message: msg})
	}

	checkAmount("amount", p.Primary.Amount)

	if p.Primary.Region == "" {
		otherErrs = append(otherErrs, FieldError{Field: "region", Message: "is required"})
	}

	if p.Primary.Gender != GenderUnspecified && !p.Primary.Gender.Valid() {
		otherErrs = append(otherErrs, FieldError{Field: "gender", Message: "must be one of male, female, other"})
	}

	for i, d := range p.Dependents {
		prefix := fmt.Sprintf("additionalPledges[%d].", i)

		checkAmount(prefix+"amount", d.Amount)

		if d.Name == "" {
			otherErrs = append(otherErrs, FieldError{Field: prefix + "name", Message: "is required"})
		}

		switch d.Relationship {
		case "":
			otherErrs = append(otherErrs, FieldError{Field: prefix + "relationship", Message: "is required"})
		case RelationshipSelf:
			otherErrs = append(otherErrs, FieldError{Field: prefix + "relationship", Message: "is reserved for the contributor"})
		}

		if d.Region == "" {
			otherErrs = append(otherErrs, FieldError{Field: prefix + "region", Message: "is required"})
		}

		if !d.Gender.Valid() {
			otherErrs = append(otherErrs, FieldError{Field: prefix + "gender", Message: "must be one of male, female, other"})
		}
	}

	switch {
	case len(amountErrs) > 0:
		return &ValidationError{Kind: ErrInvalidAmount, Fields: append(amountErrs, otherErrs...)}
	case len(otherErrs) > 0:
		return &ValidationError{Kind: ErrInvalidSubmission, Fields: otherErrs}
	}

	return nil
}
