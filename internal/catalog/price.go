package catalog

import (
	"strconv"

	"github.com/hondana-dev/hondana/internal/platform/validate"
)

// Price is a validated, non-negative monetary amount in the smallest
// currency unit. The zero value is a valid price of 0.
type Price int

// ZeroPrice is the shared zero amount, usable without going through
// validation.
const ZeroPrice Price = 0

// NewPrice validates amount and returns it as a [Price].
// Negative amounts fail with a VALIDATION_ERROR.
func NewPrice(amount int) (Price, error) {
	validator := &validate.Validator{}
	validator.Min(FieldPrice, amount, 0)

	if err := validator.Err(); err != nil {
		return ZeroPrice, err
	}

	return Price(amount), nil
}

// Int returns the raw amount.
func (p Price) Int() int { return int(p) }

// String implements [fmt.Stringer].
func (p Price) String() string { return strconv.Itoa(int(p)) }
