package networth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is matched by validation errors about a malformed amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidName is matched by validation errors about a blank record name.
	ErrInvalidName = errors.New("invalid name")
)

// ValidationKind classifies a ValidationError.
type ValidationKind int

const (
	InvalidAmount ValidationKind = iota + 1
	InvalidName
)

func (k ValidationKind) String() string {
	switch k {
	case InvalidAmount:
		return "InvalidAmount"
	case InvalidName:
		return "InvalidName"
	default:
		return "unknown"
	}
}

// ValidationError reports user input that cannot become a record.
type ValidationError struct {
	Field string // "name" or "amount"
	Kind  ValidationKind
	Value string // the rejected input
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case InvalidName:
		return fmt.Sprintf("invalid %s %q: must not be blank", e.Field, e.Value)
	default:
		return fmt.Sprintf("invalid %s %q: not a number", e.Field, e.Value)
	}
}

// Unwrap makes errors.Is(err, ErrInvalidAmount) and errors.Is(err, ErrInvalidName) work.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case InvalidAmount:
		return ErrInvalidAmount
	case InvalidName:
		return ErrInvalidName
	default:
		return nil
	}
}

// amountPattern matches plain decimal amounts, with optional comma thousands groups.
// Exponents are not accepted.
var amountPattern = regexp.MustCompile(`^[+-]?(\d+|\d{1,3}(,\d{3})+)(\.\d+)?$`)

// ParseAmount parses a user-entered amount like "1500.50" or "1,500.50".
// Zero and negative amounts are valid.
func ParseAmount(s string) (decimal.Decimal, error) {
	text := strings.TrimSpace(s)
	if !amountPattern.MatchString(text) {
		return decimal.Zero, &ValidationError{Field: "amount", Kind: InvalidAmount, Value: s}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Kind: InvalidAmount, Value: s}
	}
	return d, nil
}

// validateName returns the trimmed name, or an InvalidName error when it is blank.
func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &ValidationError{Field: "name", Kind: InvalidName, Value: name}
	}
	return trimmed, nil
}
