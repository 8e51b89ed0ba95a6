package service

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/msomdec/practice-demos/internal/domain"
)

// GetEmails projects the email address of every user.
func GetEmails(users []domain.User) []string {
	return Map(users, func(u domain.User) string { return u.Email })
}

// DescribePayment renders a human-readable description of p.
// Credit cards show only their last four digits.
func DescribePayment(p domain.Payment) (string, error) {
	switch v := p.(type) {
	case domain.CashPayment:
		return "Payment by cash", nil
	case domain.CreditPayment:
		return "Payment by credit card ****" + lastN(v.CardNumber, 4), nil
	case domain.PromptPayPayment:
		return fmt.Sprintf("Payment by PromptPay (phone: %s)", v.Phone), nil
	default:
		return "", fmt.Errorf("%w: unsupported payment %T", domain.ErrInvalidInput, p)
	}
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// NormalizeScore converts a score given as a number or as text into a number.
// Numbers of any integer or floating point kind pass through unchanged. Text
// is parsed, and anything that does not parse as a finite number yields 0, as
// does any other input type.
func NormalizeScore(input any) float64 {
	if v, ok := input.(string); ok {
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	}

	rv := reflect.ValueOf(input)
	switch {
	case !rv.IsValid():
		return 0
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	case rv.CanFloat():
		return rv.Float()
	default:
		return 0
	}
}

// IdentifyUser labels input as a numeric user ID or a username. IDs may be
// of any integer kind.
func IdentifyUser(input any) (string, error) {
	if v, ok := input.(string); ok {
		return "Username: " + v, nil
	}

	rv := reflect.ValueOf(input)
	switch {
	case !rv.IsValid():
	case rv.CanInt():
		return fmt.Sprintf("User ID: %d", rv.Int()), nil
	case rv.CanUint():
		return fmt.Sprintf("User ID: %d", rv.Uint()), nil
	}
	return "", fmt.Errorf("%w: expected an ID or a username, got %T", domain.ErrInvalidInput, input)
}

// CanRefund reports whether an order in status s may be refunded.
func CanRefund(s domain.OrderStatus) (bool, error) {
	if !s.Valid() {
		return false, fmt.Errorf("%w: unknown order status %q", domain.ErrInvalidInput, s)
	}
	return s == domain.OrderPaid || s == domain.OrderShipped, nil
}

// FormatResult renders an APIResult with a SUCCESS or ERROR prefix.
func FormatResult(r domain.APIResult) string {
	switch v := r.(type) {
	case domain.SuccessResult:
		return "SUCCESS: " + v.Data
	case domain.ErrorResult:
		return "ERROR: " + v.Error
	default:
		return fmt.Sprintf("ERROR: unsupported result %T", r)
	}
}

// DescribeValue renders a string, a number or nothing at all.
func DescribeValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
