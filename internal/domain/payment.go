package domain

import (
	"encoding/json"
	"fmt"
)

// PaymentMethod is the tag that selects a Payment variant.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentCredit    PaymentMethod = "credit"
	PaymentPromptPay PaymentMethod = "promptpay"
)

// Payment is a closed set of payment variants.
type Payment interface {
	Method() PaymentMethod
}

// CashPayment carries no extra data.
type CashPayment struct{}

func (CashPayment) Method() PaymentMethod { return PaymentCash }

// CreditPayment is paid by card.
type CreditPayment struct {
	CardNumber string
}

func (CreditPayment) Method() PaymentMethod { return PaymentCredit }

// PromptPayPayment is paid through a phone-linked PromptPay account.
type PromptPayPayment struct {
	Phone string
}

func (PromptPayPayment) Method() PaymentMethod { return PaymentPromptPay }

// DecodePayment reads a tagged JSON payment. The tag is optional for
// PromptPay: an untagged object with a phone number is PromptPay.
func DecodePayment(data []byte) (Payment, error) {
	var raw struct {
		Type       PaymentMethod `json:"type"`
		CardNumber string        `json:"cardNumber"`
		Phone      string        `json:"phone"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode payment: %v", ErrInvalidInput, err)
	}

	switch raw.Type {
	case PaymentCash:
		return CashPayment{}, nil
	case PaymentCredit:
		if raw.CardNumber == "" {
			return nil, fmt.Errorf("%w: credit payment requires a card number", ErrInvalidInput)
		}
		return CreditPayment{CardNumber: raw.CardNumber}, nil
	case PaymentPromptPay:
		return PromptPayPayment{Phone: raw.Phone}, nil
	case "":
		if raw.Phone != "" {
			return PromptPayPayment{Phone: raw.Phone}, nil
		}
		return nil, fmt.Errorf("%w: payment type is required", ErrInvalidInput)
	default:
		return nil, fmt.Errorf("%w: unknown payment type %q", ErrInvalidInput, raw.Type)
	}
}
