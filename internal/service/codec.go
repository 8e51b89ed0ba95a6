package service

import (
	"encoding/json"
	"fmt"

	"github.com/msomdec/practice-demos/internal/domain"
)

// EncodeScoreCard serializes a score card to compact JSON text.
func EncodeScoreCard(card domain.ScoreCard) (string, error) {
	data, err := json.Marshal(card)
	if err != nil {
		return "", fmt.Errorf("encode score card: %w", err)
	}
	return string(data), nil
}

// DecodeScoreCard parses JSON text produced by EncodeScoreCard.
func DecodeScoreCard(text string) (domain.ScoreCard, error) {
	var card domain.ScoreCard
	if err := json.Unmarshal([]byte(text), &card); err != nil {
		return domain.ScoreCard{}, fmt.Errorf("%w: decode score card: %v", domain.ErrInvalidInput, err)
	}
	return card, nil
}

// RoundTripScoreCard encodes card and decodes it again, returning the text
// form and the recovered value.
func RoundTripScoreCard(card domain.ScoreCard) (string, domain.ScoreCard, error) {
	text, err := EncodeScoreCard(card)
	if err != nil {
		return "", domain.ScoreCard{}, err
	}
	decoded, err := DecodeScoreCard(text)
	if err != nil {
		return text, domain.ScoreCard{}, err
	}
	return text, decoded, nil
}
