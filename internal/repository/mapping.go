package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func parseMoney(amount decimal.Decimal, code string) (domain.Money, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return domain.Money{Amount: amount, Currency: unit}, nil
}

func marshalCustomization(c *domain.Customization) ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	blob, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return blob, nil
}

func unmarshalCustomization(blob []byte) (*domain.Customization, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	var c domain.Customization
	if err := json.Unmarshal(blob, &c); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return &c, nil
}

func marshalInstructions(in domain.DesignInstructions) ([]byte, error) {
	blob, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return blob, nil
}

func unmarshalInstructions(blob []byte) (domain.DesignInstructions, error) {
	var in domain.DesignInstructions
	if len(blob) == 0 {
		return in, nil
	}

	if err := json.Unmarshal(blob, &in); err != nil {
		return domain.DesignInstructions{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return in, nil
}

func eventPayload(fields map[string]any) ([]byte, error) {
	blob, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return blob, nil
}
