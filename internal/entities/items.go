package entities

import "math"

const (
	// column limits: VARCHAR(255) and INTEGER
	MaxIDLength = 255
	MaxQuantity = math.MaxInt32
)

// ValidateOrderInput checks everything a customer sends before anything is written.
func ValidateOrderInput(customerID string, items []ItemInput, paymentInfoID string) error {
	if len(customerID) > MaxIDLength {
		return ErrCustomerIDTooLong
	}
	if err := ValidateItems(items); err != nil {
		return err
	}
	if len(paymentInfoID) > MaxIDLength {
		return ErrPaymentInfoIDTooLong
	}
	return nil
}

func ValidateItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrNoMenuItems
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if it.Quantity > MaxQuantity {
			return ErrQuantityTooLarge
		}
		if len(it.ItemID) > MaxIDLength {
			return ErrItemIDTooLong
		}
	}
	// repeated ids are summed, the sum must fit too
	for _, it := range MergeItems(items) {
		if it.Quantity > MaxQuantity {
			return ErrQuantityTooLarge
		}
	}
	return nil
}

// MergeItems folds repeated item ids into one line, keeping first-seen order.
func MergeItems(items []ItemInput) []ItemInput {
	merged := make([]ItemInput, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		if i, ok := index[it.ItemID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.ItemID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}
