package checkout

import (
	"fmt"
	"strconv"
	"strings"

	"ngo_portal/internal/domain/entities"
)

const (
	DefaultMinAmount int64 = 100
	DefaultMaxAmount int64 = 500000
)

var DefaultPresets = []int64{500, 1000, 2500, 5000, 10000}

// FieldError is a validation message bound to one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

type AmountOption func(*AmountSelector)

func WithAmountLimits(min, max int64) AmountOption {
	return func(s *AmountSelector) {
		s.min = min
		s.max = max
	}
}

func WithPresets(presets ...int64) AmountOption {
	return func(s *AmountSelector) {
		s.presets = append([]int64(nil), presets...)
	}
}

// AmountSelector holds either one preset or one custom amount, in whole rupees.
type AmountSelector struct {
	presets  []int64
	min      int64
	max      int64
	selected int64
	custom   string
}

func NewAmountSelector(opts ...AmountOption) *AmountSelector {
	s := &AmountSelector{
		presets: append([]int64(nil), DefaultPresets...),
		min:     DefaultMinAmount,
		max:     DefaultMaxAmount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AmountSelector) Presets() []int64 {
	return append([]int64(nil), s.presets...)
}

// SelectPreset replaces any previous choice. Unknown values are ignored.
func (s *AmountSelector) SelectPreset(v int64) bool {
	for _, p := range s.presets {
		if p == v {
			s.selected = v
			s.custom = ""
			return true
		}
	}
	return false
}

func (s *AmountSelector) SetCustom(text string) {
	s.selected = 0
	s.custom = text
}

// Selected reports the preset currently highlighted, if any.
func (s *AmountSelector) Selected() (int64, bool) {
	return s.selected, s.selected > 0
}

func (s *AmountSelector) Custom() string {
	return s.custom
}

func (s *AmountSelector) Amount() (int64, error) {
	amount := s.selected
	if amount == 0 {
		text := strings.TrimSpace(s.custom)
		if text == "" {
			return 0, &FieldError{Field: "amount", Message: "Please select or enter an amount"}
		}
		text = strings.ReplaceAll(strings.TrimPrefix(text, "₹"), ",", "")
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil || n <= 0 {
			return 0, &FieldError{Field: "amount", Message: "Please enter a valid amount"}
		}
		amount = n
	}

	if amount < s.min {
		return 0, &FieldError{Field: "amount", Message: fmt.Sprintf("Minimum donation is ₹%d", s.min)}
	}
	if s.max > 0 && amount > s.max {
		return 0, &FieldError{Field: "amount", Message: fmt.Sprintf("Maximum donation is ₹%d", s.max)}
	}
	return amount, nil
}

// MinorUnits returns the validated amount in paise.
func (s *AmountSelector) MinorUnits() (int64, error) {
	amount, err := s.Amount()
	if err != nil {
		return 0, err
	}
	return entities.RupeesToMinor(amount), nil
}
