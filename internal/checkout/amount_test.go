package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountSelector_Amount(t *testing.T) {
	cases := []struct {
		name   string
		custom string
		want   int64
		errMsg string
	}{
		{name: "empty", custom: "", errMsg: "Please select or enter an amount"},
		{name: "blank", custom: "   ", errMsg: "Please select or enter an amount"},
		{name: "not a number", custom: "abc", errMsg: "Please enter a valid amount"},
		{name: "fraction", custom: "100.50", errMsg: "Please enter a valid amount"},
		{name: "negative", custom: "-5", errMsg: "Please enter a valid amount"},
		{name: "below minimum", custom: "50", errMsg: "Minimum donation is ₹100"},
		{name: "above maximum", custom: "500001", errMsg: "Maximum donation is ₹500000"},
		{name: "minimum", custom: "100", want: 100},
		{name: "maximum", custom: "500000", want: 500000},
		{name: "rupee sign and commas", custom: "₹1,500", want: 1500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewAmountSelector()
			s.SetCustom(tc.custom)

			got, err := s.Amount()
			if tc.errMsg != "" {
				var fe *FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, "amount", fe.Field)
				assert.Equal(t, tc.errMsg, fe.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAmountSelector_Presets(t *testing.T) {
	s := NewAmountSelector()
	assert.Equal(t, []int64{500, 1000, 2500, 5000, 10000}, s.Presets())

	t.Run("last click wins", func(t *testing.T) {
		for _, v := range []int64{500, 1000, 500, 2500, 2500} {
			require.True(t, s.SelectPreset(v))
		}
		selected, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, int64(2500), selected)

		amount, err := s.Amount()
		require.NoError(t, err)
		assert.Equal(t, int64(2500), amount)
	})

	t.Run("preset clears custom", func(t *testing.T) {
		s.SetCustom("750")
		_, ok := s.Selected()
		assert.False(t, ok)

		s.SelectPreset(5000)
		assert.Empty(t, s.Custom())
		amount, err := s.Amount()
		require.NoError(t, err)
		assert.Equal(t, int64(5000), amount)
	})

	t.Run("unknown preset ignored", func(t *testing.T) {
		s.SelectPreset(1000)
		assert.False(t, s.SelectPreset(42))
		selected, _ := s.Selected()
		assert.Equal(t, int64(1000), selected)
	})

	t.Run("minor units", func(t *testing.T) {
		s.SelectPreset(500)
		paise, err := s.MinorUnits()
		require.NoError(t, err)
		assert.Equal(t, int64(50000), paise)
	})
}

func TestAmountSelector_CustomLimits(t *testing.T) {
	s := NewAmountSelector(WithAmountLimits(10, 1000), WithPresets(10, 20))
	s.SetCustom("5")
	_, err := s.Amount()
	assert.EqualError(t, err, "Minimum donation is ₹10")

	s.SetCustom("1001")
	_, err = s.Amount()
	assert.EqualError(t, err, "Maximum donation is ₹1000")

	assert.True(t, s.SelectPreset(20))
}
