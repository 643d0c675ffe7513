package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFitsMoney(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "whole", value: "1000", want: true},
		{name: "cents", value: "10.25", want: true},
		{name: "trailing_zeros", value: "10.500", want: true},
		{name: "sub_cent", value: "10.005", want: false},
		{name: "tiny", value: "0.004", want: false},
		{name: "largest", value: "99999999999999.99", want: true},
		{name: "too_many_integer_digits", value: "100000000000000", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FitsMoney(decimal.RequireFromString(tc.value)))
		})
	}
}
