package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "thousands and decimals", input: "1.234,56", want: 1234.56},
		{name: "plain decimals", input: "50,00", want: 50},
		{name: "integer", input: "50", want: 50},
		{name: "surrounding spaces", input: " 10,5 ", want: 10.5},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces only", input: "   ", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "two commas", input: "1,2,3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 50,00", FormatBRL(50))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 0,10", FormatBRL(0.1))
}

func TestAmountRoundTrip(t *testing.T) {
	value, err := ParseAmount("1.234,56")
	require.NoError(t, err)
	assert.Equal(t, "R$ 1.234,56", FormatBRL(value))
}
