package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommon_ParseStockType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    StockType
		wantErr bool
	}{
		{"common", "Common", StockTypeCommon, false},
		{"preferred", "Preferred", StockTypePreferred, false},
		{"lower case", "preferred", StockTypePreferred, false},
		{"padded", "  Common ", StockTypeCommon, false},
		{"invalid", "InvalidType", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStockType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidStockType))
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommon_StockTypeIsValid(t *testing.T) {
	assert.True(t, StockTypeCommon.IsValid())
	assert.True(t, StockTypePreferred.IsValid())
	assert.False(t, StockType(7).IsValid())
	assert.Equal(t, "StockType(7)", StockType(7).String())
}

func TestCommon_StockTypeText(t *testing.T) {
	text, err := StockTypePreferred.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Preferred", string(text))

	var st StockType
	require.NoError(t, st.UnmarshalText([]byte("Common")))
	assert.Equal(t, StockTypeCommon, st)

	assert.ErrorIs(t, st.UnmarshalText([]byte("Ordinary")), ErrInvalidArgument)

	_, err = StockType(-1).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidStockType)
}
