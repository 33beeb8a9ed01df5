package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid date", input: "20-03-2024", want: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", input: "29-02-2024", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{name: "ISO order rejected", input: "2024-03-20", wantErr: true},
		{name: "nonsense", input: "not-a-date", wantErr: true},
		{name: "invalid day", input: "32-01-2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUserDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("15.50")
	require.NoError(t, err)
	assert.Equal(t, "15.5", amount.String())

	_, err = parseAmount("0")
	assert.Error(t, err)

	_, err = parseAmount("-3")
	assert.Error(t, err)

	_, err = parseAmount("abc")
	assert.Error(t, err)
}
