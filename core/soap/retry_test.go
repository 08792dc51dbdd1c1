package soap_test

import (
	"testing"
	"time"

	"catalog-bridge/core/soap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackoff(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    soap.Backoff
		wantErr bool
	}{
		{"Empty", "", nil, false},
		{"Single", "5s", soap.Backoff{5 * time.Second}, false},
		{"Multiple", "1s,3s,5s", soap.Backoff{time.Second, 3 * time.Second, 5 * time.Second}, false},
		{"Spaces", " 1s , 500ms ", soap.Backoff{time.Second, 500 * time.Millisecond}, false},
		{"Garbage", "1s,potato", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := soap.ParseBackoff(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
