package utils_test

import (
	"testing"

	"catalog-bridge/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"String", "42", 42},
		{"NegativeString", "-1", -1},
		{"EmptyString", "", 0},
		{"Garbage", "abc", 0},
		{"Int", 7, 7},
		{"Float", 3.9, 3},
		{"Bytes", []byte("15"), 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToInt(tt.in))
		})
	}
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"String", "12.5", 12.5},
		{"PaddedString", " 7 ", 7},
		{"EmptyString", "", 0},
		{"Garbage", "n/a", 0},
		{"Int", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToFloat64(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"TrueString", "true", true},
		{"TrueUpper", "TRUE", true},
		{"One", "1", true},
		{"FalseString", "false", false},
		{"Empty", "", false},
		{"Bool", true, true},
		{"IntOne", 1, true},
		{"IntZero", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToBool(tt.in))
		})
	}
}
