package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing", []string{"math"}, 1},
		{"three", []string{"math", "3"}, 3},
		{"zero", []string{"math", "0"}, 1},
		{"negative", []string{"math", "-2"}, 1},
		{"garbage", []string{"math", "lots"}, 1},
		{"trailing_garbage", []string{"math", "3x"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCount(tt.args))
		})
	}
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"12", 12, true},
		{"-1", 0, false},
		{"ten", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseCapacity(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
