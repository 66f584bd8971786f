package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageCompliance(t *testing.T) {
	tests := []struct {
		name        string
		percentSum  int
		entityCount int
		want        int
	}{
		{"empty fleet reports compliant", 0, 0, 100},
		{"exact division", 200, 2, 100},
		{"rounds up at half", 167, 2, 84},
		{"thirds round to nearest", 200, 3, 67},
		{"all zero", 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, averageCompliance(tt.percentSum, tt.entityCount))
		})
	}
}
