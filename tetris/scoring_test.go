package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/powertris/tetris"
	"github.com/stretchr/testify/assert"
)

func TestLineScore(t *testing.T) {
	tests := []struct {
		rows  int
		level int
		want  int
	}{
		{0, 1, 0},
		{1, 1, 40},
		{2, 1, 100},
		{3, 1, 300},
		{4, 1, 1200},
		{4, 3, 3600},
		{1, 5, 200},
		{5, 1, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("rows=%d,level=%d", tt.rows, tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, tetris.LineScore(tt.rows, tt.level))
		})
	}
}

func TestPowerString(t *testing.T) {
	assert.Equal(t, "none", tetris.PowerNone.String())
	assert.Equal(t, "bomb", tetris.PowerBomb.String())
	assert.Equal(t, "slow", tetris.PowerSlow.String())
	assert.Equal(t, "wild", tetris.PowerWild.String())
}
