package confidence

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("Score stays within its bounds", func(t *testing.T) {
		for queryLen := 0; queryLen < 40; queryLen++ {
			for count := 0; count < 12; count++ {
				score := Score(strings.Repeat("q", queryLen), count, strings.Repeat("a", queryLen*3))
				assert.GreaterOrEqual(t, score, 0.80, "Score below the floor for queryLen=%d count=%d", queryLen, count)
				assert.LessOrEqual(t, score, 0.95, "Score above the ceiling for queryLen=%d count=%d", queryLen, count)
			}
		}
	})

	t.Run("Identical inputs give identical scores", func(t *testing.T) {
		first := Score("what is section 354d", 5, "Stalking is punishable.")
		second := Score("what is section 354d", 5, "Stalking is punishable.")
		assert.Equal(t, first, second)
	})

	t.Run("Score is rounded to two decimals", func(t *testing.T) {
		score := Score("what is section 354d", 5, "Stalking is punishable.")
		assert.Equal(t, score, math.Round(score*100)/100)

		rendered := fmt.Sprintf("%.2f", score)
		var reparsed float64
		_, err := fmt.Sscanf(rendered, "%f", &reparsed)
		assert.NoError(t, err)
		assert.Equal(t, score, reparsed)
	})
}
