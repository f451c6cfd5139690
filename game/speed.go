// speed.go derives the tick interval from the score.

package game

import "time"

const (
	// FoodPoints is the score increment per food eaten.
	FoodPoints = 10

	// InitialInterval is the tick period at score 0.
	InitialInterval = 150 * time.Millisecond
	// MinInterval is the fastest the game ever gets.
	MinInterval = 60 * time.Millisecond
	// IntervalStep is how much the period shrinks per food eaten.
	IntervalStep = 5 * time.Millisecond
)

// Interval returns the tick period for a given score. Monotonically
// non-increasing in score, floored at MinInterval. Hosts must reschedule
// their timer whenever the score changes the result.
func Interval(score int) time.Duration {
	iv := InitialInterval - time.Duration(score/FoodPoints)*IntervalStep
	if iv < MinInterval {
		return MinInterval
	}
	return iv
}

// Interval returns the tick period for the game's current score.
func (g *Game) Interval() time.Duration {
	return Interval(g.score)
}
