package dice

// Roller provides an interface for rolling dice.
// Every random decision in the engine goes through a Roller so tests can script outcomes.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult contains the detailed results of a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int   // Bonus applied
	Count    int   // Number of dice rolled
	Sides    int   // Number of sides on each die
	RawTotal int   // Sum of dice without bonus
}

// D100 rolls a single percentile die
func D100(r Roller) (int, error) {
	result, err := r.Roll(1, 100, 0)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
