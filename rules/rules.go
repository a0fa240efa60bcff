package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && score == 2) || score == 3

The score is a weighted neighbor sum; on the 8- and 6-neighbor topologies
every neighbor weighs 1.0, so scores land on whole numbers and the
comparison is exact.
*/
func ApplyConwayRules(score float64, alive bool) bool {
	return (alive && score == 2) || score == 3
}

/*
ApplyFractionalRules applies the 12-neighbor fractional-threshold rule.

Second-tier neighbors contribute 0.3 each, so the score is fractional and
the thresholds are open intervals: a dead cell is born iff
2.3 < score < 2.9, a live cell survives iff 2.0 < score < 3.3. The
constants were tuned by experimentation and are preserved verbatim.
*/
func ApplyFractionalRules(score float64, alive bool) bool {
	if alive {
		return score > 2.0 && score < 3.3
	}
	return score > 2.3 && score < 2.9
}
