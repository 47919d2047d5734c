package tetris

var lineClearPoints = map[int]int{
	1: 40,
	2: 100,
	3: 300,
	4: 1200,
}

// LineScore returns the points for clearing rows at once on the given level.
// Counts outside 1..4 are worth nothing.
func LineScore(rows, level int) int {
	return lineClearPoints[rows] * level
}
