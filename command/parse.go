package command

import "strconv"

// parseCount reads the release count of next. Missing, unparsable or
// non-positive values become 1.
func parseCount(args []string) int {
	if len(args) < 2 {
		return 1
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseCapacity reads the capacity of new. It must be a non-negative integer.
func parseCapacity(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
