package indicator

// freqWindow is the fixed Frequency window, 31 bars. The window is a
// policy of this indicator, not a parameter.
const freqWindow = 31

// Frequency counts, for each sliding 31-bar window, how many values are
// true across all the given boolean columns. Columns are expected to be
// mutually aligned; when lengths differ only the common right-aligned
// span is counted. Output length is n-30 for common length n.
func Frequency(cols ...[]bool) []int {
	if len(cols) == 0 {
		return nil
	}

	n := len(cols[0])
	for _, col := range cols[1:] {
		if len(col) < n {
			n = len(col)
		}
	}

	// Per-bar true count across columns, then a rolling sum.
	counts := make([]int, n)
	for _, col := range cols {
		col = rightTrim(col, n)
		for i, v := range col {
			if v {
				counts[i]++
			}
		}
	}

	return roll(counts, freqWindow, func(window []int) int {
		total := 0
		for _, c := range window {
			total += c
		}
		return total
	})
}
