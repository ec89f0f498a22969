package status

import (
	"regexp"
	"sort"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+`)

// Ordinal extracts the last run of digits in name. ok is false when name
// carries no number.
func Ordinal(name string) (n int, ok bool) {
	runs := digitRun.FindAllString(name, -1)
	if len(runs) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(runs[len(runs)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// sortEntries orders entries by embedded ordinal. Names without a number
// come after every numbered name; ties fall back to the name.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ni, iok := Ordinal(entries[i].Account)
		nj, jok := Ordinal(entries[j].Account)
		switch {
		case iok && !jok:
			return true
		case !iok && jok:
			return false
		case iok && jok && ni != nj:
			return ni < nj
		}
		return entries[i].Account < entries[j].Account
	})
}
