package excmd

import (
	"sort"
	"strings"
)

// Complete returns the command names matching the name typed so far.
// Prefix matches come first in name order, then names containing the
// typed characters in sequence.
func Complete(partial string) []string {
	cmd, err := Parse(partial)
	if err != nil {
		return nil
	}
	typed := cmd.Name

	var prefix, subseq []string
	for _, name := range Names() {
		switch {
		case strings.HasPrefix(name, typed):
			prefix = append(prefix, name)
		case isSubsequence(typed, name):
			subseq = append(subseq, name)
		}
	}
	sort.SliceStable(subseq, func(i, j int) bool {
		return len(subseq[i]) < len(subseq[j])
	})
	return append(prefix, subseq...)
}

func isSubsequence(needle, haystack string) bool {
	i := 0
	for j := 0; j < len(haystack) && i < len(needle); j++ {
		if haystack[j] == needle[i] {
			i++
		}
	}
	return i == len(needle)
}
