package utils

// ContainsString returns true iff the provided string slice hay contains
// string needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

// RemoveString returns hay without any occurrence of needle, preserving the
// order of the remaining elements.
func RemoveString(hay []string, needle string) []string {
	kept := make([]string, 0, len(hay))
	for _, str := range hay {
		if str != needle {
			kept = append(kept, str)
		}
	}
	return kept
}
