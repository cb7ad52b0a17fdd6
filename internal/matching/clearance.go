package matching

import "strings"

// LevelNotFound is returned by ClearanceLevel for names outside the ladder.
const LevelNotFound = -1

// clearanceLadder is ordered from lowest to highest.
var clearanceLadder = []string{
	"none",
	"confidential",
	"secret",
	"top secret",
	"top secret/sci",
}

// clearanceAliases maps alternate spellings onto ladder names. The resume
// extractor reports SCI access as "Top Secret (TS/SCI)".
var clearanceAliases = map[string]string{
	"top secret (ts/sci)": "top secret/sci",
	"ts/sci":              "top secret/sci",
}

// ClearanceLevel returns the index of name in the clearance ladder, or
// LevelNotFound.
func ClearanceLevel(name string) int {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := clearanceAliases[key]; ok {
		key = alias
	}
	for i, level := range clearanceLadder {
		if level == key {
			return i
		}
	}
	return LevelNotFound
}

// ClearanceNames lists the recognized clearance names in ascending order.
func ClearanceNames() []string {
	return []string{"None", "Confidential", "Secret", "Top Secret", "Top Secret/SCI"}
}
