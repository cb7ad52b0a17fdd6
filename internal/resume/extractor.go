// Package resume turns free-form service documents (DD-214, VMET, résumés)
// into a structured military service record.
//
// Every rule is a keyword or regular-expression heuristic. A field that cannot
// be detected keeps its zero value ("" or 0, "None" for clearance); Extract
// never fails.
package resume

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const descriptionLimit = 500

// MilitaryRecord is the service history recovered from a document.
type MilitaryRecord struct {
	Branch         string `json:"branch"`
	Rank           string `json:"rank"`
	MOS            string `json:"mosCode"`
	YearsOfService int    `json:"yearsOfService"`
	Clearance      string `json:"securityClearance"`
	LeadershipRole string `json:"leadershipRole"`
	Awards         string `json:"awards"`
	Description    string `json:"description"`
}

type rankPattern struct {
	key  string
	rank string
	re   *regexp.Regexp
}

var (
	mosPattern   = regexp.MustCompile(`(?i)\b(\d{2}[A-Z]|\d{4}|\d[A-Z]\d[A-Z]\d)\b`)
	yearPattern  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	spacePattern = regexp.MustCompile(`\s+`)

	rankPatterns = compileRanks()
)

func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// compileRanks orders rank keys longest first so that "staff sergeant" is
// tried before "sergeant". Equal lengths fall back to alphabetical order.
func compileRanks() []rankPattern {
	keys := make([]string, 0, len(rankTable))
	for k := range rankTable {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	patterns := make([]rankPattern, 0, len(keys))
	for _, k := range keys {
		patterns = append(patterns, rankPattern{key: k, rank: rankTable[k], re: wordPattern(k)})
	}
	return patterns
}

// Extract builds a MilitaryRecord from raw document text. It is safe for
// concurrent use.
func Extract(text string) MilitaryRecord {
	lower := strings.ToLower(text)

	return MilitaryRecord{
		Branch:         detectBranch(lower),
		Rank:           detectRank(text),
		MOS:            detectMOS(text),
		YearsOfService: detectYearsOfService(text),
		Clearance:      detectClearance(lower),
		LeadershipRole: detectLeadershipRole(lower),
		Awards:         detectAwards(lower),
		Description:    describe(text),
	}
}

// detectBranch returns the first branch with a keyword anywhere in the
// text. Short acronyms are plain substrings too, so "usaf" reports Army.
func detectBranch(lower string) string {
	for _, rule := range branchRules {
		if containsAny(lower, rule.keywords) {
			return rule.branch
		}
	}
	return ""
}

func detectRank(text string) string {
	for _, p := range rankPatterns {
		if p.re.MatchString(text) {
			return p.rank
		}
	}
	return ""
}

func detectMOS(text string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if !containsAny(lower, mosKeywords) {
			continue
		}
		if code := mosPattern.FindString(line); code != "" {
			return code
		}
	}
	return mosPattern.FindString(text)
}

// detectYearsOfService approximates service length as the spread between the
// earliest and latest year mentioned. Spreads outside 1..39 are discarded.
func detectYearsOfService(text string) int {
	matches := yearPattern.FindAllString(text, -1)
	if len(matches) < 2 {
		return 0
	}

	distinct := make(map[int]struct{}, len(matches))
	lo, hi := 0, 0
	for _, m := range matches {
		y := atoi4(m)
		if len(distinct) == 0 || y < lo {
			lo = y
		}
		if len(distinct) == 0 || y > hi {
			hi = y
		}
		distinct[y] = struct{}{}
	}
	if len(distinct) < 2 {
		return 0
	}

	if span := hi - lo; span > 0 && span < 40 {
		return span
	}
	return 0
}

// atoi4 converts a four-digit ASCII year already validated by yearPattern.
func atoi4(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func detectClearance(lower string) string {
	switch {
	case strings.Contains(lower, "top secret"), strings.Contains(lower, "ts/sci"):
		return ClearanceTopSecret
	case strings.Contains(lower, "secret"):
		return ClearanceSecret
	default:
		return ClearanceNone
	}
}

func detectLeadershipRole(lower string) string {
	for _, role := range leadershipRoles {
		if strings.Contains(lower, role) {
			return titleCase(role)
		}
	}
	return ""
}

func detectAwards(lower string) string {
	var found []string
	for _, award := range awardNames {
		if strings.Contains(lower, award) {
			found = append(found, titleCase(award))
		}
	}
	return strings.Join(found, ", ")
}

func describe(text string) string {
	runes := []rune(text)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return strings.TrimSpace(spacePattern.ReplaceAllString(string(runes), " "))
}

// titleCase builds a fresh Caser per call; Casers keep state and must not be
// shared between goroutines.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
