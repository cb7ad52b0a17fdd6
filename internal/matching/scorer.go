// Package matching scores how well a veteran candidate fits a job posting.
//
// The score is an additive point budget capped at 100:
//
//	MOS / AFSC code     30 (exact) or 15 (prefix)
//	security clearance  20
//	skills overlap      up to 40
//	location            10 (city) or 5 (state)
package matching

import (
	"math"
	"sort"
	"strings"
)

const (
	MOSExactPoints   = 30
	MOSPartialPoints = 15
	ClearancePoints  = 20
	SkillsPoints     = 40
	CityPoints       = 10
	StatePoints      = 5

	MaxScore = 100
)

type Job struct {
	ID           string   `json:"id"`
	PreferredMOS []string `json:"preferredMos"`
	Clearance    string   `json:"clearance"`
	Skills       []string `json:"skills"`
	City         string   `json:"city"`
	State        string   `json:"state"`
}

type Candidate struct {
	MOS       string   `json:"mosCode"`
	Clearance string   `json:"clearance"`
	Skills    []string `json:"skills"`
	City      string   `json:"city"`
	State     string   `json:"state"`
}

type Details struct {
	MOSMatch bool `json:"mosMatch"`
	// SkillsMatched is reserved for the matched-skill count and is always zero.
	SkillsMatched int `json:"skillsMatched"`
}

type Result struct {
	Score   int     `json:"score"`
	Details Details `json:"matchDetails"`
}

// Score computes the compatibility of candidate with job. Missing fields
// contribute no points; it never fails.
func Score(job Job, candidate Candidate) Result {
	mos, exact := mosPoints(job.PreferredMOS, candidate.MOS)

	total := mos +
		clearancePoints(job.Clearance, candidate.Clearance) +
		skillPoints(job.Skills, candidate.Skills) +
		locationPoints(job, candidate)

	if total > MaxScore {
		total = MaxScore
	}
	if total < 0 {
		total = 0
	}

	return Result{
		Score:   total,
		Details: Details{MOSMatch: exact},
	}
}

func mosPoints(preferred []string, code string) (int, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(preferred) == 0 || code == "" {
		return 0, false
	}

	for _, p := range preferred {
		if strings.ToLower(strings.TrimSpace(p)) == code {
			return MOSExactPoints, true
		}
	}

	for _, p := range preferred {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.HasPrefix(code, p) || strings.HasPrefix(p, code) {
			return MOSPartialPoints, false
		}
	}

	return 0, false
}

func clearancePoints(required, held string) int {
	jobLevel := ClearanceLevel(required)
	candidateLevel := ClearanceLevel(held)
	if jobLevel == LevelNotFound || candidateLevel == LevelNotFound {
		return 0
	}
	if candidateLevel >= jobLevel {
		return ClearancePoints
	}
	return 0
}

func skillPoints(required, held []string) int {
	if len(required) == 0 || len(held) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(held))
	for _, s := range held {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	matched := 0
	for _, s := range required {
		if _, ok := have[strings.ToLower(strings.TrimSpace(s))]; ok {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(len(required)) * SkillsPoints))
}

func locationPoints(job Job, candidate Candidate) int {
	if equalFold(job.City, candidate.City) {
		return CityPoints
	}
	if equalFold(job.State, candidate.State) {
		return StatePoints
	}
	return 0
}

// equalFold reports a case-insensitive match of two non-empty values.
func equalFold(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && b != "" && strings.EqualFold(a, b)
}

// Ranked pairs a job with its score.
type Ranked struct {
	Job    Job
	Result Result
}

// RankedCandidate points at a candidate by its position in the input slice.
type RankedCandidate struct {
	Index  int
	Result Result
}

// Rank scores every job for candidate, drops zero scores and sorts the rest
// by descending score. Jobs with equal scores keep their input order.
func Rank(candidate Candidate, jobs []Job) []Ranked {
	hits := rank(len(jobs), func(i int) Result { return Score(jobs[i], candidate) })
	ranked := make([]Ranked, 0, len(hits))
	for _, h := range hits {
		ranked = append(ranked, Ranked{Job: jobs[h.index], Result: h.result})
	}
	return ranked
}

// RankCandidates is Rank seen from the job side, with the same ordering
// rules.
func RankCandidates(job Job, candidates []Candidate) []RankedCandidate {
	hits := rank(len(candidates), func(i int) Result { return Score(job, candidates[i]) })
	ranked := make([]RankedCandidate, 0, len(hits))
	for _, h := range hits {
		ranked = append(ranked, RankedCandidate{Index: h.index, Result: h.result})
	}
	return ranked
}

type hit struct {
	index  int
	result Result
}

func rank(n int, score func(i int) Result) []hit {
	hits := make([]hit, 0, n)
	for i := 0; i < n; i++ {
		res := score(i)
		if res.Score == 0 {
			continue
		}
		hits = append(hits, hit{index: i, result: res})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].result.Score > hits[j].result.Score
	})
	return hits
}
