package standings

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Rounds that pay a dividend. Group-stage fixtures carry the matchday number
// as their round tag.
const (
	RoundGroup1   = "1"
	RoundGroup2   = "2"
	RoundGroup3   = "3"
	RoundOf16     = "Round of 16"
	QuarterFinals = "Quarter Finals"
	SemiFinals    = "Semi Finals"
	RoundFinal    = "Final"
)

type Outcome string

const (
	Win  Outcome = "W"
	Draw Outcome = "D"
	Loss Outcome = "L"
)

// Fixture is one scheduled match. An empty Result means the match has not
// been played yet.
type Fixture struct {
	MatchNumber int
	Round       string
	Group       string
	Date        time.Time
	HomeTeam    string
	AwayTeam    string
	Location    string
	Result      string
}

func (f Fixture) played() bool {
	return strings.TrimSpace(f.Result) != ""
}

// resultPattern matches "2-1" and "1-1 (4-3)", the shootout annotation used
// for knockout matches decided on penalties.
var resultPattern = regexp.MustCompile(`^(\d+)-(\d+)(?:\s*\((\d+)-(\d+)\))?$`)

// Score parses the fixture result into home and away goals. When a
// parenthesized shootout score is present it takes precedence, so a knockout
// match decided on penalties always resolves to a win and a loss.
func (f Fixture) Score() (home, away int, err error) {
	m := resultPattern.FindStringSubmatch(strings.TrimSpace(f.Result))
	if m == nil {
		return 0, 0, &ParseError{MatchNumber: f.MatchNumber, Result: f.Result}
	}

	homeDigits, awayDigits := m[1], m[2]
	if m[3] != "" {
		homeDigits, awayDigits = m[3], m[4]
	}

	home, err = strconv.Atoi(homeDigits)
	if err == nil {
		away, err = strconv.Atoi(awayDigits)
	}
	if err != nil {
		// A digit run too long for int still has to fail, not clamp.
		return 0, 0, &ParseError{MatchNumber: f.MatchNumber, Result: f.Result}
	}
	return home, away, nil
}

// Outcomes classifies the fixture from each side's perspective.
func (f Fixture) Outcomes() (home, away Outcome, err error) {
	homeGoals, awayGoals, err := f.Score()
	if err != nil {
		return "", "", err
	}

	switch {
	case homeGoals > awayGoals:
		return Win, Loss, nil
	case homeGoals < awayGoals:
		return Loss, Win, nil
	default:
		return Draw, Draw, nil
	}
}

// Dividend returns the points a team earns for the given outcome in the
// given round. Unknown rounds and knockout draws are hard failures, never a
// silent zero.
func Dividend(f Fixture, outcome Outcome) (float64, error) {
	switch f.Round {
	case RoundGroup1, RoundGroup2, RoundGroup3:
		switch outcome {
		case Win:
			return 1, nil
		case Draw:
			return 0.5, nil
		default:
			return 0, nil
		}
	case RoundOf16, QuarterFinals, SemiFinals, RoundFinal:
		switch outcome {
		case Win:
			return knockoutWinDividend[f.Round], nil
		case Draw:
			return 0, &InvalidRoundOutcomeError{MatchNumber: f.MatchNumber, Round: f.Round}
		default:
			return 0, nil
		}
	default:
		return 0, &UnknownRoundError{Round: f.Round}
	}
}

var knockoutWinDividend = map[string]float64{
	RoundOf16:     2,
	QuarterFinals: 4,
	SemiFinals:    8,
	RoundFinal:    16,
}

// ValidateTeams checks every played-or-not fixture against the reference
// team list. Placeholder names like "Winner Match 37" are only flagged once
// the fixture has a result.
func ValidateTeams(fixtures []Fixture, teams []string) error {
	known := make(map[string]bool, len(teams))
	for _, t := range teams {
		known[t] = true
	}

	for _, f := range fixtures {
		if !f.played() {
			continue
		}
		if !known[f.HomeTeam] {
			return &InputInconsistencyError{MatchNumber: f.MatchNumber, Team: f.HomeTeam}
		}
		if !known[f.AwayTeam] {
			return &InputInconsistencyError{MatchNumber: f.MatchNumber, Team: f.AwayTeam}
		}
	}
	return nil
}
