package standings

import "sort"

// Allocation is one user's token count for one team.
type Allocation struct {
	User   string
	Team   string
	Tokens int
}

// Ownership holds the fraction of each team owned by each user.
type Ownership struct {
	fractions map[string]map[string]float64
	users     []string
}

// NormalizeAllocations turns raw token counts into ownership fractions: a
// user's share of a team is their tokens divided by the team's total tokens
// across all users. A team nobody picked has fraction 0 for everyone, not an
// error, so it simply pays out nothing.
func NormalizeAllocations(allocations []Allocation) *Ownership {
	totals := make(map[string]int)
	tokens := make(map[string]map[string]int)
	userSet := make(map[string]bool)

	for _, a := range allocations {
		totals[a.Team] += a.Tokens
		if tokens[a.Team] == nil {
			tokens[a.Team] = make(map[string]int)
		}
		tokens[a.Team][a.User] += a.Tokens
		userSet[a.User] = true
	}

	users := make([]string, 0, len(userSet))
	for u := range userSet {
		users = append(users, u)
	}
	sort.Strings(users)

	fractions := make(map[string]map[string]float64, len(tokens))
	for team, byUser := range tokens {
		fractions[team] = make(map[string]float64, len(users))
		for _, user := range users {
			if totals[team] > 0 {
				fractions[team][user] = float64(byUser[user]) / float64(totals[team])
			} else {
				fractions[team][user] = 0
			}
		}
	}

	return &Ownership{fractions: fractions, users: users}
}

// Users returns every user present in the allocations, sorted.
func (o *Ownership) Users() []string {
	return o.users
}

// Fraction returns the user's share of the team, 0 when either is unknown.
func (o *Ownership) Fraction(team, user string) float64 {
	return o.fractions[team][user]
}
