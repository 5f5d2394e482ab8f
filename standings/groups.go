package standings

import "sort"

// TableRow is one line of a group-stage league table.
type TableRow struct {
	Position       int
	Team           string
	Played         int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
}

// GroupTable builds the league table for one group from its fixtures using
// the usual 3/1/0 match points. Unplayed fixtures still seed their teams into
// the table with zero played. customOrder, when non-empty, overrides the
// sorting entirely; it covers groups whose final order was decided by
// tie-break criteria the fixture data cannot express.
func GroupTable(group string, fixtures []Fixture, customOrder []string) ([]TableRow, error) {
	rows := make(map[string]*TableRow)

	entry := func(team string) *TableRow {
		if rows[team] == nil {
			rows[team] = &TableRow{Team: team}
		}
		return rows[team]
	}

	for _, f := range fixtures {
		if f.Group != group {
			continue
		}

		home, away := entry(f.HomeTeam), entry(f.AwayTeam)

		if !f.played() {
			continue
		}

		homeGoals, awayGoals, err := f.Score()
		if err != nil {
			return nil, err
		}

		home.Played++
		away.Played++
		home.GoalsFor += homeGoals
		home.GoalsAgainst += awayGoals
		away.GoalsFor += awayGoals
		away.GoalsAgainst += homeGoals

		switch {
		case homeGoals > awayGoals:
			home.Points += 3
		case homeGoals < awayGoals:
			away.Points += 3
		default:
			home.Points++
			away.Points++
		}
	}

	table := make([]TableRow, 0, len(rows))
	for _, row := range rows {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		table = append(table, *row)
	}

	if len(customOrder) > 0 {
		orderIndex := make(map[string]int, len(customOrder))
		for i, team := range customOrder {
			orderIndex[team] = i
		}
		sort.Slice(table, func(i, j int) bool {
			return orderIndex[table[i].Team] < orderIndex[table[j].Team]
		})
	} else {
		sort.Slice(table, func(i, j int) bool {
			a, b := table[i], table[j]
			if a.Points != b.Points {
				return a.Points > b.Points
			}
			if a.GoalDifference != b.GoalDifference {
				return a.GoalDifference > b.GoalDifference
			}
			if a.GoalsFor != b.GoalsFor {
				return a.GoalsFor > b.GoalsFor
			}
			return a.Team < b.Team
		})
	}

	for i := range table {
		table[i].Position = i + 1
	}
	return table, nil
}
