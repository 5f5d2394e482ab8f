package controllers

import (
	"context"

	"github.com/jday1/euros/storage"
)

// Slice-backed storage fakes so controller tests run without DynamoDB.
// Insertion order is preserved; controllers are expected to sort anything
// the client sees.

type memTeamStorage struct {
	teams []*storage.Team
}

func (m *memTeamStorage) Get(_ context.Context, name string) (*storage.Team, error) {
	for _, t := range m.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memTeamStorage) GetAll(_ context.Context) ([]*storage.Team, error) {
	return m.teams, nil
}

func (m *memTeamStorage) Create(_ context.Context, team *storage.Team) error {
	for _, t := range m.teams {
		if t.Name == team.Name {
			return storage.ErrAlreadyExists
		}
	}
	m.teams = append(m.teams, team)
	return nil
}

func (m *memTeamStorage) Update(_ context.Context, team *storage.Team) error {
	for i, t := range m.teams {
		if t.Name == team.Name {
			m.teams[i] = team
			return nil
		}
	}
	m.teams = append(m.teams, team)
	return nil
}

func (m *memTeamStorage) Delete(_ context.Context, name string) error {
	for i, t := range m.teams {
		if t.Name == name {
			m.teams = append(m.teams[:i], m.teams[i+1:]...)
			return nil
		}
	}
	return nil
}

type memFixtureStorage struct {
	fixtures []*storage.Fixture
}

func (m *memFixtureStorage) Get(_ context.Context, matchNumber int) (*storage.Fixture, error) {
	for _, f := range m.fixtures {
		if f.MatchNumber == matchNumber {
			return f, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memFixtureStorage) GetAll(_ context.Context) ([]*storage.Fixture, error) {
	return m.fixtures, nil
}

func (m *memFixtureStorage) Put(_ context.Context, fixture *storage.Fixture) error {
	for i, f := range m.fixtures {
		if f.MatchNumber == fixture.MatchNumber {
			m.fixtures[i] = fixture
			return nil
		}
	}
	m.fixtures = append(m.fixtures, fixture)
	return nil
}

func (m *memFixtureStorage) SetResult(_ context.Context, matchNumber int, result string) error {
	for _, f := range m.fixtures {
		if f.MatchNumber == matchNumber {
			f.Result = result
			return nil
		}
	}
	return storage.ErrNotFound
}

type memPickStorage struct {
	picks []*storage.Pick
}

func (m *memPickStorage) GetAll(_ context.Context) ([]*storage.Pick, error) {
	return m.picks, nil
}

func (m *memPickStorage) GetByUser(_ context.Context, username string) ([]*storage.Pick, error) {
	var out []*storage.Pick
	for _, p := range m.picks {
		if p.Username == username {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPickStorage) ReplaceForUser(_ context.Context, username string, picks []*storage.Pick) error {
	var kept []*storage.Pick
	for _, p := range m.picks {
		if p.Username != username {
			kept = append(kept, p)
		}
	}
	m.picks = append(kept, picks...)
	return nil
}

func (m *memPickStorage) DeleteAll(_ context.Context) error {
	m.picks = nil
	return nil
}

type memPlayerStorage struct {
	players []*storage.Player
}

func (m *memPlayerStorage) Get(_ context.Context, username string) (*storage.Player, error) {
	for _, p := range m.players {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memPlayerStorage) GetAll(_ context.Context) ([]*storage.Player, error) {
	return m.players, nil
}

func (m *memPlayerStorage) Create(_ context.Context, player *storage.Player) error {
	for _, p := range m.players {
		if p.Username == player.Username {
			return storage.ErrAlreadyExists
		}
	}
	m.players = append(m.players, player)
	return nil
}

type memCodeStorage struct {
	codes []*storage.InviteCode
}

func (m *memCodeStorage) Get(_ context.Context, code string) (*storage.InviteCode, error) {
	for _, c := range m.codes {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memCodeStorage) GetAll(_ context.Context) ([]*storage.InviteCode, error) {
	return m.codes, nil
}

func (m *memCodeStorage) Put(_ context.Context, inviteCode *storage.InviteCode) error {
	m.codes = append(m.codes, inviteCode)
	return nil
}

func (m *memCodeStorage) MarkUsed(_ context.Context, code string) error {
	for _, c := range m.codes {
		if c.Code == code {
			if c.Used {
				return storage.ErrAlreadyExists
			}
			c.Used = true
			return nil
		}
	}
	return storage.ErrNotFound
}

func (m *memCodeStorage) Delete(_ context.Context, code string) error {
	for i, c := range m.codes {
		if c.Code == code {
			m.codes = append(m.codes[:i], m.codes[i+1:]...)
			return nil
		}
	}
	return nil
}

type memFixtureSource struct {
	fixtures []*storage.Fixture
	err      error
}

func (m *memFixtureSource) Load(_ context.Context) ([]*storage.Fixture, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.fixtures, nil
}
