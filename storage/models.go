package storage

import "time"

// Team is tournament reference data, loaded once per session.
type Team struct {
	Name  string `dynamodbav:"PK"`
	Group string `dynamodbav:"Group"`
	Flag  string `dynamodbav:"Flag"`
}

// Fixture is one scheduled match. Result stays empty until the match has
// been played; knockout results may carry a shootout score like "1-1 (4-3)".
type Fixture struct {
	MatchNumber int       `dynamodbav:"PK"`
	Round       string    `dynamodbav:"RoundNumber"`
	Group       string    `dynamodbav:"Group"`
	Date        time.Time `dynamodbav:"Date"`
	HomeTeam    string    `dynamodbav:"HomeTeam"`
	AwayTeam    string    `dynamodbav:"AwayTeam"`
	Location    string    `dynamodbav:"Location"`
	Result      string    `dynamodbav:"Result"`
}

// Pick is one user's token count for one team.
type Pick struct {
	Username  string    `dynamodbav:"PK" json:"username"`
	Team      string    `dynamodbav:"SK" json:"team"`
	Tokens    int       `dynamodbav:"Tokens" json:"tokens"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt" json:"updatedAt"`
}

// Player is a registered participant. Credentials back the basic-auth layer.
type Player struct {
	Username    string    `dynamodbav:"PK"`
	Password    string    `dynamodbav:"Password"`
	DisplayName string    `dynamodbav:"DisplayName"`
	CreatedAt   time.Time `dynamodbav:"CreatedAt"`
}

// InviteCode is a single-use code that lets a new player register before
// the cutoff.
type InviteCode struct {
	Code      string    `dynamodbav:"PK"`
	Used      bool      `dynamodbav:"Used"`
	CreatedAt time.Time `dynamodbav:"CreatedAt"`
}
