// Package domain holds the typed records served by the API.
//
// All records are read-only snapshots of the store: nothing in this
// process ever mutates them. Optional columns are pointer fields so a
// NULL survives the round trip as JSON null. JSON field names follow
// the public wire format (camelCase, entity-prefixed).
package domain

import "time"

// Team is a league franchise.
type Team struct {
	ID       int64   `json:"teamId"`
	Name     string  `json:"teamName"`
	City     *string `json:"teamCity"`
	Abbrev   *string `json:"teamAbbrev"`
	IsActive bool    `json:"teamIsActive"`
	LogoURL  *string `json:"teamLogoUrl"`
}

// Player is a skater or goaltender. TeamID is nil for unassigned
// players; it is a weak reference, not an ownership link.
type Player struct {
	ID          int64   `json:"playerId"`
	TeamID      *int64  `json:"playerTeamId"`
	FirstName   string  `json:"playerFirstName"`
	LastName    string  `json:"playerLastName"`
	Number      *int    `json:"playerNumber"`
	Position    *string `json:"playerPosition"`
	HeadshotURL *string `json:"playerHeadshotUrl"`
	HomeCity    *string `json:"playerHomeCity"`
	HomeCountry *string `json:"playerHomeCountry"`
	IsActive    bool    `json:"playerIsActive"`
}

// Game is a single scheduled or played game. StartTimeUTC is the
// authoritative start timestamp; civil-date filtering converts the
// requested local day to UTC bounds against this column. Scores and
// shots-on-goal are non-decreasing while live and frozen once final.
type Game struct {
	ID           int64     `json:"gameId"`
	Season       int       `json:"gameSeason"`
	Type         int       `json:"gameType"`
	StartTimeUTC time.Time `json:"gameDateTimeUtc"`
	Venue        *string   `json:"gameVenue"`
	HomeTeamID   int64     `json:"gameHomeTeamId"`
	AwayTeamID   int64     `json:"gameAwayTeamId"`
	State        string    `json:"gameState"`
	Period       *int      `json:"gamePeriod"`
	Clock        *string   `json:"gameClock"`
	HomeScore    int       `json:"gameHomeScore"`
	AwayScore    int       `json:"gameAwayScore"`
	HomeSOG      int       `json:"gameHomeSOG"`
	AwaySOG      int       `json:"gameAwaySOG"`

	// Joined team display fields; nil when the referenced team row is
	// missing (weak reference).
	HomeTeamName   *string `json:"homeTeamName"`
	HomeTeamAbbrev *string `json:"homeTeamAbbrev"`
	AwayTeamName   *string `json:"awayTeamName"`
	AwayTeamAbbrev *string `json:"awayTeamAbbrev"`
}

// Play is one play-by-play event. Ordering within a game is by period,
// then by Index within the period. LosingPlayerID is only set for
// faceoff-type events.
type Play struct {
	ID                int64   `json:"playId"`
	GameID            int64   `json:"playGameId"`
	Index             int     `json:"playIndex"`
	TeamID            *int64  `json:"playTeamId"`
	PrimaryPlayerID   *int64  `json:"playPrimaryPlayerId"`
	LosingPlayerID    *int64  `json:"playLosingPlayerId"`
	SecondaryPlayerID *int64  `json:"playSecondaryPlayerId"`
	TertiaryPlayerID  *int64  `json:"playTertiaryPlayerId"`
	Period            int     `json:"playPeriod"`
	Time              string  `json:"playTime"`
	TimeRemaining     string  `json:"playTimeRemaining"`
	Type              string  `json:"playType"`
	Zone              *int    `json:"playZone"`
	XCoord            *int    `json:"playXCoord"`
	YCoord            *int    `json:"playYCoord"`
}

// GameDetail pairs a game with its full ordered play sequence. It is a
// response artifact only and is never persisted. The two underlying
// reads are not transactional; a write landing between them can leave
// the play list slightly ahead of the game's reported period/clock.
type GameDetail struct {
	Game  Game   `json:"game"`
	Plays []Play `json:"plays"`
}
