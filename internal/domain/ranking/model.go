package ranking

// Row is one computed leaderboard line for a player. Rows are derived from
// scratch on every query and never persisted.
type Row struct {
	Position           int
	PlayerID           string
	PlayerName         string
	Points             float64
	Wins               int
	Presences          int
	Goals              int
	Assists            int
	YellowCards        int
	BlueCards          int
	RedCards           int
	LateTier1          int
	LateTier2          int
	AveragePerPresence float64
}
