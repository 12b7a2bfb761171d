package models

// Standings is the local player's last-known league position
type Standings struct {
	// Score is the accumulated league points
	Score int

	// MatchesPlayed is the number of matches counted so far
	MatchesPlayed int

	// Rank is the player's position in the league table
	Rank int
}

// SeasonSummary is the local view of a finished season
type SeasonSummary struct {
	// SeasonID identifies the finished season
	SeasonID string

	// FinalRank is the player's rank in the final standings
	FinalRank int

	// TotalPoints is the player's final point total
	TotalPoints int

	// SeasonComplete is always true once the summary exists
	SeasonComplete bool
}
