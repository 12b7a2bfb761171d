package models

// MatchParams is the immutable input bundle handed to match execution at
// round start. Content fields are empty until the match's round-start
// message supplies them; an updated value is a new MatchParams, never a
// mutation of an existing one.
type MatchParams struct {
	// MatchID is the 7-character SSRRGGG match identifier
	MatchID string

	// GameID equals MatchID in the current protocol version
	GameID string

	// SeasonID identifies the season the match belongs to
	SeasonID string

	// RoundNumber is the round the match is played in
	RoundNumber int

	// SequenceNumber is the match's sequence within the round
	SequenceNumber int

	// RefereeID is the referee's address
	RefereeID string

	// OpponentID is the opposing player's address, empty when unknown
	OpponentID string

	// Role is the local player's role (PLAYER1 or PLAYER2)
	Role string

	// BookName is the book or lecture title, from the round-start message
	BookName string

	// BookHint is the short book description, from the round-start message
	BookHint string

	// AssociationWord is the association domain, from the round-start message
	AssociationWord string
}

// WithContent returns a copy of the params with the round-start content
// fields filled in.
func (p MatchParams) WithContent(bookName, bookHint, associationWord string) MatchParams {
	p.BookName = bookName
	p.BookHint = bookHint
	p.AssociationWord = associationWord
	return p
}
