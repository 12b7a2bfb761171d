package league

import "errors"

// ErrUnknownLeagueMessage indicates a league-classified message type this
// handler does not know. All league types are known a priori, so an unknown
// one is a coordinator bug or a protocol version mismatch and must never be
// silently dropped.
var ErrUnknownLeagueMessage = errors.New("unknown league message type")
