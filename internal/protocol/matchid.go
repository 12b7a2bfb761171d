package protocol

import "strconv"

// Match ids use a fixed 7-character SSRRGGG encoding: season (2 digits),
// round (2 digits), sequence (3 digits). Routing treats ids as opaque
// comparable keys; only report numbering derives values from the encoding.
const matchIDLength = 7

// CanonicalMatchID strips decoration from a match id by taking the trailing
// 7 characters. Shorter ids are returned unchanged.
func CanonicalMatchID(raw string) string {
	if len(raw) <= matchIDLength {
		return raw
	}
	return raw[len(raw)-matchIDLength:]
}

// RoundNumber extracts the round from a canonical match id. Malformed ids
// default to round 1.
func RoundNumber(matchID string) int {
	if len(matchID) < 4 {
		return 1
	}
	n, err := strconv.Atoi(matchID[2:4])
	if err != nil {
		return 1
	}
	return n
}

// SequenceNumber extracts the match sequence from a canonical match id.
// Malformed ids default to sequence 1.
func SequenceNumber(matchID string) int {
	if len(matchID) < matchIDLength {
		return 1
	}
	n, err := strconv.Atoi(matchID[4:7])
	if err != nil {
		return 1
	}
	return n
}
