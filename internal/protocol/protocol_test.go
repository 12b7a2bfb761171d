package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		msgType string
		want    Kind
	}{
		{"start season broadcast", TypeStartSeason, KindLeague},
		{"registration response", TypeRegistrationResponse, KindLeague},
		{"league completed", TypeLeagueCompleted, KindLeague},
		{"keep alive", TypeKeepAlive, KindLeague},
		{"warmup call", TypeWarmupCall, KindGame},
		{"score feedback", TypeScoreFeedback, KindGame},
		{"unknown type", "SOMETHING_ELSE", KindUnknown},
		{"empty type", "", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.msgType))
		})
	}
}

func TestCanonicalMatchID(t *testing.T) {
	assert.Equal(t, "0102003", CanonicalMatchID("0102003"))
	assert.Equal(t, "0102003", CanonicalMatchID("match-0102003"))
	assert.Equal(t, "0102003", CanonicalMatchID("Q21G.v1/0102003"))
	assert.Equal(t, "003", CanonicalMatchID("003"))
}

func TestRoundNumber(t *testing.T) {
	assert.Equal(t, 2, RoundNumber("0102003"))
	assert.Equal(t, 12, RoundNumber("0112003"))
	assert.Equal(t, 1, RoundNumber("01"))
	assert.Equal(t, 1, RoundNumber("xxyyzzz"))
}

func TestSequenceNumber(t *testing.T) {
	assert.Equal(t, 3, SequenceNumber("0102003"))
	assert.Equal(t, 123, SequenceNumber("0102123"))
	assert.Equal(t, 1, SequenceNumber("0102"))
}

func TestPayloadFields(t *testing.T) {
	payload := map[string]any{
		"match_id":      "0101001",
		"league_points": float64(85),
		"private_score": 0.9,
		"answers":       []any{"A", "B"},
		"breakdown":     map[string]any{"accuracy": 0.95},
	}

	assert.Equal(t, "0101001", StringField(payload, "match_id"))
	assert.Equal(t, "", StringField(payload, "missing"))
	assert.Equal(t, 85, IntField(payload, "league_points", 0))
	assert.Equal(t, 7, IntField(payload, "missing", 7))
	assert.Equal(t, 0.9, FloatField(payload, "private_score"))
	assert.Len(t, SliceField(payload, "answers"), 2)
	assert.Equal(t, 0.95, MapField(payload, "breakdown")["accuracy"])
	assert.Nil(t, MapField(payload, "missing"))
}
