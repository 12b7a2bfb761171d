// Package discord bridges the player to the league's shared Discord
// channel. Inbound channel messages carry JSON envelopes that are decoded
// and handed to the router; responses and match reports go back out on the
// same channel through a rate limiter.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"github.com/q21league/q21player/internal/models"
	"github.com/q21league/q21player/internal/protocol"
	"github.com/q21league/q21player/internal/services/round"
	"github.com/q21league/q21player/internal/services/router"
)

const reporterRole = "PLAYER"

// Bridge connects the message router to a Discord channel
type Bridge struct {
	session       *discordgo.Session
	router        router.Service
	round         round.Service
	limiter       *rate.Limiter
	channelID     string
	playerID      string
	leagueAddress string
}

// Config holds the configuration for the bridge
type Config struct {
	// Token is the Discord bot token
	Token string

	// ChannelID is the league's shared channel
	ChannelID string

	// PlayerID is the local player's league address
	PlayerID string

	// LeagueAddress is where match reports are sent
	LeagueAddress string

	// Router dispatches decoded messages
	Router router.Service

	// Round answers participation queries for round-start logging; optional
	Round round.Service

	// SendRate caps outbound messages per second; zero means one per second
	SendRate float64
}

// New creates a new bridge
func New(cfg *Config) (*Bridge, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	if cfg.Router == nil {
		return nil, errors.New("router service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	// The services are not safe for concurrent mutation; events must be
	// processed one at a time in arrival order.
	session.SyncEvents = true

	sendRate := cfg.SendRate
	if sendRate <= 0 {
		sendRate = 1
	}

	bridge := &Bridge{
		session:       session,
		router:        cfg.Router,
		round:         cfg.Round,
		limiter:       rate.NewLimiter(rate.Limit(sendRate), 1),
		channelID:     cfg.ChannelID,
		playerID:      cfg.PlayerID,
		leagueAddress: cfg.LeagueAddress,
	}

	session.AddHandler(bridge.handleMessageCreate)

	return bridge, nil
}

// Start opens the Discord connection
func (b *Bridge) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Printf("Bridge is listening on channel %s as %s", b.channelID, b.playerID)
	return nil
}

// Stop closes the Discord connection
func (b *Bridge) Stop() error {
	return b.session.Close()
}

// handleMessageCreate receives one channel message from the gateway
func (b *Bridge) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author != nil && m.Author.ID == s.State.User.ID {
		return
	}
	if m.ChannelID != b.channelID {
		return
	}

	outbound, err := b.Dispatch(context.Background(), m.Content)
	if err != nil {
		log.Printf("Failed to dispatch message: %v", err)
		return
	}

	for _, msg := range outbound {
		if err := b.send(context.Background(), msg); err != nil {
			log.Printf("Failed to send %s: %v", msg.Type, err)
		}
	}
}

// Dispatch decodes one envelope, routes it, and collects everything that
// must go back on the wire. Malformed envelopes and unrecognized types are
// dropped; only handler failures come back as errors.
func (b *Bridge) Dispatch(ctx context.Context, content string) ([]*models.OutboundMessage, error) {
	env, err := decodeEnvelope(content)
	if err != nil {
		log.Printf("Ignoring undecodable message: %v", err)
		return nil, nil
	}

	routed, err := b.router.Route(ctx, &router.RouteInput{
		Type:    env.MessageType,
		Payload: env.Payload,
		Sender:  env.Sender,
	})
	if err != nil {
		return nil, fmt.Errorf("routing %s: %w", env.MessageType, err)
	}
	if !routed.Handled {
		return nil, nil
	}

	if env.MessageType == protocol.TypeNewRound {
		b.logParticipation(ctx, protocol.IntField(env.Payload, "round_number", 1))
	}

	outbound := make([]*models.OutboundMessage, 0, 1+len(routed.Reports))
	if routed.Response != nil {
		outbound = append(outbound, routed.Response)
	}
	for _, report := range routed.Reports {
		outbound = append(outbound, report.ProtocolMessage(b.playerID, reporterRole, b.leagueAddress))
	}

	for _, match := range routed.Matches {
		log.Printf("Round %d: match %s as %s against %s", match.RoundNumber, match.MatchID, match.Role, match.OpponentID)
	}
	if routed.Summary != nil {
		log.Printf("Season %s complete: rank %d with %d points",
			routed.Summary.SeasonID, routed.Summary.FinalRank, routed.Summary.TotalPoints)
	}

	return outbound, nil
}

// logParticipation records whether the player has matches in the round
func (b *Bridge) logParticipation(ctx context.Context, roundNumber int) {
	if b.round == nil {
		return
	}

	has, err := b.round.HasAssignments(ctx, &round.HasAssignmentsInput{RoundNumber: roundNumber})
	if err != nil {
		log.Printf("Round %d: participation check failed: %v", roundNumber, err)
		return
	}
	if has.Active {
		log.Printf("Round %d: player %s is active", roundNumber, b.playerID)
	} else {
		log.Printf("Round %d: player %s sits out", roundNumber, b.playerID)
	}
}

// send writes one outbound message to the channel, honoring the rate limit
func (b *Bridge) send(ctx context.Context, msg *models.OutboundMessage) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for send slot: %w", err)
	}

	content, err := encodeOutbound(msg)
	if err != nil {
		return err
	}

	if _, err := b.session.ChannelMessageSend(b.channelID, content); err != nil {
		return fmt.Errorf("sending %s to channel %s: %w", msg.Type, b.channelID, err)
	}

	return nil
}
