package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/q21league/q21player/internal/models"
)

const (
	// Key prefixes for Redis
	reportKeyPrefix    = "report:"
	roundIndexPrefix   = "reports:"
	standingsKeyPrefix = "standings:"
)

// Define errors
var (
	// ErrReportNotFound is returned when no report is archived for a match
	ErrReportNotFound = errors.New("report not found")

	// ErrStandingsNotFound is returned when no standings snapshot exists
	ErrStandingsNotFound = errors.New("standings not found")
)

// Config holds configuration for the Redis report repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed report repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveReport archives a match report and indexes it under its round
func (r *redisRepository) SaveReport(ctx context.Context, input *SaveReportInput) error {
	if input == nil || input.Report == nil {
		return errors.New("input and report cannot be nil")
	}

	reportJSON, err := json.Marshal(input.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	pipe := r.client.Pipeline()

	reportKey := fmt.Sprintf("%s%s", reportKeyPrefix, input.Report.MatchID)
	pipe.Set(ctx, reportKey, reportJSON, 0)

	indexKey := roundIndexKey(input.Report.SeasonID, input.Report.RoundNumber)
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(input.Report.ReportedAt.UnixNano()),
		Member: input.Report.MatchID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// GetReport retrieves the archived report for a match
func (r *redisRepository) GetReport(ctx context.Context, input *GetReportInput) (*models.MatchReport, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	reportKey := fmt.Sprintf("%s%s", reportKeyPrefix, input.MatchID)
	reportJSON, err := r.client.Get(ctx, reportKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report models.MatchReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}

// ListReports retrieves all reports archived for a round, oldest first
func (r *redisRepository) ListReports(ctx context.Context, input *ListReportsInput) ([]*models.MatchReport, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	indexKey := roundIndexKey(input.SeasonID, input.RoundNumber)
	matchIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]*models.MatchReport, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		report, err := r.GetReport(ctx, &GetReportInput{MatchID: matchID})
		if err != nil {
			if errors.Is(err, ErrReportNotFound) {
				continue
			}
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// SaveStandings stores the latest standings snapshot for a season
func (r *redisRepository) SaveStandings(ctx context.Context, input *SaveStandingsInput) error {
	if input == nil || input.Standings == nil {
		return errors.New("input and standings cannot be nil")
	}

	standingsJSON, err := json.Marshal(input.Standings)
	if err != nil {
		return fmt.Errorf("failed to marshal standings: %w", err)
	}

	key := fmt.Sprintf("%s%s", standingsKeyPrefix, input.SeasonID)
	if err := r.client.Set(ctx, key, standingsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save standings: %w", err)
	}

	return nil
}

// GetStandings retrieves the standings snapshot for a season
func (r *redisRepository) GetStandings(ctx context.Context, input *GetStandingsInput) (*models.Standings, error) {
	if input == nil || input.SeasonID == "" {
		return nil, errors.New("input and season ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", standingsKeyPrefix, input.SeasonID)
	standingsJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStandingsNotFound
		}
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	var standings models.Standings
	if err := json.Unmarshal([]byte(standingsJSON), &standings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal standings: %w", err)
	}

	return &standings, nil
}

func roundIndexKey(seasonID string, roundNumber int) string {
	return fmt.Sprintf("%s%s:%d", roundIndexPrefix, seasonID, roundNumber)
}
