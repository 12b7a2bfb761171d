package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/q21league/q21player/internal/handlers/discord"
	assignmentRepo "github.com/q21league/q21player/internal/repositories/assignment"
	reportRepo "github.com/q21league/q21player/internal/repositories/report"
	leagueService "github.com/q21league/q21player/internal/services/league"
	roundService "github.com/q21league/q21player/internal/services/round"
	routerService "github.com/q21league/q21player/internal/services/router"
	"github.com/q21league/q21player/internal/strategy"
)

func main() {
	// Load .env if present; environment variables win
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	playerID := getEnv("PLAYER_ID", "")
	if playerID == "" {
		log.Fatal("PLAYER_ID environment variable is required")
	}
	playerName := getEnv("PLAYER_NAME", playerID)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	assignments, err := assignmentRepo.NewRedis(&assignmentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create assignment repository: %v", err)
	}

	reports, err := reportRepo.NewRedis(&reportRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create report repository: %v", err)
	}

	// Initialize services
	roundSvc, err := roundService.NewService(&roundService.Config{
		PlayerID:       playerID,
		Strategy:       strategy.NewDemo(),
		AssignmentRepo: assignments,
		ReportRepo:     reports,
	})
	if err != nil {
		log.Fatalf("Failed to create round service: %v", err)
	}

	leagueSvc, err := leagueService.NewService(&leagueService.Config{
		PlayerID:   playerID,
		PlayerName: playerName,
		Round:      roundSvc,
		ReportRepo: reports,
	})
	if err != nil {
		log.Fatalf("Failed to create league service: %v", err)
	}

	routerSvc, err := routerService.NewService(&routerService.Config{
		League: leagueSvc,
		Round:  roundSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create router service: %v", err)
	}

	// Get Discord configuration from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	channelID := getEnv("LEAGUE_CHANNEL_ID", "")
	if channelID == "" {
		log.Fatal("LEAGUE_CHANNEL_ID environment variable is required")
	}

	sendRate, err := strconv.ParseFloat(getEnv("SEND_RATE", "1"), 64)
	if err != nil {
		log.Fatalf("Invalid SEND_RATE: %v", err)
	}

	// Initialize the Discord bridge
	bridge, err := discord.New(&discord.Config{
		Token:         discordToken,
		ChannelID:     channelID,
		PlayerID:      playerID,
		LeagueAddress: getEnv("LEAGUE_ADDRESS", "league"),
		Router:        routerSvc,
		Round:         roundSvc,
		SendRate:      sendRate,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bridge: %v", err)
	}

	// Start the bridge
	if err := bridge.Start(); err != nil {
		log.Fatalf("Failed to start Discord bridge: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bridge
	if err := bridge.Stop(); err != nil {
		log.Printf("Error stopping bridge: %v", err)
	}

	log.Println("Player has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
