package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/stbguild/guildhall/internal/common/clock"
	"github.com/stbguild/guildhall/internal/common/uuid"
	"github.com/stbguild/guildhall/internal/handlers/discord"
	"github.com/stbguild/guildhall/internal/handlers/httpapi"
	accountRepo "github.com/stbguild/guildhall/internal/repositories/account"
	activityRepo "github.com/stbguild/guildhall/internal/repositories/activity"
	boardRepo "github.com/stbguild/guildhall/internal/repositories/board"
	financeRepo "github.com/stbguild/guildhall/internal/repositories/finance"
	messageRepo "github.com/stbguild/guildhall/internal/repositories/message"
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
	squadRepo "github.com/stbguild/guildhall/internal/repositories/squad"
	tournamentRepo "github.com/stbguild/guildhall/internal/repositories/tournament"
	authService "github.com/stbguild/guildhall/internal/services/auth"
	boardService "github.com/stbguild/guildhall/internal/services/board"
	chatService "github.com/stbguild/guildhall/internal/services/chat"
	dashboardService "github.com/stbguild/guildhall/internal/services/dashboard"
	financeService "github.com/stbguild/guildhall/internal/services/finance"
	gradingService "github.com/stbguild/guildhall/internal/services/grading"
	rosterService "github.com/stbguild/guildhall/internal/services/roster"
	tournamentService "github.com/stbguild/guildhall/internal/services/tournament"
)

func main() {
	// Load .env when present; real deployments set the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

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
	accounts, err := accountRepo.NewRedis(&accountRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create account repository: %v", err)
	}

	profiles, err := profileRepo.NewRedis(&profileRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create profile repository: %v", err)
	}

	squads, err := squadRepo.NewRedis(&squadRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create squad repository: %v", err)
	}

	tournaments, err := tournamentRepo.NewRedis(&tournamentRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create tournament repository: %v", err)
	}

	finances, err := financeRepo.NewRedis(&financeRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create finance repository: %v", err)
	}

	boards, err := boardRepo.NewRedis(&boardRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create board repository: %v", err)
	}

	messages, err := messageRepo.NewRedis(&messageRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create message repository: %v", err)
	}

	activities, err := activityRepo.NewRedis(&activityRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create activity repository: %v", err)
	}

	systemClock := clock.New()
	uuidGen := uuid.New()

	// Initialize services
	authSvc, err := authService.New(&authService.Config{
		AccountRepo: accounts,
		ProfileRepo: profiles,
		Clock:       systemClock,
		UUID:        uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	rosterSvc, err := rosterService.New(&rosterService.Config{
		ProfileRepo:  profiles,
		SquadRepo:    squads,
		ActivityRepo: activities,
		Clock:        systemClock,
		UUID:         uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create roster service: %v", err)
	}

	slotCapacity, _ := strconv.Atoi(getEnv("SLOT_CAPACITY", "0"))

	tournamentSvc, err := tournamentService.New(&tournamentService.Config{
		TournamentRepo: tournaments,
		ActivityRepo:   activities,
		Clock:          systemClock,
		UUID:           uuidGen,
		SlotCapacity:   slotCapacity,
	})
	if err != nil {
		log.Fatalf("Failed to create tournament service: %v", err)
	}

	financeSvc, err := financeService.New(&financeService.Config{
		FinanceRepo:  finances,
		ActivityRepo: activities,
		Clock:        systemClock,
		UUID:         uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create finance service: %v", err)
	}

	// The Discord bridge is optional; without a token urgent notices
	// only appear on the board
	var announcer *discord.Announcer
	discordToken := getEnv("DISCORD_TOKEN", "")
	discordChannel := getEnv("DISCORD_CHANNEL_ID", "")
	if discordToken != "" && discordChannel != "" {
		announcer, err = discord.New(&discord.Config{
			Token:     discordToken,
			ChannelID: discordChannel,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord announcer: %v", err)
		}

		if err := announcer.Start(); err != nil {
			log.Fatalf("Failed to start Discord announcer: %v", err)
		}
	}

	boardCfg := &boardService.Config{
		BoardRepo:    boards,
		ActivityRepo: activities,
		Clock:        systemClock,
		UUID:         uuidGen,
	}
	if announcer != nil {
		boardCfg.Announcer = announcer
	}

	boardSvc, err := boardService.New(boardCfg)
	if err != nil {
		log.Fatalf("Failed to create board service: %v", err)
	}

	chatSvc, err := chatService.New(&chatService.Config{
		MessageRepo: messages,
		Clock:       systemClock,
		UUID:        uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create chat service: %v", err)
	}

	gradingSvc, err := gradingService.New(&gradingService.Config{
		ProfileRepo: profiles,
		Clock:       systemClock,
		APIKey:      getEnv("GEMINI_API_KEY", ""),
		Model:       getEnv("GEMINI_MODEL", ""),
	})
	if err != nil {
		log.Fatalf("Failed to create grading service: %v", err)
	}

	dashboardSvc, err := dashboardService.New(&dashboardService.Config{
		ProfileRepo:    profiles,
		SquadRepo:      squads,
		TournamentRepo: tournaments,
		BoardRepo:      boards,
		ActivityRepo:   activities,
	})
	if err != nil {
		log.Fatalf("Failed to create dashboard service: %v", err)
	}

	// Initialize the HTTP API
	handler, err := httpapi.New(&httpapi.Config{
		AuthService:       authSvc,
		RosterService:     rosterSvc,
		TournamentService: tournamentSvc,
		FinanceService:    financeSvc,
		BoardService:      boardSvc,
		ChatService:       chatSvc,
		GradingService:    gradingSvc,
		DashboardService:  dashboardSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}
	handler.Run()

	// No read/write timeouts here: the chat websocket holds its
	// connections open and manages its own deadlines
	server := &http.Server{
		Addr:              getEnv("LISTEN_ADDR", ":8080"),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Guild hall listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if announcer != nil {
		if err := announcer.Stop(); err != nil {
			log.Printf("Error stopping Discord announcer: %v", err)
		}
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
