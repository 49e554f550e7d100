// cmd/bot/main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/tpcguild/pointsbot/internal/commands"
	"github.com/tpcguild/pointsbot/internal/config"
	"github.com/tpcguild/pointsbot/internal/database"
	"github.com/tpcguild/pointsbot/internal/services"
	"github.com/tpcguild/pointsbot/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize the record store client
	db, err := database.Initialize(cfg.AWS)
	if err != nil {
		log.Fatal("Failed to initialize DynamoDB:", err)
	}

	// Create the Discord session
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatal("Failed to create Discord session:", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	// Wire stores, services and command handling
	profiles := store.NewProfileStore(db, cfg.Tables.MemberPoints)
	products := store.NewProductStore(db, cfg.Tables.Store)
	purchases := store.NewPurchaseStore(db, cfg.Tables.Purchases)

	ledger := services.NewLedgerService(profiles)
	shop := services.NewShopService(products, purchases, profiles)

	guard := commands.NewPermissionGuard(cfg.Discord.AdminRoleIDs)
	limiter := commands.NewRateLimiter(
		rate.Every(time.Minute/time.Duration(cfg.RateLimit.CommandsPerMinute)),
		cfg.RateLimit.Burst,
	)
	dispatcher := commands.NewDispatcher(cfg.Discord.Prefix, limiter)

	handlers := commands.NewHandlers(
		ledger,
		shop,
		guard,
		commands.NewReplier(session),
		commands.NewUserResolver(session),
		cfg.Discord.Prefix,
	)
	handlers.Register(dispatcher)

	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}

		ctx := &commands.Context{
			ChannelID: m.ChannelID,
			AuthorID:  m.Author.ID,
			Content:   m.Content,
		}
		if m.Member != nil {
			ctx.Roles = m.Member.Roles
		}

		dispatcher.Dispatch(ctx)
	})

	// Connect to the gateway
	if err := session.Open(); err != nil {
		log.Fatal("Failed to connect to Discord:", err)
	}
	defer session.Close()

	logrus.WithField("prefix", cfg.Discord.Prefix).Info("Bot is running")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down bot...")
}
