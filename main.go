//go:build !test

/* main.go
 * The "main" method for running the World Cup knockout simulator. Runs the discord bot, the web server or both
 * Usage: go run . -edition="WorldCup2026" -mode="both" -test="false"
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"worldcup-sim/api/api"
	"worldcup-sim/bot"
	"worldcup-sim/web"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, reading settings from the environment")
	}

	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	apiPtr, err := api.NewAPI(cfg.DBName, cfg.MongoURI, cfg.Edition, cfg.Seed)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err := apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			log.Println("failed to disconnect from mongo:", err)
		}
	}()

	// Seed the group standings before anyone can start a tournament
	if err := apiPtr.Store.EnsureGroupStandings(); err != nil {
		log.Fatalf("failed to load group standings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	if cfg.runsBot() {
		b, err := bot.NewBot(cfg.DiscordToken, apiPtr)
		if err != nil {
			log.Fatalf("failed to initialize bot: %v", err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := b.Run(ctx); err != nil {
				log.Println("bot stopped:", err)
				stop()
			}
		}()
	}

	if cfg.runsWeb() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := web.Start(ctx, web.Config{Addr: cfg.HTTPAddr, API: apiPtr}); err != nil {
				log.Println("HTTP server stopped:", err)
				stop()
			}
		}()
	}

	wg.Wait()
	log.Println("shut down")
}
