/* utils.go
 * Utility functions used across the application: flag and environment parsing
 * Authors: Zachary Bower
 */

package main

import (
	"flag"
	"fmt"
	"strings"
)

const (
	modeBot  = "bot"
	modeWeb  = "web"
	modeBoth = "both"
)

// appConfig is everything main needs to wire the api, bot and web server together
type appConfig struct {
	Edition      string
	DBName       string
	MongoURI     string
	DiscordToken string
	HTTPAddr     string
	Mode         string
	Test         bool
	Seed         int64
}

func (c appConfig) runsBot() bool {
	return c.Mode == modeBot || c.Mode == modeBoth
}

func (c appConfig) runsWeb() bool {
	return c.Mode == modeWeb || c.Mode == modeBoth
}

// loadConfig parses the command line flags and reads the remaining settings from the environment
// Preconditions: Receives the arguments after the program name and a lookup for environment variables
// Postconditions: Returns the config, or an error if a flag is invalid or a required setting is missing
func loadConfig(args []string, getenv func(string) string) (appConfig, error) {
	fs := flag.NewFlagSet("worldcup-sim", flag.ContinueOnError)
	editionPtr := fs.String("edition", "WorldCup2026", "Tournament edition, used as the key for stored standings and outcomes")
	dbPtr := fs.String("db", "worldcup", "Mongo database name")
	testPtr := fs.String("test", "false", "Use main or test bot: takes true or false as argument")
	modePtr := fs.String("mode", modeBot, "What to run: bot, web or both")
	seedPtr := fs.Int64("seed", 0, "Seed for bracket draws and simulated matches, 0 seeds from the clock")

	if err := fs.Parse(args); err != nil {
		return appConfig{}, err
	}

	test, err := convertStrToBool(*testPtr)
	if err != nil {
		return appConfig{}, fmt.Errorf("invalid \"test\" flag, should be true or false: %w", err)
	}

	cfg := appConfig{
		Edition:  strings.TrimSpace(*editionPtr),
		DBName:   strings.TrimSpace(*dbPtr),
		MongoURI: getenv("MONGO_URI"),
		HTTPAddr: getenv("HTTP_ADDR"),
		Mode:     strings.ToLower(strings.TrimSpace(*modePtr)),
		Test:     test,
		Seed:     *seedPtr,
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	if cfg.Mode != modeBot && cfg.Mode != modeWeb && cfg.Mode != modeBoth {
		return appConfig{}, fmt.Errorf("invalid \"mode\" flag %q, should be bot, web or both", *modePtr)
	}
	if cfg.Edition == "" || cfg.DBName == "" {
		return appConfig{}, fmt.Errorf("edition and db cannot be empty")
	}
	if cfg.MongoURI == "" {
		return appConfig{}, fmt.Errorf("MONGO_URI is not set")
	}

	if cfg.runsBot() {
		cfg.DiscordToken = discordToken(cfg.Test, getenv)
		if cfg.DiscordToken == "" {
			return appConfig{}, fmt.Errorf("no discord token set for test=%t", cfg.Test)
		}
	}
	return cfg, nil
}

// discordToken picks the production or beta bot token
func discordToken(test bool, getenv func(string) string) string {
	if test {
		return getenv("DISCORD_BETA_TOKEN")
	}
	return getenv("DISCORD_PROD_TOKEN")
}

// convertStrToBool converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func convertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}
