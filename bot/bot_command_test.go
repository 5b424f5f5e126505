/* bot_command_test.go
 * Contains unit tests for bot.go
 * Authors: Zachary Bower
 */

package bot

import (
	"strings"
	"testing"
	"worldcup-sim/api/api"
)

// Create a mock API for testing
func createMockAPI() *api.API {
	return &api.API{Store: api.NewMockStore("TestEdition"), Seed: 7}
}

// region NewBot tests

func TestNewBot_Success(t *testing.T) {
	apiPtr := createMockAPI()
	bot, err := NewBot("test_token", apiPtr)

	if err != nil {
		t.Errorf("Expected no error, got: %s", err.Error())
	}

	if bot.BotToken != "test_token" {
		t.Errorf("Expected bot token 'test_token', got '%s'", bot.BotToken)
	}

	if bot.APIPtr != apiPtr {
		t.Error("API pointer not set correctly")
	}
}

func TestNewBot_EmptyToken(t *testing.T) {
	apiPtr := createMockAPI()
	_, err := NewBot("", apiPtr)

	if err == nil {
		t.Fatal("Expected error for empty bot token, got nil")
	}

	if !strings.Contains(err.Error(), "botToken is required") {
		t.Errorf("Expected error about botToken, got: %s", err.Error())
	}
}

// endregion

// region splitArgs tests

func TestSplitArgs_Plain(t *testing.T) {
	args, err := splitArgs("$result 1-1 4-3")
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}
	if len(args) != 2 || args[0] != "1-1" || args[1] != "4-3" {
		t.Errorf("Expected [1-1 4-3], got %v", args)
	}
}

func TestSplitArgs_QuotedName(t *testing.T) {
	args, err := splitArgs("$start \"South Korea\"")
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}
	if len(args) != 1 || args[0] != "South Korea" {
		t.Errorf("Expected [South Korea], got %v", args)
	}
}

func TestSplitArgs_SmartQuotes(t *testing.T) {
	args, err := splitArgs("$start “United States”")
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}
	if len(args) != 1 || args[0] != "United States" {
		t.Errorf("Expected [United States], got %v", args)
	}
}

func TestSplitArgs_NoArgs(t *testing.T) {
	args, err := splitArgs("$advance")
	if err != nil {
		t.Fatalf("Expected no error, got: %s", err.Error())
	}
	if len(args) != 0 {
		t.Errorf("Expected no args, got %v", args)
	}
}

func TestSplitArgs_UnbalancedQuotes(t *testing.T) {
	_, err := splitArgs("$start \"South Korea")
	if err == nil {
		t.Error("Expected error for unbalanced quotes, got nil")
	}
}

// endregion
