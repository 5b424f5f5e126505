/* bot.go
 * Contains the Bot type and helpers shared by the command handlers. Requires a discord bot token, and APIPtr both
 * of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"
	"worldcup-sim/api/api"

	"github.com/go-andiamo/splitter"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
	}, nil
}

// splitArgs splits a command into its arguments. Quoted names such as "South Korea" stay as one argument
// Preconditions: Receives the message content
// Postconditions: Returns the arguments after the command, or an error if the quotes are unbalanced
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}

	var args []string
	for _, part := range parts[1:] {
		part = strings.Trim(part, "\"“”")
		if part != "" {
			args = append(args, part)
		}
	}
	return args, nil
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
