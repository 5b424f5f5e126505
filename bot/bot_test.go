/* bot_test.go
 * Contains unit tests for bot.go functions
 * Authors: Zachary Bower
 */

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStartsWith_ExactMatch tests when input exactly matches the substring
func TestStartsWith_ExactMatch(t *testing.T) {
	result := startsWith("$help", "$help")
	assert.True(t, result)
}

// TestStartsWith_StartsWithSubstring tests when input starts with substring
func TestStartsWith_StartsWithSubstring(t *testing.T) {
	result := startsWith("$advance now", "$advance")
	assert.True(t, result)
}

// TestStartsWith_DoesNotStartWith tests when substring is present but not at start
func TestStartsWith_DoesNotStartWith(t *testing.T) {
	result := startsWith("please $advance", "$advance")
	assert.False(t, result)
}

// TestStartsWith_SubstringNotPresent tests when substring is not present at all
func TestStartsWith_SubstringNotPresent(t *testing.T) {
	result := startsWith("$leaderboard", "$teams")
	assert.False(t, result)
}

// TestStartsWith_EmptySubstring tests with empty substring
func TestStartsWith_EmptySubstring(t *testing.T) {
	result := startsWith("$help", "")
	assert.True(t, result) // Empty string starts every string
}

// TestStartsWith_EmptyInput tests with empty input string
func TestStartsWith_EmptyInput(t *testing.T) {
	result := startsWith("", "$help")
	assert.False(t, result)
}

// TestStartsWith_BothEmpty tests when both strings are empty
func TestStartsWith_BothEmpty(t *testing.T) {
	result := startsWith("", "")
	assert.True(t, result)
}

// TestStartsWith_DiscordCommand tests with Discord command prefix
func TestStartsWith_DiscordCommand(t *testing.T) {
	result := startsWith("$bracket", "$")
	assert.True(t, result)
}

// TestStartsWith_LongerSubstring tests when substring is longer than input
func TestStartsWith_LongerSubstring(t *testing.T) {
	result := startsWith("$res", "$result")
	assert.False(t, result)
}

// TestStartsWith_CaseSensitive tests that function is case-sensitive
func TestStartsWith_CaseSensitive(t *testing.T) {
	result := startsWith("$Start Argentina", "$start")
	assert.False(t, result)
}

// TestStartsWith_CommandWithArguments tests a command followed by its arguments
func TestStartsWith_CommandWithArguments(t *testing.T) {
	result := startsWith("$start \"South Korea\"", "$start")
	assert.True(t, result)
}

// TestStartsWith_ScoreArguments tests a result command carrying a shootout
func TestStartsWith_ScoreArguments(t *testing.T) {
	result := startsWith("$result 1-1 4-3", "$result")
	assert.True(t, result)
}

// TestStartsWith_DistinctPrefixes tests that $restart is not routed as $result
func TestStartsWith_DistinctPrefixes(t *testing.T) {
	assert.False(t, startsWith("$restart", "$result"))
	assert.False(t, startsWith("$result 2-0", "$restart"))
	assert.True(t, startsWith("$restart", "$restart"))
}

// TestStartsWith_StatusNotStart tests that $status is not routed as $start
func TestStartsWith_StatusNotStart(t *testing.T) {
	assert.False(t, startsWith("$status", "$start"))
	assert.False(t, startsWith("$teams", "$start"))
}
