/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"worldcup-sim/api/api"
	"worldcup-sim/api/bracket"
	"worldcup-sim/api/knockout"
	"worldcup-sim/api/logic"
	"worldcup-sim/api/shared"

	"github.com/bwmarrin/discordgo"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("World Cup Bot v1.0\n")
	res.WriteString("`$teams`: shows the 24 teams that made it out of the group stage\n")
	res.WriteString("`$start team`: draws a knockout bracket and puts you in charge of a team. There is fuzzy matching on names and three letter codes work too. Names with spaces need to be encased in \" (e.g. \"South Korea\")\n")
	res.WriteString("`$result 2-1`: enters the score of your match, your goals first. A draw needs the shootout as well, e.g. `$result 1-1 4-3`\n")
	res.WriteString("`$advance`: moves on to the next round once your match has been played\n")
	res.WriteString("`$bracket`: shows every round your tournament has reached\n")
	res.WriteString("`$status`: shows your next match, or how your tournament ended\n")
	res.WriteString("`$restart`: throws away your current bracket and draws a new one with the same team\n")
	res.WriteString("`$leaderboard`: shows who has gone the furthest. A title is worth 7 points, reaching the final 5, semi final 4, quarter final 3, round of 16 2 and round of 32 1\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// teamsHandler handles the $teams command with a DiscordSession interface
func (b *Bot) teamsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	teams, err := b.APIPtr.GetTeams()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occurred getting the teams list")
		return
	}

	var res strings.Builder
	res.WriteString("Teams in the knockout stage are:\n")
	for _, team := range teams {
		res.WriteString(fmt.Sprintf("- %s (%s) %s\n", team.Name, team.ID, strings.Repeat("★", team.Stars)))
	}

	session.ChannelMessageSend(message.ChannelID, res.String())
}

// startHandler handles the $start command with a DiscordSession interface
func (b *Bot) startHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	args, err := splitArgs(message.Content)
	if err != nil || len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$start team`, e.g. `$start Argentina`")
		return
	}

	view, err := b.APIPtr.StartTournament(user, strings.Join(args, " "))
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, b.errorMessage(user, "starting a tournament", err))
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("%s is managing %s\n", user.Username, view.Human.Name))
	if view.Round == bracket.RoundOf16 {
		res.WriteString(fmt.Sprintf("%s topped their group and skipped the %s\n", view.Human.Name, bracket.RoundOf32.Label()))
	}
	res.WriteString(nextMatchMessage(view))
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// resultHandler handles the $result command with a DiscordSession interface
func (b *Bot) resultHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$result 2-1` or `$result 1-1 4-3`")
		return
	}
	input, err := logic.ParseResult(args)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not read that score: %s", err))
		return
	}

	view, err := b.APIPtr.SubmitResult(user, input)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, b.errorMessage(user, "entering the result", err))
		return
	}

	var res strings.Builder
	if view.HumanMatch != nil && view.HumanMatch.Result != nil {
		res.WriteString(fmt.Sprintf("Full time: %s", logic.RenderRound(view.Round, []*bracket.Match{view.HumanMatch}, view.Human.ID)))
	}
	if view.Finished() {
		res.WriteString(outcomeMessage(view))
	} else {
		res.WriteString(fmt.Sprintf("%s are through! The rest of the %s has been played, use `$bracket` to see it and `$advance` to move on\n", view.Human.Name, view.Round.Label()))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// advanceHandler handles the $advance command with a DiscordSession interface
func (b *Bot) advanceHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	view, err := b.APIPtr.Advance(user)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, b.errorMessage(user, "advancing", err))
		return
	}

	if view.Finished() {
		session.ChannelMessageSend(message.ChannelID, outcomeMessage(view))
		return
	}
	session.ChannelMessageSend(message.ChannelID, nextMatchMessage(view))
}

// bracketHandler handles the $bracket command with a DiscordSession interface
func (b *Bot) bracketHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	res, err := b.APIPtr.GetBracket(user)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, b.errorMessage(user, "getting the bracket", err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// statusHandler handles the $status command with a DiscordSession interface
func (b *Bot) statusHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	view, err := b.APIPtr.Snapshot(user)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, b.errorMessage(user, "checking the tournament", err))
		return
	}

	if view.Finished() {
		session.ChannelMessageSend(message.ChannelID, outcomeMessage(view))
		return
	}
	session.ChannelMessageSend(message.ChannelID, nextMatchMessage(view))
}

// restartHandler handles the $restart command with a DiscordSession interface
func (b *Bot) restartHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	view, err := b.APIPtr.Restart(user)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, b.errorMessage(user, "restarting", err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("A new bracket has been drawn for %s\n%s", view.Human.Name, nextMatchMessage(view)))
}

// leaderboardHandler handles the $leaderboard command with a DiscordSession interface
func (b *Bot) leaderboardHandler(session DiscordSession, message *discordgo.MessageCreate) {
	err := b.APIPtr.GenerateLeaderboard()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occurred getting the leaderboard")
		return
	}

	res, err := b.APIPtr.GetLeaderboard()
	if err != nil {
		log.Println(err)
		res = "An error occurred getting the leaderboard"
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// errorMessage turns an api error into a reply. Errors the user can fix are explained, anything else is logged
func (b *Bot) errorMessage(user shared.User, action string, err error) string {
	switch {
	case errors.Is(err, api.ErrNoSession):
		return fmt.Sprintf("%s does not have a tournament running. Use `$start team` to start one", user.Username)
	case errors.Is(err, api.ErrSessionActive):
		return fmt.Sprintf("%s already has a tournament running: %s", user.Username, err)
	case errors.Is(err, knockout.ErrTournamentOver):
		return fmt.Sprintf("%s's tournament is over. Use `$start team` or `$restart` to play again", user.Username)
	case errors.Is(err, knockout.ErrRoundNotComplete):
		return "Your match has not been played yet. Enter the score with `$result`"
	case errors.Is(err, knockout.ErrNoActiveHumanMatch):
		return "Your result for this round is already in. Use `$advance` to move on"
	case errors.Is(err, logic.ErrInvalidTeam), errors.Is(err, bracket.ErrMalformedStandings), errors.Is(err, bracket.ErrInvalidResult):
		return fmt.Sprintf("An error occurred %s: %s", action, err)
	}

	log.Println(err)
	return fmt.Sprintf("An unexpected error occurred %s for %s", action, user.Username)
}

// nextMatchMessage describes the human's upcoming match
func nextMatchMessage(view api.SessionView) string {
	if view.HumanMatch == nil {
		return fmt.Sprintf("Waiting for the %s to finish\n", view.Round.Label())
	}

	m := view.HumanMatch
	if m.Result != nil {
		return fmt.Sprintf("%s have played their %s, use `$advance` to move on\n", view.Human.Name, view.Round.Label())
	}

	opponent := "TBD"
	if m.Home != nil && m.Home.ID != view.Human.ID {
		opponent = m.Home.Name
	} else if m.Away != nil && m.Away.ID != view.Human.ID {
		opponent = m.Away.Name
	}
	return fmt.Sprintf("%s: %s vs %s. Enter the score with `$result`\n", view.Round.Label(), view.Human.Name, opponent)
}

// outcomeMessage describes how the human's tournament ended
func outcomeMessage(view api.SessionView) string {
	if view.Outcome == nil {
		return ""
	}

	if view.Outcome.State == knockout.StateChampion {
		return fmt.Sprintf("🏆 %s are world champions!\n", view.Human.Name)
	}

	res := fmt.Sprintf("%s were knocked out in the %s\n", view.Human.Name, view.Outcome.EliminatedIn.Label())
	if view.Outcome.Champion != nil {
		res += fmt.Sprintf("%s went on to win the tournament\n", view.Outcome.Champion.Name)
	}
	return res
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	// Route to appropriate handler
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$teams"):
		b.teamsHandler(session, message)

	case startsWith(message.Content, "$start"):
		b.startHandler(session, message)

	case startsWith(message.Content, "$result"):
		b.resultHandler(session, message)

	case startsWith(message.Content, "$advance"):
		b.advanceHandler(session, message)

	case startsWith(message.Content, "$bracket"):
		b.bracketHandler(session, message)

	case startsWith(message.Content, "$status"):
		b.statusHandler(session, message)

	case startsWith(message.Content, "$restart"):
		b.restartHandler(session, message)

	case startsWith(message.Content, "$leaderboard"):
		b.leaderboardHandler(session, message)
	}
}
