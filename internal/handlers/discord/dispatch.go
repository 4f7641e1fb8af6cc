package discord

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/KirkDiggler/totpal/internal/services/game"
	"github.com/KirkDiggler/totpal/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// messageIntent classifies an inbound message
type messageIntent int

const (
	intentNone messageIntent = iota
	intentStartGame
	intentFlags
	intentSubmission
	intentGuess
)

// commandFlags holds the flags parsed out of a command message
type commandFlags struct {
	ClearGame    bool
	Help         bool
	Instructions bool
}

// classifyMessage maps an inbound message to the single operation it should
// trigger. A DM is always treated as an article submission; everything else
// keys off the command prefixes.
func classifyMessage(content string, mentionCount int, isDM bool) messageIntent {
	if isDM {
		return intentSubmission
	}

	lower := strings.ToLower(content)
	switch {
	case strings.HasPrefix(lower, CommandPrefix):
		if mentionCount == 0 && strings.Contains(lower, "-") {
			return intentFlags
		}
		return intentStartGame
	case strings.HasPrefix(lower, GuessPrefix):
		return intentGuess
	}

	return intentNone
}

// parseFlags extracts the recognized flags from a command message
func parseFlags(content string) commandFlags {
	lower := strings.ToLower(content)
	return commandFlags{
		ClearGame:    strings.Contains(lower, "-cg") || strings.Contains(lower, "--cleargame"),
		Help:         strings.Contains(lower, "-h") || strings.Contains(lower, "--help"),
		Instructions: strings.Contains(lower, "-i") || strings.Contains(lower, "--instructions"),
	}
}

// handleMessage is the single inbound dispatcher registered with discordgo
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Never react to our own messages
	if m.Author.ID == s.State.User.ID {
		return
	}

	ctx := context.Background()
	isDM := m.GuildID == ""

	switch classifyMessage(m.Content, len(m.Mentions), isDM) {
	case intentStartGame:
		b.handleStartGame(ctx, s, m)
	case intentFlags:
		b.handleFlags(ctx, s, m)
	case intentSubmission:
		b.handleSubmission(ctx, s, m)
	case intentGuess:
		b.handleGuess(ctx, s, m)
	}
}

// handleStartGame validates the mention list and creates the game
func (b *Bot) handleStartGame(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	mentions := m.Mentions

	if len(mentions) < 4 {
		b.sendErrorMessage(ctx, s, m.ChannelID, game.ErrNotEnoughPlayers)
		return
	}

	// First mention is the guesser, the rest are the contestants
	guesser := &game.PlayerInput{ID: mentions[0].ID, Name: mentions[0].Username}
	liars := make([]*game.PlayerInput, 0, len(mentions)-1)
	for _, mention := range mentions[1:] {
		liars = append(liars, &game.PlayerInput{ID: mention.ID, Name: mention.Username})
	}

	output, err := b.gameService.StartGame(ctx, &game.StartGameInput{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Guesser:   guesser,
		Liars:     liars,
	})
	if err != nil {
		b.sendErrorMessage(ctx, s, m.ChannelID, err)
		return
	}

	// Request an article from each contestant. A closed DM leaves the game
	// stuck in the collecting phase until someone runs --cleargame; we warn
	// and keep the dispatcher alive.
	request, err := b.messagingService.GetArticleRequestMessage(ctx, &messaging.GetArticleRequestMessageInput{})
	if err != nil {
		log.Printf("Failed to build article request message: %v", err)
		return
	}
	for _, liar := range output.Game.LiarIDs {
		if err := b.sendDirectMessage(s, liar, request.Message); err != nil {
			log.Printf("Warning: could not DM article request to player %s: %v", liar, err)
		}
	}

	ack, err := b.messagingService.GetStartAckMessage(ctx, &messaging.GetStartAckMessageInput{
		LiarCount: len(output.Game.LiarIDs),
	})
	if err != nil {
		log.Printf("Failed to build start ack message: %v", err)
		return
	}
	b.sendChannelMessage(s, m.ChannelID, ack.Message)
}

// handleFlags responds to any recognized flags in the message
func (b *Bot) handleFlags(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	flags := parseFlags(m.Content)

	if flags.ClearGame {
		if _, err := b.gameService.ClearGame(ctx, &game.ClearGameInput{GuildID: m.GuildID}); err != nil {
			log.Printf("Failed to clear game for guild %s: %v", m.GuildID, err)
		} else {
			b.sendChannelMessage(s, m.ChannelID, "Game Cleared!")
		}
	}

	if flags.Help {
		help, err := b.messagingService.GetHelpMessage(ctx, &messaging.GetHelpMessageInput{})
		if err == nil {
			b.sendChannelMessage(s, m.ChannelID, help.Message)
		}
	}

	if flags.Instructions {
		instructions, err := b.messagingService.GetInstructionsMessage(ctx, &messaging.GetInstructionsMessageInput{})
		if err == nil {
			b.sendChannelMessage(s, m.ChannelID, instructions.Message)
		}
	}
}

// handleSubmission feeds a DM into the game as an article submission
func (b *Bot) handleSubmission(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	output, err := b.gameService.SubmitArticle(ctx, &game.SubmitArticleInput{
		PlayerID: m.Author.ID,
		Article:  strings.TrimSpace(m.Content),
	})
	if err != nil {
		// DMs from people outside a game are stray, not errors
		if errors.Is(err, game.ErrPlayerNotInGame) {
			return
		}
		if errors.Is(err, game.ErrDuplicateArticle) {
			msg, msgErr := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
			if msgErr == nil {
				if dmErr := b.sendDirectMessage(s, m.Author.ID, msg.Message); dmErr != nil {
					log.Printf("Warning: could not DM duplicate rejection to player %s: %v", m.Author.ID, dmErr)
				}
			}
			return
		}
		log.Printf("Failed to submit article for player %s: %v", m.Author.ID, err)
		return
	}

	if !output.Revealed {
		return
	}

	// Last submission landed: announce the selected article in the channel
	// the game was started in
	reveal, err := b.messagingService.GetRevealMessage(ctx, &messaging.GetRevealMessageInput{
		Article: output.Game.SelectedArticle,
	})
	if err != nil {
		log.Printf("Failed to build reveal message: %v", err)
		return
	}
	b.sendChannelMessage(s, output.Game.ChannelID, reveal.Announcement)
	b.sendChannelMessage(s, output.Game.ChannelID, reveal.FollowUp)
}

// handleGuess resolves the guesser's accusation
func (b *Bot) handleGuess(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if len(m.Mentions) != 1 {
		b.sendChannelMessage(s, m.ChannelID, "Tag exactly one person you are accusing")
		return
	}

	output, err := b.gameService.ResolveGuess(ctx, &game.ResolveGuessInput{
		PlayerID:  m.Author.ID,
		AccusedID: m.Mentions[0].ID,
	})
	if err != nil {
		b.sendErrorMessage(ctx, s, m.ChannelID, err)
		return
	}

	outcome, err := b.messagingService.GetGuessOutcomeMessage(ctx, &messaging.GetGuessOutcomeMessageInput{
		Correct:        output.Correct,
		GuesserID:      output.GuesserID,
		AccusedID:      output.AccusedID,
		SelectedLiarID: output.SelectedLiarID,
	})
	if err != nil {
		log.Printf("Failed to build outcome message: %v", err)
		return
	}
	b.sendChannelMessage(s, m.ChannelID, outcome.Message)
}

// sendErrorMessage translates a service error and posts it to the channel
func (b *Bot) sendErrorMessage(ctx context.Context, s *discordgo.Session, channelID string, err error) {
	msg, msgErr := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		log.Printf("Failed to build error message for %v: %v", err, msgErr)
		return
	}
	b.sendChannelMessage(s, channelID, msg.Message)
}

// sendChannelMessage posts to a channel, logging delivery failures
func (b *Bot) sendChannelMessage(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("Warning: could not send message to channel %s: %v", channelID, err)
	}
}

// sendDirectMessage opens (or reuses) a DM channel with the user and sends
// the content
func (b *Bot) sendDirectMessage(s *discordgo.Session, userID, content string) error {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSend(channel.ID, content)
	return err
}
