package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		mentionCount int
		isDM         bool
		want         messageIntent
	}{
		{
			name:         "start command with mentions",
			content:      "!totpal @G @L1 @L2 @L3",
			mentionCount: 4,
			want:         intentStartGame,
		},
		{
			name:         "start command is case-insensitive",
			content:      "!TotPal @G @L1 @L2 @L3",
			mentionCount: 4,
			want:         intentStartGame,
		},
		{
			name:    "flag command without mentions",
			content: "!totpal --help",
			want:    intentFlags,
		},
		{
			name:    "short flag",
			content: "!totpal -cg",
			want:    intentFlags,
		},
		{
			name:    "bare command with no mentions and no flags",
			content: "!totpal",
			want:    intentStartGame,
		},
		{
			name:         "guess command",
			content:      "!guess @L2",
			mentionCount: 1,
			want:         intentGuess,
		},
		{
			name:         "guess command mixed case",
			content:      "!Guess @L2",
			mentionCount: 1,
			want:         intentGuess,
		},
		{
			name:    "any DM is a submission",
			content: "Great Molasses Flood",
			isDM:    true,
			want:    intentSubmission,
		},
		{
			name:    "unrelated chatter is ignored",
			content: "who wants to play?",
			want:    intentNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyMessage(tt.content, tt.mentionCount, tt.isDM)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    commandFlags
	}{
		{
			name:    "clear game short",
			content: "!totpal -cg",
			want:    commandFlags{ClearGame: true},
		},
		{
			name:    "clear game long",
			content: "!totpal --cleargame",
			want:    commandFlags{ClearGame: true},
		},
		{
			name:    "help",
			content: "!totpal --help",
			want:    commandFlags{Help: true},
		},
		{
			name:    "instructions",
			content: "!totpal -i",
			want:    commandFlags{Instructions: true},
		},
		{
			name:    "multiple flags in one message",
			content: "!totpal -cg -i",
			want:    commandFlags{ClearGame: true, Instructions: true},
		},
		{
			name:    "uppercase flags",
			content: "!totpal --HELP",
			want:    commandFlags{Help: true},
		},
		{
			name:    "no flags",
			content: "!totpal",
			want:    commandFlags{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFlags(tt.content))
		})
	}
}
