package extension

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// ParseSnowflake converts a Discord snowflake ID to the integer form the
// schema stores. Discord IDs always fit in an int64.
func ParseSnowflake(id string) int64 {
	value, _ := strconv.ParseInt(id, 10, 64)
	return value
}

func FormatSnowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}

// InteractionUserID resolves the acting user for both guild and direct
// message interactions.
func InteractionUserID(interaction *discordgo.InteractionCreate) int64 {
	if interaction.Member != nil && interaction.Member.User != nil {
		return ParseSnowflake(interaction.Member.User.ID)
	}
	if interaction.User != nil {
		return ParseSnowflake(interaction.User.ID)
	}
	return 0
}

func EphemeralResponse(text string, components []discordgo.MessageComponent) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    text,
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: components,
		},
	}
}

func UpdateResponse(text string, components []discordgo.MessageComponent) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    text,
			Components: components,
		},
	}
}

// AcknowledgeResponse acknowledges an interaction without changing
// anything visible. Used where an action intentionally does nothing.
func AcknowledgeResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}
}
