package commands

import (
	"github.com/bwmarrin/discordgo"
)

type Command interface {
	CanHandle(command string) bool
	Handle(arguments string, session *discordgo.Session, message *discordgo.MessageCreate) error
}
