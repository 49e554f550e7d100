// internal/commands/replier.go
package commands

import (
	"github.com/bwmarrin/discordgo"
)

// Accent color used on every embed reply.
const embedColor = 0x6e10aa

// Replier sends embed replies to the channel a command came from.
type Replier interface {
	SendEmbed(channelID, title, description string) error
	Typing(channelID string)
}

// UserResolver looks a user ID up in the platform's identity system.
type UserResolver interface {
	ResolveUser(userID string) (username string, err error)
}

type discordReplier struct {
	session *discordgo.Session
}

func NewReplier(session *discordgo.Session) Replier {
	return &discordReplier{session: session}
}

func (r *discordReplier) SendEmbed(channelID, title, description string) error {
	_, err := r.session.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       embedColor,
	})
	return err
}

// Typing shows the typing indicator while a command is being handled.
// Failures are ignored; the indicator is cosmetic.
func (r *discordReplier) Typing(channelID string) {
	r.session.ChannelTyping(channelID)
}

type discordResolver struct {
	session *discordgo.Session
}

func NewUserResolver(session *discordgo.Session) UserResolver {
	return &discordResolver{session: session}
}

func (r *discordResolver) ResolveUser(userID string) (string, error) {
	user, err := r.session.User(userID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
