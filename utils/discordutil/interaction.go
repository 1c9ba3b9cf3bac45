package discordutil

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Responds to an interaction with a deferred response, allowing more time to process before sending a follow-up message.
//
// Deferred interactions cannot carry data and can only be edited or followed up.
func DeferReply(s *discordgo.Session, i *discordgo.Interaction) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func SendReply(s *discordgo.Session, i *discordgo.Interaction, data *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// Sends content only the author can see. If the interaction was already responded to (or deferred),
// an ephemeral follow-up is sent instead. The existing response is public and is never edited.
func ReplyEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) error {
	err := SendReply(s, i, &discordgo.InteractionResponseData{
		Flags:   discordgo.MessageFlagsEphemeral,
		Content: content,
	})
	if err == nil {
		return nil
	}

	_, err = FollowupContentEphemeral(s, i, content)
	return err
}

// For interactions deferred with DeferReply: removes the public "thinking" response and
// sends content as an ephemeral follow-up instead.
func ReplaceDeferredEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) error {
	delErr := s.InteractionResponseDelete(i)

	_, err := FollowupContentEphemeral(s, i, content)
	return errors.Join(delErr, err)
}

func ReplyWithPanicError(s *discordgo.Session, i *discordgo.Interaction, err any) {
	ReplyEphemeral(s, i, "Bot attempted to fatally crash during this command! Please report the following error.\n"+fmt.Sprintf("```%v```", err))
}

func ErrorContent(err any) string {
	return "Bot encountered a non-fatal error during this command.\n" + fmt.Sprintf("```%v```", err)
}

// Creates a follow-up message for a previously deferred interaction response.
// This func waits for server confirmation of message send and ensures that the return struct is populated.
func Followup(s *discordgo.Session, i *discordgo.Interaction, params *discordgo.WebhookParams) (*discordgo.Message, error) {
	return s.FollowupMessageCreate(i, true, params)
}

// Calls FollowUp with the supplied embeds.
func FollowupEmbeds(s *discordgo.Session, i *discordgo.Interaction, embeds ...*discordgo.MessageEmbed) (*discordgo.Message, error) {
	return Followup(s, i, &discordgo.WebhookParams{
		Embeds: embeds,
	})
}

// Calls FollowUp with the supplied content which will only be visible to the interaction author.
func FollowupContentEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) (*discordgo.Message, error) {
	return Followup(s, i, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// Attempts to get the username from an interaction.
//
// Regular `User` is only filled for a DM, so this func uses guild-specific `Member.User` otherwise.
func GetInteractionAuthor(i *discordgo.Interaction) *discordgo.User {
	if i.User != nil {
		return i.User
	}
	if i.Member != nil {
		return i.Member.User
	}

	return nil
}
