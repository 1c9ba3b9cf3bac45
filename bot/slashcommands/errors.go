package slashcommands

import (
	"errors"
	"fmt"

	"imperator/api/iapi"
	"imperator/utils/discordutil"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Turns an error from the Imperator client into something worth showing a Discord user.
// Returns "" for errors that did not come from the client.
func describeError(err error) string {
	var (
		badRequest *iapi.BadRequestError
		auth       *iapi.AuthenticationError
		notFound   *iapi.NotFoundError
		rateLimit  *iapi.RateLimitError
		server     *iapi.ServerError
		transport  *iapi.TransportError
		apiErr     *iapi.APIError
	)

	switch {
	case errors.As(err, &notFound):
		return "Nothing matching your query could be found."
	case errors.As(err, &badRequest):
		return "The Imperator API could not make sense of that query. Check the options you supplied."
	case errors.As(err, &auth):
		return "The bot's Imperator API key was rejected. Please let the bot owner know."
	case errors.As(err, &rateLimit):
		return "Too many requests are being made to the Imperator API right now. Try again shortly."
	case errors.As(err, &server):
		return "The Imperator API is having issues at the moment. Try again later."
	case errors.As(err, &transport):
		return "Could not get a usable response from the Imperator API. Try again later."
	case errors.As(err, &apiErr):
		return fmt.Sprintf("The Imperator API responded with an unexpected status (`%d`).", apiErr.StatusCode)
	}

	return ""
}

// Tells the user what went wrong and hands err back so the failure is still recorded.
// Only the author sees the message. The interaction must already be deferred.
func replyWithAPIError(s *discordgo.Session, i *discordgo.Interaction, err error) error {
	msg := describeError(err)
	if msg == "" {
		msg = discordutil.ErrorContent(err)
	}

	if replyErr := discordutil.ReplaceDeferredEphemeral(s, i, msg); replyErr != nil {
		log.Warnf("could not send error reply: %v", replyErr)
	}

	return err
}
