package handlers

import (
	"errors"
	"time"

	"discord_vote_bot/internal"
	"discord_vote_bot/internal/db/models"
	"discord_vote_bot/internal/db/repositories"
	"discord_vote_bot/internal/discord_bot/commands"
	"discord_vote_bot/internal/discord_bot/extension"
	"discord_vote_bot/internal/services"
	"discord_vote_bot/internal/sessions"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type InteractionHandler interface {
	Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate)
}

type voteBotInteractionHandler struct {
	pollRepository             repositories.PollRepository
	ephemeralMessageRepository repositories.EphemeralMessageRepository
	engine                     services.VoteEngine
	results                    services.ResultsService
	logger                     *zap.SugaredLogger
}

func NewVoteBotInteractionHandler(
	pollRepository repositories.PollRepository,
	ephemeralMessageRepository repositories.EphemeralMessageRepository,
	engine services.VoteEngine,
	results services.ResultsService,
	logger *zap.SugaredLogger,
) InteractionHandler {
	return &voteBotInteractionHandler{
		pollRepository:             pollRepository,
		ephemeralMessageRepository: ephemeralMessageRepository,
		engine:                     engine,
		results:                    results,
		logger:                     logger,
	}
}

func (h *voteBotInteractionHandler) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("panic while handling interaction", "panic", r)
		}
	}()

	if interaction.Type != discordgo.InteractionMessageComponent {
		return
	}

	action, args, err := internal.ParseCallbackToken(interaction.MessageComponentData().CustomID)
	if err != nil {
		h.logger.Warnw("received malformed custom id", "error", err)
		return
	}

	now := time.Now()

	switch {
	case action == internal.ActionVote && len(args) == 1:
		h.handleOpenVoteView(session, interaction, int(args[0]), now)
	case action == internal.ActionOption && len(args) == 2:
		h.handleOptionActivated(session, interaction, int(args[0]), int(args[1]), now)
	case action == internal.ActionResults && len(args) == 1:
		h.handleShowResults(session, interaction, int(args[0]), now)
	case action == internal.ActionRefresh && len(args) == 2:
		h.handleRefreshResults(session, interaction, int(args[0]), args[1], now)
	default:
		h.logger.Warnw("received unknown interaction", "action", action)
	}
}

// handleOpenVoteView answers the public "I want to vote" control with a
// private selection view. If the poll has meanwhile closed, the public
// message itself is rewritten to the final results with its controls
// disabled.
func (h *voteBotInteractionHandler) handleOpenVoteView(session *discordgo.Session, interaction *discordgo.InteractionCreate, pollID int, now time.Time) {
	poll := h.getPoll(session, interaction, pollID)
	if poll == nil {
		return
	}

	if poll.Closed(now) {
		h.rewriteClosedPollMessage(session, interaction, pollID, now)
		return
	}

	userID := extension.InteractionUserID(interaction)

	voteSession, err := sessions.NewVoteSession(h.engine, poll, userID, now)
	if err != nil {
		h.logger.Errorw("failed to load selection", "pollID", pollID, "userID", userID, "error", err)
		h.acknowledge(session, interaction)
		return
	}

	h.respond(session, interaction, extension.EphemeralResponse(voteSession.Prompt(), optionComponents(pollID, voteSession.Controls())))
}

// handleOptionActivated is one transition of the selection state machine:
// the engine toggles the vote and the view re-renders from the engine's
// resulting selection.
func (h *voteBotInteractionHandler) handleOptionActivated(session *discordgo.Session, interaction *discordgo.InteractionCreate, pollID, optionID int, now time.Time) {
	poll := h.getPoll(session, interaction, pollID)
	if poll == nil {
		return
	}

	userID := extension.InteractionUserID(interaction)

	voteSession, err := sessions.NewVoteSession(h.engine, poll, userID, now)
	if err != nil {
		h.logger.Errorw("failed to load selection", "pollID", pollID, "userID", userID, "error", err)
		h.acknowledge(session, interaction)
		return
	}

	err = voteSession.Activate(h.engine, optionID, now)
	switch {
	case errors.Is(err, models.ErrPollClosed):
		h.respond(session, interaction, extension.UpdateResponse(
			"The poll has ended. Your vote cannot be accepted.",
			optionComponents(pollID, voteSession.Controls()),
		))
		return
	case errors.Is(err, models.ErrUnknownOption):
		// UI only offers valid options; treat as a no-op.
		h.logger.Warnw("vote for unknown option", "pollID", pollID, "optionID", optionID)
		h.acknowledge(session, interaction)
		return
	case err != nil:
		h.logger.Errorw("failed to cast vote", "pollID", pollID, "optionID", optionID, "error", err)
		h.acknowledge(session, interaction)
		return
	}

	h.respond(session, interaction, extension.UpdateResponse(voteSession.Prompt(), optionComponents(pollID, voteSession.Controls())))
}

// handleShowResults opens the private tally view and records it in the
// registry so a later refresh can recover the view if its interaction
// handle has gone stale.
func (h *voteBotInteractionHandler) handleShowResults(session *discordgo.Session, interaction *discordgo.InteractionCreate, pollID int, now time.Time) {
	poll := h.getPoll(session, interaction, pollID)
	if poll == nil {
		return
	}

	if poll.Closed(now) {
		h.rewriteClosedPollMessage(session, interaction, pollID, now)
		return
	}

	userID := extension.InteractionUserID(interaction)
	publicMessageID := extension.ParseSnowflake(interaction.Message.ID)

	resultsSession := &sessions.ResultsSession{
		UserID:    userID,
		PollID:    pollID,
		MessageID: publicMessageID,
		EndDate:   poll.EndDate,
	}

	text, err := resultsSession.Refresh(h.results, now)
	if err != nil {
		h.logger.Errorw("failed to format results", "pollID", pollID, "error", err)
		h.acknowledge(session, interaction)
		return
	}

	h.respond(session, interaction, extension.EphemeralResponse(text, refreshComponents(resultsSession)))

	// Losing this row only degrades refresh recovery, never vote state.
	_, err = h.ephemeralMessageRepository.Create(&models.EphemeralResultMessage{
		UserID:    userID,
		PollID:    pollID,
		MessageID: publicMessageID,
	})
	if err != nil {
		h.logger.Errorw("failed to record result view", "pollID", pollID, "userID", userID, "error", err)
	}
}

// handleRefreshResults re-renders a private tally view. When the direct
// interaction handle is no longer valid the registry is consulted; when
// that also fails the refresh silently does nothing.
func (h *voteBotInteractionHandler) handleRefreshResults(session *discordgo.Session, interaction *discordgo.InteractionCreate, pollID int, messageID int64, now time.Time) {
	poll := h.getPoll(session, interaction, pollID)
	if poll == nil {
		return
	}

	userID := extension.InteractionUserID(interaction)

	resultsSession := &sessions.ResultsSession{
		UserID:    userID,
		PollID:    pollID,
		MessageID: messageID,
		EndDate:   poll.EndDate,
	}

	text, err := resultsSession.Refresh(h.results, now)
	if err != nil {
		h.logger.Errorw("failed to format results", "pollID", pollID, "error", err)
		h.acknowledge(session, interaction)
		return
	}

	err = session.InteractionRespond(interaction.Interaction, extension.UpdateResponse(text, refreshComponents(resultsSession)))
	if err == nil {
		return
	}

	h.logger.Warnw("result view handle invalid, trying registry", "pollID", pollID, "userID", userID, "error", err)

	record, lookupErr := h.ephemeralMessageRepository.GetOne(userID, pollID, messageID)
	if lookupErr != nil || record == nil {
		h.logger.Warnw("result view not recoverable", "pollID", pollID, "userID", userID, "error", lookupErr)
		return
	}

	components := refreshComponents(resultsSession)
	_, err = session.FollowupMessageEdit(interaction.Interaction, extension.FormatSnowflake(record.MessageID), &discordgo.WebhookEdit{
		Content:    &text,
		Components: &components,
	})
	if err != nil {
		h.logger.Warnw("failed to refresh recovered result view", "pollID", pollID, "userID", userID, "error", err)
	}
}

// rewriteClosedPollMessage replaces the public poll message with the final
// results and disables its controls. Enforcement of the closing time is
// lazy; this is the first interaction after it passed.
func (h *voteBotInteractionHandler) rewriteClosedPollMessage(session *discordgo.Session, interaction *discordgo.InteractionCreate, pollID int, now time.Time) {
	text, err := h.results.FormatResults(pollID, now)
	if err != nil {
		h.logger.Errorw("failed to format results", "pollID", pollID, "error", err)
		h.acknowledge(session, interaction)
		return
	}

	h.respond(session, interaction, extension.UpdateResponse(text, commands.PollControls(pollID, true)))
}

func (h *voteBotInteractionHandler) getPoll(session *discordgo.Session, interaction *discordgo.InteractionCreate, pollID int) *models.Poll {
	poll, err := h.pollRepository.GetOne(pollID)
	if err != nil {
		h.logger.Errorw("failed to get poll", "pollID", pollID, "error", err)
		h.acknowledge(session, interaction)
		return nil
	}
	if poll == nil {
		h.logger.Warnw("interaction for unknown poll", "pollID", pollID)
		h.respond(session, interaction, extension.EphemeralResponse("Poll not found.", nil))
		return nil
	}

	return poll
}

func (h *voteBotInteractionHandler) respond(session *discordgo.Session, interaction *discordgo.InteractionCreate, response *discordgo.InteractionResponse) {
	if err := session.InteractionRespond(interaction.Interaction, response); err != nil {
		h.logger.Errorw("failed to respond to interaction", "error", err)
	}
}

func (h *voteBotInteractionHandler) acknowledge(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	h.respond(session, interaction, extension.AcknowledgeResponse())
}

// optionComponents renders option buttons five to a row, selected options
// highlighted. Discord caps a row at five buttons.
func optionComponents(pollID int, controls []sessions.OptionControl) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent

	for _, control := range controls {
		style := discordgo.SecondaryButton
		if control.Selected {
			style = discordgo.SuccessButton
		}

		row = append(row, discordgo.Button{
			Label:    control.Text,
			Style:    style,
			Disabled: control.Disabled,
			CustomID: internal.CallbackToken(internal.ActionOption, int64(pollID), int64(control.OptionID)),
		})

		if len(row) == 5 {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}

	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}

	return rows
}

func refreshComponents(resultsSession *sessions.ResultsSession) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Refresh results",
					Style:    discordgo.SuccessButton,
					Disabled: resultsSession.RefreshDisabled,
					CustomID: internal.CallbackToken(internal.ActionRefresh, int64(resultsSession.PollID), resultsSession.MessageID),
				},
			},
		},
	}
}
