package handlers

import (
	"errors"
	"time"

	"discord_vote_bot/internal"
	"discord_vote_bot/internal/db/models"
	"discord_vote_bot/internal/db/repositories"
	"discord_vote_bot/internal/services"
	"discord_vote_bot/internal/sessions"
	"discord_vote_bot/internal/tg_bot/commands"
	tgbot "discord_vote_bot/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type voteBotCommandHandler struct {
	pollRepository             repositories.PollRepository
	ephemeralMessageRepository repositories.EphemeralMessageRepository
	engine                     services.VoteEngine
	results                    services.ResultsService
	logger                     *zap.SugaredLogger

	commands []commands.Command
}

func NewVoteBotCommandHandler(
	pollRepository repositories.PollRepository,
	ephemeralMessageRepository repositories.EphemeralMessageRepository,
	engine services.VoteEngine,
	results services.ResultsService,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) CommandHandler {
	return &voteBotCommandHandler{
		pollRepository:             pollRepository,
		ephemeralMessageRepository: ephemeralMessageRepository,
		engine:                     engine,
		results:                    results,
		logger:                     logger,
		commands:                   commands,
	}
}

func (h *voteBotCommandHandler) Handle(bot *tgbotapi.BotAPI, update tgbotapi.Update) []tgbotapi.Chattable {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("panic while handling update", "panic", r)
		}
	}()

	message := update.Message
	callbackQuery := update.CallbackQuery

	if message != nil && message.IsCommand() {
		return h.tryToHandleCommand(message.Command(), message.CommandArguments(), message.Chat.ID)
	}

	if callbackQuery != nil {
		return h.handleCallbackQuery(bot, callbackQuery)
	}

	return []tgbotapi.Chattable{}
}

func (h *voteBotCommandHandler) tryToHandleCommand(command, arguments string, chatID int64) []tgbotapi.Chattable {
	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			return handler.Handle(arguments, chatID)
		}
	}

	h.logger.Warnf("received unknown command: %s", command)
	return []tgbotapi.Chattable{}
}

func (h *voteBotCommandHandler) handleCallbackQuery(bot *tgbotapi.BotAPI, callback *tgbotapi.CallbackQuery) []tgbotapi.Chattable {
	// Stop the client-side spinner regardless of the outcome.
	if _, err := bot.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		h.logger.Warnw("failed to answer callback query", "error", err)
	}

	action, args, err := internal.ParseCallbackToken(callback.Data)
	if err != nil {
		h.logger.Warnw("received malformed callback token", "error", err)
		return []tgbotapi.Chattable{}
	}

	now := time.Now()

	switch {
	case action == internal.ActionVote && len(args) == 1:
		return h.handleOpenVoteView(callback, int(args[0]), now)
	case action == internal.ActionOption && len(args) == 2:
		return h.handleOptionActivated(callback, int(args[0]), int(args[1]), now)
	case action == internal.ActionResults && len(args) == 1:
		return h.handleShowResults(bot, callback, int(args[0]), now)
	case action == internal.ActionRefresh && len(args) == 2:
		return h.handleRefreshResults(callback, int(args[0]), args[1], now)
	}

	h.logger.Warnf("received unknown callback action: %s", action)
	return []tgbotapi.Chattable{}
}

// handleOpenVoteView sends the user a private selection view. If the poll
// has meanwhile closed, the public poll message is rewritten to the final
// results and its keyboard removed instead.
func (h *voteBotCommandHandler) handleOpenVoteView(callback *tgbotapi.CallbackQuery, pollID int, now time.Time) []tgbotapi.Chattable {
	userID := callback.From.ID

	poll, reply := h.getPoll(pollID, userID)
	if poll == nil {
		return reply
	}

	if poll.Closed(now) {
		return h.rewriteClosedPollMessage(callback, pollID, now)
	}

	voteSession, err := sessions.NewVoteSession(h.engine, poll, userID, now)
	if err != nil {
		h.logger.Errorw("failed to load selection", "pollID", pollID, "userID", userID, "error", err)
		return []tgbotapi.Chattable{}
	}

	message := tgbotapi.NewMessage(userID, tgbot.PlainText(voteSession.Prompt()))
	message.ReplyMarkup = optionKeyboard(pollID, voteSession.Controls())

	return []tgbotapi.Chattable{message}
}

func (h *voteBotCommandHandler) handleOptionActivated(callback *tgbotapi.CallbackQuery, pollID, optionID int, now time.Time) []tgbotapi.Chattable {
	userID := callback.From.ID

	poll, reply := h.getPoll(pollID, userID)
	if poll == nil {
		return reply
	}

	voteSession, err := sessions.NewVoteSession(h.engine, poll, userID, now)
	if err != nil {
		h.logger.Errorw("failed to load selection", "pollID", pollID, "userID", userID, "error", err)
		return []tgbotapi.Chattable{}
	}

	err = voteSession.Activate(h.engine, optionID, now)
	switch {
	case errors.Is(err, models.ErrPollClosed):
		if callback.Message == nil {
			return []tgbotapi.Chattable{}
		}
		return []tgbotapi.Chattable{tgbotapi.NewEditMessageText(
			callback.Message.Chat.ID,
			callback.Message.MessageID,
			"The poll has ended. Your vote cannot be accepted.",
		)}
	case errors.Is(err, models.ErrUnknownOption):
		// UI only offers valid options; treat as a no-op.
		h.logger.Warnw("vote for unknown option", "pollID", pollID, "optionID", optionID)
		return []tgbotapi.Chattable{}
	case err != nil:
		h.logger.Errorw("failed to cast vote", "pollID", pollID, "optionID", optionID, "error", err)
		return []tgbotapi.Chattable{}
	}

	if callback.Message == nil {
		return []tgbotapi.Chattable{}
	}

	return []tgbotapi.Chattable{tgbotapi.NewEditMessageTextAndMarkup(
		callback.Message.Chat.ID,
		callback.Message.MessageID,
		tgbot.PlainText(voteSession.Prompt()),
		optionKeyboard(pollID, voteSession.Controls()),
	)}
}

// handleShowResults sends the private tally view and records it in the
// registry. The message is sent directly because its ID is both the
// refresh target and the registry key.
func (h *voteBotCommandHandler) handleShowResults(bot *tgbotapi.BotAPI, callback *tgbotapi.CallbackQuery, pollID int, now time.Time) []tgbotapi.Chattable {
	userID := callback.From.ID

	poll, reply := h.getPoll(pollID, userID)
	if poll == nil {
		return reply
	}

	if poll.Closed(now) {
		return h.rewriteClosedPollMessage(callback, pollID, now)
	}

	resultsSession := &sessions.ResultsSession{
		UserID:  userID,
		PollID:  pollID,
		EndDate: poll.EndDate,
	}

	text, err := resultsSession.Refresh(h.results, now)
	if err != nil {
		h.logger.Errorw("failed to format results", "pollID", pollID, "error", err)
		return []tgbotapi.Chattable{}
	}

	message := tgbotapi.NewMessage(userID, tgbot.PlainText(text))

	sent, err := bot.Send(message)
	if err != nil {
		h.logger.Errorw("failed to send result view", "pollID", pollID, "userID", userID, "error", err)
		return []tgbotapi.Chattable{}
	}

	resultsSession.MessageID = int64(sent.MessageID)

	if !resultsSession.RefreshDisabled {
		markup := refreshKeyboard(resultsSession)
		if _, err := bot.Send(tgbotapi.NewEditMessageTextAndMarkup(userID, sent.MessageID, tgbot.PlainText(text), markup)); err != nil {
			h.logger.Warnw("failed to attach refresh control", "pollID", pollID, "error", err)
		}
	}

	// Losing this row only degrades refresh recovery, never vote state.
	_, err = h.ephemeralMessageRepository.Create(&models.EphemeralResultMessage{
		UserID:    userID,
		PollID:    pollID,
		MessageID: int64(sent.MessageID),
	})
	if err != nil {
		h.logger.Errorw("failed to record result view", "pollID", pollID, "userID", userID, "error", err)
	}

	return []tgbotapi.Chattable{}
}

// handleRefreshResults re-renders a private tally view. When the message
// the control sits on is no longer accessible the registry is consulted;
// when that also fails the refresh silently does nothing.
func (h *voteBotCommandHandler) handleRefreshResults(callback *tgbotapi.CallbackQuery, pollID int, messageID int64, now time.Time) []tgbotapi.Chattable {
	userID := callback.From.ID

	poll, reply := h.getPoll(pollID, userID)
	if poll == nil {
		return reply
	}

	resultsSession := &sessions.ResultsSession{
		UserID:    userID,
		PollID:    pollID,
		MessageID: messageID,
		EndDate:   poll.EndDate,
	}

	text, err := resultsSession.Refresh(h.results, now)
	if err != nil {
		h.logger.Errorw("failed to format results", "pollID", pollID, "error", err)
		return []tgbotapi.Chattable{}
	}

	targetChatID := userID
	targetMessageID := int(messageID)

	if callback.Message != nil {
		targetChatID = callback.Message.Chat.ID
		targetMessageID = callback.Message.MessageID
	} else {
		record, lookupErr := h.ephemeralMessageRepository.GetOne(userID, pollID, messageID)
		if lookupErr != nil || record == nil {
			h.logger.Warnw("result view not recoverable", "pollID", pollID, "userID", userID, "error", lookupErr)
			return []tgbotapi.Chattable{}
		}
		targetMessageID = int(record.MessageID)
	}

	if resultsSession.RefreshDisabled {
		return []tgbotapi.Chattable{tgbotapi.NewEditMessageText(targetChatID, targetMessageID, tgbot.PlainText(text))}
	}

	return []tgbotapi.Chattable{tgbotapi.NewEditMessageTextAndMarkup(
		targetChatID,
		targetMessageID,
		tgbot.PlainText(text),
		refreshKeyboard(resultsSession),
	)}
}

func (h *voteBotCommandHandler) rewriteClosedPollMessage(callback *tgbotapi.CallbackQuery, pollID int, now time.Time) []tgbotapi.Chattable {
	text, err := h.results.FormatResults(pollID, now)
	if err != nil {
		h.logger.Errorw("failed to format results", "pollID", pollID, "error", err)
		return []tgbotapi.Chattable{}
	}

	if callback.Message == nil {
		return []tgbotapi.Chattable{}
	}

	return []tgbotapi.Chattable{tgbotapi.NewEditMessageText(
		callback.Message.Chat.ID,
		callback.Message.MessageID,
		tgbot.PlainText(text),
	)}
}

func (h *voteBotCommandHandler) getPoll(pollID int, chatID int64) (*models.Poll, []tgbotapi.Chattable) {
	poll, err := h.pollRepository.GetOne(pollID)
	if err != nil {
		h.logger.Errorw("failed to get poll", "pollID", pollID, "error", err)
		return nil, []tgbotapi.Chattable{}
	}
	if poll == nil {
		h.logger.Warnw("interaction for unknown poll", "pollID", pollID)
		return nil, []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Poll not found.")}
	}

	return poll, nil
}

// optionKeyboard renders one option per row, selected options marked.
func optionKeyboard(pollID int, controls []sessions.OptionControl) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(controls))

	for _, control := range controls {
		label := control.Text
		if control.Selected {
			label = "✅ " + label
		}

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, internal.CallbackToken(internal.ActionOption, int64(pollID), int64(control.OptionID))),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func refreshKeyboard(resultsSession *sessions.ResultsSession) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"Refresh results",
				internal.CallbackToken(internal.ActionRefresh, int64(resultsSession.PollID), resultsSession.MessageID),
			),
		),
	)
}
