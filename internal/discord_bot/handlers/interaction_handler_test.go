package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"discord_vote_bot/internal/db/models"
	mock_repositories "discord_vote_bot/internal/db/repositories/mocks"
	mock_services "discord_vote_bot/internal/services/mocks"
	"discord_vote_bot/internal/sessions"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// recordingSession returns a discord session whose transport captures the
// JSON body of the next interaction response instead of calling out.
func recordingSession(t *testing.T, captured *map[string]interface{}) *discordgo.Session {
	return &discordgo.Session{
		Ratelimiter: discordgo.NewRatelimiter(),
		Client: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.NoError(t, json.Unmarshal(body, captured))
			return &http.Response{
				StatusCode: http.StatusNoContent,
				Header:     http.Header{},
				Body:       io.NopCloser(bytes.NewReader(nil)),
			}, nil
		})},
	}
}

func TestHandle_ShowResultsOnClosedPollRewritesPublicMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	ephemeralRepo := mock_repositories.NewMockEphemeralMessageRepository(ctrl)
	engine := mock_services.NewMockVoteEngine(ctrl)
	results := mock_services.NewMockResultsService(ctrl)

	end := time.Date(2024, 6, 4, 23, 59, 0, 0, time.UTC)
	pollRepo.EXPECT().GetOne(12).Return(&models.Poll{
		ID:       12,
		Question: "Ship it?",
		EndDate:  end,
		Kind:     models.PollKindSingle,
	}, nil)
	results.EXPECT().FormatResults(12, gomock.Any()).Return("final results", nil)

	var captured map[string]interface{}
	session := recordingSession(t, &captured)

	handler := NewVoteBotInteractionHandler(pollRepo, ephemeralRepo, engine, results, zap.NewNop().Sugar())
	handler.Handle(session, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "900",
		Type:    discordgo.InteractionMessageComponent,
		Data:    discordgo.MessageComponentInteractionData{CustomID: "results:12"},
		Member:  &discordgo.Member{User: &discordgo.User{ID: "100"}},
		Message: &discordgo.Message{ID: "555"},
	}})

	assert.EqualValues(t, discordgo.InteractionResponseUpdateMessage, captured["type"])

	data, ok := captured["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "final results", data["content"])

	row := data["components"].([]interface{})[0].(map[string]interface{})
	buttons := row["components"].([]interface{})
	assert.Len(t, buttons, 2)
	for _, button := range buttons {
		assert.Equal(t, true, button.(map[string]interface{})["disabled"])
	}
}

func TestOptionComponents_ChunksFivePerRow(t *testing.T) {
	controls := make([]sessions.OptionControl, 7)
	for i := range controls {
		controls[i] = sessions.OptionControl{OptionID: i + 1, Text: "option"}
	}

	components := optionComponents(1, controls)
	assert.Len(t, components, 2)
	assert.Len(t, components[0].(discordgo.ActionsRow).Components, 5)
	assert.Len(t, components[1].(discordgo.ActionsRow).Components, 2)
}

func TestOptionComponents_StylesAndState(t *testing.T) {
	components := optionComponents(12, []sessions.OptionControl{
		{OptionID: 1, Text: "Red", Selected: true},
		{OptionID: 2, Text: "Blue", Disabled: true},
	})

	row := components[0].(discordgo.ActionsRow)

	selected := row.Components[0].(discordgo.Button)
	assert.Equal(t, discordgo.SuccessButton, selected.Style)
	assert.Equal(t, "opt:12:1", selected.CustomID)
	assert.False(t, selected.Disabled)

	unselected := row.Components[1].(discordgo.Button)
	assert.Equal(t, discordgo.SecondaryButton, unselected.Style)
	assert.Equal(t, "opt:12:2", unselected.CustomID)
	assert.True(t, unselected.Disabled)
}

func TestRefreshComponents(t *testing.T) {
	session := &sessions.ResultsSession{PollID: 12, MessageID: 9876543210}

	components := refreshComponents(session)
	button := components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	assert.Equal(t, "Refresh results", button.Label)
	assert.Equal(t, "refresh:12:9876543210", button.CustomID)
	assert.False(t, button.Disabled)

	session.RefreshDisabled = true
	button = refreshComponents(session)[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	assert.True(t, button.Disabled)
}
