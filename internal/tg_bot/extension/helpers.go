package extension

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Something went wrong, please try again.")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

// PlainText strips the emphasis markers the results renderer emits for
// Discord-flavored markdown, which Telegram would show literally.
func PlainText(text string) string {
	return strings.NewReplacer("**", "", "*", "", "_", "").Replace(text)
}
