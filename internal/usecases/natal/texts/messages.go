// Package texts тексты бота и форматирование карты для Telegram (Markdown)
package texts

// Диалог
const (
	Welcome = "🌟 Welcome to *Natal Chart Bot*!\n" +
		"I'll build your natal chart from your birth date, time and place.\n\n" +
		"Send your birth date in *DD-MM-YYYY* (e.g., 07-09-1998)."

	AskTime  = "⏰ Now send your birth time in 24h *HH:MM* (e.g., 14:35)."
	AskPlace = "📍 Finally, send your *birth place* in the form *City, Country*."

	InvalidDate   = "❌ Invalid date format. Please send as DD-MM-YYYY."
	InvalidTime   = "❌ Invalid time. Please send as HH:MM (00–23:59)."
	PlaceNotFound = "❌ Couldn't find that place or its timezone. Try `City, Country`."

	EditRestart = "Okay, let's start over. Send your birth *date* (DD-MM-YYYY)."

	UseButtons = "Please confirm your details with the buttons above, or send /cancel."
	NoSession  = "Send /start to enter your birth details and get your chart."
	Cancelled  = "Cancelled. Send /start whenever you want to try again."

	Calculating = "Calculating your chart…"
	ChartError  = "⚠️ Something went wrong while calculating your chart. Please try again with /start."

	Help = "Commands:\n" +
		"/start — Enter birth details and generate your chart\n" +
		"/cancel — Stop the current dialogue\n" +
		"/help — This help"

	UnknownCommand = "Unknown command /%s. Send /help for the list of commands."
)

// Подтверждение
const (
	ConfirmSummary = "Please confirm your details:\n\n" +
		"• Date: *%s*\n" +
		"• Time: *%s*\n" +
		"• Place: *%s*\n" +
		"• Time Zone: *%s*\n\n" +
		"Proceed?"

	ButtonYes  = "✅ Yes"
	ButtonEdit = "✏️ Edit"

	CallbackConfirm = "ok"
	CallbackEdit    = "edit"
)

// Карта
const (
	ChartTitle   = "🗺️ *Your Natal Chart*"
	ChartHeader  = "✨ *Sun* in *%s*  |  🌙 *Moon* in *%s*  |  ⬆️ *Rising* in *%s*"
	PointsTitle  = "*Planets & Points* (sign @ degree — house):"
	AspectsTitle = "*Major Aspects*:"

	// NoAspectsPlaceholder выводится вместо пустого блока аспектов
	NoAspectsPlaceholder = "No major aspects within 6° orb"
)
