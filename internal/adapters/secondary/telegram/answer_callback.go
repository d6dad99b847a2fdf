package telegram

import (
	"context"
	"fmt"
)

// AnswerCallbackQueryRequest запрос на ответ callback query
type AnswerCallbackQueryRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
}

// AnswerCallbackQuery отправляет ответ на callback query
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	reqBody := AnswerCallbackQueryRequest{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       showAlert,
	}

	if err := c.call(ctx, "answerCallbackQuery", reqBody, nil); err != nil {
		return fmt.Errorf("answerCallbackQuery: %w", err)
	}

	c.log.Debug("callback query answered successfully", "callback_id", callbackID)
	return nil
}
