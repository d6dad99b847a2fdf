package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

const (
	telegramAPIBaseURL = "https://api.telegram.org/bot"
	apiTimeout         = 30 * time.Second

	parseModeMarkdown = "Markdown"
)

// Client клиент для работы с Telegram Bot API
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// NewClient создаёт новый клиент для Telegram Bot API
func NewClient(token string, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL: telegramAPIBaseURL + token,
		log:     log,
	}
}

// NewClientWithBaseURL клиент с произвольным адресом Bot API вида <host>/bot<token>
// (локальный Bot API сервер, тесты)
func NewClientWithBaseURL(baseURL string, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		log:     log,
	}
}

// call POST метода Bot API с JSON телом. result может быть nil.
func (c *Client) call(ctx context.Context, method string, payload any, result any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request to telegram: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp struct {
		APIResponse
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.log.Error("failed to unmarshal response",
			"error", err,
			"method", method,
			"status_code", resp.StatusCode,
			"body", string(body),
		)
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error",
			"method", method,
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"status_code", resp.StatusCode,
		)
		return &APIError{Method: method, Code: apiResp.ErrorCode, Description: apiResp.Description}
	}

	if result != nil && len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, result); err != nil {
			return fmt.Errorf("failed to unmarshal %s result: %w", method, err)
		}
	}

	return nil
}

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	ChatID          int64                  `json:"chat_id"`
	MessageThreadID *int64                 `json:"message_thread_id,omitempty"`
	Text            string                 `json:"text"`
	ParseMode       string                 `json:"parse_mode,omitempty"` // "HTML", "Markdown", "MarkdownV2"
	ReplyMarkup     *domain.InlineKeyboard `json:"reply_markup,omitempty"`
}

// SendMessageResult результат отправки сообщения
type SendMessageResult struct {
	MessageID int64 `json:"message_id"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
	Text string `json:"text"`
	Date int64  `json:"date"`
}

// SendMessage отправляет текстовое сообщение
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := c.SendMessageWithRequest(ctx, SendMessageRequest{
		ChatID: chatID,
		Text:   text,
	})
	return err
}

// SendMessageWithMarkdown отправляет сообщение с Markdown форматированием
func (c *Client) SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error {
	_, err := c.SendMessageWithRequest(ctx, SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseModeMarkdown,
	})
	return err
}

// SendMessageWithKeyboard отправляет Markdown сообщение с inline клавиатурой
func (c *Client) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard *domain.InlineKeyboard) error {
	_, err := c.SendMessageWithRequest(ctx, SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   parseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	return err
}

// SendMessageWithRequest отправляет произвольно собранный запрос (например, в топик форума)
func (c *Client) SendMessageWithRequest(ctx context.Context, req SendMessageRequest) (*SendMessageResult, error) {
	var result SendMessageResult
	if err := c.call(ctx, "sendMessage", req, &result); err != nil {
		return nil, fmt.Errorf("sendMessage to chat %d: %w", req.ChatID, err)
	}

	c.log.Debug("message sent successfully",
		"chat_id", req.ChatID,
		"message_id", result.MessageID,
	)
	return &result, nil
}

// GetMe проверяет токен бота
func (c *Client) GetMe(ctx context.Context) error {
	var me domain.TelegramUser
	if err := c.call(ctx, "getMe", struct{}{}, &me); err != nil {
		return fmt.Errorf("getMe: %w", err)
	}

	username := ""
	if me.Username != nil {
		username = *me.Username
	}
	c.log.Info("bot info retrieved successfully", "bot_id", me.ID, "username", username)
	return nil
}

// BotCommand представляет команду бота
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SetMyCommands регистрирует команды бота в меню
func (c *Client) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	reqBody := struct {
		Commands []BotCommand `json:"commands"`
	}{
		Commands: commands,
	}

	if err := c.call(ctx, "setMyCommands", reqBody, nil); err != nil {
		return fmt.Errorf("setMyCommands: %w", err)
	}

	c.log.Info("bot commands registered successfully", "commands_count", len(commands))
	return nil
}
