package natal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/chart"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

const chatID int64 = 7

type outgoing struct {
	kind      string
	chatID    int64
	messageID int64
	text      string
	keyboard  *domain.InlineKeyboard
}

// fakeTelegram записывает всё, что бот отправил
type fakeTelegram struct {
	mu       sync.Mutex
	out      []outgoing
	answered []string
}

func (f *fakeTelegram) add(o outgoing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.out = append(f.out, o)
	return nil
}

func (f *fakeTelegram) SendMessage(_ context.Context, chatID int64, text string) error {
	return f.add(outgoing{kind: "plain", chatID: chatID, text: text})
}

func (f *fakeTelegram) SendMessageWithMarkdown(_ context.Context, chatID int64, text string) error {
	return f.add(outgoing{kind: "markdown", chatID: chatID, text: text})
}

func (f *fakeTelegram) SendMessageWithKeyboard(_ context.Context, chatID int64, text string, keyboard *domain.InlineKeyboard) error {
	return f.add(outgoing{kind: "keyboard", chatID: chatID, text: text, keyboard: keyboard})
}

func (f *fakeTelegram) EditMessageText(_ context.Context, chatID int64, messageID int64, text string) error {
	return f.add(outgoing{kind: "edit", chatID: chatID, messageID: messageID, text: text})
}

func (f *fakeTelegram) AnswerCallbackQuery(_ context.Context, callbackID string, text string, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answered = append(f.answered, text)
	return nil
}

func (f *fakeTelegram) last(t *testing.T) outgoing {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.out)
	return f.out[len(f.out)-1]
}

type stubResolver struct {
	places map[string]domain.ResolvedPlace
	calls  int
}

func (r *stubResolver) Resolve(_ context.Context, text string) (domain.ResolvedPlace, error) {
	r.calls++
	place, ok := r.places[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return domain.ResolvedPlace{}, fmt.Errorf("%w: %q", domain.ErrPlaceNotResolved, text)
	}
	return place, nil
}

// fixedEphemeris все точки в фиксированных долготах
type fixedEphemeris struct {
	gotAt time.Time
}

func (e *fixedEphemeris) CalculatePositions(
	_ context.Context,
	at time.Time,
	_ domain.GeoPoint,
	points []domain.Point,
	_ domain.HouseSystem,
) ([]domain.PointPosition, error) {
	e.gotAt = at
	out := make([]domain.PointPosition, 0, len(points))
	for i, p := range points {
		house := i%12 + 1
		if p.IsAngle() {
			house = 0
		}
		// Sun 164.75 (Virgo), далее с шагом 47°
		out = append(out, domain.PointPosition{Point: p, Longitude: float64(int(164.75*100+float64(i)*4700)%36000) / 100, House: house})
	}
	return out, nil
}

type failingEngine struct{}

func (failingEngine) Compute(context.Context, domain.UTCInstant, float64, float64) (*domain.Chart, error) {
	return nil, fmt.Errorf("%w: ephemeris unavailable", domain.ErrChartCalculation)
}

type recordingAlerter struct {
	messages []string
}

func (a *recordingAlerter) SendAlert(_ context.Context, message string) error {
	a.messages = append(a.messages, message)
	return nil
}

type testBot struct {
	svc       *Service
	tg        *fakeTelegram
	resolver  *stubResolver
	ephemeris *fixedEphemeris
	alerter   *recordingAlerter
}

func newTestBot(t *testing.T) *testBot {
	t.Helper()
	tb := &testBot{
		tg: &fakeTelegram{},
		resolver: &stubResolver{places: map[string]domain.ResolvedPlace{
			"paris, france": {Lat: 48.8566, Lon: 2.3522, Address: "Paris, Île-de-France, France", Timezone: "Europe/Paris"},
		}},
		ephemeris: &fixedEphemeris{},
		alerter:   &recordingAlerter{},
	}
	tb.svc = New(
		inmemory.NewSessionStore(),
		tb.resolver,
		chart.New(tb.ephemeris),
		tb.tg,
		tb.alerter,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return tb
}

func (tb *testBot) state(t *testing.T) domain.DialogueState {
	t.Helper()
	session, err := tb.svc.SessionRepo.Get(context.Background(), chatID)
	require.NoError(t, err)
	return session.State
}

func (tb *testBot) callback(data string, messageID int64) *domain.CallbackQuery {
	return &domain.CallbackQuery{
		ID:      "cb-" + data,
		From:    &domain.TelegramUser{ID: chatID},
		Message: &domain.Message{MessageID: messageID, Chat: &domain.Chat{ID: chatID, Type: "private"}},
		Data:    &data,
	}
}

// toConfirmation проводит диалог до кнопок подтверждения
func (tb *testBot) toConfirmation(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, tb.svc.HandleCommand(ctx, chatID, "start"))
	require.NoError(t, tb.svc.HandleText(ctx, chatID, "07-09-1998"))
	require.NoError(t, tb.svc.HandleText(ctx, chatID, "14:35"))
	require.NoError(t, tb.svc.HandleText(ctx, chatID, "  Paris, France "))
}

func TestDialogue_HappyPath(t *testing.T) {
	ctx := context.Background()
	tb := newTestBot(t)

	require.NoError(t, tb.svc.HandleCommand(ctx, chatID, "start"))
	assert.Equal(t, outgoing{kind: "markdown", chatID: chatID, text: texts.Welcome}, tb.tg.last(t))
	assert.Equal(t, domain.StateAwaitingDate, tb.state(t))

	require.NoError(t, tb.svc.HandleText(ctx, chatID, "07-09-1998"))
	assert.Equal(t, texts.AskTime, tb.tg.last(t).text)
	assert.Equal(t, domain.StateAwaitingTime, tb.state(t))

	require.NoError(t, tb.svc.HandleText(ctx, chatID, "14:35"))
	assert.Equal(t, texts.AskPlace, tb.tg.last(t).text)
	assert.Equal(t, domain.StateAwaitingPlace, tb.state(t))

	require.NoError(t, tb.svc.HandleText(ctx, chatID, "Paris, France"))
	confirm := tb.tg.last(t)
	assert.Equal(t, "keyboard", confirm.kind)
	assert.Contains(t, confirm.text, "• Date: *07-09-1998*")
	assert.Contains(t, confirm.text, "• Time: *14:35*")
	assert.Contains(t, confirm.text, "• Time Zone: *Europe/Paris*")
	assert.Equal(t, texts.ConfirmKeyboard(), confirm.keyboard)
	assert.Equal(t, domain.StateAwaitingConfirmation, tb.state(t))

	require.NoError(t, tb.svc.HandleCallback(ctx, tb.callback(texts.CallbackConfirm, 99)))

	result := tb.tg.last(t)
	assert.Equal(t, "edit", result.kind)
	assert.Equal(t, int64(99), result.messageID)
	assert.True(t, strings.HasPrefix(result.text, texts.ChartTitle))
	assert.Contains(t, result.text, "✨ *Sun* in *Virgo*")
	assert.Contains(t, result.text, "• *Midheaven*:")
	assert.Equal(t, []string{texts.Calculating}, tb.tg.answered)

	// 14:35 CEST = 12:35 UTC
	assert.Equal(t, time.Date(1998, time.September, 7, 12, 35, 0, 0, time.UTC), tb.ephemeris.gotAt)

	_, err := tb.svc.SessionRepo.Get(ctx, chatID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Empty(t, tb.alerter.messages)
}

func TestDialogue_InvalidInputRepromptsSameStep(t *testing.T) {
	ctx := context.Background()
	tb := newTestBot(t)
	require.NoError(t, tb.svc.HandleCommand(ctx, chatID, "start"))

	require.NoError(t, tb.svc.HandleText(ctx, chatID, "31-04-1998"))
	assert.Equal(t, texts.InvalidDate, tb.tg.last(t).text)
	assert.Equal(t, domain.StateAwaitingDate, tb.state(t))

	require.NoError(t, tb.svc.HandleText(ctx, chatID, "1998-09-07"))
	require.NoError(t, tb.svc.HandleText(ctx, chatID, "9:5"))
	assert.Equal(t, texts.InvalidTime, tb.tg.last(t).text)
	assert.Equal(t, domain.StateAwaitingTime, tb.state(t))

	require.NoError(t, tb.svc.HandleText(ctx, chatID, "9:05"))
	require.NoError(t, tb.svc.HandleText(ctx, chatID, "Atlantis"))
	assert.Equal(t, outgoing{kind: "markdown", chatID: chatID, text: texts.PlaceNotFound}, tb.tg.last(t))
	assert.Equal(t, domain.StateAwaitingPlace, tb.state(t))
}

func TestDialogue_EditGoesBackToDate(t *testing.T) {
	ctx := context.Background()
	tb := newTestBot(t)
	tb.toConfirmation(t)

	require.NoError(t, tb.svc.HandleCallback(ctx, tb.callback(texts.CallbackEdit, 42)))
	assert.Equal(t, outgoing{kind: "edit", chatID: chatID, messageID: 42, text: texts.EditRestart}, tb.tg.last(t))

	session, err := tb.svc.SessionRepo.Get(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAwaitingDate, session.State)
	assert.Nil(t, session.Place)
	assert.Equal(t, domain.BirthInput{}, session.Birth)
}

func TestDialogue_TextWhileConfirming(t *testing.T) {
	tb := newTestBot(t)
	tb.toConfirmation(t)

	require.NoError(t, tb.svc.HandleText(context.Background(), chatID, "yes"))
	assert.Equal(t, texts.UseButtons, tb.tg.last(t).text)
	assert.Equal(t, domain.StateAwaitingConfirmation, tb.state(t))
}

func TestDialogue_NoSession(t *testing.T) {
	ctx := context.Background()
	tb := newTestBot(t)

	require.NoError(t, tb.svc.HandleText(ctx, chatID, "07-09-1998"))
	assert.Equal(t, texts.NoSession, tb.tg.last(t).text)

	// кнопка от завершённого диалога
	require.NoError(t, tb.svc.HandleCallback(ctx, tb.callback(texts.CallbackConfirm, 1)))
	assert.Equal(t, texts.NoSession, tb.tg.last(t).text)
	assert.Zero(t, tb.resolver.calls)
}

func TestDialogue_ChartFailure(t *testing.T) {
	ctx := context.Background()
	tb := newTestBot(t)
	tb.svc.ChartEngine = failingEngine{}
	tb.toConfirmation(t)

	err := tb.svc.HandleCallback(ctx, tb.callback(texts.CallbackConfirm, 99))
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))
	assert.True(t, errors.Is(err, domain.ErrChartCalculation))

	assert.Equal(t, outgoing{kind: "plain", chatID: chatID, text: texts.ChartError}, tb.tg.last(t))
	require.Len(t, tb.alerter.messages, 1)
	assert.Contains(t, tb.alerter.messages[0], "ephemeris unavailable")
	assert.Contains(t, tb.alerter.messages[0], "Europe/Paris")

	_, err = tb.svc.SessionRepo.Get(ctx, chatID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDialogue_ChartFailureWithoutAlerter(t *testing.T) {
	tb := newTestBot(t)
	tb.svc.ChartEngine = failingEngine{}
	tb.svc.AlerterService = nil
	tb.toConfirmation(t)

	err := tb.svc.HandleCallback(context.Background(), tb.callback(texts.CallbackConfirm, 99))
	assert.True(t, domain.IsBusinessError(err))
	assert.Equal(t, texts.ChartError, tb.tg.last(t).text)
}

func TestCommands(t *testing.T) {
	ctx := context.Background()
	tb := newTestBot(t)

	require.NoError(t, tb.svc.HandleCommand(ctx, chatID, "help"))
	assert.Equal(t, outgoing{kind: "plain", chatID: chatID, text: texts.Help}, tb.tg.last(t))

	require.NoError(t, tb.svc.HandleCommand(ctx, chatID, "horoscope"))
	assert.Equal(t, texts.FormatUnknownCommand("horoscope"), tb.tg.last(t).text)

	tb.toConfirmation(t)
	require.NoError(t, tb.svc.HandleCommand(ctx, chatID, "cancel"))
	assert.Equal(t, texts.Cancelled, tb.tg.last(t).text)
	_, err := tb.svc.SessionRepo.Get(ctx, chatID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStartResetsUnfinishedDialogue(t *testing.T) {
	ctx := context.Background()
	tb := newTestBot(t)
	tb.toConfirmation(t)

	require.NoError(t, tb.svc.HandleCommand(ctx, chatID, "start"))
	assert.Equal(t, domain.StateAwaitingDate, tb.state(t))
}
