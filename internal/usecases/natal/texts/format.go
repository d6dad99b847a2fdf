package texts

import (
	"fmt"
	"strings"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// FormatUnknownCommand форматирует сообщение о неизвестной команде
func FormatUnknownCommand(command string) string {
	return fmt.Sprintf(UnknownCommand, EscapeMarkdown(command))
}

// FormatConfirmation сводка данных рождения перед расчётом
func FormatConfirmation(date domain.Date, clock domain.ClockTime, place domain.ResolvedPlace) string {
	return fmt.Sprintf(ConfirmSummary,
		date.String(),
		clock.String(),
		inBold(place.Address),
		inBold(place.Timezone),
	)
}

// ConfirmKeyboard кнопки Yes / Edit
func ConfirmKeyboard() *domain.InlineKeyboard {
	return &domain.InlineKeyboard{
		InlineKeyboard: [][]domain.InlineButton{{
			{Text: ButtonYes, CallbackData: CallbackConfirm},
			{Text: ButtonEdit, CallbackData: CallbackEdit},
		}},
	}
}

// FormatHeader строка Sun / Moon / Rising
func FormatHeader(points []domain.PointSummary) string {
	signs := make(map[domain.Point]domain.Sign, len(points))
	for _, p := range points {
		signs[p.Point] = p.Sign
	}

	return fmt.Sprintf(ChartHeader,
		signs[domain.PointSun],
		signs[domain.PointMoon],
		signs[domain.PointAscendant],
	)
}

// FormatPoints одна строка на точку, « — House N» только если точка в доме
func FormatPoints(points []domain.PointSummary) string {
	lines := make([]string, 0, len(points))
	for _, p := range points {
		line := fmt.Sprintf("• *%s*: %s @ %s", p.Point, p.Sign, p.Degree)
		if p.House > 0 {
			line += fmt.Sprintf(" — House %d", p.House)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// FormatAspects одна строка на аспект или заглушка, если аспектов нет
func FormatAspects(aspects []domain.AspectSummary) string {
	if len(aspects) == 0 {
		return "_" + NoAspectsPlaceholder + "_."
	}

	lines := make([]string, 0, len(aspects))
	for _, a := range aspects {
		lines = append(lines, fmt.Sprintf("• %s %s %s (orb %.2f°)", a.A, a.Kind, a.B, a.Orb))
	}
	return strings.Join(lines, "\n")
}

// FormatChart полное сообщение с картой
func FormatChart(points []domain.PointSummary, aspects []domain.AspectSummary) string {
	var b strings.Builder
	b.WriteString(ChartTitle)
	b.WriteString("\n")
	b.WriteString(FormatHeader(points))
	b.WriteString("\n\n")
	b.WriteString(PointsTitle)
	b.WriteString("\n")
	b.WriteString(FormatPoints(points))
	b.WriteString("\n\n")
	b.WriteString(AspectsTitle)
	b.WriteString("\n")
	b.WriteString(FormatAspects(aspects))
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// EscapeMarkdown экранирует спецсимволы legacy Markdown вне сущностей
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// inBold текст внутри *...*: экранирование внутри сущности не работает,
// поэтому закрывающую звёздочку просто убираем
func inBold(s string) string {
	return strings.ReplaceAll(s, "*", "")
}
