package texts

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

func samplePoints() []domain.PointSummary {
	return []domain.PointSummary{
		{Point: domain.PointSun, Sign: "Virgo", Degree: "14°35'", House: 9},
		{Point: domain.PointMoon, Sign: "Pisces", Degree: "14°30'", House: 3},
		{Point: domain.PointMercury, Sign: "Leo", Degree: "1°00'", House: 8},
		{Point: domain.PointVenus, Sign: "Virgo", Degree: "9°00'", House: 9},
		{Point: domain.PointMars, Sign: "Leo", Degree: "10°30'", House: 8},
		{Point: domain.PointJupiter, Sign: "Pisces", Degree: "22°00'", House: 3},
		{Point: domain.PointSaturn, Sign: "Taurus", Degree: "3°00'", House: 5},
		{Point: domain.PointUranus, Sign: "Aquarius", Degree: "8°30'", House: 2},
		{Point: domain.PointNeptune, Sign: "Capricorn", Degree: "28°45'", House: 1},
		{Point: domain.PointPluto, Sign: "Sagittarius", Degree: "5°00'", House: 12},
		{Point: domain.PointAscendant, Sign: "Sagittarius", Degree: "17°30'"},
		{Point: domain.PointMidheaven, Sign: "Libra", Degree: "2°15'"},
	}
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t,
		"✨ *Sun* in *Virgo*  |  🌙 *Moon* in *Pisces*  |  ⬆️ *Rising* in *Sagittarius*",
		FormatHeader(samplePoints()),
	)
}

func TestFormatPoints(t *testing.T) {
	lines := strings.Split(FormatPoints(samplePoints()), "\n")
	require.Len(t, lines, 12)

	assert.Equal(t, "• *Sun*: Virgo @ 14°35' — House 9", lines[0])
	assert.Equal(t, "• *Pluto*: Sagittarius @ 5°00' — House 12", lines[9])
	assert.Equal(t, "• *Ascendant*: Sagittarius @ 17°30'", lines[10])
	assert.Equal(t, "• *Midheaven*: Libra @ 2°15'", lines[11])
}

func TestFormatAspects(t *testing.T) {
	text := FormatAspects([]domain.AspectSummary{
		{A: domain.PointSun, Kind: domain.AspectSquare, B: domain.PointMoon, Orb: 1.234},
		{A: domain.PointSun, Kind: domain.AspectConjunction, B: domain.PointVenus, Orb: 0},
	})

	assert.Equal(t,
		"• Sun Square Moon (orb 1.23°)\n• Sun Conjunction Venus (orb 0.00°)",
		text,
	)
}

func TestFormatAspects_Empty(t *testing.T) {
	assert.Equal(t, "_No major aspects within 6° orb_.", FormatAspects(nil))
	assert.Contains(t, FormatAspects([]domain.AspectSummary{}), NoAspectsPlaceholder)
}

func TestFormatChart(t *testing.T) {
	text := FormatChart(samplePoints(), nil)

	assert.True(t, strings.HasPrefix(text, ChartTitle+"\n✨ *Sun* in *Virgo*"))
	assert.Contains(t, text, PointsTitle+"\n• *Sun*: Virgo @ 14°35' — House 9")
	assert.True(t, strings.HasSuffix(text, AspectsTitle+"\n_No major aspects within 6° orb_."))
}

func TestFormatConfirmation(t *testing.T) {
	text := FormatConfirmation(
		domain.Date{Year: 1998, Month: time.September, Day: 7},
		domain.ClockTime{Hour: 9, Minute: 5},
		domain.ResolvedPlace{Address: "New York, *United States*", Timezone: "America/New_York"},
	)

	assert.Contains(t, text, "• Date: *07-09-1998*")
	assert.Contains(t, text, "• Time: *09:05*")
	assert.Contains(t, text, "• Place: *New York, United States*")
	assert.Contains(t, text, "• Time Zone: *America/New_York*")
}

func TestConfirmKeyboard(t *testing.T) {
	kb := ConfirmKeyboard()
	require.Len(t, kb.InlineKeyboard, 1)
	require.Len(t, kb.InlineKeyboard[0], 2)
	assert.Equal(t, CallbackConfirm, kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, CallbackEdit, kb.InlineKeyboard[0][1].CallbackData)
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, "foo\\_bar \\*x\\* \\`y\\` \\[z]", EscapeMarkdown("foo_bar *x* `y` [z]"))
	assert.Equal(t, "Unknown command /do\\_it. Send /help for the list of commands.", FormatUnknownCommand("do_it"))
}
