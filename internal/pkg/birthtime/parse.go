// Package birthtime разбирает дату и время рождения и переводит местное время в UTC.
package birthtime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// dateLayouts пробуются по порядку, побеждает первый подошедший.
// Одна цифра в дне/месяце допустима, год всегда из 4 цифр.
var dateLayouts = []string{
	"2-1-2006", // DD-MM-YYYY
	"2/1/2006", // DD/MM/YYYY
	"2006-1-2", // YYYY-MM-DD
}

var timePattern = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// ParseDate разбирает дату в форматах DD-MM-YYYY, DD/MM/YYYY или YYYY-MM-DD.
// Несуществующие даты (31-04-1998) не проходят.
func ParseDate(text string) (domain.Date, bool) {
	text = strings.TrimSpace(text)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		return domain.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, true
	}

	return domain.Date{}, false
}

// ParseTime разбирает время H:MM или HH:MM в 24-часовом формате
func ParseTime(text string) (domain.ClockTime, bool) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return domain.ClockTime{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return domain.ClockTime{}, false
	}

	return domain.ClockTime{Hour: hour, Minute: minute}, true
}
