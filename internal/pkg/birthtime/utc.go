package birthtime

import (
	"fmt"
	"time"
	// IANA база вшивается в бинарник, от zoneinfo хоста не зависим
	_ "time/tzdata"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// ToUTC переводит местные дату и время в зоне zoneID в UTCInstant по правилам,
// действовавшим на эту дату.
func ToUTC(date domain.Date, clock domain.ClockTime, zoneID string) (domain.UTCInstant, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return "", fmt.Errorf("unknown time zone %q: %w", zoneID, err)
	}

	return domain.NewUTCInstant(Localize(date, clock, loc)), nil
}

// Localize находит момент времени, которому соответствует настенное время в loc.
// При переводе часов назад (время повторяется) берётся самый ранний момент.
// Если время попало в пропуск при переводе вперёд, используется смещение,
// действовавшее до перехода.
func Localize(date domain.Date, clock domain.ClockTime, loc *time.Location) time.Time {
	wall := time.Date(date.Year, date.Month, date.Day, clock.Hour, clock.Minute, 0, 0, time.UTC)

	before := offsetAt(wall.Add(-24*time.Hour), loc)
	offsets := []int{before, offsetAt(wall, loc), offsetAt(wall.Add(24*time.Hour), loc)}

	var earliest time.Time
	found := false
	for _, off := range offsets {
		candidate := wall.Add(-time.Duration(off) * time.Second)
		if !sameWallClock(candidate.In(loc), wall) {
			continue
		}
		if !found || candidate.Before(earliest) {
			earliest = candidate
			found = true
		}
	}

	if found {
		return earliest.In(loc)
	}

	return wall.Add(-time.Duration(before) * time.Second).In(loc)
}

func offsetAt(t time.Time, loc *time.Location) int {
	_, off := t.In(loc).Zone()
	return off
}

func sameWallClock(local time.Time, wall time.Time) bool {
	y1, m1, d1 := local.Date()
	y2, m2, d2 := wall.Date()
	return y1 == y2 && m1 == m2 && d1 == d2 &&
		local.Hour() == wall.Hour() && local.Minute() == wall.Minute() && local.Second() == wall.Second()
}
