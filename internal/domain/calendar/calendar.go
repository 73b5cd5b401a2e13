package calendar

import "time"

// BusinessCalendar answers working-day questions against the Brazilian
// national holiday table. One value is built per evaluation batch and shared
// across every invoice in the run; holiday tables are computed per year on
// first use.
//
// Only dates matter here: all inputs are truncated to midnight UTC before
// comparison, so callers may pass timestamps freely.
type BusinessCalendar struct {
	holidays map[int]map[time.Time]struct{}
}

// NewBrazil returns a calendar over Brazilian national holidays.
func NewBrazil() *BusinessCalendar {
	return &BusinessCalendar{holidays: make(map[int]map[time.Time]struct{})}
}

// IsWorkingDay reports whether d is a working day: not a Saturday, not a
// Sunday and not a national holiday.
func (c *BusinessCalendar) IsWorkingDay(d time.Time) bool {
	d = DateOnly(d)
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, holiday := c.yearHolidays(d.Year())[d]
	return !holiday
}

// NextWorkingDay advances d to the nearest working day. It is the identity
// on a date that is already a working day; otherwise it returns the smallest
// working day strictly after d. Used to derive the legal due date when the
// nominal due date falls on a non-working day.
func (c *BusinessCalendar) NextWorkingDay(d time.Time) time.Time {
	d = DateOnly(d)
	for !c.IsWorkingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// BusinessDaysOverdue counts the working days in (dueDate, today]: exclusive
// of the due date, inclusive of today when today is a working day. Zero
// whenever today is on or before the due date. Weekends and holidays never
// count.
func (c *BusinessCalendar) BusinessDaysOverdue(dueDate, today time.Time) int {
	dueDate = DateOnly(dueDate)
	today = DateOnly(today)

	days := 0
	for d := dueDate.AddDate(0, 0, 1); !d.After(today); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			days++
		}
	}
	return days
}

// DateOnly truncates a timestamp to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (c *BusinessCalendar) yearHolidays(year int) map[time.Time]struct{} {
	if hs, ok := c.holidays[year]; ok {
		return hs
	}
	hs := brazilHolidays(year)
	c.holidays[year] = hs
	return hs
}

// brazilHolidays builds the national holiday table for one year: the fixed
// civil holidays plus the movable feasts derived from Easter (Carnival
// Monday and Tuesday, Good Friday, Corpus Christi).
func brazilHolidays(year int) map[time.Time]struct{} {
	hs := make(map[time.Time]struct{})

	fixed := []time.Time{
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),   // Confraternização Universal
		time.Date(year, time.April, 21, 0, 0, 0, 0, time.UTC),    // Tiradentes
		time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC),       // Dia do Trabalho
		time.Date(year, time.September, 7, 0, 0, 0, 0, time.UTC), // Independência
		time.Date(year, time.October, 12, 0, 0, 0, 0, time.UTC),  // Nossa Senhora Aparecida
		time.Date(year, time.November, 2, 0, 0, 0, 0, time.UTC),  // Finados
		time.Date(year, time.November, 15, 0, 0, 0, 0, time.UTC), // Proclamação da República
		time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC), // Natal
	}
	for _, d := range fixed {
		hs[d] = struct{}{}
	}

	easter := easterSunday(year)
	movable := []time.Time{
		easter.AddDate(0, 0, -48), // Carnival Monday
		easter.AddDate(0, 0, -47), // Carnival Tuesday
		easter.AddDate(0, 0, -2),  // Good Friday
		easter.AddDate(0, 0, 60),  // Corpus Christi
	}
	for _, d := range movable {
		hs[d] = struct{}{}
	}

	return hs
}

// easterSunday computes the Gregorian Easter date (anonymous Gregorian
// computus).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
