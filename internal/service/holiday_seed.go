package service

import "time"

// Seed data for the Turkish official holiday calendar. Fixed holidays
// repeat every year; religious holidays follow the lunar calendar and are
// kept as an explicit table per year.

const (
	seedFromYear = 2025
	seedToYear   = 2028
)

type fixedHoliday struct {
	Month     time.Month
	Day       int
	Desc      string
	IsHalfDay bool
}

var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Yılbaşı", false},
	{time.April, 23, "23 Nisan", false},
	{time.May, 1, "1 Mayıs", false},
	{time.May, 19, "19 Mayıs", false},
	{time.July, 15, "15 Temmuz", false},
	{time.August, 30, "30 Ağustos", false},
	{time.October, 28, "29 Ekim Arifesi", true},
	{time.October, 29, "29 Ekim", false},
}

type religiousHoliday struct {
	Date      string // "2006-01-02"
	Desc      string
	IsHalfDay bool
}

var religiousHolidays = []religiousHoliday{
	// 2025
	{"2025-03-29", "Ramazan B. Arifesi", true},
	{"2025-03-30", "Ramazan B.", false},
	{"2025-03-31", "Ramazan B.", false},
	{"2025-04-01", "Ramazan B.", false},
	{"2025-06-05", "Kurban B. Arifesi", true},
	{"2025-06-06", "Kurban B.", false},
	{"2025-06-07", "Kurban B.", false},
	{"2025-06-08", "Kurban B.", false},
	{"2025-06-09", "Kurban B.", false},

	// 2026
	{"2026-03-19", "Ramazan B. Arifesi", true},
	{"2026-03-20", "Ramazan B.", false},
	{"2026-03-21", "Ramazan B.", false},
	{"2026-03-22", "Ramazan B.", false},
	{"2026-05-26", "Kurban B. Arifesi", true},
	{"2026-05-27", "Kurban B.", false},
	{"2026-05-28", "Kurban B.", false},
	{"2026-05-29", "Kurban B.", false},
	{"2026-05-30", "Kurban B.", false},

	// 2027
	{"2027-03-08", "Ramazan B. Arifesi", true},
	{"2027-03-09", "Ramazan B.", false},
	{"2027-03-10", "Ramazan B.", false},
	{"2027-03-11", "Ramazan B.", false},
	{"2027-05-15", "Kurban B. Arifesi", true},
	{"2027-05-16", "Kurban B.", false},
	{"2027-05-17", "Kurban B.", false},
	{"2027-05-18", "Kurban B.", false},
	{"2027-05-19", "Kurban B.", false},

	// 2028
	{"2028-02-26", "Ramazan B. Arifesi", true},
	{"2028-02-27", "Ramazan B.", false},
	{"2028-02-28", "Ramazan B.", false},
	{"2028-02-29", "Ramazan B.", false},
	{"2028-05-04", "Kurban B. Arifesi", true},
	{"2028-05-05", "Kurban B.", false},
	{"2028-05-06", "Kurban B.", false},
	{"2028-05-07", "Kurban B.", false},
	{"2028-05-08", "Kurban B.", false},
}
