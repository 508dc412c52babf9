package view

import (
	"fmt"
	"time"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchWeekdays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// FrenchDate formats d as "15 juin 2023".
func FrenchDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", d.Day(), frenchMonths[d.Month()-1], d.Year())
}

// FrenchLongDate formats d as "jeudi 15 juin 2023".
func FrenchLongDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return frenchWeekdays[d.Weekday()] + " " + FrenchDate(d)
}
