// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// birthDateLayout is the ISO date format used by roster files.
const birthDateLayout = "2006-01-02"

// Athlete represents a single roster entry. Fields mirror the roster CSV
// columns; cells are carried verbatim and interpreted leniently downstream.
type Athlete struct {
	FirstName        string
	LastName         string
	BirthDate        string // ISO YYYY-MM-DD, possibly blank or malformed
	BirthYear        string
	GraduationYear   string
	Gender           string // "Male", "Female", or anything else
	Emails           string
	PhoneNumbers     string
	Sports           string
	Height           string
	Weight           string
	School           string
	TeamName         string
	CompetitiveLevel string // "1".."5", possibly blank or malformed
}

// Key is the composite athlete identity used as the map key for baseline
// offsets and progression state. Two roster entries with the same trimmed
// name and team silently share a baseline.
type Key struct {
	First string
	Last  string
	Team  string
}

// Key derives the athlete's identity from trimmed name and team fields.
func (a Athlete) Key() Key {
	return Key{
		First: strings.TrimSpace(a.FirstName),
		Last:  strings.TrimSpace(a.LastName),
		Team:  strings.TrimSpace(a.TeamName),
	}
}

// AgeOn returns the athlete's age in whole years on the given date.
// A blank or malformed birth date yields ok=false; callers must treat such
// records as demographically neutral.
func (a Athlete) AgeOn(on time.Time) (int, bool) {
	bd, err := time.Parse(birthDateLayout, strings.TrimSpace(a.BirthDate))
	if err != nil {
		return 0, false
	}
	years := on.Year() - bd.Year()
	if on.Month() < bd.Month() || (on.Month() == bd.Month() && on.Day() < bd.Day()) {
		years--
	}
	return years, true
}

// Measurement is one output row: a single trial of one metric for one
// athlete on one test date.
type Measurement struct {
	FirstName     string
	LastName      string
	Gender        string
	TeamName      string
	Date          string // ISO YYYY-MM-DD
	Age           string // integer years, or empty when birth date is unknown
	Metric        string
	Value         float64 // rounded to three decimals
	Units         string
	FlyInDistance string // populated only for the fly sprint metric
	Notes         string
}
