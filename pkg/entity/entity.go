package entity

import (
	"time"
)

// Numeric enumerations are stored as integers, in the order they are declared.
type HabitType int

const (
	HabitTypeNone HabitType = iota
	HabitTypeBinary
	HabitTypeMeasurable
)

type FrequencyType int

const (
	FrequencyTypeNone FrequencyType = iota
	FrequencyTypeDaily
	FrequencyTypeWeekly
	FrequencyTypeMonthly
)

type HabitStatus int

const (
	HabitStatusNone HabitStatus = iota
	HabitStatusOngoing
	HabitStatusCompleted
)

type Frequency struct {
	Type           FrequencyType
	TimesPerPeriod int
}

type Target struct {
	Value int
	Unit  string
}

type Milestone struct {
	Target  int
	Current int
}

type Habit struct {
	ID          string
	Name        string
	Description string
	Type        HabitType
	Frequency   Frequency
	Target      Target
	Status      HabitStatus
	IsArchived  bool
	// Date part only, midnight UTC
	EndDate            *time.Time
	Milestone          *Milestone
	CreatedAtUtc       time.Time
	UpdatedAtUtc       *time.Time
	LastCompletedAtUtc *time.Time
}
