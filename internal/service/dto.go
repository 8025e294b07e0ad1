package service

import (
	"bytes"
	"fmt"
	"time"
)

type HabitType string

const (
	HabitTypeNone       HabitType = "None"
	HabitTypeBinary     HabitType = "Binary"
	HabitTypeMeasurable HabitType = "Measurable"
)

type FrequencyType string

const (
	FrequencyTypeNone    FrequencyType = "None"
	FrequencyTypeDaily   FrequencyType = "Daily"
	FrequencyTypeWeekly  FrequencyType = "Weekly"
	FrequencyTypeMonthly FrequencyType = "Monthly"
)

type HabitStatus string

const (
	HabitStatusNone      HabitStatus = "None"
	HabitStatusOngoing   HabitStatus = "Ongoing"
	HabitStatusCompleted HabitStatus = "Completed"
)

type FrequencyDTO struct {
	Type           FrequencyType `json:"type"`
	TimesPerPeriod int           `json:"timesPerPeriod"`
}

type TargetDTO struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type MilestoneDTO struct {
	Target  int `json:"target"`
	Current int `json:"current"`
}

// HabitDTO is the transport representation of a habit. Pointer fields are
// optional and encode as null when absent.
type HabitDTO struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Type               HabitType     `json:"type"`
	Frequency          FrequencyDTO  `json:"frequency"`
	Target             TargetDTO     `json:"target"`
	Status             HabitStatus   `json:"status"`
	IsArchived         bool          `json:"isArchived"`
	EndDate            *Date         `json:"endDate"`
	Milestone          *MilestoneDTO `json:"milestone"`
	CreatedAtUtc       time.Time     `json:"createdAtUtc"`
	UpdatedAtUtc       *time.Time    `json:"updatedAtUtc"`
	LastCompletedAtUtc *time.Time    `json:"lastCompletedAtUtc"`
}

const dateLayout = time.DateOnly

// Date is a calendar date without time of day, encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date must be a string, got %s", data)
	}
	t, err := time.Parse(dateLayout, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}
	d.Time = t
	return nil
}
