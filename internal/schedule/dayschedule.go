package schedule

import (
	"sort"

	"github.com/noah-isme/exam-logistics-api/internal/models"
)

// UnknownSlotKey keys grid sessions carrying neither a time nor a label.
const UnknownSlotKey = "Horaire à confirmer"

type dayBucket struct {
	slots []models.DaySlot
	index map[string]int
}

type dayAccumulator struct {
	order []string
	days  map[string]*dayBucket
}

func newDayAccumulator() *dayAccumulator {
	return &dayAccumulator{days: make(map[string]*dayBucket)}
}

func (a *dayAccumulator) add(day, key, time, label string, entry models.DayScheduleEntry) {
	bucket, ok := a.days[day]
	if !ok {
		bucket = &dayBucket{index: make(map[string]int)}
		a.days[day] = bucket
		a.order = append(a.order, day)
	}
	pos, ok := bucket.index[key]
	if !ok {
		pos = len(bucket.slots)
		bucket.index[key] = pos
		bucket.slots = append(bucket.slots, models.DaySlot{Key: key, Time: time, Label: label})
	}
	bucket.slots[pos].Entries = append(bucket.slots[pos].Entries, entry)
}

func slotKey(time, label string) string {
	switch {
	case time != "":
		return time
	case label != "":
		return label
	default:
		return UnknownSlotKey
	}
}

// BuildDaySchedule merges the room grid and parsed support missions into per-day
// time slots. Grid days come first in source order, then days only known from
// support missions in the order they first appear.
func BuildDaySchedule(days []models.RoomScheduleDay, missions []models.SurveillanceMission) []models.DaySchedule {
	acc := newDayAccumulator()

	for _, day := range days {
		for _, room := range day.Rooms {
			for _, session := range room.Sessions {
				acc.add(day.Day, slotKey(session.Time, session.Label), session.Time, session.Label, models.DayScheduleEntry{
					Room:      room.Room,
					Teacher:   session.Teacher,
					Detail:    session.Detail,
					Type:      session.Type,
					Highlight: session.Highlight,
					Time:      session.Time,
					Label:     session.Label,
				})
			}
		}
	}

	for _, mission := range missions {
		entry, ok := ParseSupportMission(mission)
		if !ok {
			continue
		}
		acc.add(entry.DayLabel, slotKey(entry.TimeRange, SupportLabel), entry.TimeRange, SupportLabel, models.DayScheduleEntry{
			Room:    SupportLabel,
			Teacher: entry.Teacher,
			Detail:  entry.Detail,
			Type:    entry.Type,
			Time:    entry.TimeRange,
			Label:   SupportLabel,
		})
	}

	out := make([]models.DaySchedule, 0, len(acc.order))
	for _, day := range acc.order {
		slots := acc.days[day].slots
		SortSlots(slots)
		out = append(out, models.DaySchedule{Day: day, Slots: slots})
	}
	return out
}

// SortSlots orders slots by start hour. Slots with an hour come before those
// without, which are ordered by label in French order.
func SortSlots(slots []models.DaySlot) {
	collator := frenchCollator()
	sort.SliceStable(slots, func(i, j int) bool {
		hourA, okA := ExtractStartHour(slots[i].Time)
		hourB, okB := ExtractStartHour(slots[j].Time)
		switch {
		case okA && okB:
			return hourA < hourB
		case okA:
			return true
		case okB:
			return false
		}
		return collator.CompareString(slots[i].Label, slots[j].Label) < 0
	})
}
