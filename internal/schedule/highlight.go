package schedule

import "github.com/noah-isme/exam-logistics-api/internal/models"

// Highlight is the colour tier of a time block.
type Highlight struct {
	Period          Period `json:"period"`
	Background      string `json:"background"`
	Border          string `json:"border"`
	BadgeBackground string `json:"badgeBackground"`
	BadgeText       string `json:"badgeText"`
}

var (
	morningHighlight = Highlight{
		Period:          PeriodMorning,
		Background:      "bg-sky-50",
		Border:          "border-sky-200",
		BadgeBackground: "bg-sky-200/70",
		BadgeText:       "text-sky-900",
	}
	afternoonHighlight = Highlight{
		Period:          PeriodAfternoon,
		Background:      "bg-rose-50",
		Border:          "border-rose-200",
		BadgeBackground: "bg-rose-200/70",
		BadgeText:       "text-rose-900",
	}
)

// GetBlockHighlight returns the tier matching ClassifySession, nil when the block
// is neither morning nor afternoon.
func GetBlockHighlight(label, time string) *Highlight {
	var h Highlight
	switch ClassifySession(label, time) {
	case PeriodMorning:
		h = morningHighlight
	case PeriodAfternoon:
		h = afternoonHighlight
	default:
		return nil
	}
	return &h
}

// CellAlignment is the vertical placement of sessions in a room cell.
type CellAlignment string

const (
	AlignCenter CellAlignment = "center"
	AlignTop    CellAlignment = "top"
	AlignBottom CellAlignment = "bottom"
)

// CellLayout describes how a room cell stacks its sessions.
type CellLayout struct {
	Alignment           CellAlignment `json:"alignment"`
	ReserveMorningSpace bool          `json:"reserveMorningSpace"`
	HasMultipleSessions bool          `json:"hasMultipleSessions"`
}

// CellLayoutFor keeps a lone afternoon session at the bottom of its cell and a
// lone morning session at the top so half-days line up across rooms.
func CellLayoutFor(sessions []models.RoomSession) CellLayout {
	layout := CellLayout{Alignment: AlignCenter, HasMultipleSessions: len(sessions) > 1}
	if len(sessions) != 1 {
		return layout
	}
	switch {
	case IsAfternoonSession(sessions[0]):
		layout.Alignment = AlignBottom
		layout.ReserveMorningSpace = true
	case IsMorningSession(sessions[0]):
		layout.Alignment = AlignTop
	}
	return layout
}
