package models

// TimeRange is a half-open [Start, End) window within one day,
// both ends in "HH:mm".
type TimeRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// DaySchedule holds one weekday's opening configuration. When IsOpen is
// false the ranges are ignored entirely, even if non-empty.
type DaySchedule struct {
	IsOpen bool        `bson:"is_open" json:"isOpen"`
	Ranges []TimeRange `bson:"ranges" json:"ranges"`
}

// WeeklySchedule maps lowercase weekday names ("monday".."sunday") to their
// day schedules. All seven keys must be present; a missing key means the
// stored document is corrupt and the schedule must be reset to the default.
type WeeklySchedule map[string]DaySchedule

// Weekdays lists the seven expected keys, Monday first.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ShopSettings is the shop's singleton configuration document.
type ShopSettings struct {
	ShopName string         `bson:"shop_name" json:"shopName"`
	Schedule WeeklySchedule `bson:"schedule" json:"schedule"`
}
