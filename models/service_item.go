package models

// ServiceItem is one entry of the shop's service catalog. Name is the
// display key the assistant matches against; price and duration feed the
// prompt context.
type ServiceItem struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"duration_minutes" json:"durationMinutes"`
}
