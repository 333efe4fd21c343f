package models

// Client is a shop customer record.
type Client struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Phone         string `bson:"phone" json:"phone"`
	Notes         string `bson:"notes" json:"notes"` // style preferences, past cuts
	LastVisit     string `bson:"last_visit,omitempty" json:"lastVisit,omitempty"`
	TotalVisits   int    `bson:"total_visits" json:"totalVisits"`
	LoyaltyPoints int    `bson:"loyalty_points" json:"loyaltyPoints"`
}
