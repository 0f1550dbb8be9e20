package models

import "time"

// Activity actions shown in the dashboard feed.
const (
	ActivityAddedToCapList     = "Added to CAP list"
	ActivityRemovedFromCapList = "Removed from CAP list"
	ActivityViewedCutoffs      = "Viewed cutoffs for"
)

// ActivityEvent is one dashboard feed entry.
type ActivityEvent struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	College   string    `json:"college"`
	CreatedAt time.Time `json:"createdAt"`
}
