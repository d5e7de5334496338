package domain

import "time"

type AdverseIncident struct {
	Description string      `json:"description"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

type IncidentCatalogEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IncidentMatch lists the owners of positions inside one incident's box,
// in the order the positions were given.
type IncidentMatch struct {
	IncidentIndex int      `json:"incident_index"`
	UserIDs       []string `json:"user_ids"`
}

// AdverseIncidentMessage is the body handed to the alert queue.
type AdverseIncidentMessage struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

func NewAdverseIncidentMessage(userID, description string, now time.Time) AdverseIncidentMessage {
	return AdverseIncidentMessage{
		UserID:  userID,
		Message: description,
		Date:    now.UTC().Format(time.RFC3339),
	}
}

type DispatchResult struct {
	Notified int `json:"notified"`
	Failed   int `json:"failed"`
}

type CycleSummary struct {
	Incidents int  `json:"incidents"`
	Positions int  `json:"positions"`
	Notified  int  `json:"notified"`
	Failed    int  `json:"failed"`
	Skipped   bool `json:"skipped"`
}
