package service

import "sportapp/internal/domain"

// MatchIncidents returns one entry per incident, in input order, listing the
// owners of the positions inside its bounding box. Duplicate user ids in
// positions are kept.
func MatchIncidents(incidents []domain.AdverseIncident, positions []domain.ActiveSnapshot) []domain.IncidentMatch {
	matches := make([]domain.IncidentMatch, 0, len(incidents))
	for i, inc := range incidents {
		affected := make([]string, 0)
		for _, p := range positions {
			if inc.BoundingBox.Contains(p.Latitude, p.Longitude) {
				affected = append(affected, p.UserID)
			}
		}
		matches = append(matches, domain.IncidentMatch{IncidentIndex: i, UserIDs: affected})
	}
	return matches
}
