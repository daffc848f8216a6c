package datasets

import "vivid-analytics/internal/models"

// Dataset is the in-memory record-set pair the analytics catalogue computes
// over. It is loaded once and never mutated afterwards, so concurrent metric
// calls need no locking.
type Dataset struct {
	Users  []*models.User
	Orders []*models.Order
}
