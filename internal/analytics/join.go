package analytics

import (
	"vivid-analytics/internal/models"
)

// regionIndex maps user_id to region for order→user joins, bucketing missing
// regions as "Other". A duplicate user_id is a data-quality precondition
// violation and fails fast rather than silently picking a match.
func regionIndex(users []*models.User) (map[string]string, error) {
	index := make(map[string]string, len(users))
	for _, user := range users {
		if _, exists := index[user.UserID]; exists {
			return nil, errDuplicateUserID(user.UserID)
		}
		index[user.UserID] = user.RegionOrOther()
	}
	return index, nil
}
