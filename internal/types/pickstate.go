package types

// RecentHistoryLimit bounds how many previously shown recipe ids the skip
// engine remembers per device.
const RecentHistoryLimit = 14

// DailyPickState is the persisted record of a device's recipe-of-the-day.
// RecentRecipeIDs is most-recent-first and never exceeds RecentHistoryLimit.
type DailyPickState struct {
	PickedRecipeID  string   `json:"picked_recipe_id,omitempty"`
	PickedDateKey   string   `json:"picked_date_key,omitempty"`
	RecentRecipeIDs []string `json:"recent_recipe_ids,omitempty"`
}

// PushRecent records id as the most recently shown recipe. Any existing
// occurrence of the same id is removed first, and the list is truncated to
// RecentHistoryLimit entries.
func (s *DailyPickState) PushRecent(id string) {
	if id == "" {
		return
	}
	kept := make([]string, 0, len(s.RecentRecipeIDs)+1)
	kept = append(kept, id)
	for _, existing := range s.RecentRecipeIDs {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) > RecentHistoryLimit {
		kept = kept[:RecentHistoryLimit]
	}
	s.RecentRecipeIDs = kept
}

// WasRecentlyShown reports whether id appears in the recent history.
func (s *DailyPickState) WasRecentlyShown(id string) bool {
	for _, existing := range s.RecentRecipeIDs {
		if existing == id {
			return true
		}
	}
	return false
}
