package models

type AchievementCategory string

const (
	CategoryStreak      AchievementCategory = "streak"
	CategoryCompletion  AchievementCategory = "completion"
	CategoryConsistency AchievementCategory = "consistency"
	CategoryMilestone   AchievementCategory = "milestone"
)

// Achievement is a static catalog entry. Earned state is derived on demand
// from current habit/task data and is never persisted.
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Category    AchievementCategory `json:"category"`
}

// AchievementStatus pairs a catalog entry with its evaluated earned flag.
type AchievementStatus struct {
	Achievement
	Earned bool `json:"earned"`
}
