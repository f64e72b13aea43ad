package models

// Settings holds user-level application settings persisted in storage.
type Settings struct {
	Timezone string `json:"timezone"`
}
