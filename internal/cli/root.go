// Package cli holds the kong command tree. Commands receive a Context with
// the storage provider and the tracker service.
package cli

import (
	"time"

	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/tracker"
	"github.com/tallyhq/tally/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
}

// Now returns the current time in the configured timezone, falling back to
// the system clock when settings are unavailable.
func (c *Context) Now() time.Time {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Now()
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}
