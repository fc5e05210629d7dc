package reminders

import (
	"time"

	"placement-workers/internal/catalog"
	"placement-workers/internal/models"
)

// Within keeps the upcoming deadlines at most days away.
func Within(employers []models.Employer, now time.Time, days int) []catalog.Deadline {
	upcoming := catalog.UpcomingDeadlines(employers, now, 0)
	out := upcoming[:0]
	for _, d := range upcoming {
		if d.DaysLeft <= days {
			out = append(out, d)
		}
	}
	return out
}
