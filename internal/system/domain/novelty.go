package domain

import "time"

// NoveltyWindowDays is the trailing window during which a system counts as
// new. Novelty is derived on every read, never stored.
const NoveltyWindowDays = 60

// Novelty classifies a creation timestamp against the trailing window and
// reports how many whole days remain inside it. A timestamp in the future
// (clock skew, bad data) is not new and has zero days remaining.
func Novelty(createdAt, now time.Time) (isNew bool, daysRemaining int) {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		return false, 0
	}
	days := int(elapsed.Hours() / 24)
	if days >= NoveltyWindowDays {
		return false, 0
	}
	return true, NoveltyWindowDays - days
}
