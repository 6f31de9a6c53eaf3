// internal/app/quiz/visibility.go
package quiz

import (
	"time"

	"github.com/skillswap/skillswap/internal/domain/models"
)

// GroupView is one group as seen by a particular user in the listing.
// LockedUntil is set only for entries in the locked bucket; Attempts counts
// past failed quiz attempts (0 when no lock record ever existed).
type GroupView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	Description string     `json:"description"`
	MemberCount int        `json:"memberCount"`
	Attempts    int        `json:"attempts"`
	LockedUntil *time.Time `json:"lockedUntil,omitempty"`
	DaysLeft    int        `json:"daysLeft,omitempty"`
}

// GroupsByAccess is the three-way partition of all groups for one user.
type GroupsByAccess struct {
	UserGroups      []GroupView `json:"userGroups"`
	AvailableGroups []GroupView `json:"availableGroups"`
	LockedGroups    []GroupView `json:"lockedGroups"`
}

// CategorizeGroups places every group in exactly one bucket: member →
// UserGroups; active lock → LockedGroups; otherwise AvailableGroups.
//
// This is a pure projection over the stored membership sets and lock
// records; there is no cached locked flag anywhere. An expired lock record
// leaves the group available, with its attempt count still reported.
func CategorizeGroups(u models.User, groups []models.Group, now time.Time) GroupsByAccess {
	out := GroupsByAccess{
		UserGroups:      []GroupView{},
		AvailableGroups: []GroupView{},
		LockedGroups:    []GroupView{},
	}
	for _, g := range groups {
		view := GroupView{
			ID:          g.ID.Hex(),
			Name:        g.Name,
			Icon:        g.Icon,
			Color:       g.Color,
			Description: g.Description,
			MemberCount: len(g.Members),
		}

		if g.HasMember(u.ID) {
			out.UserGroups = append(out.UserGroups, view)
			continue
		}

		lock, ok := u.LockFor(g.ID)
		if ok {
			view.Attempts = lock.Attempts
		}
		if ok && lock.LockedUntil != nil && now.Before(*lock.LockedUntil) {
			until := *lock.LockedUntil
			view.LockedUntil = &until
			view.DaysLeft = DaysRemaining(until, now)
			out.LockedGroups = append(out.LockedGroups, view)
			continue
		}

		out.AvailableGroups = append(out.AvailableGroups, view)
	}
	return out
}
