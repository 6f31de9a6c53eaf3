// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a SkillSwap account.
//
// NOTE:
//   - Group membership is embedded: Groups holds the ids of every group
//     the user belongs to. The set only grows; memberships are never
//     removed as a side effect of re-running assignment.
//   - LockedGroups holds at most one lock record per group. A record is
//     created on the first failed quiz attempt and removed entirely when
//     the user later passes.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"full_name" json:"full_name"`
	FullNameCI   string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email        string             `bson:"email" json:"email"`
	EmailCI      string             `bson:"email_ci" json:"email_ci"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	Role         string             `bson:"role" json:"role"` // admin | member
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`

	SkillsHave []string `bson:"skills_have,omitempty" json:"skills_have"`
	SkillsWant []string `bson:"skills_want,omitempty" json:"skills_want"`

	Groups       []primitive.ObjectID `bson:"groups,omitempty" json:"groups"`
	LockedGroups []GroupLock          `bson:"locked_groups,omitempty" json:"locked_groups,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// GroupLock is the per-user, per-group quiz penalty record.
type GroupLock struct {
	GroupID     primitive.ObjectID `bson:"group_id" json:"group_id"`
	LockedUntil *time.Time         `bson:"locked_until,omitempty" json:"locked_until,omitempty"`
	Attempts    int                `bson:"attempts" json:"attempts"`
}

// LockFor returns the lock record for the given group, if one exists.
func (u *User) LockFor(groupID primitive.ObjectID) (GroupLock, bool) {
	for _, l := range u.LockedGroups {
		if l.GroupID == groupID {
			return l, true
		}
	}
	return GroupLock{}, false
}

// InGroup reports whether the user's own group list contains groupID.
func (u *User) InGroup(groupID primitive.ObjectID) bool {
	for _, id := range u.Groups {
		if id == groupID {
			return true
		}
	}
	return false
}
