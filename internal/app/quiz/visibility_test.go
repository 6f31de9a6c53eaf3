package quiz

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skillswap/skillswap/internal/domain/models"
)

func makeGroup(name string, members ...primitive.ObjectID) models.Group {
	return models.Group{
		ID:      primitive.NewObjectID(),
		Name:    name,
		Members: members,
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until time.Time
		want  int
	}{
		{"expired", now.Add(-time.Hour), 0},
		{"exactly now", now, 0},
		{"one hour left rounds up", now.Add(time.Hour), 1},
		{"exactly one day", now.Add(24 * time.Hour), 1},
		{"one day and a minute", now.Add(24*time.Hour + time.Minute), 2},
		{"full lock window", now.Add(LockDuration), 7},
	}
	for _, tt := range tests {
		if got := DaysRemaining(tt.until, now); got != tt.want {
			t.Errorf("%s: DaysRemaining = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCategorizeGroups_Partition(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uid := primitive.NewObjectID()

	member := makeGroup("Full-Stack Development", uid, primitive.NewObjectID())
	open := makeGroup("Data & AI")
	locked := makeGroup("Mobile Development")

	lockedUntil := now.Add(48 * time.Hour)
	u := models.User{
		ID:     uid,
		Groups: []primitive.ObjectID{member.ID},
		LockedGroups: []models.GroupLock{
			{GroupID: locked.ID, LockedUntil: &lockedUntil, Attempts: 2},
		},
	}

	out := CategorizeGroups(u, []models.Group{member, open, locked}, now)

	if len(out.UserGroups) != 1 || out.UserGroups[0].Name != member.Name {
		t.Fatalf("user groups = %+v, want just %q", out.UserGroups, member.Name)
	}
	if out.UserGroups[0].MemberCount != 2 {
		t.Errorf("member count = %d, want 2", out.UserGroups[0].MemberCount)
	}
	if len(out.AvailableGroups) != 1 || out.AvailableGroups[0].Name != open.Name {
		t.Fatalf("available groups = %+v, want just %q", out.AvailableGroups, open.Name)
	}
	if len(out.LockedGroups) != 1 || out.LockedGroups[0].Name != locked.Name {
		t.Fatalf("locked groups = %+v, want just %q", out.LockedGroups, locked.Name)
	}

	lg := out.LockedGroups[0]
	if lg.Attempts != 2 {
		t.Errorf("locked attempts = %d, want 2", lg.Attempts)
	}
	if lg.DaysLeft != 2 {
		t.Errorf("locked days left = %d, want 2", lg.DaysLeft)
	}
	if lg.LockedUntil == nil || !lg.LockedUntil.Equal(lockedUntil) {
		t.Errorf("locked until = %v, want %v", lg.LockedUntil, lockedUntil)
	}
}

func TestCategorizeGroups_ExpiredLockIsAvailable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uid := primitive.NewObjectID()
	g := makeGroup("Security & Networks")

	expired := now.Add(-time.Minute)
	u := models.User{
		ID: uid,
		LockedGroups: []models.GroupLock{
			{GroupID: g.ID, LockedUntil: &expired, Attempts: 3},
		},
	}

	out := CategorizeGroups(u, []models.Group{g}, now)
	if len(out.LockedGroups) != 0 {
		t.Fatalf("expired lock should not appear locked: %+v", out.LockedGroups)
	}
	if len(out.AvailableGroups) != 1 {
		t.Fatalf("expected 1 available group, got %d", len(out.AvailableGroups))
	}
	// Attempt history survives expiry.
	if out.AvailableGroups[0].Attempts != 3 {
		t.Errorf("attempts = %d, want 3", out.AvailableGroups[0].Attempts)
	}
	if out.AvailableGroups[0].LockedUntil != nil {
		t.Error("available group should not carry lockedUntil")
	}
}

func TestCategorizeGroups_MembershipWinsOverLock(t *testing.T) {
	// A stale lock record for a group the user has since joined must not
	// hide the group from the member bucket.
	now := time.Now().UTC()
	uid := primitive.NewObjectID()
	g := makeGroup("Creative & Gaming", uid)

	until := now.Add(LockDuration)
	u := models.User{
		ID:     uid,
		Groups: []primitive.ObjectID{g.ID},
		LockedGroups: []models.GroupLock{
			{GroupID: g.ID, LockedUntil: &until, Attempts: 1},
		},
	}

	out := CategorizeGroups(u, []models.Group{g}, now)
	if len(out.UserGroups) != 1 || len(out.LockedGroups) != 0 {
		t.Fatalf("membership should win: user=%d locked=%d", len(out.UserGroups), len(out.LockedGroups))
	}
}

func TestCategorizeGroups_EmptyInputs(t *testing.T) {
	out := CategorizeGroups(models.User{ID: primitive.NewObjectID()}, nil, time.Now().UTC())
	if out.UserGroups == nil || out.AvailableGroups == nil || out.LockedGroups == nil {
		t.Fatal("buckets must be non-nil so they serialize as [] not null")
	}
}
