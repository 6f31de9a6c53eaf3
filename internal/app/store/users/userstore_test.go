package userstore

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillswap/skillswap/internal/app/system/indexes"
	"github.com/skillswap/skillswap/internal/domain/models"
	"github.com/skillswap/skillswap/internal/testutil"
)

func TestCreate_FillsDefaultsAndNormalizedFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	u, err := s.Create(ctx, models.User{
		FullName: "Grace Hopper",
		Email:    "Grace@Example.COM",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if u.Role != "member" {
		t.Errorf("role = %q, want member", u.Role)
	}
	if u.Status != "active" {
		t.Errorf("status = %q, want active", u.Status)
	}
	if u.EmailCI != "grace@example.com" {
		t.Errorf("email_ci = %q", u.EmailCI)
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}

	got, err := s.GetByEmail(ctx, "GRACE@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("lookup returned %s, want %s", got.ID.Hex(), u.ID.Hex())
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	s := New(db)
	if _, err := s.Create(ctx, models.User{FullName: "First", Email: "dup@test.com"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := s.Create(ctx, models.User{FullName: "Second", Email: "DUP@test.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAddGroup_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	u := fx.CreateUser(ctx, "Joiner", "joiner@test.com", nil, nil)
	gid := primitive.NewObjectID()

	s := New(db)
	added, err := s.AddGroup(ctx, u.ID, gid)
	if err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if !added {
		t.Error("first AddGroup should report added")
	}

	added, err = s.AddGroup(ctx, u.ID, gid)
	if err != nil {
		t.Fatalf("second AddGroup failed: %v", err)
	}
	if added {
		t.Error("second AddGroup should be a no-op")
	}

	got := fx.GetUser(ctx, u.ID)
	if len(got.Groups) != 1 {
		t.Errorf("groups = %d entries, want 1", len(got.Groups))
	}
}

func TestUpsertGroupLock_CreatesThenIncrements(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	u := fx.CreateUser(ctx, "Locker", "locker@test.com", nil, nil)
	gid := primitive.NewObjectID()
	until1 := time.Now().UTC().Add(7 * 24 * time.Hour).Truncate(time.Millisecond)

	s := New(db)
	attempts, err := s.UpsertGroupLock(ctx, u.ID, gid, until1)
	if err != nil {
		t.Fatalf("first UpsertGroupLock failed: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}

	until2 := until1.Add(24 * time.Hour)
	attempts, err = s.UpsertGroupLock(ctx, u.ID, gid, until2)
	if err != nil {
		t.Fatalf("second UpsertGroupLock failed: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}

	got := fx.GetUser(ctx, u.ID)
	if len(got.LockedGroups) != 1 {
		t.Fatalf("lock records = %d, want 1", len(got.LockedGroups))
	}
	lock := got.LockedGroups[0]
	if lock.LockedUntil == nil || !lock.LockedUntil.Equal(until2) {
		t.Errorf("locked_until = %v, want %v", lock.LockedUntil, until2)
	}
}

func TestRemoveGroupLock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	u := fx.CreateUser(ctx, "Freed", "freed@test.com", nil, nil)
	gid := primitive.NewObjectID()
	other := primitive.NewObjectID()
	until := time.Now().UTC().Add(time.Hour)
	fx.LockGroup(ctx, u.ID, gid, until, 1)
	fx.LockGroup(ctx, u.ID, other, until, 2)

	s := New(db)
	if err := s.RemoveGroupLock(ctx, u.ID, gid); err != nil {
		t.Fatalf("RemoveGroupLock failed: %v", err)
	}

	got := fx.GetUser(ctx, u.ID)
	if _, ok := got.LockFor(gid); ok {
		t.Error("lock still present after removal")
	}
	// Other group's lock is untouched.
	if _, ok := got.LockFor(other); !ok {
		t.Error("unrelated lock was removed")
	}
}

func TestGetByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	if _, err := s.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}
}

func TestListAll_SortedByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	for _, email := range []string{"a@test.com", "b@test.com", "c@test.com"} {
		fx.CreateUser(ctx, "User", email, nil, nil)
	}

	s := New(db)
	users, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("got %d users, want 3", len(users))
	}
	for i := 1; i < len(users); i++ {
		if users[i-1].ID.Hex() > users[i].ID.Hex() {
			t.Fatal("users not sorted by _id")
		}
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}
