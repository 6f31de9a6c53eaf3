package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillswap/skillswap/internal/app/skills"
	"github.com/skillswap/skillswap/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given skill lists.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email string, have, want []string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		EmailCI:    text.Fold(email),
		Role:       "member",
		Status:     "active",
		SkillsHave: have,
		SkillsWant: want,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()

	u := f.CreateUser(ctx, fullName, email, nil, nil)
	if _, err := f.db.Collection("users").UpdateByID(ctx, u.ID,
		bson.M{"$set": bson.M{"role": "admin"}}); err != nil {
		f.t.Fatalf("failed to promote test admin: %v", err)
	}
	u.Role = "admin"
	return u
}

// CreateCategoryGroup creates the group document for a taxonomy category.
func (f *Fixtures) CreateCategoryGroup(ctx context.Context, categoryName string) models.Group {
	f.t.Helper()

	cat := skills.Get(categoryName)
	if cat == nil {
		f.t.Fatalf("unknown category %q", categoryName)
	}

	now := time.Now().UTC()
	group := models.Group{
		ID:          primitive.NewObjectID(),
		Name:        cat.Name,
		NameCI:      text.Fold(cat.Name),
		Icon:        cat.Icon,
		Color:       cat.Color,
		Description: cat.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("groups").InsertOne(ctx, group); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return group
}

// AddMember puts a user directly into a group's member set and records the
// group on the user, bypassing the assigner.
func (f *Fixtures) AddMember(ctx context.Context, groupID, userID primitive.ObjectID) {
	f.t.Helper()

	if _, err := f.db.Collection("groups").UpdateByID(ctx, groupID,
		bson.M{"$addToSet": bson.M{"members": userID}}); err != nil {
		f.t.Fatalf("failed to add test member: %v", err)
	}
	if _, err := f.db.Collection("users").UpdateByID(ctx, userID,
		bson.M{"$addToSet": bson.M{"groups": groupID}}); err != nil {
		f.t.Fatalf("failed to record test membership: %v", err)
	}
}

// LockGroup writes a lock record for (userID, groupID) directly.
func (f *Fixtures) LockGroup(ctx context.Context, userID, groupID primitive.ObjectID, until time.Time, attempts int) {
	f.t.Helper()

	lock := models.GroupLock{GroupID: groupID, LockedUntil: &until, Attempts: attempts}
	if _, err := f.db.Collection("users").UpdateByID(ctx, userID,
		bson.M{"$push": bson.M{"locked_groups": lock}}); err != nil {
		f.t.Fatalf("failed to create test lock: %v", err)
	}
}

// GetUser reloads a user document.
func (f *Fixtures) GetUser(ctx context.Context, id primitive.ObjectID) models.User {
	f.t.Helper()

	var u models.User
	if err := f.db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		f.t.Fatalf("failed to reload test user: %v", err)
	}
	return u
}

// GetGroupByName reloads a group document by category name.
func (f *Fixtures) GetGroupByName(ctx context.Context, name string) models.Group {
	f.t.Helper()

	var g models.Group
	if err := f.db.Collection("groups").FindOne(ctx, bson.M{"name_ci": text.Fold(name)}).Decode(&g); err != nil {
		f.t.Fatalf("failed to reload test group %q: %v", name, err)
	}
	return g
}
