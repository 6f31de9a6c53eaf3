// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillswap/skillswap/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateEmail = errors.New("an account with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(email)}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Create inserts a new user. Normalized fields and timestamps are filled in
// here; the default role is "member".
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.FullNameCI = text.Fold(u.FullName)
	u.EmailCI = text.Fold(u.Email)
	if u.Role == "" {
		u.Role = "member"
	}
	if u.Status == "" {
		u.Status = "active"
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// UpdateSkills replaces both skill lists.
func (s *Store) UpdateSkills(ctx context.Context, id primitive.ObjectID, have, want []string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"skills_have": have,
		"skills_want": want,
		"updated_at":  time.Now().UTC(),
	}})
	return err
}

// AddGroup records a group membership on the user document. Returns true
// when the group was newly added. The filter excludes users that already
// hold the membership; without it the updated_at $set counts as a
// modification and an existing membership would read as newly added.
func (s *Store) AddGroup(ctx context.Context, userID, groupID primitive.ObjectID) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": userID, "groups": bson.M{"$ne": groupID}},
		bson.M{
			"$addToSet": bson.M{"groups": groupID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// UpsertGroupLock records a failed quiz attempt for (userID, groupID).
//
// If a lock record for the group already exists its locked_until is moved to
// the new deadline and attempts is incremented; otherwise a fresh record
// with attempts=1 is pushed. At most one record per group is maintained.
// Returns the attempt count now on the record.
func (s *Store) UpsertGroupLock(ctx context.Context, userID, groupID primitive.ObjectID, until time.Time) (int, error) {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": userID, "locked_groups.group_id": groupID},
		bson.M{
			"$set": bson.M{
				"locked_groups.$.locked_until": until,
				"updated_at":                   now,
			},
			"$inc": bson.M{"locked_groups.$.attempts": 1},
		},
	)
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		_, err = s.c.UpdateByID(ctx, userID, bson.M{
			"$push": bson.M{"locked_groups": models.GroupLock{
				GroupID:     groupID,
				LockedUntil: &until,
				Attempts:    1,
			}},
			"$set": bson.M{"updated_at": now},
		})
		if err != nil {
			return 0, err
		}
		return 1, nil
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	lock, ok := u.LockFor(groupID)
	if !ok {
		return 0, nil
	}
	return lock.Attempts, nil
}

// RemoveGroupLock deletes the lock record for (userID, groupID), if any.
func (s *Store) RemoveGroupLock(ctx context.Context, userID, groupID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, userID, bson.M{
		"$pull": bson.M{"locked_groups": bson.M{"group_id": groupID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// ListAll returns every user, ordered by _id. Used by the administrative
// bulk-assignment path, which iterates users sequentially.
func (s *Store) ListAll(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of user documents.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
