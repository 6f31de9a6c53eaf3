// internal/app/store/groups/groupstore.go
package groupstore

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

	"github.com/skillswap/skillswap/internal/app/skills"
	"github.com/skillswap/skillswap/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrUnknownCategory = errors.New("not a known skill category")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

func (s *Store) GetByName(ctx context.Context, name string) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"name_ci": text.Fold(name)}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// EnsureCategoryGroup returns the group for the given category, creating it
// with the taxonomy's metadata if it does not exist yet. Group documents are
// created lazily on first assignment; the unique name_ci index makes a
// concurrent create race collapse to a single document.
func (s *Store) EnsureCategoryGroup(ctx context.Context, categoryName string) (models.Group, error) {
	cat := skills.Get(categoryName)
	if cat == nil {
		return models.Group{}, ErrUnknownCategory
	}

	now := time.Now().UTC()
	g := models.Group{
		ID:          primitive.NewObjectID(),
		Name:        cat.Name,
		NameCI:      text.Fold(cat.Name),
		Icon:        cat.Icon,
		Color:       cat.Color,
		Description: cat.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := s.c.InsertOne(ctx, g)
	if err == nil {
		return g, nil
	}
	if !wafflemongo.IsDup(err) {
		return models.Group{}, err
	}
	return s.GetByName(ctx, cat.Name)
}

// AddMember adds userID to the member set; callers use the returned flag to
// append the join message only when the member is new. The filter excludes
// documents that already contain the member: the $set of updated_at would
// otherwise make MongoDB report the document modified even when $addToSet
// was a no-op, and the flag would read true for existing members.
func (s *Store) AddMember(ctx context.Context, groupID, userID primitive.ObjectID) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": groupID, "members": bson.M{"$ne": userID}},
		bson.M{
			"$addToSet": bson.M{"members": userID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return res.ModifiedCount > 0, nil
	}

	// No match: either userID is already a member or the group is missing.
	n, err := s.c.CountDocuments(ctx, bson.M{"_id": groupID})
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, mongo.ErrNoDocuments
	}
	return false, nil
}

// AppendSystemMessage appends a join-event message to the group log.
// System messages carry no sender.
func (s *Store) AppendSystemMessage(ctx context.Context, groupID primitive.ObjectID, msgText string) error {
	now := time.Now().UTC()
	msg := models.GroupMessage{
		ID:     primitive.NewObjectID(),
		Type:   models.MessageTypeSystem,
		Text:   msgText,
		SentAt: now,
	}
	_, err := s.c.UpdateByID(ctx, groupID, bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updated_at": now},
	})
	return err
}

// ListAll returns every group, in taxonomy-creation order (_id ascending).
func (s *Store) ListAll(ctx context.Context) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// CountMembers returns the size of a group's member set.
func (s *Store) CountMembers(ctx context.Context, groupID primitive.ObjectID) (int, error) {
	g, err := s.GetByID(ctx, groupID)
	if err != nil {
		return 0, err
	}
	return len(g.Members), nil
}
