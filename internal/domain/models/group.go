// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a skill-category discussion group.
//
// NOTE:
//   - Name is the category name and is unique across groups: at steady
//     state exactly one group document exists per category. Groups are
//     created lazily the first time a user is assigned to the category.
//   - Members is embedded and treated as a set ($addToSet only).
//   - Messages is append-only; join events are recorded as "system"
//     messages with no sender.
type Group struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"name_ci"`
	Icon        string             `bson:"icon" json:"icon"`
	Color       string             `bson:"color" json:"color"`
	Description string             `bson:"description" json:"description"`

	Members  []primitive.ObjectID `bson:"members,omitempty" json:"members"`
	Messages []GroupMessage       `bson:"messages,omitempty" json:"messages"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Message types stored in Group.Messages.
const (
	MessageTypeSystem = "system"
	MessageTypeText   = "text"
)

// GroupMessage is one entry in a group's append-only message log.
// System messages (join events) carry no SenderID.
type GroupMessage struct {
	ID       primitive.ObjectID  `bson:"_id" json:"id"`
	SenderID *primitive.ObjectID `bson:"sender_id,omitempty" json:"sender_id,omitempty"`
	Type     string              `bson:"type" json:"type"`
	Text     string              `bson:"text" json:"text"`
	SentAt   time.Time           `bson:"sent_at" json:"sent_at"`
}

// HasMember reports whether userID is in the group's member set.
func (g *Group) HasMember(userID primitive.ObjectID) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}
