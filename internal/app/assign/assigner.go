// Package assign keeps users' group memberships in line with their
// skill-derived target categories.
//
// Reconciliation is additive and idempotent: re-running it never removes a
// membership, never duplicates a member entry, and never repeats a join
// message. Two no-skills policies coexist deliberately: the profile-change
// path skips skill-less users entirely, while the administrative bulk path
// force-assigns them to the default category.
package assign

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap/internal/app/skills"
	groupstore "github.com/skillswap/skillswap/internal/app/store/groups"
	userstore "github.com/skillswap/skillswap/internal/app/store/users"
	"github.com/skillswap/skillswap/internal/domain/models"
)

// TargetCategories computes the distinct categories a user's combined skill
// lists map to, in taxonomy declaration order. An empty union yields an
// empty result: users with no skills are not auto-grouped here.
func TargetCategories(have, want []string) []string {
	hit := make(map[string]bool)
	for _, list := range [][]string{have, want} {
		for _, s := range list {
			hit[skills.Classify(s)] = true
		}
	}

	var out []string
	for _, name := range skills.Names() {
		if hit[name] {
			out = append(out, name)
		}
	}
	return out
}

// Assigner applies target categories to the persisted user/group records.
type Assigner struct {
	users  *userstore.Store
	groups *groupstore.Store
	log    *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Assigner {
	return &Assigner{
		users:  userstore.New(db),
		groups: groupstore.New(db),
		log:    logger,
	}
}

// ReconcileUser is the skill-change hook: it brings the user's memberships
// in line with their current skills. Skill-less users are left alone.
// Returns the names of the categories the user was newly joined to.
func (a *Assigner) ReconcileUser(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	u, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	targets := TargetCategories(u.SkillsHave, u.SkillsWant)
	if len(targets) == 0 {
		a.log.Debug("reconcile skipped: user has no skills",
			zap.String("user_id", userID.Hex()))
		return nil, nil
	}
	return a.applyCategories(ctx, u, targets)
}

// applyCategories joins the user to every target category group. Group
// documents are persisted before the user document update that records the
// membership, so a crash mid-operation leaves at worst a group member not
// yet reflected on the user; the next reconcile converges.
func (a *Assigner) applyCategories(ctx context.Context, u models.User, targets []string) ([]string, error) {
	var joined []string
	for _, cat := range targets {
		g, err := a.groups.EnsureCategoryGroup(ctx, cat)
		if err != nil {
			return joined, fmt.Errorf("ensure group %q: %w", cat, err)
		}

		added, err := a.groups.AddMember(ctx, g.ID, u.ID)
		if err != nil {
			return joined, fmt.Errorf("add member to %q: %w", cat, err)
		}
		if added {
			msgText := fmt.Sprintf("%s joined the group", u.FullName)
			if err := a.groups.AppendSystemMessage(ctx, g.ID, msgText); err != nil {
				return joined, fmt.Errorf("join message for %q: %w", cat, err)
			}
			joined = append(joined, cat)
		}

		if _, err := a.users.AddGroup(ctx, u.ID, g.ID); err != nil {
			return joined, fmt.Errorf("record group on user: %w", err)
		}
	}

	if len(joined) > 0 {
		a.log.Info("user assigned to skill groups",
			zap.String("user_id", u.ID.Hex()),
			zap.Strings("joined", joined))
	}
	return joined, nil
}

// BulkResult summarizes one administrative bulk-assignment run.
type BulkResult struct {
	TotalUsers        int `json:"totalUsers"`
	Assigned          int `json:"assigned"`
	Skipped           int `json:"skipped"`
	AssignedToDefault int `json:"assignedToDefault"`
}

// BulkReconcileAll is the administrative hook: it reconciles every user,
// sequentially. Unlike ReconcileUser, users with no skills at all are
// force-assigned to the default category rather than skipped.
func (a *Assigner) BulkReconcileAll(ctx context.Context) (BulkResult, error) {
	users, err := a.users.ListAll(ctx)
	if err != nil {
		return BulkResult{}, err
	}

	res := BulkResult{TotalUsers: len(users)}
	for _, u := range users {
		targets := TargetCategories(u.SkillsHave, u.SkillsWant)
		if len(targets) == 0 {
			targets = []string{skills.DefaultCategory}
			res.AssignedToDefault++
		}

		joined, err := a.applyCategories(ctx, u, targets)
		if err != nil {
			return res, fmt.Errorf("reconcile user %s: %w", u.ID.Hex(), err)
		}
		if len(joined) > 0 {
			res.Assigned++
		} else {
			res.Skipped++
		}
	}

	a.log.Info("bulk group assignment finished",
		zap.Int("total_users", res.TotalUsers),
		zap.Int("assigned", res.Assigned),
		zap.Int("skipped", res.Skipped),
		zap.Int("assigned_to_default", res.AssignedToDefault))
	return res, nil
}
