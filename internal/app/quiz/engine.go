// Package quiz gates entry into non-matching skill groups behind a scored
// quiz with a timed lockout on failure.
//
// Per (user, group) the flow is: start a quiz (10 of the category's 12
// authored questions, shuffled), submit graded answers, and either be
// admitted (score >= 7) or locked out for 7 days with the attempt counted.
// Lock expiry is a stored-timestamp comparison evaluated lazily on the next
// access; nothing is scheduled.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	groupstore "github.com/skillswap/skillswap/internal/app/store/groups"
	userstore "github.com/skillswap/skillswap/internal/app/store/users"
)

// LockDuration is how long a failed attempt locks the group.
const LockDuration = 7 * 24 * time.Hour

var (
	ErrAlreadyMember = errors.New("you are already a member of this group")
	ErrNoQuiz        = errors.New("no quiz is available for this group")
)

// LockedError reports an active lock window on quiz start.
type LockedError struct {
	Until    time.Time
	DaysLeft int
	Attempts int
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("this group is locked after a failed quiz; try again in %d day(s)", e.DaysLeft)
}

// DaysRemaining is the lock window reported to users: the ceiling of the
// time left, in whole days.
func DaysRemaining(until, now time.Time) int {
	remaining := until.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Question is one entry in an offered quiz. LocalIndex is scoped to this
// quiz instance only. CorrectIndex is included in the payload: grading is
// self-reported by the caller at submit time (the inherited contract; a
// hardened design would retain the answer key server-side under SessionID).
type Question struct {
	LocalIndex   int       `json:"localIndex"`
	Text         string    `json:"questionText"`
	Options      [4]string `json:"options"`
	CorrectIndex int       `json:"correctAnswerIndex"`
}

// Session is the ephemeral quiz offer. It is never persisted.
type Session struct {
	SessionID    string     `json:"sessionId"`
	GroupName    string     `json:"groupName"`
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passingScore"`
}

// Answer is the caller's self-graded response to one offered question.
type Answer struct {
	QuestionLocalIndex  int  `json:"questionLocalIndex"`
	SelectedOptionIndex int  `json:"selectedOptionIndex"`
	IsCorrect           bool `json:"isCorrect"`
}

// Result is the outcome of a submission.
type Result struct {
	Success     bool       `json:"success"`
	Score       int        `json:"score"`
	Message     string     `json:"message"`
	LockedUntil *time.Time `json:"lockedUntil,omitempty"`
}

// Engine runs quiz attempts against the persisted user/group records.
type Engine struct {
	users  *userstore.Store
	groups *groupstore.Store
	log    *zap.Logger
	now    func() time.Time
	rng    *rand.Rand
}

// Option adjusts an Engine; used by tests to pin the clock and shuffle.
type Option func(*Engine)

// WithClock replaces the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand replaces the engine's question-shuffle source.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

func NewEngine(db *mongo.Database, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		users:  userstore.New(db),
		groups: groupstore.New(db),
		log:    logger,
		now:    func() time.Time { return time.Now().UTC() },
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start offers a quiz for the given group.
//
// Precondition order: already a member → ErrAlreadyMember; active lock →
// *LockedError with days remaining; no authored questions → ErrNoQuiz.
// A missing group surfaces as mongo.ErrNoDocuments.
func (e *Engine) Start(ctx context.Context, userID, groupID primitive.ObjectID) (*Session, error) {
	g, err := e.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g.HasMember(userID) {
		return nil, ErrAlreadyMember
	}

	u, err := e.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := e.now()
	if lock, ok := u.LockFor(groupID); ok && lock.LockedUntil != nil && now.Before(*lock.LockedUntil) {
		return nil, &LockedError{
			Until:    *lock.LockedUntil,
			DaysLeft: DaysRemaining(*lock.LockedUntil, now),
			Attempts: lock.Attempts,
		}
	}

	bank := Bank(g.Name)
	if len(bank) == 0 {
		return nil, ErrNoQuiz
	}

	shuffled := make([]BankQuestion, len(bank))
	copy(shuffled, bank)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := QuestionsPerQuiz
	if n > len(shuffled) {
		n = len(shuffled)
	}
	questions := make([]Question, n)
	for i := 0; i < n; i++ {
		questions[i] = Question{
			LocalIndex:   i,
			Text:         shuffled[i].Text,
			Options:      shuffled[i].Options,
			CorrectIndex: shuffled[i].AnswerIndex,
		}
	}

	e.log.Info("quiz started",
		zap.String("user_id", userID.Hex()),
		zap.String("group", g.Name))

	return &Session{
		SessionID:    uuid.NewString(),
		GroupName:    g.Name,
		Questions:    questions,
		PassingScore: PassingScore,
	}, nil
}

// Submit grades a quiz attempt and applies the pass/fail policy.
//
// Score is the count of answers the caller reports correct. Passing admits
// the user to the group (with a system message), records the group on the
// user, and removes any lock record for the pair. Failing upserts the lock
// record: lockedUntil = now + 7 days, attempts incremented.
func (e *Engine) Submit(ctx context.Context, userID, groupID primitive.ObjectID, answers []Answer) (*Result, error) {
	g, err := e.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g.HasMember(userID) {
		return nil, ErrAlreadyMember
	}

	u, err := e.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	score := 0
	for _, a := range answers {
		if a.IsCorrect {
			score++
		}
	}

	if score >= PassingScore {
		if _, err := e.groups.AddMember(ctx, groupID, userID); err != nil {
			return nil, err
		}
		msgText := fmt.Sprintf("%s joined after passing the quiz", u.FullName)
		if err := e.groups.AppendSystemMessage(ctx, groupID, msgText); err != nil {
			return nil, err
		}
		if _, err := e.users.AddGroup(ctx, userID, groupID); err != nil {
			return nil, err
		}
		if err := e.users.RemoveGroupLock(ctx, userID, groupID); err != nil {
			return nil, err
		}

		e.log.Info("quiz passed",
			zap.String("user_id", userID.Hex()),
			zap.String("group", g.Name),
			zap.Int("score", score))

		return &Result{
			Success: true,
			Score:   score,
			Message: fmt.Sprintf("Congratulations! You scored %d/%d and joined %s.", score, QuestionsPerQuiz, g.Name),
		}, nil
	}

	until := e.now().Add(LockDuration)
	attempts, err := e.users.UpsertGroupLock(ctx, userID, groupID, until)
	if err != nil {
		return nil, err
	}

	e.log.Info("quiz failed",
		zap.String("user_id", userID.Hex()),
		zap.String("group", g.Name),
		zap.Int("score", score),
		zap.Int("attempts", attempts))

	return &Result{
		Success:     false,
		Score:       score,
		Message:     fmt.Sprintf("You scored %d/%d; at least %d is required. %s is locked for 7 days.", score, QuestionsPerQuiz, PassingScore, g.Name),
		LockedUntil: &until,
	}, nil
}
