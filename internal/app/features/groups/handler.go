// internal/app/features/groups/handler.go
package groups

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap/internal/app/assign"
	"github.com/skillswap/skillswap/internal/app/quiz"
	groupstore "github.com/skillswap/skillswap/internal/app/store/groups"
	userstore "github.com/skillswap/skillswap/internal/app/store/users"
)

// Handler is the shared dependency container for the groups feature: the
// categorized listing, the reconciliation hooks, and the quiz-unlock flow.
type Handler struct {
	Users    *userstore.Store
	Groups   *groupstore.Store
	Assigner *assign.Assigner
	Engine   *quiz.Engine
	Log      *zap.Logger
}

// NewHandler constructs a groups Handler. It is called from the bootstrap
// BuildHandler function, where the application's DB and logger are already
// initialized.
func NewHandler(db *mongo.Database, logger *zap.Logger, engineOpts ...quiz.Option) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Groups:   groupstore.New(db),
		Assigner: assign.New(db, logger),
		Engine:   quiz.NewEngine(db, logger, engineOpts...),
		Log:      logger,
	}
}
