// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap/internal/app/skills"
	groupstore "github.com/skillswap/skillswap/internal/app/store/groups"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// SkillSwap optionally seeds a group document for every skill category so
// that the groups listing is fully populated even before any user has been
// assigned. Seeding uses the same upsert path as lazy creation, so running
// it repeatedly is harmless.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if !appCfg.SeedCategoryGroups {
		return nil
	}

	gs := groupstore.New(deps.MongoDatabase)
	for _, name := range skills.Names() {
		if _, err := gs.EnsureCategoryGroup(ctx, name); err != nil {
			logger.Error("seeding category group failed",
				zap.String("category", name), zap.Error(err))
			return err
		}
	}
	logger.Info("category groups seeded", zap.Int("count", len(skills.Names())))
	return nil
}
