package database_test

import (
	"context"
	"log"
	"os"
	"testing"

	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/model"
	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/repository/unitofwork"
	"wiccapedia-api/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresConstraints(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("Skipping integration test: TEST_POSTGRES_DSN not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gormDB, model.All()...))
	require.NoError(t, database.Ping(gormDB))

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)

	t.Run("notebook with unknown user", func(t *testing.T) {
		err := uow.NotebookRepository().Create(ctx, &entity.Notebook{UserId: -1, CoverId: -1})
		assert.ErrorIs(t, err, apperror.ErrConstraintViolation)
	})

	t.Run("cover decoration is unique", func(t *testing.T) {
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		decoration := &entity.Decoration{Type: entity.DecorationTypeTexture, Value: "linen"}
		require.NoError(t, uow.DecorationRepository().Create(ctx, decoration))
		require.NoError(t, uow.CoverRepository().Create(ctx, &entity.Cover{Title: "first", DecorationId: decoration.Id}))

		err := uow.CoverRepository().Create(ctx, &entity.Cover{Title: "second", DecorationId: decoration.Id})
		assert.ErrorIs(t, err, apperror.ErrConstraintViolation)
	})
}
