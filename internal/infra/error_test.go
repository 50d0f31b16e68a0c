//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"gearup/internal/infra"
	"gearup/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("no rows classifies as not found", func(t *testing.T) {
		err := infra.WrapRepoErr("find booking", pgx.ErrNoRows)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unique violation classifies as conflict", func(t *testing.T) {
		err := infra.WrapRepoErr("insert booking", &pgconn.PgError{Code: "23505"})
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := infra.WrapRepoErr("insert court", &pgconn.PgError{Code: "23503"})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("anything else is a db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("query", errs.New("connection reset"))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("explicit kind wins over classification", func(t *testing.T) {
		err := infra.WrapRepoErr("update booking", nil, infra.KindConflict)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("classification survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(infra.WrapRepoErr("find booking", pgx.ErrNoRows), "cancel")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("unrelated errors carry no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
	})
}
