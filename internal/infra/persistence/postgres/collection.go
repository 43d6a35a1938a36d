package postgres

import (
	"context"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormCollection implements repository.Collection for one table.
// E is the domain entity pointer, M the persistence model.
type gormCollection[E entity.OwnedResource, M any] struct {
	db         *gorm.DB
	name       string
	toDomain   func(*M) E
	fromDomain func(E) *M
	assign     func(dst E, src *M)
}

func (c *gormCollection[E, M]) FindByID(ctx context.Context, id uuid.UUID) (E, error) {
	return findByID(c.db.WithContext(ctx), c, id, false)
}

func (c *gormCollection[E, M]) Create(ctx context.Context, item E) error {
	data := c.fromDomain(item)
	if err := c.db.WithContext(ctx).Create(data).Error; err != nil {
		return c.translateWriteError(err, "failed to create "+c.name)
	}

	// Copy generated ID and timestamps back onto the caller's entity.
	c.assign(item, data)

	return nil
}

func (c *gormCollection[E, M]) FindByIDAndUpdate(ctx context.Context, id uuid.UUID, mutate func(E) error) (E, error) {
	var updated E

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := findByID(tx, c, id, true)
		if err != nil {
			return err
		}
		if err := mutate(item); err != nil {
			return err
		}

		data := c.fromDomain(item)
		if err := tx.Save(data).Error; err != nil {
			return c.translateWriteError(err, "failed to update "+c.name)
		}
		updated = c.toDomain(data)

		return nil
	})
	if err != nil {
		var zero E

		return zero, err
	}

	return updated, nil
}

func (c *gormCollection[E, M]) FindByIDAndDelete(ctx context.Context, id uuid.UUID) (E, error) {
	var deleted E

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := findByID(tx, c, id, true)
		if err != nil {
			return err
		}

		var data M
		if err := tx.Where("id = ?", id).Delete(&data).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete "+c.name)
		}
		deleted = item

		return nil
	})
	if err != nil {
		var zero E

		return zero, err
	}

	return deleted, nil
}

func (c *gormCollection[E, M]) translateWriteError(err error, details string) error {
	if isInvalidInput(err) {
		return domainerrors.ErrValidationFailed.WithDetails(details)
	}
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrConflict.WithDetails(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// findByID loads one row, optionally locking it for the rest of the transaction.
func findByID[E entity.OwnedResource, M any](db *gorm.DB, c *gormCollection[E, M], id uuid.UUID, forUpdate bool) (E, error) {
	var zero E
	var data M

	query := db
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.Where("id = ?", id).First(&data).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, repository.ErrResourceNotFound
		}

		return zero, domainerrors.NewDatabaseExecuteError(err, "failed to find "+c.name)
	}

	return c.toDomain(&data), nil
}
