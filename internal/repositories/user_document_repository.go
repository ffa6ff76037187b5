package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"izybotanic/internal/models/db_models"
)

// UserDocumentRepository is the document store accessor: one row per account,
// always read and written as a whole.
type UserDocumentRepository interface {
	FindByAccountID(ctx context.Context, id string) (*db_models.UserDocument, error)
	Save(ctx context.Context, doc *db_models.UserDocument) error
}

type userDocumentRepository struct {
	db *gorm.DB
}

func NewUserDocumentRepository(db *gorm.DB) UserDocumentRepository {
	return &userDocumentRepository{
		db: db,
	}
}

func (r *userDocumentRepository) FindByAccountID(ctx context.Context, id string) (*db_models.UserDocument, error) {
	var doc db_models.UserDocument
	err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &doc, nil
}

// Save upserts the whole document. No version check: concurrent writers
// overwrite each other, last write wins.
func (r *userDocumentRepository) Save(ctx context.Context, doc *db_models.UserDocument) error {
	return r.db.WithContext(ctx).Save(doc).Error
}
