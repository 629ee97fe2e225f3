package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ludoadmin/models"
)

// CredentialRepository persists the operator's bearer token under the
// "token" key. Every read goes to the table, so a sign-out from another
// process is seen on the next backend call.
type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Token(ctx context.Context) (string, error) {
	var cred models.Credential
	err := r.db.WithContext(ctx).Where("key = ?", models.CredentialTokenKey).First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return cred.Value, nil
}

func (r *CredentialRepository) SetToken(ctx context.Context, token string) error {
	cred := models.Credential{Key: models.CredentialTokenKey, Value: token}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at", "deleted_at"}),
	}).Create(&cred).Error
}

func (r *CredentialRepository) ClearToken(ctx context.Context) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("key = ?", models.CredentialTokenKey).
		Delete(&models.Credential{}).Error
}
