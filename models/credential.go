package models

import "gorm.io/gorm"

// CredentialTokenKey is the key the bearer token is persisted under.
const CredentialTokenKey = "token"

// Credential is the console's local key/value credential storage.
type Credential struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;size:64;not null"`
	Value string `gorm:"type:text"`
}
