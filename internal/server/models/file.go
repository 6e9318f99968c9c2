// Package models defines server-side data models persisted in the database.
package models

import (
	"slices"
	"time"
)

// File is the metadata record of one uploaded object. The bytes themselves
// live in object storage under StorageKey.
//
// OwnerID, StorageKey and the descriptive fields are fixed at upload time.
// IsPublic and SharedWith are changed by the owner only. SharedWith is the
// sole source of truth for per-user grants and never contains OwnerID.
type File struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	StorageKey  string    `json:"-"`
	DisplayName string    `json:"name"`
	ByteSize    int64     `json:"size"`
	MediaType   string    `json:"type"`
	IsPublic    bool      `json:"is_public"`
	SharedWith  []string  `json:"shared_with"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOwner reports whether userID owns the file.
func (f *File) IsOwner(userID string) bool {
	return userID != "" && f.OwnerID == userID
}

// IsSharedWith reports whether userID holds an explicit grant.
func (f *File) IsSharedWith(userID string) bool {
	return userID != "" && slices.Contains(f.SharedWith, userID)
}

// CanAccess decides read access: the owner always, anyone else when the file
// is public or they hold a grant. An empty userID is an anonymous caller.
func (f *File) CanAccess(userID string) bool {
	if f.IsOwner(userID) {
		return true
	}
	return f.IsPublic || f.IsSharedWith(userID)
}
