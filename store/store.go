// Package store is the persistence layer. All reads and writes go through a
// Store holding the database handle; nothing here keeps package-level state.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }
