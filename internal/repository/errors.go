package repository

import (
	"errors"

	"gorm.io/gorm"

	"go-pescados/pkg/database"
)

// ErrNotFound is returned by lookups of a single row that does not exist.
var ErrNotFound = errors.New("record not found")

const batchSize = 100

func wrap(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return database.Classify(err)
}
