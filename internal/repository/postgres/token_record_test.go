package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTokenLedgerRepository(t *testing.T) {
	db := &Connection{}
	repo := NewTokenLedgerRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
