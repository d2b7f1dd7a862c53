package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {

	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	if teardown != nil {
		defer teardown()
	} else {
		defer db.Close()
	}

	// Check if the 'reminders' table was created
	var remindersTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='reminders'").Scan(&remindersTableName)
	require.NoError(t, err, "Querying for reminders table should not produce an error")
	assert.Equal(t, "reminders", remindersTableName, "The 'reminders' table should be created")

	// Pending lookups are served by the match index
	var indexName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name='idx_reminders_match'").Scan(&indexName)
	require.NoError(t, err, "Querying for reminders index should not produce an error")
	assert.Equal(t, "idx_reminders_match", indexName)
}
