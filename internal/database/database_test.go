package database

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	// Load env
	_ "github.com/joho/godotenv/autoload"
)

var testDB *DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	assert.Equal(t, "up", stats["status"])
	assert.NotContains(t, stats, "error")
	assert.Equal(t, "It's healthy", stats["message"])
}

func TestFindOrCreateConversation_reusesExistingRow(t *testing.T) {
	first, err := testDB.FindOrCreateConversation(TestUserSeeker1.ID, TestUserCompany1.ID)
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)

	// Same pair in reverse order must resolve to the same conversation.
	second, err := testDB.FindOrCreateConversation(TestUserCompany1.ID, TestUserSeeker1.ID)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
