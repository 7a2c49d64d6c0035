package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// resolverWriteSetting is the statement setting dbresolver.Write stores
const resolverWriteSetting = "gorm:db_resolver:write"

type statementRecorder struct {
	mu        sync.Mutex
	onPrimary map[string]bool
}

func (r *statementRecorder) record(db *gorm.DB) {
	_, pinned := db.Statement.Settings.Load(resolverWriteSetting)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.onPrimary[db.Statement.Table] = r.onPrimary[db.Statement.Table] || pinned
}

func newDryRunDB(t *testing.T) (*gorm.DB, *statementRecorder) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	recorder := &statementRecorder{onPrimary: map[string]bool{}}
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:record_query", recorder.record))
	require.NoError(t, db.Callback().Row().Before("gorm:row").Register("test:record_row", recorder.record))

	return db, recorder
}

func TestReadAfterWriteQueriesUsePrimary(t *testing.T) {
	ctx := context.Background()

	t.Run("max order number", func(t *testing.T) {
		db, recorder := newDryRunDB(t)
		_, _ = NewOrderRepository(db).MaxOrderNumber(ctx)

		assert.True(t, recorder.onPrimary["orders"])
	})

	t.Run("order by id", func(t *testing.T) {
		db, recorder := newDryRunDB(t)
		_, _ = NewOrderRepository(db).FindOrderByID(ctx, uuid.New())

		assert.True(t, recorder.onPrimary["orders"])
	})

	t.Run("order by number", func(t *testing.T) {
		db, recorder := newDryRunDB(t)
		_, _ = NewOrderRepository(db).FindOrderByNumber(ctx, 42)

		assert.True(t, recorder.onPrimary["orders"])
	})

	t.Run("chat history", func(t *testing.T) {
		db, recorder := newDryRunDB(t)
		_, _ = NewChatMessageRepository(db).FindRecentMessages(ctx, "5511987654321", 10)

		assert.True(t, recorder.onPrimary["chat_messages"])
	})

	t.Run("menu stays on replicas", func(t *testing.T) {
		db, recorder := newDryRunDB(t)
		_, _ = NewProductRepository(db).ListAvailable(ctx)

		assert.False(t, recorder.onPrimary["products"])
	})
}
