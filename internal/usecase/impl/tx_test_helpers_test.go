package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// newPassthroughTxManager returns a transaction manager mock whose Execute
// simply runs the callback against the given factory and propagates its
// error, mirroring commit-on-nil / rollback-on-error semantics.
func newPassthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}
