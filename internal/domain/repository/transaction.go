package repository

import "context"

// TransactionManager runs fn in one database transaction, rolled back when fn returns an error.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction. Item replacement
// uses it to swap the item rows and the totals together.
type RepositoryFactory interface {
	NewOrderRepository() OrderRepository
}
