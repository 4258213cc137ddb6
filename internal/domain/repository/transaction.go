package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Repositories obtained from the same factory share one unit
// of work.
type RepositoryFactory interface {
	NewJourneyRepository() JourneyRepository
	NewPublicLinkRepository() PublicLinkRepository
	NewShareRepository() ShareRepository
}

// TransactionManager runs a function within a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
// Journey deletion uses it to remove a journey together with its public
// links and shares as one atomic step.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
