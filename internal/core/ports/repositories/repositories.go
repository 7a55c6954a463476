package repositories

// RepositoryProvider bundles the concrete repositories wired at startup.
type RepositoryProvider struct {
	UserRepo    UserRepositoryFacade
	CommentRepo CommentRepositoryFacade
}
