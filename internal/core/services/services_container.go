package services

import (
	portsrepo "github.com/blogweb/backend/internal/core/ports/repositories"
	portssvc "github.com/blogweb/backend/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the service facades
// consumed by the HTTP layer.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:    NewUserService(repos.UserRepo),
		Comment: NewCommentService(repos.CommentRepo),
	}
}
