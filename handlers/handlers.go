// Package handlers contains the HTTP handlers for the social-content API.
// Each handler maps one route to exactly one repository operation.
package handlers

import (
	"github.com/muskanbandta23/socialmedia/repository"
)

var (
	userRepo *repository.UserRepository
	postRepo *repository.PostRepository
)

// Init wires the repositories the handlers operate on. Must be called before
// any route is served.
func Init(users *repository.UserRepository, posts *repository.PostRepository) {
	userRepo = users
	postRepo = posts
}
