package repository

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/muskanbandta23/socialmedia/cache"
	"github.com/muskanbandta23/socialmedia/models"
	"github.com/muskanbandta23/socialmedia/store"
)

// PostRepository handles post CRUD, comment appends and like toggles against
// the posts collection. Listings go through an optional Redis cache that is
// invalidated on every mutation.
type PostRepository struct {
	posts *store.Collection[models.Post]
	cache *cache.Cache
}

// NewPostRepository creates a new post repository. cache may be nil.
func NewPostRepository(posts *store.Collection[models.Post], c *cache.Cache) *PostRepository {
	return &PostRepository{posts: posts, cache: c}
}

// Create appends a new post for ownerID. The owner id is taken as-is; it is
// not checked against the users collection.
func (r *PostRepository) Create(ctx context.Context, ownerID, title, description string) (*models.Post, error) {
	post := models.Post{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Comments:    []models.Comment{},
		Likes:       []string{},
	}
	err := r.posts.Update(func(posts []models.Post) ([]models.Post, error) {
		return append(posts, post), nil
	})
	if err != nil {
		return nil, storeErr(err)
	}
	r.cache.InvalidatePosts(ctx)
	return &post, nil
}

// ListVisible returns the posts the requester may see: their own posts plus
// any post marked public. The cache generation is sampled before the
// collection read and the filled entry is keyed on it, so a mutation
// committing in between relegates the entry to a superseded key instead of
// letting a pre-mutation listing serve as current.
func (r *PostRepository) ListVisible(ctx context.Context, requesterID string) []models.Post {
	cached, gen, ok := r.cache.GetPosts(ctx, requesterID)
	if ok {
		return cached
	}
	visible := []models.Post{}
	for _, p := range r.posts.Load() {
		if p.UserID == requesterID || p.IsPublic {
			visible = append(visible, p)
		}
	}
	r.cache.SetPosts(ctx, requesterID, gen, visible)
	return visible
}

// AddComment appends a comment to the post's sequence, preserving insertion
// order.
func (r *PostRepository) AddComment(ctx context.Context, postID, authorID, text string) error {
	err := r.posts.Update(func(posts []models.Post) ([]models.Post, error) {
		for i := range posts {
			if posts[i].ID != postID {
				continue
			}
			posts[i].Comments = append(posts[i].Comments, models.Comment{
				ID:      uuid.NewString(),
				UserID:  authorID,
				Text:    text,
				Replies: []models.Comment{},
			})
			return posts, nil
		}
		return nil, models.NewNotFoundError("Post", postID)
	})
	if err != nil {
		return storeErr(err)
	}
	r.cache.InvalidatePosts(ctx)
	return nil
}

// Edit overwrites the post's title and description. A missing post and a
// post owned by someone else both fail with the same permission error; the
// API contract does not distinguish them.
func (r *PostRepository) Edit(ctx context.Context, postID, requesterID, title, description string) (*models.Post, error) {
	var updated models.Post
	err := r.posts.Update(func(posts []models.Post) ([]models.Post, error) {
		for i := range posts {
			if posts[i].ID != postID || posts[i].UserID != requesterID {
				continue
			}
			posts[i].Title = title
			posts[i].Description = description
			updated = posts[i]
			return posts, nil
		}
		return nil, models.NewPermissionError("Permission denied or post not found")
	})
	if err != nil {
		return nil, storeErr(err)
	}
	r.cache.InvalidatePosts(ctx)
	return &updated, nil
}

// Delete removes the post. Only the owner or an admin may delete; a missing
// post fails with the same permission error.
func (r *PostRepository) Delete(ctx context.Context, postID, requesterID, requesterRole string) error {
	err := r.posts.Update(func(posts []models.Post) ([]models.Post, error) {
		idx := slices.IndexFunc(posts, func(p models.Post) bool { return p.ID == postID })
		if idx < 0 || (posts[idx].UserID != requesterID && requesterRole != models.RoleAdmin) {
			return nil, models.NewPermissionError("Permission denied")
		}
		return append(posts[:idx], posts[idx+1:]...), nil
	})
	if err != nil {
		return storeErr(err)
	}
	r.cache.InvalidatePosts(ctx)
	return nil
}

// ToggleLike flips userID's membership in the post's like set and returns
// the new like count. Calling it twice restores the original state.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (int, error) {
	var count int
	err := r.posts.Update(func(posts []models.Post) ([]models.Post, error) {
		for i := range posts {
			if posts[i].ID != postID {
				continue
			}
			if idx := slices.Index(posts[i].Likes, userID); idx >= 0 {
				posts[i].Likes = append(posts[i].Likes[:idx], posts[i].Likes[idx+1:]...)
			} else {
				posts[i].Likes = append(posts[i].Likes, userID)
			}
			count = len(posts[i].Likes)
			return posts, nil
		}
		return nil, models.NewNotFoundError("Post", postID)
	})
	if err != nil {
		return 0, storeErr(err)
	}
	r.cache.InvalidatePosts(ctx)
	return count, nil
}
