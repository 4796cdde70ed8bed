package graph

import (
	"context"

	"gamerack/backend/internal/models"
)

// ReviewResolver resolves Review fields.
type ReviewResolver struct {
	root   *Resolver
	review models.Review
}

func newReviewResolvers(root *Resolver, reviews []models.Review) []*ReviewResolver {
	resolvers := make([]*ReviewResolver, 0, len(reviews))
	for i := range reviews {
		resolvers = append(resolvers, &ReviewResolver{root: root, review: reviews[i]})
	}
	return resolvers
}

func (r *ReviewResolver) ID() int32      { return int32(r.review.ID) }
func (r *ReviewResolver) Rating() int32  { return int32(r.review.Rating) }
func (r *ReviewResolver) Comment() string { return r.review.Comment }

// User resolves the review's author.
func (r *ReviewResolver) User(ctx context.Context) (*UserResolver, error) {
	user, err := r.root.ReviewSvc.ResolveUser(ctx, &r.review)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &UserResolver{root: r.root, user: *user}, nil
}

// Game resolves the reviewed game.
func (r *ReviewResolver) Game(ctx context.Context) (*GameResolver, error) {
	game, err := r.root.ReviewSvc.ResolveGame(ctx, &r.review)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &GameResolver{root: r.root, game: *game}, nil
}
