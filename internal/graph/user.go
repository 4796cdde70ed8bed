package graph

import (
	"context"

	"gamerack/backend/internal/models"
)

// UserResolver resolves User fields.
type UserResolver struct {
	root *Resolver
	user models.User
}

func newUserResolvers(root *Resolver, users []models.User) []*UserResolver {
	resolvers := make([]*UserResolver, 0, len(users))
	for i := range users {
		resolvers = append(resolvers, &UserResolver{root: root, user: users[i]})
	}
	return resolvers
}

func (r *UserResolver) ID() int32     { return int32(r.user.ID) }
func (r *UserResolver) Name() string  { return r.user.Name }
func (r *UserResolver) Email() string { return r.user.Email }

// Reviews resolves the back-reference to the user's reviews.
func (r *UserResolver) Reviews(ctx context.Context) ([]*ReviewResolver, error) {
	reviews, err := r.root.ReviewSvc.ListForUser(ctx, r.user.ID)
	if err != nil {
		return nil, wrapErr(err)
	}
	return newReviewResolvers(r.root, reviews), nil
}
