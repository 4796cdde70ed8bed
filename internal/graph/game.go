package graph

import (
	"context"

	"gamerack/backend/internal/models"
)

// GameResolver resolves Game fields.
type GameResolver struct {
	root *Resolver
	game models.Game
}

func newGameResolvers(root *Resolver, games []models.Game) []*GameResolver {
	resolvers := make([]*GameResolver, 0, len(games))
	for i := range games {
		resolvers = append(resolvers, &GameResolver{root: root, game: games[i]})
	}
	return resolvers
}

func (r *GameResolver) ID() int32          { return int32(r.game.ID) }
func (r *GameResolver) Name() string       { return r.game.Name }
func (r *GameResolver) Description() string { return r.game.Description }
func (r *GameResolver) Price() int32       { return int32(r.game.Price) }
func (r *GameResolver) Platform() []string { return r.game.Platform }

// Reviews resolves the back-reference to the game's reviews.
func (r *GameResolver) Reviews(ctx context.Context) ([]*ReviewResolver, error) {
	reviews, err := r.root.ReviewSvc.ListForGame(ctx, r.game.ID)
	if err != nil {
		return nil, wrapErr(err)
	}
	return newReviewResolvers(r.root, reviews), nil
}
