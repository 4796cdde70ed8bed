package graph

import (
	"context"
	"net/http"

	"gamerack/backend/internal/models"
	"gamerack/backend/internal/service"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Resolver is the root resolver. It holds the services the schema is served
// from; transport details never reach the service layer.
type Resolver struct {
	UserSvc   *service.UserService
	GameSvc   *service.GameService
	ReviewSvc *service.ReviewService
}

// NewHandler parses the schema against the given resolver root and returns
// the HTTP handler serving it.
func NewHandler(root *Resolver) (http.Handler, error) {
	schema, err := graphql.ParseSchema(Schema, root)
	if err != nil {
		return nil, err
	}
	return &relay.Handler{Schema: schema}, nil
}

// --- Query ---

func (r *Resolver) Users(ctx context.Context) ([]*UserResolver, error) {
	users, err := r.UserSvc.List(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return newUserResolvers(r, users), nil
}

func (r *Resolver) User(ctx context.Context, args struct{ ID int32 }) (*UserResolver, error) {
	user, err := r.UserSvc.Get(ctx, uint(args.ID))
	if err != nil {
		return nil, wrapErr(err)
	}
	return &UserResolver{root: r, user: *user}, nil
}

func (r *Resolver) Games(ctx context.Context) ([]*GameResolver, error) {
	games, err := r.GameSvc.List(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return newGameResolvers(r, games), nil
}

func (r *Resolver) Game(ctx context.Context, args struct{ ID int32 }) (*GameResolver, error) {
	game, err := r.GameSvc.Get(ctx, uint(args.ID))
	if err != nil {
		return nil, wrapErr(err)
	}
	return &GameResolver{root: r, game: *game}, nil
}

func (r *Resolver) Reviews(ctx context.Context) ([]*ReviewResolver, error) {
	reviews, err := r.ReviewSvc.List(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return newReviewResolvers(r, reviews), nil
}

func (r *Resolver) Review(ctx context.Context, args struct{ ID int32 }) (*ReviewResolver, error) {
	review, err := r.ReviewSvc.Get(ctx, uint(args.ID))
	if err != nil {
		return nil, wrapErr(err)
	}
	return &ReviewResolver{root: r, review: *review}, nil
}

// --- Mutation ---

func (r *Resolver) AddUser(ctx context.Context, args struct{ Name, Email string }) (*UserResolver, error) {
	user, err := r.UserSvc.Create(ctx, args.Name, args.Email)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &UserResolver{root: r, user: *user}, nil
}

func (r *Resolver) AddGame(ctx context.Context, args struct {
	Name        string
	Description string
	Price       int32
	Platform    []string
}) (*GameResolver, error) {
	game, err := r.GameSvc.Create(ctx, args.Name, args.Description, int(args.Price), models.Platforms(args.Platform))
	if err != nil {
		return nil, wrapErr(err)
	}
	return &GameResolver{root: r, game: *game}, nil
}

func (r *Resolver) AddReview(ctx context.Context, args struct {
	Rating  int32
	Comment string
	GameID  int32
	UserID  int32
}) (*ReviewResolver, error) {
	review, err := r.ReviewSvc.Create(ctx, int(args.Rating), args.Comment, uint(args.GameID), uint(args.UserID))
	if err != nil {
		return nil, wrapErr(err)
	}
	return &ReviewResolver{root: r, review: *review}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID int32 }) (*UserResolver, error) {
	user, err := r.UserSvc.Delete(ctx, uint(args.ID))
	if err != nil {
		return nil, wrapErr(err)
	}
	return &UserResolver{root: r, user: *user}, nil
}

func (r *Resolver) DeleteGame(ctx context.Context, args struct{ ID int32 }) (*GameResolver, error) {
	game, err := r.GameSvc.Delete(ctx, uint(args.ID))
	if err != nil {
		return nil, wrapErr(err)
	}
	return &GameResolver{root: r, game: *game}, nil
}

func (r *Resolver) DeleteReview(ctx context.Context, args struct{ ID int32 }) (*ReviewResolver, error) {
	review, err := r.ReviewSvc.Delete(ctx, uint(args.ID))
	if err != nil {
		return nil, wrapErr(err)
	}
	return &ReviewResolver{root: r, review: *review}, nil
}

// EditGameInput mirrors the schema input type: every field is optional and an
// absent field leaves the stored value unchanged.
type EditGameInput struct {
	Name        *string
	Description *string
	Price       *int32
	Platform    *[]string
}

func (r *Resolver) UpdateGame(ctx context.Context, args struct {
	ID    int32
	Input EditGameInput
}) (*GameResolver, error) {
	update := models.GameUpdate{
		Name:        args.Input.Name,
		Description: args.Input.Description,
	}
	if args.Input.Price != nil {
		price := int(*args.Input.Price)
		update.Price = &price
	}
	if args.Input.Platform != nil {
		platform := models.Platforms(*args.Input.Platform)
		update.Platform = &platform
	}

	game, err := r.GameSvc.Update(ctx, uint(args.ID), update)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &GameResolver{root: r, game: *game}, nil
}
