package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cubhub/cubhub-web/internal/auth"
)

func (s *Server) registerFavouriteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFavourites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favourites",
		Summary:     "List saved sitters",
		Description: "Returns the sitter IDs the current visitor saved",
		Tags:        []string{"Favourites"},
	}, s.handleListFavourites)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleFavourite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favourites/{id}/toggle",
		Summary:     "Toggle a saved sitter",
		Description: "Adds the sitter to the visitor's favourites, or removes it when already saved",
		Tags:        []string{"Favourites"},
		Middlewares: huma.Middlewares{s.limitOperation},
	}, s.handleToggleFavouriteAPI)
}

// FavouritesResponse lists saved sitter IDs.
type FavouritesResponse struct {
	SitterIDs []string `json:"sitterIds" doc:"Saved sitter IDs, oldest first"`
}

// FavouritesOutput wraps the favourites for Huma.
type FavouritesOutput struct {
	Body FavouritesResponse
}

// ToggleFavouriteInput names the sitter.
type ToggleFavouriteInput struct {
	ID string `path:"id" minLength:"1" doc:"Sitter ID"`
}

// ToggleFavouriteResponse reports the new membership.
type ToggleFavouriteResponse struct {
	Favourite bool `json:"favourite" doc:"Whether the sitter is now saved"`
}

// ToggleFavouriteOutput wraps the toggle result for Huma.
type ToggleFavouriteOutput struct {
	Body ToggleFavouriteResponse
}

func (s *Server) handleListFavourites(ctx context.Context, _ *struct{}) (*FavouritesOutput, error) {
	ids, err := s.services.Directory.Favourites(ctx, auth.VisitorID(ctx))
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return &FavouritesOutput{Body: FavouritesResponse{SitterIDs: ids}}, nil
}

func (s *Server) handleToggleFavouriteAPI(ctx context.Context, input *ToggleFavouriteInput) (*ToggleFavouriteOutput, error) {
	saved, err := s.services.Directory.ToggleFavourite(ctx, auth.VisitorID(ctx), input.ID)
	if err != nil {
		return nil, err
	}
	return &ToggleFavouriteOutput{Body: ToggleFavouriteResponse{Favourite: saved}}, nil
}
