package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cubhub/cubhub-web/internal/form"
	"github.com/cubhub/cubhub-web/internal/query"
	"github.com/cubhub/cubhub-web/internal/taxonomy"
)

func (s *Server) registerTaxonomyRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getTaxonomy",
		Method:      http.MethodGet,
		Path:        "/api/v1/taxonomy",
		Summary:     "Listing categories",
		Description: "Returns every category with its subcategories in display order",
		Tags:        []string{"Taxonomy"},
	}, s.handleGetTaxonomy)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSubcategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/taxonomy/subcategories",
		Summary:     "Subcategory options",
		Description: "Returns the dependent subcategory select for a category",
		Tags:        []string{"Taxonomy"},
	}, s.handleGetSubcategories)
}

// TaxonomyResponse lists the vocabulary.
type TaxonomyResponse struct {
	Categories []taxonomy.Entry `json:"categories" doc:"Categories in display order"`
}

// TaxonomyOutput wraps the taxonomy for Huma.
type TaxonomyOutput struct {
	Body TaxonomyResponse
}

// SubcategoriesInput selects the category and the form it feeds.
type SubcategoriesInput struct {
	Category    string `query:"category" doc:"Selected category; unknown or blank yields the sentinel only"`
	Context     string `query:"context" enum:"search,create" default:"search" doc:"search uses the Any sentinel, create uses Select…"`
	Subcategory string `query:"subcategory" doc:"Previously selected subcategory to restore when still valid"`
}

// SubcategoriesOutput is the rebuilt select.
type SubcategoriesOutput struct {
	Body *form.Select
}

func (s *Server) handleGetTaxonomy(_ context.Context, _ *struct{}) (*TaxonomyOutput, error) {
	return &TaxonomyOutput{Body: TaxonomyResponse{Categories: s.services.Taxonomy.Entries()}}, nil
}

func (s *Server) handleGetSubcategories(_ context.Context, input *SubcategoriesInput) (*SubcategoriesOutput, error) {
	binder := s.searchBinder
	if input.Context == contextCreate {
		binder = s.createBinder
	}

	sub := &form.Select{Name: query.ParamSubcategory}
	binder.Bind(input.Category, sub).Restore(input.Subcategory)
	return &SubcategoriesOutput{Body: sub}, nil
}
