// Package landing composes the home page payload from the vendor and catalog services.
package landing

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/vowdirectory/internal/core/catalog"
	"github.com/taibuivan/vowdirectory/internal/core/listing"
	"github.com/taibuivan/vowdirectory/internal/core/vendor"
	"github.com/taibuivan/vowdirectory/internal/platform/respond"
	"github.com/taibuivan/vowdirectory/pkg/pagination"
)

// Bundle is everything the landing page renders on first load.
type Bundle struct {
	Featured   []listing.Item     `json:"featured"`
	Categories []catalog.Category `json:"categories"`
	Listing    listing.Page       `json:"listing"`
}

type Service struct {
	vendors    *vendor.Service
	references *catalog.Service
}

func NewService(vendors *vendor.Service, references *catalog.Service) *Service {
	return &Service{vendors: vendors, references: references}
}

// Load fetches the three sections concurrently. Any failure fails the bundle.
func (service *Service) Load(ctx context.Context, query listing.Query) (*Bundle, error) {
	bundle := &Bundle{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		bundle.Featured, err = service.vendors.Featured(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		bundle.Categories, err = service.references.ListCategories(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		bundle.Listing, err = service.vendors.Search(groupCtx, query)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes is mounted at /landing.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.load)
	return router
}

/*
GET /api/v1/landing.

Description: Featured vendors, categories and the first listing page. The
listing accepts the same parameters as /vendors with a page size of 9.

Response:
  - 200: Bundle
*/
func (handler *Handler) load(writer http.ResponseWriter, request *http.Request) {
	query := listing.Decode(request.URL.Query(), pagination.LandingPageSize)

	bundle, err := handler.service.Load(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, bundle)
}
