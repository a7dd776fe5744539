package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vowdirectory/internal/platform/respond"
)

// Handler exposes the reference lists used to build search filters.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalog endpoints, mounted at the API root.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/categories", handler.listCategories)
	router.Get("/affiliations", handler.listAffiliations)
	router.Get("/regions", handler.listRegions)

	return router
}

/*
GET /api/v1/categories.

Response:
  - 200: []Category ordered by display order, then name
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

/*
GET /api/v1/affiliations.

Response:
  - 200: []Affiliation ordered by name
*/
func (handler *Handler) listAffiliations(writer http.ResponseWriter, request *http.Request) {
	affiliations, err := handler.service.ListAffiliations(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, affiliations)
}

/*
GET /api/v1/regions.

Response:
  - 200: []Region (top-level only) ordered by name
*/
func (handler *Handler) listRegions(writer http.ResponseWriter, request *http.Request) {
	regions, err := handler.service.ListRegions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, regions)
}
