package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FactoryModExplorer_Go/internal/catalog"
	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
	"github.com/osse101/FactoryModExplorer_Go/internal/factorymod"
)

// Query and path parameter names
const (
	ParamRecipeID   = "id"
	ParamSlug       = "slug"
	ParamMaterial   = "material"
	ParamCustomName = "customName"
	QueryParamQ     = "q"
)

// HandleGetSummary returns counts and provenance of the published model
func HandleGetSummary(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Snapshot()
		if snap == nil {
			respondServiceError(w, domain.ErrModelNotLoaded)
			return
		}
		respondJSON(w, http.StatusOK, newSummaryDTO(snap))
	}
}

// HandleListRecipes lists all recipes sorted by name
func HandleListRecipes(svc catalog.Service) http.HandlerFunc {
	return withModel(svc, func(w http.ResponseWriter, r *http.Request, m *factorymod.Model) {
		recipes := m.SortedRecipes()
		dtos := make([]RecipeDTO, 0, len(recipes))
		for _, recipe := range recipes {
			dtos = append(dtos, newRecipeDTO(m, recipe))
		}
		respondJSON(w, http.StatusOK, dtos)
	})
}

// HandleGetRecipe returns one recipe by id
func HandleGetRecipe(svc catalog.Service) http.HandlerFunc {
	return withModel(svc, func(w http.ResponseWriter, r *http.Request, m *factorymod.Model) {
		id, ok := pathParam(w, r, ParamRecipeID)
		if !ok {
			return
		}
		recipe, err := m.Recipe(id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, newRecipeDTO(m, recipe))
	})
}

// HandleListFactories lists all factories sorted by name
func HandleListFactories(svc catalog.Service) http.HandlerFunc {
	return withModel(svc, func(w http.ResponseWriter, r *http.Request, m *factorymod.Model) {
		factories := m.SortedFactories()
		dtos := make([]FactorySummaryDTO, 0, len(factories))
		for _, f := range factories {
			dtos = append(dtos, newFactorySummary(f))
		}
		respondJSON(w, http.StatusOK, dtos)
	})
}

// HandleGetFactory returns one factory by slug, where underscores stand for spaces
func HandleGetFactory(svc catalog.Service) http.HandlerFunc {
	return withModel(svc, func(w http.ResponseWriter, r *http.Request, m *factorymod.Model) {
		slug, ok := pathParam(w, r, ParamSlug)
		if !ok {
			return
		}
		f, err := m.FactoryBySlug(slug)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, newFactoryDTO(m, f))
	})
}

// HandleSearchItems lists items whose key contains every word of ?q=
func HandleSearchItems(svc catalog.Service) http.HandlerFunc {
	return withModel(svc, func(w http.ResponseWriter, r *http.Request, m *factorymod.Model) {
		items := m.SearchItems(r.URL.Query().Get(QueryParamQ))
		respondJSON(w, http.StatusOK, newItemDTOs(items))
	})
}

// HandleGetItemUsage aggregates the recipes and factories that produce or
// consume a material, optionally narrowed to one custom name
func HandleGetItemUsage(svc catalog.Service) http.HandlerFunc {
	return withModel(svc, func(w http.ResponseWriter, r *http.Request, m *factorymod.Model) {
		material, ok := pathParam(w, r, ParamMaterial)
		if !ok {
			return
		}
		var customName string
		if chi.URLParam(r, ParamCustomName) != "" {
			if customName, ok = pathParam(w, r, ParamCustomName); !ok {
				return
			}
		}
		usage, err := m.ItemUsage(material, customName)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, newItemUsageDTO(usage))
	})
}

// HandleListParseErrors lists the declarations skipped by the last build
func HandleListParseErrors(svc catalog.Service) http.HandlerFunc {
	return withModel(svc, func(w http.ResponseWriter, r *http.Request, m *factorymod.Model) {
		dtos := make([]ParseErrorDTO, 0, len(m.ParseErrors))
		for _, pe := range m.ParseErrors {
			dtos = append(dtos, newParseErrorDTO(pe))
		}
		respondJSON(w, http.StatusOK, dtos)
	})
}

// withModel resolves the published model once per request
func withModel(svc catalog.Service, fn func(http.ResponseWriter, *http.Request, *factorymod.Model)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Model()
		if err != nil {
			respondServiceError(w, err)
			return
		}
		fn(w, r, m)
	}
}

// pathParam returns an unescaped chi URL parameter. If ok is false the
// response has already been written.
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil || value == "" {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPath)
		return "", false
	}
	return value, true
}
