package handler

import (
	"net/http"

	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/managing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/spending"
	"github.com/vfg2006/budget-guard-api/pkg/apiErrors"
)

func CreateBrand(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateBrandRequest
		if !decodeBody(w, r, &request) {
			return
		}

		brand, err := service.CreateBrand(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, "creating brand", err)
			return
		}

		writeJSON(w, http.StatusCreated, brand)
	})
}

func ListBrands(service managing.ManagingService, spends spending.SpendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		budgetIssues, err := queryBool(r, "budget_issues")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "budget_issues must be a boolean", nil)
			return
		}

		if budgetIssues {
			summaries, err := spends.BrandsWithBudgetIssues(r.Context())
			if err != nil {
				writeServiceError(w, r, "listing brands with budget issues", err)
				return
			}
			writeJSON(w, http.StatusOK, summaries)
			return
		}

		onlyActive, err := queryBool(r, "active")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "active must be a boolean", nil)
			return
		}

		brands, err := service.ListBrands(r.Context(), onlyActive)
		if err != nil {
			writeServiceError(w, r, "listing brands", err)
			return
		}

		writeJSON(w, http.StatusOK, brands)
	})
}

func GetBrand(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brand, err := service.GetBrand(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, "getting brand", err)
			return
		}

		writeJSON(w, http.StatusOK, brand)
	})
}

func UpdateBrandBudgets(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.UpdateBrandBudgetsRequest
		if !decodeBody(w, r, &request) {
			return
		}

		brand, err := service.UpdateBrandBudgets(r.Context(), pathParam(r, "id"), &request)
		if err != nil {
			writeServiceError(w, r, "updating brand budgets", err)
			return
		}

		writeJSON(w, http.StatusOK, brand)
	})
}

// SetBrandActive answers with the brand and the campaigns its toggle activated or paused.
func SetBrandActive(service managing.ManagingService, active bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.SetBrandActive(r.Context(), pathParam(r, "id"), active)
		if err != nil {
			writeServiceError(w, r, "toggling brand", err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func DeleteBrand(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteBrand(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, "deleting brand", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func BrandSummary(spends spending.SpendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := spends.BrandSummary(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, "summarizing brand", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func AllBrandsSummary(spends spending.SpendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summaries, err := spends.AllBrandsSummary(r.Context())
		if err != nil {
			writeServiceError(w, r, "summarizing brands", err)
			return
		}

		writeJSON(w, http.StatusOK, summaries)
	})
}

func ReactivateBrandCampaigns(enforcer enforcing.Enforcer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := enforcer.ReactivateBrandCampaigns(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, "reactivating brand campaigns", err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func DeactivateBrandCampaigns(enforcer enforcing.Enforcer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := enforcer.DeactivateBrandCampaigns(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, "deactivating brand campaigns", err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
