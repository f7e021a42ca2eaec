package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/managing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/spending"
	"github.com/vfg2006/budget-guard-api/pkg/apiErrors"
)

const (
	needsActivation = "activation"
	needsPause      = "pause"
)

func CreateCampaign(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateCampaignRequest
		if !decodeBody(w, r, &request) {
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, "creating campaign", err)
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	})
}

// ListCampaigns filters by brand_id, status, is_active and has_schedule. needs=activation|pause
// switches to the read-only enforcement listings instead.
func ListCampaigns(service managing.ManagingService, enforcer enforcing.Enforcer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		switch needs := query.Get("needs"); needs {
		case "":
		case needsActivation:
			campaigns, err := enforcer.CampaignsNeedingActivation(r.Context())
			if err != nil {
				writeServiceError(w, r, "listing campaigns needing activation", err)
				return
			}
			writeJSON(w, http.StatusOK, campaigns)
			return
		case needsPause:
			campaigns, err := enforcer.CampaignsNeedingPause(r.Context())
			if err != nil {
				writeServiceError(w, r, "listing campaigns needing pause", err)
				return
			}
			writeJSON(w, http.StatusOK, campaigns)
			return
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "needs must be activation or pause", needs)
			return
		}

		filter := domain.CampaignFilter{BrandID: query.Get("brand_id")}

		if rawStatus := query.Get("status"); rawStatus != "" {
			for _, status := range strings.Split(rawStatus, ",") {
				filter.Statuses = append(filter.Statuses, domain.CampaignStatus(strings.TrimSpace(status)))
			}
		}

		var err error
		if filter.IsActive, err = queryOptionalBool(r, "is_active"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "is_active must be a boolean", nil)
			return
		}
		if filter.HasSchedule, err = queryOptionalBool(r, "has_schedule"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "has_schedule must be a boolean", nil)
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, "listing campaigns", err)
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	})
}

func GetCampaign(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaign, err := service.GetCampaign(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, "getting campaign", err)
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	})
}

func UpdateCampaign(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.UpdateCampaignRequest
		if !decodeBody(w, r, &request) {
			return
		}
		request.ID = pathParam(r, "id")

		campaign, err := service.UpdateCampaign(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, "updating campaign", err)
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	})
}

func CampaignStatusCheck(enforcer enforcing.Enforcer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		check, err := enforcer.CheckCampaign(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, "checking campaign", err)
			return
		}

		writeJSON(w, http.StatusOK, check)
	})
}

// ActivateCampaign is idempotent: an already running eligible campaign reports activated.
func ActivateCampaign(enforcer enforcing.Enforcer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaignID := pathParam(r, "id")

		activated, err := enforcer.ActivateCampaign(r.Context(), campaignID)
		if err != nil {
			writeServiceError(w, r, "activating campaign", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"campaign_id": campaignID,
			"activated":   activated,
		})
	})
}

func PauseCampaign(enforcer enforcing.Enforcer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaignID := pathParam(r, "id")

		paused, err := enforcer.PauseCampaign(r.Context(), campaignID)
		if err != nil {
			writeServiceError(w, r, "pausing campaign", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"campaign_id": campaignID,
			"paused":      paused,
		})
	})
}

func CampaignSpend(spends spending.SpendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := spends.CampaignSpend(r.Context(), pathParam(r, "id"), r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, r, "reading campaign spend", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}
