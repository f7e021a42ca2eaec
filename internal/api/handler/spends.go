package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/spending"
	"github.com/vfg2006/budget-guard-api/pkg/apiErrors"
)

const defaultAlertThreshold = 90

// RecordSpend accumulates the amount on the campaign's day and pauses it when a ceiling is now reached.
func RecordSpend(spends spending.SpendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.RecordSpendRequest
		if !decodeBody(w, r, &request) {
			return
		}

		result, err := spends.RecordSpend(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, "recording spend", err)
			return
		}

		writeJSON(w, http.StatusCreated, result)
	})
}

func SpendReport(spends spending.SpendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		report, err := spends.SpendReport(r.Context(), domain.SpendReportRequest{
			StartDate:  query.Get("start_date"),
			EndDate:    query.Get("end_date"),
			CampaignID: query.Get("campaign_id"),
			BrandID:    query.Get("brand_id"),
		})
		if err != nil {
			writeServiceError(w, r, "building spend report", err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func TotalSpendSummary(spends spending.SpendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := spends.TotalSummary(r.Context())
		if err != nil {
			writeServiceError(w, r, "summarizing spend", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func BudgetAlerts(spends spending.SpendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		threshold := defaultAlertThreshold
		if raw := r.URL.Query().Get("threshold"); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "threshold must be an integer", raw)
				return
			}
			threshold = value
		}

		alerts, err := spends.BudgetAlerts(r.Context(), threshold)
		if err != nil {
			writeServiceError(w, r, "checking budget alerts", err)
			return
		}

		writeJSON(w, http.StatusOK, alerts)
	})
}
