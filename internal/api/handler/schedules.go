package handler

import (
	"net/http"

	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/managing"
	"github.com/vfg2006/budget-guard-api/pkg/apiErrors"
)

func CreateSchedule(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateScheduleRequest
		if !decodeBody(w, r, &request) {
			return
		}

		schedule, err := service.CreateSchedule(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, "creating schedule", err)
			return
		}

		writeJSON(w, http.StatusCreated, schedule)
	})
}

func ListSchedules(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		currentlyActive, err := queryBool(r, "currently_active")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "currently_active must be a boolean", nil)
			return
		}
		onlyActive, err := queryBool(r, "active")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "active must be a boolean", nil)
			return
		}

		var schedules []*domain.ScheduleView
		if currentlyActive {
			schedules, err = service.CurrentlyActiveSchedules(r.Context())
		} else {
			schedules, err = service.ListSchedules(r.Context(), onlyActive)
		}
		if err != nil {
			writeServiceError(w, r, "listing schedules", err)
			return
		}

		writeJSON(w, http.StatusOK, schedules)
	})
}

func GetSchedule(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		schedule, err := service.GetSchedule(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, "getting schedule", err)
			return
		}

		writeJSON(w, http.StatusOK, schedule)
	})
}

func DeleteSchedule(service managing.ManagingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteSchedule(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, "deleting schedule", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
