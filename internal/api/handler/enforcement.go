package handler

import (
	"net/http"

	"github.com/vfg2006/budget-guard-api/internal/scheduler"
	"github.com/vfg2006/budget-guard-api/pkg/log"
	"github.com/vfg2006/budget-guard-api/pkg/middleware"
)

// RunEnforcementJob runs one job synchronously and answers with its report.
// A job already in flight answers 409.
func RunEnforcementJob(jobs scheduler.JobRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job := pathParam(r, "type")

		logger := log.ForContext(r.Context()).WithField("job", job)
		if operator, ok := middleware.OperatorFromContext(r.Context()); ok {
			logger = logger.WithField("operator", operator.OperatorName)
		}
		logger.Info("Manual job run requested")

		result, err := jobs.Run(r.Context(), job)
		if err != nil {
			writeServiceError(w, r, "running job "+job, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"job":    job,
			"result": result,
		})
	}
}

func GetEnforcementStatus(jobs scheduler.JobRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, jobs.Status())
	}
}
