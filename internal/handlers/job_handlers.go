package handlers

import (
	"errors"
	"net/http"

	"dinepos/internal/jobs/background"

	"github.com/labstack/echo/v4"
)

// JobRunner is the part of the background scheduler exposed over HTTP.
type JobRunner interface {
	RunNow(name string) error
	GetJobStatus() map[string]interface{}
}

type JobHandlers struct {
	runner JobRunner
}

func NewJobHandlers(runner JobRunner) *JobHandlers {
	return &JobHandlers{runner: runner}
}

// GetJobs godoc
// @Summary  Registered background jobs
// @Tags     jobs
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /admin/jobs [get]
func (h *JobHandlers) GetJobs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.runner.GetJobStatus())
}

// RunJob godoc
// @Summary  Trigger a background job now
// @Tags     jobs
// @Param    name  path  string  true  "Job name"
// @Success  202
// @Failure  404  {object}  map[string]string
// @Failure  500  {object}  map[string]string
// @Router   /admin/jobs/{name}/run [post]
func (h *JobHandlers) RunJob(c echo.Context) error {
	name := c.Param("name")
	if err := h.runner.RunNow(name); err != nil {
		if errors.Is(err, background.ErrJobNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to trigger job")
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"message": "job triggered",
		"job":     name,
	})
}
