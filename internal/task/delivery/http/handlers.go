package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-dashboard/pkg/response"
)

// Analyze godoc
// @Summary     Analyze task text
// @Description Classifies free text into category, priority, due date and keywords without saving it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Task text"
// @Success     200  {object} analysisResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Stores a task. Pass the analysis shown to the user to keep it, otherwise the text is analysed again.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task text and optional analysis"
// @Success     201  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks newest first, optionally filtered by status, category and priority.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       filter   query string false "Status filter (all/active/completed)"
// @Param       category query string false "Category, e.g. work"
// @Param       priority query string false "Priority (low/medium/high)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ToggleComplete godoc
// @Summary     Toggle task completion
// @Description Flips the completed flag of a task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) ToggleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ToggleComplete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleComplete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Insights godoc
// @Summary     Task insights
// @Description Aggregates the whole list into completion, category, priority and overdue statistics with advice.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} insight.Report
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/insights [GET]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Insights(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInsightsResp(output))
}

// Today godoc
// @Summary     Today's tasks
// @Description Tasks due on the current date and pending tasks overdue from earlier days.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} todayResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Today(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Today: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTodayResp(output))
}
