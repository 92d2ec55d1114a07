package http

import (
	"time"

	"smart-task-dashboard/internal/insight"
	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task"
	"smart-task-dashboard/pkg/datemath"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r analyzeReq) toInput() task.AnalyzeInput {
	return task.AnalyzeInput{Text: r.Text}
}

// ---

type analysisReq struct {
	Category          string         `json:"category"`
	Priority          string         `json:"priority"`
	SuggestedDueDate  *datemath.Date `json:"suggested_due_date"`
	ExtractedKeywords []string       `json:"extracted_keywords"`
}

type createReq struct {
	Text     string       `json:"text" binding:"required,max=1000"`
	Analysis *analysisReq `json:"analysis"`
}

func (r createReq) toInput() task.CreateInput {
	input := task.CreateInput{Text: r.Text}
	if r.Analysis != nil {
		keywords := r.Analysis.ExtractedKeywords
		if keywords == nil {
			keywords = []string{}
		}
		input.Analysis = &model.Analysis{
			Category:          model.Category(r.Analysis.Category),
			Priority:          model.Priority(r.Analysis.Priority),
			SuggestedDueDate:  r.Analysis.SuggestedDueDate,
			ExtractedKeywords: keywords,
		}
	}
	return input
}

// ---

type listReq struct {
	Filter   string `form:"filter"`
	Category string `form:"category"`
	Priority string `form:"priority"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Filter:   task.Filter(r.Filter),
		Category: model.Category(r.Category),
		Priority: model.Priority(r.Priority),
	}
}

// --- Response DTOs ---

type analysisResp struct {
	Category          string         `json:"category"`
	Priority          string         `json:"priority"`
	SuggestedDueDate  *datemath.Date `json:"suggested_due_date" swaggertype:"string" example:"2024-05-01"`
	ExtractedKeywords []string       `json:"extracted_keywords"`
}

func (h *handler) newAnalyzeResp(out task.AnalyzeOutput) analysisResp {
	a := out.Analysis
	return analysisResp{
		Category:          string(a.Category),
		Priority:          string(a.Priority),
		SuggestedDueDate:  a.SuggestedDueDate,
		ExtractedKeywords: a.ExtractedKeywords,
	}
}

type taskResp struct {
	ID               string         `json:"id"`
	Text             string         `json:"text"`
	Completed        bool           `json:"completed"`
	Category         string         `json:"category"`
	Priority         string         `json:"priority"`
	SuggestedDueDate *datemath.Date `json:"suggested_due_date" swaggertype:"string" example:"2024-05-01"`
	Keywords         []string       `json:"keywords"`
	CreatedAt        time.Time      `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	keywords := t.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return taskResp{
		ID:               t.ID,
		Text:             t.Text,
		Completed:        t.Completed,
		Category:         string(t.Category),
		Priority:         string(t.Priority),
		SuggestedDueDate: t.SuggestedDueDate,
		Keywords:         keywords,
		CreatedAt:        t.CreatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type createResp struct {
	Task         taskResp `json:"task"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task), CalendarLink: out.CalendarLink}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{Tasks: newTaskResps(out.Tasks), Total: out.Total}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(out task.ToggleOutput) toggleResp {
	return toggleResp{Task: newTaskResp(out.Task)}
}

func (h *handler) newInsightsResp(out task.InsightsOutput) insight.Report {
	return out.Report
}

type todayResp struct {
	Date     string     `json:"date" example:"2024-05-01"`
	DueToday []taskResp `json:"due_today"`
	Overdue  []taskResp `json:"overdue"`
}

func (h *handler) newTodayResp(out task.TodayOutput) todayResp {
	return todayResp{
		Date:     out.Date.String(),
		DueToday: newTaskResps(out.DueToday),
		Overdue:  newTaskResps(out.Overdue),
	}
}
