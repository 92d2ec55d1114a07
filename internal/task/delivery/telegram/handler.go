package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task"
	pkgLog "smart-task-dashboard/pkg/log"
	pkgResponse "smart-task-dashboard/pkg/response"
	pkgTelegram "smart-task-dashboard/pkg/telegram"
)

const (
	helpText = "*Smart Task Dashboard*\n\n" +
		"Send any text to add it as a task. Category, priority and due date are detected for you.\n\n" +
		"/list - pending tasks\n" +
		"/today - due today and overdue\n" +
		"/insights - productivity summary"
	failureText   = "Something went wrong while handling your message. Please try again."
	maxListedTask = 20
)

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Telegram retries any non-2xx answer, so every update is acknowledged.
// Processing failures are reported to the chat, unreadable updates are dropped.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "telegram handler: dropping unreadable update: %v", err)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	if err := h.processMessage(ctx, msg); err != nil {
		h.l.Errorf(ctx, "telegram handler: processMessage failed: %v", err)
		if sendErr := h.bot.SendMessage(ctx, msg.Chat.ID, failureText); sendErr != nil {
			h.l.Warnf(ctx, "telegram handler: failed to send error reply: %v", sendErr)
		}
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch command(text) {
	case "/start", "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpText, "Markdown")
	case "/list":
		return h.handleList(ctx, msg.Chat.ID)
	case "/today":
		return h.handleToday(ctx, msg.Chat.ID)
	case "/insights":
		return h.handleInsights(ctx, msg.Chat.ID)
	case "":
		// Plain text becomes a task.
	default:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, "Unknown command.\n\n"+helpText, "Markdown")
	}

	out, err := h.uc.Create(ctx, task.CreateInput{Text: text})
	if err != nil {
		if errors.Is(err, task.ErrEmptyInput) {
			return h.bot.SendMessage(ctx, msg.Chat.ID, "Please send some text for the task.")
		}
		return fmt.Errorf("create task: %w", err)
	}

	reply := "Task added: " + formatTask(out.Task)
	if out.CalendarLink != "" {
		reply += "\nCalendar: " + out.CalendarLink
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, reply)
}

func (h *handler) handleList(ctx context.Context, chatID int64) error {
	out, err := h.uc.List(ctx, task.ListInput{Filter: task.FilterActive})
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	if out.Total == 0 {
		return h.bot.SendMessage(ctx, chatID, "No pending tasks.")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Pending tasks (%d):\n", out.Total)
	for i, t := range out.Tasks {
		if i == maxListedTask {
			fmt.Fprintf(&sb, "... and %d more", out.Total-maxListedTask)
			break
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, formatTask(t))
	}
	return h.bot.SendMessage(ctx, chatID, strings.TrimRight(sb.String(), "\n"))
}

func (h *handler) handleToday(ctx context.Context, chatID int64) error {
	out, err := h.uc.Today(ctx)
	if err != nil {
		return fmt.Errorf("today view: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Today (%s)\n", out.Date)
	writeSection(&sb, "Due today", out.DueToday)
	writeSection(&sb, "Overdue", out.Overdue)
	return h.bot.SendMessage(ctx, chatID, strings.TrimRight(sb.String(), "\n"))
}

func (h *handler) handleInsights(ctx context.Context, chatID int64) error {
	out, err := h.uc.Insights(ctx)
	if err != nil {
		return fmt.Errorf("insights: %w", err)
	}

	r := out.Report
	if r.Empty {
		return h.bot.SendMessage(ctx, chatID, r.Placeholder)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Completion: %.0f%% (%d of %d)\n", r.CompletionRate, r.CompletedTasks, r.TotalTasks)
	fmt.Fprintf(&sb, "Pending: %d high, %d medium, %d low\n",
		r.PendingByPriority.High, r.PendingByPriority.Medium, r.PendingByPriority.Low)
	if r.OverdueTasks > 0 {
		fmt.Fprintf(&sb, "Overdue: %d\n", r.OverdueTasks)
	}
	if r.Productivity != nil {
		sb.WriteString(r.Productivity.Message + "\n")
	}
	if r.Recommendation != nil {
		sb.WriteString(r.Recommendation.Message)
	}
	return h.bot.SendMessage(ctx, chatID, strings.TrimRight(sb.String(), "\n"))
}

// command returns the bot command of text without a @botname suffix, or "".
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return strings.ToLower(cmd)
}

func formatTask(t model.Task) string {
	s := fmt.Sprintf("%s [%s, %s]", t.Text, t.Category, t.Priority)
	if t.SuggestedDueDate != nil {
		s += " due " + t.SuggestedDueDate.String()
	}
	return s
}

func writeSection(sb *strings.Builder, title string, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintf(sb, "%s: none\n", title)
		return
	}
	fmt.Fprintf(sb, "%s:\n", title)
	for _, t := range tasks {
		fmt.Fprintf(sb, "- %s\n", formatTask(t))
	}
}
