package memos

import (
	"strings"
	"time"

	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/pkg/datemath"
)

// TaskTag marks memos that hold a task.
const TaskTag = "todo"

const (
	boxOpen        = "- [ ] "
	boxDone        = "- [x] "
	tagCategory    = "#category/"
	tagPriority    = "#priority/"
	tagDue         = "#due/"
	prefixKeywords = "keywords:"
	prefixCreated  = "created:"
)

// formatContent renders a task as a Markdown checklist memo:
//
//	- [ ] Buy groceries today
//
//	#todo #category/shopping #priority/medium #due/2024-05-01
//	keywords: groceries today
//	created: 2024-05-01T09:00:00Z
func formatContent(t model.Task) string {
	var sb strings.Builder

	if t.Completed {
		sb.WriteString(boxDone)
	} else {
		sb.WriteString(boxOpen)
	}
	sb.WriteString(t.Text)
	sb.WriteString("\n\n")

	tags := []string{"#" + TaskTag, tagCategory + string(t.Category), tagPriority + string(t.Priority)}
	if t.SuggestedDueDate != nil {
		tags = append(tags, tagDue+t.SuggestedDueDate.String())
	}
	sb.WriteString(strings.Join(tags, " "))
	sb.WriteString("\n")
	sb.WriteString(prefixKeywords + " " + strings.Join(t.Keywords, " "))
	sb.WriteString("\n")
	sb.WriteString(prefixCreated + " " + t.CreatedAt.UTC().Format(time.RFC3339Nano))
	return sb.String()
}

// parseContent reads a memo written by formatContent. ok is false for memos that are not tasks.
func parseContent(content string) (model.Task, bool) {
	idx := strings.LastIndex(content, "\n\n")
	if idx < 0 {
		return model.Task{}, false
	}
	body, meta := content[:idx], content[idx+2:]

	var t model.Task
	switch {
	case strings.HasPrefix(body, boxOpen):
		t.Text = body[len(boxOpen):]
	case strings.HasPrefix(body, boxDone), strings.HasPrefix(body, "- [X] "):
		t.Text = body[len(boxDone):]
		t.Completed = true
	default:
		return model.Task{}, false
	}

	t.Keywords = []string{}
	isTask := false
	for _, line := range strings.Split(meta, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, prefixKeywords):
			t.Keywords = append(t.Keywords, strings.Fields(line[len(prefixKeywords):])...)
		case strings.HasPrefix(line, prefixCreated):
			if ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(line[len(prefixCreated):])); err == nil {
				t.CreatedAt = ts
			}
		default:
			for _, tag := range strings.Fields(line) {
				switch {
				case tag == "#"+TaskTag:
					isTask = true
				case strings.HasPrefix(tag, tagCategory):
					t.Category = model.Category(tag[len(tagCategory):])
				case strings.HasPrefix(tag, tagPriority):
					t.Priority = model.Priority(tag[len(tagPriority):])
				case strings.HasPrefix(tag, tagDue):
					if d, err := datemath.ParseDate(tag[len(tagDue):]); err == nil {
						t.SuggestedDueDate = &d
					}
				}
			}
		}
	}
	if !isTask {
		return model.Task{}, false
	}
	return t, true
}
