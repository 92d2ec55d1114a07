package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"

	"smart-task-dashboard/docs"
)

func TestSwaggerDocRenders(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("rendered doc is not valid JSON: %v", err)
	}
	if doc.Info.Title != "Smart Task Dashboard API" {
		t.Errorf("title = %q", doc.Info.Title)
	}
	for _, path := range []string{"/api/v1/tasks", "/api/v1/tasks/insights", "/api/v1/tasks/today", "/ready"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
}
