package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/existflow/tempo/internal/model"
	"github.com/existflow/tempo/internal/store"
)

func TestRenderCompletedShowsDoneMark(t *testing.T) {
	s := store.Open(store.NewMemoryKV(), store.NewMemoryReviewLog())
	task, err := s.Add(model.NewTask("shipped", model.ImpactHigh, model.EffortLow, model.DeadlineToday))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Complete(task.ID, time.Now()); err != nil {
		t.Fatal(err)
	}

	m := NewModel(s, nil, false)
	m.width, m.height = 80, 24
	m.view = ViewCompleted

	out := m.renderCompleted()
	if !strings.Contains(out, "shipped") {
		t.Errorf("completed view missing task name:\n%s", out)
	}
	if !strings.Contains(out, "[x]") {
		t.Error("completed view missing the done mark")
	}
}
