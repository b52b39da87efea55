package analytics

import (
	"testing"
	"time"

	"github.com/Bothaina-Karakrah/tasks-tracker/modules/task"
)

func completedTask(actualDays int, completedAt time.Time, category string) task.TaskResponse {
	return task.TaskResponse{
		Status:      "completed",
		Priority:    "medium",
		Category:    category,
		ActualDays:  actualDays,
		CompletedAt: &completedAt,
	}
}

func TestCompute_EmptySnapshot(t *testing.T) {
	summary := Compute(nil, time.Now())

	if summary.TotalTasks != 0 {
		t.Errorf("expected total_tasks 0, got %d", summary.TotalTasks)
	}
	if summary.CompletionRate != 0 {
		t.Errorf("expected completion_rate 0 for empty set, got %v", summary.CompletionRate)
	}
	if summary.AvgCompletionTime != 0 {
		t.Errorf("expected avg_completion_time 0 for empty set, got %v", summary.AvgCompletionTime)
	}
	if len(summary.DailyCompletions) != 7 {
		t.Errorf("expected 7 histogram entries, got %d", len(summary.DailyCompletions))
	}
	for day, count := range summary.DailyCompletions {
		if count != 0 {
			t.Errorf("expected 0 completions on %s, got %d", day, count)
		}
	}
}

func TestCompute_Counts(t *testing.T) {
	now := time.Now()
	tasks := []task.TaskResponse{
		completedTask(2, now, "Work"),
		completedTask(4, now, "Work"),
		{Status: "in_progress", Priority: "high", Category: "Home"},
		{Status: "todo", Priority: "medium", Category: "Home"},
	}

	summary := Compute(tasks, now)

	if summary.TotalTasks != 4 {
		t.Errorf("expected total_tasks 4, got %d", summary.TotalTasks)
	}
	if summary.CompletedTasks != 2 {
		t.Errorf("expected completed_tasks 2, got %d", summary.CompletedTasks)
	}
	if summary.InProgressTasks != 1 {
		t.Errorf("expected in_progress_tasks 1, got %d", summary.InProgressTasks)
	}
	if summary.CompletionRate != 50.0 {
		t.Errorf("expected completion_rate 50.0, got %v", summary.CompletionRate)
	}
	if summary.AvgCompletionTime != 3.0 {
		t.Errorf("expected avg_completion_time 3.0, got %v", summary.AvgCompletionTime)
	}
	if summary.TasksByCategory["Work"] != 2 || summary.TasksByCategory["Home"] != 2 {
		t.Errorf("unexpected tasks_by_category: %v", summary.TasksByCategory)
	}
	if summary.TasksByPriority["medium"] != 3 || summary.TasksByPriority["high"] != 1 {
		t.Errorf("unexpected tasks_by_priority: %v", summary.TasksByPriority)
	}
}

func TestCompute_RateRounding(t *testing.T) {
	now := time.Now()
	tasks := []task.TaskResponse{
		completedTask(1, now, "Work"),
		{Status: "todo", Priority: "low", Category: "Work"},
		{Status: "todo", Priority: "low", Category: "Work"},
	}

	summary := Compute(tasks, now)

	// 1/3 completed = 33.33...%, rounded to one decimal
	if summary.CompletionRate != 33.3 {
		t.Errorf("expected completion_rate 33.3, got %v", summary.CompletionRate)
	}
	if summary.CompletionRate < 0 || summary.CompletionRate > 100 {
		t.Errorf("completion_rate out of bounds: %v", summary.CompletionRate)
	}
}

func TestCompute_AvgIgnoresUnrecordedDurations(t *testing.T) {
	now := time.Now()
	tasks := []task.TaskResponse{
		completedTask(6, now, "Work"),
		completedTask(0, now, "Work"), // duration never recorded
	}

	summary := Compute(tasks, now)

	if summary.AvgCompletionTime != 6.0 {
		t.Errorf("expected avg_completion_time 6.0, got %v", summary.AvgCompletionTime)
	}
}

func TestCompute_DailyCompletions(t *testing.T) {
	now := time.Now()
	twoDaysAgo := now.AddDate(0, 0, -2)
	lastWeek := now.AddDate(0, 0, -10)

	tasks := []task.TaskResponse{
		completedTask(1, now, "Work"),
		completedTask(2, now, "Work"),
		completedTask(1, twoDaysAgo, "Work"),
		completedTask(1, lastWeek, "Work"), // outside the window
		{Status: "todo", Priority: "low", Category: "Work"},
	}

	summary := Compute(tasks, now)

	if len(summary.DailyCompletions) != 7 {
		t.Fatalf("expected 7 histogram entries, got %d", len(summary.DailyCompletions))
	}

	total := 0
	for day, count := range summary.DailyCompletions {
		if count < 0 {
			t.Errorf("negative count on %s", day)
		}
		total += count
	}
	if total > summary.CompletedTasks {
		t.Errorf("histogram total %d exceeds completed_tasks %d", total, summary.CompletedTasks)
	}

	today := now.Format("2006-01-02")
	if summary.DailyCompletions[today] != 2 {
		t.Errorf("expected 2 completions today, got %d", summary.DailyCompletions[today])
	}
	if summary.DailyCompletions[twoDaysAgo.Format("2006-01-02")] != 1 {
		t.Errorf("expected 1 completion two days ago, got %d", summary.DailyCompletions[twoDaysAgo.Format("2006-01-02")])
	}
	if _, ok := summary.DailyCompletions[lastWeek.Format("2006-01-02")]; ok {
		t.Error("expected completions outside the 7-day window to be excluded")
	}

	// Oldest day of the window is present even with zero completions
	oldest := now.AddDate(0, 0, -6).Format("2006-01-02")
	if count, ok := summary.DailyCompletions[oldest]; !ok || count != 0 {
		t.Errorf("expected oldest window day %s with count 0, got %d (present=%v)", oldest, count, ok)
	}
}

func TestCompute_BlankCategoryFallsBackToGeneral(t *testing.T) {
	now := time.Now()
	tasks := []task.TaskResponse{
		{Status: "todo", Priority: "low", Category: ""},
	}

	summary := Compute(tasks, now)

	if summary.TasksByCategory["General"] != 1 {
		t.Errorf("expected blank category counted as General, got %v", summary.TasksByCategory)
	}
}
