package analytics

import (
	"math"
	"time"

	domain "github.com/Bothaina-Karakrah/tasks-tracker/domain/task"
	"github.com/Bothaina-Karakrah/tasks-tracker/modules/task"
)

// dateLayout is the ISO calendar date format used for the daily histogram.
const dateLayout = "2006-01-02"

// dailyWindow is the number of calendar days in the completion histogram,
// ending today inclusive.
const dailyWindow = 7

// Compute derives the analytics summary from a single consistent snapshot
// of the task set. The histogram spans the dailyWindow calendar days ending
// on the day of now; days without completions are present with count 0.
func Compute(tasks []task.TaskResponse, now time.Time) Summary {
	summary := Summary{
		TasksByCategory:  make(map[string]int),
		TasksByPriority:  make(map[string]int),
		DailyCompletions: make(map[string]int, dailyWindow),
	}

	for i := dailyWindow - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		summary.DailyCompletions[day] = 0
	}

	var completionDays, completionSum int

	for _, t := range tasks {
		summary.TotalTasks++

		switch domain.TaskStatus(t.Status) {
		case domain.StatusCompleted:
			summary.CompletedTasks++
			if t.ActualDays > 0 {
				completionDays++
				completionSum += t.ActualDays
			}
			if t.CompletedAt != nil {
				day := t.CompletedAt.Format(dateLayout)
				if _, ok := summary.DailyCompletions[day]; ok {
					summary.DailyCompletions[day]++
				}
			}
		case domain.StatusInProgress:
			summary.InProgressTasks++
		}

		category := t.Category
		if category == "" {
			category = domain.DefaultCategory
		}
		summary.TasksByCategory[category]++
		summary.TasksByPriority[t.Priority]++
	}

	if summary.TotalTasks > 0 {
		rate := float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100
		summary.CompletionRate = round1(rate)
	}
	if completionDays > 0 {
		summary.AvgCompletionTime = round1(float64(completionSum) / float64(completionDays))
	}

	return summary
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
