// Package report renders the daily team report text. All functions are pure:
// identical inputs always produce byte-identical output.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
)

const sectionDivider = "────────────────────"

// Generate builds the full daily report for the given members, in input
// order. tasks and routines are the full collections for the organization;
// filtering by assignee and date happens here. generatedAt is stamped into
// the footer and must be supplied by the caller so the output stays a pure
// function of its arguments.
func Generate(members []string, date string, tasks []*entity.Task, routines []*entity.Routine, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📋 チーム日報（%s）\n", date))

	for _, member := range members {
		b.WriteString("\n")
		b.WriteString(MemberSection(member, date, tasks, routines))
		b.WriteString("\n" + sectionDivider + "\n")
	}

	b.WriteString(fmt.Sprintf("\n🕒 作成: %s", generatedAt.Format(domain.DateTimeLayout)))

	return b.String()
}

// MemberSection renders one member's portion of the report. A member with no
// tasks and no routines on the date still gets a well-formed minimal section.
func MemberSection(member, date string, tasks []*entity.Task, routines []*entity.Routine) string {
	completed, active, blocked := splitTasks(member, date, tasks)
	doneRoutines, totalRoutines := countRoutines(member, date, routines)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("👤 %s\n", member))

	if len(completed)+len(active)+len(blocked) == 0 && totalRoutines == 0 {
		b.WriteString("\n特に割り当てられた作業はありません\n")
		return b.String()
	}

	for _, project := range projectOrder(completed, active, blocked) {
		b.WriteString(fmt.Sprintf("\n📁 %s（進捗 %d%%）\n", project.name, project.progress))
		writeGroup(&b, "✅ 完了:", byProject(completed, project.name), completedLine)
		writeGroup(&b, "🔄 進行中:", byProject(active, project.name), activeLine)
		writeGroup(&b, "⛔ ブロック:", byProject(blocked, project.name), blockedLine)
	}

	if totalRoutines > 0 {
		rate := routineRate(doneRoutines, totalRoutines)
		b.WriteString(fmt.Sprintf("\n🔁 ルーティン達成率: %d%%（%d/%d）%s\n", rate, doneRoutines, totalRoutines, rateGlyph(rate)))
	}

	total := len(completed) + len(active) + len(blocked)
	summary := fmt.Sprintf("\n📊 合計 %d件（完了 %d / 進行中 %d", total, len(completed), len(active))
	if len(blocked) > 0 {
		summary += fmt.Sprintf(" / ブロック %d", len(blocked))
	}
	b.WriteString(summary + "）\n")

	return b.String()
}

// splitTasks filters the member's tasks into completed-today, active and
// blocked, each sorted by priority (urgent first) with input order preserved
// inside the same priority.
func splitTasks(member, date string, tasks []*entity.Task) (completed, active, blocked []*entity.Task) {
	for _, t := range tasks {
		if t.Assignee != member {
			continue
		}
		switch {
		case t.Status == domain.TaskStatusCompleted:
			if t.CompletedDate == date {
				completed = append(completed, t)
			}
		case t.Status == domain.TaskStatusBlocked:
			blocked = append(blocked, t)
		default:
			active = append(active, t)
		}
	}

	sortByPriority(completed)
	sortByPriority(active)
	sortByPriority(blocked)
	return completed, active, blocked
}

func sortByPriority(tasks []*entity.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return priorityRank(tasks[i].Priority) < priorityRank(tasks[j].Priority)
	})
}

func priorityRank(priority string) int {
	if rank, ok := domain.PriorityRank[priority]; ok {
		return rank
	}
	return len(domain.PriorityRank)
}

type projectHeader struct {
	name     string
	progress int
}

// projectOrder returns the distinct projects of the member's tasks in first
// appearance order across the completed, active and blocked groups.
func projectOrder(groups ...[]*entity.Task) []projectHeader {
	seen := make(map[string]bool)
	var order []projectHeader
	for _, group := range groups {
		for _, t := range group {
			if seen[t.ProjectName] {
				continue
			}
			seen[t.ProjectName] = true
			order = append(order, projectHeader{name: t.ProjectName, progress: t.ProjectProgress})
		}
	}
	return order
}

func byProject(tasks []*entity.Task, projectName string) []*entity.Task {
	var out []*entity.Task
	for _, t := range tasks {
		if t.ProjectName == projectName {
			out = append(out, t)
		}
	}
	return out
}

func writeGroup(b *strings.Builder, header string, tasks []*entity.Task, line func(*entity.Task) string) {
	if len(tasks) == 0 {
		return
	}
	b.WriteString(header + "\n")
	for _, t := range tasks {
		b.WriteString(line(t) + "\n")
	}
}

func completedLine(t *entity.Task) string {
	return fmt.Sprintf("  %s %s", glyph(t.Priority), t.Name)
}

func activeLine(t *entity.Task) string {
	if t.DueDate != "" {
		return fmt.Sprintf("  %s %s（%d%% / 期限 %s）", glyph(t.Priority), t.Name, t.Progress, t.DueDate)
	}
	return fmt.Sprintf("  %s %s（%d%%）", glyph(t.Priority), t.Name, t.Progress)
}

func blockedLine(t *entity.Task) string {
	return fmt.Sprintf("  %s %s", glyph(t.Priority), t.Name)
}

func glyph(priority string) string {
	if g, ok := domain.PriorityGlyphs[priority]; ok {
		return g
	}
	return domain.PriorityGlyphs[domain.PriorityLow]
}

func countRoutines(member, date string, routines []*entity.Routine) (done, total int) {
	for _, r := range routines {
		if r.Assignee != member || r.Date != date {
			continue
		}
		total++
		if r.Completed {
			done++
		}
	}
	return done, total
}

// routineRate is the completion percentage, rounded half up. Zero when the
// member has no routines on the date.
func routineRate(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done*100) / float64(total)))
}

func rateGlyph(rate int) string {
	switch {
	case rate >= domain.RoutineRateCelebrate:
		return "🎉"
	case rate >= domain.RoutineRatePositive:
		return "💪"
	default:
		return "📝"
	}
}
