package model

import (
	"sort"
	"time"
)

const (
	SectionOverdue   = "Overdue"
	SectionToday     = "Today"
	SectionTomorrow  = "Tomorrow"
	SectionComingUp  = "Coming Up"
	SectionYesterday = "Yesterday"
	SectionThisWeek  = "This Week"
	SectionOlder     = "Older"
)

// GroupUpcoming buckets tasks by how their due date relates to now's
// calendar day: Overdue, Today, Tomorrow, Coming Up. Boundaries are strict
// less-than comparisons, so a task due exactly at a day start belongs to
// that day. Only the Today section is sorted, by the manual order key;
// every other section keeps input order. Completion filtering is a caller
// concern.
func GroupUpcoming(tasks []Task, now time.Time) []TaskSection {
	todayStart := startOfDay(now)
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	dayAfterTomorrowStart := todayStart.AddDate(0, 0, 2)

	var overdue, today, tomorrow, comingUp []Task
	for _, task := range tasks {
		due := time.UnixMilli(task.DueDate).In(now.Location())
		switch {
		case due.Before(todayStart):
			overdue = append(overdue, task)
		case due.Before(tomorrowStart):
			today = append(today, task)
		case due.Before(dayAfterTomorrowStart):
			tomorrow = append(tomorrow, task)
		default:
			comingUp = append(comingUp, task)
		}
	}

	sort.SliceStable(today, func(i, j int) bool {
		return today[i].Order < today[j].Order
	})

	sections := make([]TaskSection, 0, 4)
	if len(overdue) > 0 {
		sections = append(sections, TaskSection{Title: SectionOverdue, Tasks: overdue})
	}
	if len(today) > 0 {
		sections = append(sections, TaskSection{Title: SectionToday, Tasks: today})
	}
	if len(tomorrow) > 0 {
		sections = append(sections, TaskSection{Title: SectionTomorrow, Tasks: tomorrow})
	}
	if len(comingUp) > 0 {
		sections = append(sections, TaskSection{Title: SectionComingUp, Tasks: comingUp})
	}
	return sections
}

// GroupCompleted buckets tasks by calendar-day relation to now: Today,
// Yesterday, This Week, Older. "This Week" means the current ISO week
// (Monday through Sunday), which is deliberately a different scheme from
// the day-arithmetic boundaries GroupUpcoming uses. Input order is kept.
func GroupCompleted(tasks []Task, now time.Time) []TaskSection {
	todayStart := startOfDay(now)
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	weekStart := startOfISOWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var today, yesterday, thisWeek, older []Task
	for _, task := range tasks {
		due := time.UnixMilli(task.DueDate).In(now.Location())
		switch {
		case !due.Before(todayStart) && due.Before(todayStart.AddDate(0, 0, 1)):
			today = append(today, task)
		case !due.Before(yesterdayStart) && due.Before(todayStart):
			yesterday = append(yesterday, task)
		case !due.Before(weekStart) && due.Before(weekEnd):
			thisWeek = append(thisWeek, task)
		default:
			older = append(older, task)
		}
	}

	sections := make([]TaskSection, 0, 4)
	if len(today) > 0 {
		sections = append(sections, TaskSection{Title: SectionToday, Tasks: today})
	}
	if len(yesterday) > 0 {
		sections = append(sections, TaskSection{Title: SectionYesterday, Tasks: yesterday})
	}
	if len(thisWeek) > 0 {
		sections = append(sections, TaskSection{Title: SectionThisWeek, Tasks: thisWeek})
	}
	if len(older) > 0 {
		sections = append(sections, TaskSection{Title: SectionOlder, Tasks: older})
	}
	return sections
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// startOfISOWeek returns midnight of the Monday of t's week.
func startOfISOWeek(t time.Time) time.Time {
	day := startOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}
