package project

import "sort"

// priorityRank orders high before medium before low.
func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// SortProjects orders most-recently-updated first. Both backends use
// this rule (the Postgres one in SQL), so list ordering is observably
// identical across fallback transitions.
func SortProjects(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})
}

// SortTasks orders by priority (high, medium, low), ties broken by
// most-recently-updated first.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := priorityRank(tasks[i].Priority), priorityRank(tasks[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return tasks[i].UpdatedAt.After(tasks[j].UpdatedAt)
	})
}
