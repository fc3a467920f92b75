package models

import (
	"sort"
	"time"
)

// GroupCount is one bucket of a grouped count
type GroupCount struct {
	Key   string `json:"_id"`
	Count int    `json:"count"`
}

// ReportStats holds the headline numbers of a company report
type ReportStats struct {
	TotalJobs            int     `json:"totalJobs"`
	TotalApplications    int     `json:"totalApplications"`
	VisibleJobs          int     `json:"visibleJobs"`
	HiddenJobs           int     `json:"hiddenJobs"`
	PendingApplications  int     `json:"pendingApplications"`
	AcceptedApplications int     `json:"acceptedApplications"`
	RejectedApplications int     `json:"rejectedApplications"`
	AvgSalary            float64 `json:"avgSalary"`
}

// CompanyReport is the analytics summary for one company
// @Description Company analytics report
type CompanyReport struct {
	Company            *CompanySummary       `json:"companyData"`
	Stats              ReportStats           `json:"stats"`
	RecentJobs         []Job                 `json:"recentJobs"`
	RecentApplications []UserApplicationView `json:"recentApplications"`
	JobsByCategory     []GroupCount          `json:"jobsByCategory"`
	JobsByLocation     []GroupCount          `json:"jobsByLocation"`
	JobsByLevel        []GroupCount          `json:"jobsByLevel"`
	GeneratedAt        time.Time             `json:"generatedAt"`
	FrontendURL        string                `json:"frontendUrl"`
}

const (
	reportRecentLimit   = 10
	reportLocationLimit = 10
)

// BuildCompanyReport aggregates a company's jobs and applications.
// Applications are expected to carry their job in Job; Company is left to the caller.
func BuildCompanyReport(jobs []Job, apps []UserApplicationView, now time.Time) CompanyReport {
	r := CompanyReport{GeneratedAt: now}
	r.Stats.TotalJobs = len(jobs)
	r.Stats.TotalApplications = len(apps)

	categories := map[string]int{}
	locations := map[string]int{}
	levels := map[string]int{}
	salaryTotal := 0
	for _, j := range jobs {
		if j.Visible {
			r.Stats.VisibleJobs++
		} else {
			r.Stats.HiddenJobs++
		}
		categories[j.Category]++
		locations[j.Location]++
		levels[j.Level]++
		salaryTotal += j.Salary
	}
	if len(jobs) > 0 {
		r.Stats.AvgSalary = float64(salaryTotal) / float64(len(jobs))
	}

	for _, a := range apps {
		switch a.Status {
		case StatusPending:
			r.Stats.PendingApplications++
		case StatusAccepted:
			r.Stats.AcceptedApplications++
		case StatusRejected:
			r.Stats.RejectedApplications++
		}
	}

	r.JobsByCategory = sortedGroups(categories, 0)
	r.JobsByLocation = sortedGroups(locations, reportLocationLimit)
	r.JobsByLevel = sortedGroups(levels, 0)

	recentJobs := append([]Job(nil), jobs...)
	sort.SliceStable(recentJobs, func(i, k int) bool { return recentJobs[i].Date.After(recentJobs[k].Date) })
	if len(recentJobs) > reportRecentLimit {
		recentJobs = recentJobs[:reportRecentLimit]
	}
	r.RecentJobs = recentJobs

	recentApps := append([]UserApplicationView(nil), apps...)
	sort.SliceStable(recentApps, func(i, k int) bool { return recentApps[i].Date.After(recentApps[k].Date) })
	if len(recentApps) > reportRecentLimit {
		recentApps = recentApps[:reportRecentLimit]
	}
	r.RecentApplications = recentApps

	return r
}

// sortedGroups orders buckets by count descending, then key, and keeps at most limit (0 = all).
func sortedGroups(counts map[string]int, limit int) []GroupCount {
	groups := make([]GroupCount, 0, len(counts))
	for k, c := range counts {
		groups = append(groups, GroupCount{Key: k, Count: c})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}
