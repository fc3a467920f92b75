package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCompanyReport(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	jobs := []Job{
		{ID: "j1", Category: "Programming", Location: "Bangalore", Level: "Senior Level", Salary: 100, Visible: true, Date: base},
		{ID: "j2", Category: "Programming", Location: "Pune", Level: "Intermediate Level", Salary: 50, Visible: false, Date: base.Add(time.Hour)},
		{ID: "j3", Category: "Design", Location: "Bangalore", Level: "Senior Level", Salary: 60, Visible: true, Date: base.Add(2 * time.Hour)},
	}
	apps := []UserApplicationView{
		{ID: "a1", Status: StatusPending, Date: base},
		{ID: "a2", Status: StatusAccepted, Date: base.Add(time.Minute)},
		{ID: "a3", Status: StatusRejected, Date: base.Add(2 * time.Minute)},
		{ID: "a4", Status: StatusPending, Date: base.Add(3 * time.Minute)},
	}

	r := BuildCompanyReport(jobs, apps, base)

	assert.Equal(t, ReportStats{
		TotalJobs:            3,
		TotalApplications:    4,
		VisibleJobs:          2,
		HiddenJobs:           1,
		PendingApplications:  2,
		AcceptedApplications: 1,
		RejectedApplications: 1,
		AvgSalary:            70,
	}, r.Stats)

	assert.Equal(t, []GroupCount{{"Programming", 2}, {"Design", 1}}, r.JobsByCategory)
	assert.Equal(t, []GroupCount{{"Bangalore", 2}, {"Pune", 1}}, r.JobsByLocation)
	assert.Equal(t, []GroupCount{{"Senior Level", 2}, {"Intermediate Level", 1}}, r.JobsByLevel)

	require.Len(t, r.RecentJobs, 3)
	assert.Equal(t, "j3", r.RecentJobs[0].ID, "most recent job first")
	assert.Equal(t, "a4", r.RecentApplications[0].ID)
	assert.Equal(t, "j1", jobs[0].ID, "input must not be reordered")
}

func TestBuildCompanyReportLimits(t *testing.T) {
	var jobs []Job
	for i := 0; i < 15; i++ {
		jobs = append(jobs, Job{Location: fmt.Sprintf("City %02d", i), Date: time.Unix(int64(i), 0)})
	}

	r := BuildCompanyReport(jobs, nil, time.Now())

	assert.Len(t, r.RecentJobs, 10)
	assert.Len(t, r.JobsByLocation, 10)
	assert.Zero(t, r.Stats.AvgSalary)
}

func TestBuildCompanyReportEmpty(t *testing.T) {
	r := BuildCompanyReport(nil, nil, time.Now())
	assert.Zero(t, r.Stats.TotalJobs)
	assert.Zero(t, r.Stats.AvgSalary)
	assert.Empty(t, r.JobsByCategory)
}

func TestValidApplicationStatus(t *testing.T) {
	assert.True(t, ValidApplicationStatus("Accepted"))
	assert.False(t, ValidApplicationStatus("accepted"))
	assert.False(t, ValidApplicationStatus(""))
}
