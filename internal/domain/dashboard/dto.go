package dashboard

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined payload for the main dashboard endpoint.
type DashboardResponse struct {
	TotalEmployees   int64             `json:"total_employees"`
	TotalDepartments int64             `json:"total_departments"`
	TodayStats       SummaryResponse   `json:"today_stats"`
	DepartmentData   []DepartmentStat  `json:"department_data"`
	TrendData        []TrendPoint      `json:"trend_data"`
}

// ========== DAILY SUMMARY ==========

// SummaryResponse holds per-day counts. Absent is the complement
// totalEmployees - (present + late): employees with no record for the day
// count as absent, and Leave-status records fold into the absent bucket.
type SummaryResponse struct {
	Present int64  `json:"present"`
	Late    int64  `json:"late"`
	Absent  int64  `json:"absent"`
	Date    string `json:"date"` // Format: "YYYY-MM-DD"
}

// ========== DEPARTMENT BREAKDOWN ==========

// DepartmentStat is one department's attendance for a day. Present counts
// records with status Present or Late.
type DepartmentStat struct {
	Name    string `json:"name"`
	Present int64  `json:"present"`
	Total   int64  `json:"total"`
}

// ========== TREND ==========

// TrendPoint is one day in the attendance trend series.
type TrendPoint struct {
	Date       string `json:"date"` // Format: "YYYY-MM-DD"
	Attendance int64  `json:"attendance"`
}
