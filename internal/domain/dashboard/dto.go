package dashboard

// DailyStatsResponse is the dashboard snapshot for one calendar day.
// Absent is derived: employees without a record for the date. The three
// status counts always sum to the employee total.
type DailyStatsResponse struct {
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	Present        int    `json:"present"`
	Late           int    `json:"late"`
	Absent         int    `json:"absent"`
}
