package dashboard

// StatsResponse is the payload of the main dashboard endpoint
type StatsResponse struct {
	TotalEmployees  int64                   `json:"totalEmployees"`
	TodayAttendance TodayAttendanceResponse `json:"todayAttendance"`
	Departments     []DepartmentCount       `json:"departments"`
}

// TodayAttendanceResponse counts today's marks; NotMarked is never negative
type TodayAttendanceResponse struct {
	Present   int64 `json:"present"`
	Absent    int64 `json:"absent"`
	NotMarked int64 `json:"notMarked"`
}

// DepartmentCount is the headcount of one department
type DepartmentCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
