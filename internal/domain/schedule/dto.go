package schedule

// ScheduleResponse is the daily schedule served to the app's timetable screen.
type ScheduleResponse struct {
	ID            string `json:"id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	RestStartTime string `json:"rest_start_time"`
	RestEndTime   string `json:"rest_end_time"`
}

func (s *DailySchedule) ToResponse() ScheduleResponse {
	return ScheduleResponse{
		ID:            s.ID,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		RestStartTime: s.RestStartTime,
		RestEndTime:   s.RestEndTime,
	}
}
