package domain

type Savings struct {
	InterestSaved  float64        `json:"interest_saved"`
	TotalPaidSaved float64        `json:"total_paid_saved"`
	MonthsSaved    int            `json:"months_saved"`
	TimeSaved      PayoffDuration `json:"time_saved"`
}

// Comparison holds a schedule with extra payments next to its baseline.
type Comparison struct {
	Scenario ScheduleResult `json:"scenario"`
	Baseline ScheduleResult `json:"baseline"`
	Savings  Savings        `json:"savings"`
}
