package contract

// QuotaUsage reports how much of each elective category cap is consumed.
type QuotaUsage struct {
	MathElectives         int
	MaxMathElectives      int
	ScienceElectives      int
	MaxScienceElectives   int
	TechnicalElectives    int
	MaxTechnicalElectives int
	HasRequiredStatistics bool
}

// StatusResponse is the derived progress view of the plan.
type StatusResponse struct {
	UserID              string
	Major               string
	TotalCredits        float64
	CreditTarget        float64
	PercentComplete     float64
	CurrentSemester     string
	ProjectedGraduation string
	SemesterCount       int
	ScheduledCourses    int
	Quotas              QuotaUsage
}
