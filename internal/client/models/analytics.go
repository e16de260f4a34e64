package models

// AnalyticsOverview holds the aggregate counters shown on the dashboard.
// Saved applications are excluded from server-side counts.
type AnalyticsOverview struct {
	TotalApplications int64   `json:"total_applications"`
	Applied           int64   `json:"applications_applied"`
	Saved             int64   `json:"saved_applications"`
	Interviews        int64   `json:"interviews"`
	Offers            int64   `json:"offers"`
	Rejected          int64   `json:"rejected"`
	ResponseRate      float64 `json:"response_rate"`
	AvgDaysToResponse float64 `json:"avg_days_to_response"`
}

// DateCount is one point of the applications-over-time series.
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// CompanyCount ranks companies by number of applications.
type CompanyCount struct {
	CompanyName string `json:"company_name"`
	Count       int64  `json:"count"`
}

// TrendPoint is one month of the response-rate trend.
type TrendPoint struct {
	Month string  `json:"month"`
	Rate  float64 `json:"rate"`
}

// ChartsData is the time-series and ranking payload for the analytics page.
type ChartsData struct {
	ApplicationsByDate []DateCount    `json:"applications_by_date"`
	TopCompanies       []CompanyCount `json:"top_companies"`
	ResponseTrends     []TrendPoint   `json:"response_trends"`
}
