package googleanalytics

type accountSummariesResponse struct {
	AccountSummaries []accountSummary `json:"accountSummaries"`
	NextPageToken    string           `json:"nextPageToken"`
}

type accountSummary struct {
	Account           string            `json:"account"`
	DisplayName       string            `json:"displayName"`
	PropertySummaries []propertySummary `json:"propertySummaries"`
}

type propertySummary struct {
	Property     string `json:"property"`
	DisplayName  string `json:"displayName"`
	PropertyType string `json:"propertyType"`
}

type reportRequest struct {
	DateRanges []dateRange `json:"dateRanges"`
	Dimensions []named     `json:"dimensions"`
	Metrics    []named     `json:"metrics"`
	Limit      int64       `json:"limit,omitempty"`
}

type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type named struct {
	Name string `json:"name"`
}

type reportResponse struct {
	MetricHeaders []named     `json:"metricHeaders"`
	Rows          []reportRow `json:"rows"`
	RowCount      int64       `json:"rowCount"`
}

type reportRow struct {
	DimensionValues []value `json:"dimensionValues"`
	MetricValues    []value `json:"metricValues"`
}

type value struct {
	Value string `json:"value"`
}

type userInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
