package dto

// ReportDateRequest sets the report scope date for the daily and monthly
// summary views.
type ReportDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
