package models

type DashboardResponse struct {
	Users         []User        `json:"users"`
	Games         []Game        `json:"games"`
	Transactions  []Transaction `json:"transactions"`
	CutPercentage *float64      `json:"cutPercentage,omitempty"`
}
