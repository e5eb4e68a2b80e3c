package directv4

// GeoRussia is the default region id for Wordstat reports.
const GeoRussia = 225

// ClientInfo is the per-login account record of GetClientInfo.
type ClientInfo struct {
	Login    string  `json:"Login"`
	FIO      string  `json:"FIO"`
	Email    string  `json:"Email"`
	Phone    string  `json:"Phone"`
	Role     string  `json:"Role"`
	Currency string  `json:"Currency"`
	Discount float64 `json:"Discount"`
}

// WordstatEntry is one phrase with its monthly shows count.
type WordstatEntry struct {
	Phrase string `json:"Phrase"`
	Shows  int64  `json:"Shows"`
}

// WordstatReportStatus describes a queued or finished report.
type WordstatReportStatus struct {
	ReportID int64  `json:"ReportID"`
	Status   string `json:"StatusReport"`
}

type wordstatReportParams struct {
	Phrases []string `json:"Phrases"`
	GeoIDs  []int64  `json:"GeoID"`
}

type wordstatReport struct {
	Phrase       string          `json:"Phrase"`
	GeoIDs       []int64         `json:"GeoID"`
	SearchedWith []WordstatEntry `json:"SearchedWith"`
}
