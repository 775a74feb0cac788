package dto

// GenderStat one bucket of the criminals-by-gender aggregate.
type GenderStat struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

// StateStat one bucket of the criminals-by-state aggregate.
type StateStat struct {
	State string `json:"state"`
	Count int64  `json:"count"`
}

// StatsResponse dashboard aggregates. GenderStats and StateStats each sum to
// TotalCriminals; StateStats is sorted by count, descending.
type StatsResponse struct {
	TotalCriminals    int64        `json:"totalCriminals"`
	TotalSuspects     int64        `json:"totalSuspects"`
	TotalComplainants int64        `json:"totalComplainants"`
	GenderStats       []GenderStat `json:"genderStats"`
	StateStats        []StateStat  `json:"stateStats"`
}
