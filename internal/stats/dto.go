// AngelaMos | 2026
// dto.go

package stats

type FarmStats struct {
	Count     int     `json:"count"`
	AvgSize   float64 `json:"avg_size"`
	TotalArea float64 `json:"total_area"`
}

type ProjectStats struct {
	Total              int     `json:"total"`
	Active             int     `json:"active"`
	Completed          int     `json:"completed"`
	PlantingProjects   int     `json:"planting_projects"`
	TotalPlantedArea   float64 `json:"total_planted_area"`
	AvgExpectedRevenue float64 `json:"avg_expected_revenue"`
}

type AnimalStats struct {
	Total              int            `json:"total"`
	Active             int            `json:"active"`
	AvgWeight          float64        `json:"avg_weight"`
	HealthDistribution map[string]int `json:"health_distribution"`
}

type FinanceStats struct {
	Transactions int     `json:"transactions"`
	IncomeTotal  float64 `json:"income_total"`
	ExpenseTotal float64 `json:"expense_total"`
	NetBalance   float64 `json:"net_balance"`
}

type SoilStats struct {
	AvgPH            float64 `json:"avg_ph"`
	AvgNitrogen      float64 `json:"avg_nitrogen"`
	AvgOrganicMatter float64 `json:"avg_organic_matter"`
}

type WeatherStats struct {
	AvgTemperature  float64 `json:"avg_temperature"`
	AvgHumidity     float64 `json:"avg_humidity"`
	TotalRainfallMM float64 `json:"total_rainfall_mm"`
}

type UserStats struct {
	Active int            `json:"active"`
	Roles  map[string]int `json:"roles"`
}

type EmployeeStats struct {
	Count     int     `json:"count"`
	AvgSalary float64 `json:"avg_salary"`
}

type VeterinaryStats struct {
	TotalVisits int     `json:"total_visits"`
	AvgCost     float64 `json:"avg_cost"`
}

// Snapshot is the full statistics payload assembled by the fan-out
// aggregator.
type Snapshot struct {
	Farms      FarmStats       `json:"farms"`
	Projects   ProjectStats    `json:"projects"`
	Animals    AnimalStats     `json:"animals"`
	Finance    FinanceStats    `json:"finance"`
	Soil       SoilStats       `json:"soil"`
	Weather30d WeatherStats    `json:"weather_30d"`
	Tasks      map[string]int  `json:"tasks"`
	Users      UserStats       `json:"users"`
	Employees  EmployeeStats   `json:"employees"`
	Veterinary VeterinaryStats `json:"veterinary"`
}
