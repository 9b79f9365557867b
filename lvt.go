package lvt // import "kastelo.dev/lvt"

// Source column names in the valuation workbook.
const (
	ColLabel         = "Label"
	ColArea          = "Area"
	ColLandValue     = "Land_Value_Combined"
	ColBuildingValue = "Building_Value_Combined"
	ColConsideration = "Consideration"
	ColCouncilTax    = "Council_Tax_Amount"
	ColLBTT          = "LBTT_Amount"
	ColBusinessRates = "Business_Rates_Amount"
)

type Document struct {
	Properties []Property `json:"properties"`
	Statistics Statistics `json:"statistics"`
}

type Property struct {
	Label         string  `json:"label"`
	Area          float64 `json:"area"`
	LandValue     float64 `json:"landValue"`
	BuildingValue float64 `json:"buildingValue"`
	Consideration float64 `json:"consideration"`
	CouncilTax    float64 `json:"councilTax"`
	LBTT          float64 `json:"lbtt"`
	BusinessRates float64 `json:"businessRates"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// Statistics are always computed over the full source table, also when the
// property list is a sample of it.
type Statistics struct {
	TotalProperties  int     `json:"totalProperties"`
	AvgLandValue     float64 `json:"avgLandValue"`
	AvgBuildingValue float64 `json:"avgBuildingValue"`
	AvgCouncilTax    float64 `json:"avgCouncilTax"`
	AvgLBTT          float64 `json:"avgLBTT"`
	AvgBusinessRates float64 `json:"avgBusinessRates"`
	MinLandValue     float64 `json:"minLandValue"`
	MaxLandValue     float64 `json:"maxLandValue"`
	MinCouncilTax    float64 `json:"minCouncilTax"`
	MaxCouncilTax    float64 `json:"maxCouncilTax"`
}

type Coordinate struct {
	Latitude  float64
	Longitude float64
}
