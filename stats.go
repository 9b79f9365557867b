package lvt

import "math"

type summary struct {
	count    int
	total    float64
	min, max float64
}

func newSummary() *summary {
	return &summary{
		min: math.Inf(1),
		max: math.Inf(-1),
	}
}

func (s *summary) add(v float64) {
	s.count++
	s.total += v
	s.min = math.Min(s.min, v)
	s.max = math.Max(s.max, v)
}

func (s *summary) addAll(vals []float64) *summary {
	for _, v := range vals {
		s.add(v)
	}
	return s
}

// mean, minimum and maximum are zero for an empty summary.
func (s *summary) mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.total / float64(s.count)
}

func (s *summary) minimum() float64 {
	if s.count == 0 {
		return 0
	}
	return s.min
}

func (s *summary) maximum() float64 {
	if s.count == 0 {
		return 0
	}
	return s.max
}

// ComputeStatistics summarizes the full table. Values are stored unrounded.
func ComputeStatistics(t *Table) (Statistics, error) {
	columns := []string{ColLandValue, ColBuildingValue, ColCouncilTax, ColLBTT, ColBusinessRates}
	sums := make(map[string]*summary, len(columns))
	for _, name := range columns {
		vals, err := t.FloatColumn(name)
		if err != nil {
			return Statistics{}, err
		}
		sums[name] = newSummary().addAll(vals)
	}

	land := sums[ColLandValue]
	council := sums[ColCouncilTax]
	return Statistics{
		TotalProperties:  t.Len(),
		AvgLandValue:     land.mean(),
		AvgBuildingValue: sums[ColBuildingValue].mean(),
		AvgCouncilTax:    council.mean(),
		AvgLBTT:          sums[ColLBTT].mean(),
		AvgBusinessRates: sums[ColBusinessRates].mean(),
		MinLandValue:     land.minimum(),
		MaxLandValue:     land.maximum(),
		MinCouncilTax:    council.minimum(),
		MaxCouncilTax:    council.maximum(),
	}, nil
}
