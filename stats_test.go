package lvt

import (
	"testing"
)

func TestComputeStatistics(t *testing.T) {
	rows := testRows(3)
	rows[0][5] = 100.0
	rows[1][5] = 200.0
	rows[2][5] = 600.0
	tbl := testTable(rows)

	stats, err := ComputeStatistics(tbl)
	if err != nil {
		t.Fatal(err)
	}

	exp := Statistics{
		TotalProperties:  3,
		AvgLandValue:     2000,
		AvgBuildingValue: 4000,
		AvgCouncilTax:    300,
		AvgLBTT:          100,
		AvgBusinessRates: 50,
		MinLandValue:     1000,
		MaxLandValue:     3000,
		MinCouncilTax:    100,
		MaxCouncilTax:    600,
	}
	if stats != exp {
		t.Errorf("mismatch\n%s\n%s", jsons(stats), jsons(exp))
	}
}

func TestComputeStatisticsEmpty(t *testing.T) {
	stats, err := ComputeStatistics(testTable(nil))
	if err != nil {
		t.Fatal(err)
	}
	if stats != (Statistics{}) {
		t.Errorf("expected zero statistics, got %+v", stats)
	}
}

func TestComputeStatisticsBadValue(t *testing.T) {
	rows := testRows(2)
	rows[1][2] = ""
	if _, err := ComputeStatistics(testTable(rows)); err == nil {
		t.Error("unexpected success with empty land value")
	}
}
