package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictSalary(t *testing.T) {
	testCases := []struct {
		name         string
		salaryRange  SalaryRange
		expected     float64
		expectResult bool
	}{
		{
			name:         "both bounds - arithmetic mean",
			salaryRange:  SalaryRange{From: Bound(1000), To: Bound(2000)},
			expected:     1500,
			expectResult: true,
		},
		{
			name:         "only lower bound - lifted by 20%",
			salaryRange:  SalaryRange{From: Bound(100000)},
			expected:     120000,
			expectResult: true,
		},
		{
			name:         "only upper bound - lowered by 20%",
			salaryRange:  SalaryRange{To: Bound(1500)},
			expected:     1200,
			expectResult: true,
		},
		{
			name:         "no bounds - no estimate",
			salaryRange:  SalaryRange{},
			expectResult: false,
		},
		{
			name:         "zero bound is present, not absent",
			salaryRange:  SalaryRange{From: Bound(0)},
			expected:     0,
			expectResult: true,
		},
		{
			name:         "no rounding at this step",
			salaryRange:  SalaryRange{From: Bound(1), To: Bound(2)},
			expected:     1.5,
			expectResult: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PredictSalary(tc.salaryRange)
			assert.Equal(t, tc.expectResult, ok)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestPredictSalary_Heuristic(t *testing.T) {
	for _, v := range []float64{1, 999.5, 45000, 250000, 1e7} {
		got, ok := PredictSalary(SalaryRange{From: Bound(v)})
		assert.True(t, ok)
		assert.InDelta(t, v*1.2, got, 1e-6)

		got, ok = PredictSalary(SalaryRange{To: Bound(v)})
		assert.True(t, ok)
		assert.InDelta(t, v*0.8, got, 1e-6)

		got, ok = PredictSalary(SalaryRange{From: Bound(v), To: Bound(v * 3)})
		assert.True(t, ok)
		assert.InDelta(t, (v+v*3)/2, got, 1e-6)
	}
}
