package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

func sampleOf(columns []string, rows [][]interface{}) *domain.Result {
	return &domain.Result{Columns: columns, Rows: rows, RowCount: len(rows)}
}

func TestDeriveCategoricalIgnoresNulls(t *testing.T) {
	s := sampleOf([]string{"REGION"}, [][]interface{}{
		{"A"}, {"A"}, {"B"}, {nil},
	})

	domains := Deriver{}.Derive(s)
	require.Len(t, domains, 1)
	assert.Equal(t, domain.DomainCategorical, domains[0].Kind)
	assert.Equal(t, []string{"A", "B"}, domains[0].Values)
}

func TestDeriveNumericBoundsAreWholeNumbers(t *testing.T) {
	rows := make([][]interface{}, 0, 20)
	for i := 0; i < 20; i++ {
		rows = append(rows, []interface{}{1.25 + float64(i)*26.2})
	}
	rows[19] = []interface{}{499.5}
	s := sampleOf([]string{"AMOUNT"}, rows)

	domains := Deriver{}.Derive(s)
	require.Len(t, domains, 1)
	assert.Equal(t, domain.DomainNumeric, domains[0].Kind)
	assert.Equal(t, int64(1), domains[0].Min)
	assert.Equal(t, int64(500), domains[0].Max)
}

func TestDeriveIntegerColumn(t *testing.T) {
	rows := make([][]interface{}, 0, 20)
	for i := 0; i < 20; i++ {
		rows = append(rows, []interface{}{int64(i*3 - 7)})
	}
	s := sampleOf([]string{"QTY"}, rows)

	domains := Deriver{}.Derive(s)
	require.Len(t, domains, 1)
	assert.Equal(t, domain.DomainNumeric, domains[0].Kind)
	assert.Equal(t, int64(-7), domains[0].Min)
	assert.Equal(t, int64(50), domains[0].Max)
}

func TestDeriveLowCardinalityNumbersAreCategorical(t *testing.T) {
	s := sampleOf([]string{"STATUS_CODE"}, [][]interface{}{
		{int64(1)}, {int64(2)}, {int64(3)}, {int64(2)}, {int64(1)},
	})

	domains := Deriver{}.Derive(s)
	require.Len(t, domains, 1)
	assert.Equal(t, domain.DomainCategorical, domains[0].Kind)
	assert.Equal(t, []string{"1", "2", "3"}, domains[0].Values)
}

func TestDeriveHighCardinalityTextSkipped(t *testing.T) {
	rows := make([][]interface{}, 0, 20)
	for i := 0; i < 20; i++ {
		rows = append(rows, []interface{}{fmt.Sprintf("customer-%02d", i)})
	}
	s := sampleOf([]string{"CUSTOMER"}, rows)

	domains := Deriver{}.Derive(s)
	assert.Empty(t, domains)
}

func TestDeriveThresholdIsExclusive(t *testing.T) {
	rowsWith := func(distinct int) *domain.Result {
		rows := make([][]interface{}, 0, 30)
		for i := 0; i < 30; i++ {
			rows = append(rows, []interface{}{fmt.Sprintf("v%02d", i%distinct)})
		}
		return sampleOf([]string{"CODE"}, rows)
	}

	// Exactly at the threshold the column gets no control.
	domains := Deriver{}.Derive(rowsWith(DefaultCategoricalThreshold))
	assert.Empty(t, domains)

	// One below it still gets a dropdown.
	domains = Deriver{}.Derive(rowsWith(DefaultCategoricalThreshold - 1))
	require.Len(t, domains, 1)
	assert.Equal(t, domain.DomainCategorical, domains[0].Kind)
	assert.Len(t, domains[0].Values, DefaultCategoricalThreshold-1)
}

func TestDeriveAllNullColumnYieldsEmptyDropdown(t *testing.T) {
	s := sampleOf([]string{"NOTES"}, [][]interface{}{{nil}, {nil}})

	domains := Deriver{}.Derive(s)
	require.Len(t, domains, 1)
	assert.Equal(t, domain.DomainCategorical, domains[0].Kind)
	assert.NotNil(t, domains[0].Values)
	assert.Empty(t, domains[0].Values)
}

func TestDeriveMixedColumnIsCategorical(t *testing.T) {
	s := sampleOf([]string{"TAG"}, [][]interface{}{
		{int64(1)}, {"x"}, {int64(2)},
	})

	domains := Deriver{}.Derive(s)
	require.Len(t, domains, 1)
	assert.Equal(t, domain.DomainCategorical, domains[0].Kind)
	assert.Equal(t, []string{"1", "2", "x"}, domains[0].Values)
}

func TestDeriveDeterministic(t *testing.T) {
	s := sampleOf([]string{"REGION", "AMOUNT"}, [][]interface{}{
		{"EMEA", 10.5}, {"APAC", 2.2}, {"EMEA", 99.9},
	})

	d := Deriver{}
	first := d.Derive(s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, d.Derive(s))
	}
}
