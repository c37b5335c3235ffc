package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanValidate(t *testing.T) {
	month := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	valid := &Plan{ClientID: "c1", Title: "Plano de março", MonthOfRecord: month}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&Plan{Title: "t", MonthOfRecord: month}).Validate(), ErrEmptyClientID)
	assert.ErrorIs(t, (&Plan{ClientID: "c1", MonthOfRecord: month}).Validate(), ErrEmptyTitle)
	assert.ErrorIs(t, (&Plan{ClientID: "c1", Title: "t"}).Validate(), ErrInvalidMonth)
}

func TestNormalizeMonth(t *testing.T) {
	p := &Plan{MonthOfRecord: time.Date(2025, time.March, 17, 13, 45, 0, 0, time.FixedZone("BRT", -3*3600))}
	p.NormalizeMonth()
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), p.MonthOfRecord)
}
