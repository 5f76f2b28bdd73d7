package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growlog/database"
	"growlog/entities"
	"growlog/pkg/apperr"
	cyclerepo "growlog/pkg/cycle/repositoryImp"
	"growlog/pkg/cycle/service"
	logrepo "growlog/pkg/dailylog/repositoryImp"
)

func ptr[T any](v T) *T { return &v }

func TestCreateAndUpdate(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	s := NewCycleService(cyclerepo.New(db), logrepo.New(db))

	t.Run("defaults", func(t *testing.T) {
		c, err := s.Create(&entities.Cycle{Genetics: "Test Genetics", Fixture: "Test Fixture"})
		require.NoError(t, err)
		assert.Len(t, c.ID, 36)
		assert.Equal(t, entities.Photoperiodic, c.ReproductiveCycle)
		assert.Equal(t, entities.Today(), c.Date)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := s.Create(&entities.Cycle{})
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "genetics")
		assert.Contains(t, ve.Fields, "fixture")
	})

	t.Run("patch", func(t *testing.T) {
		c, err := s.Create(&entities.Cycle{Genetics: "G", Fixture: "F"})
		require.NoError(t, err)

		out, err := s.Update(c.ID, service.CyclePatch{Name: ptr("Cycle 2"), GrowMedium: ptr(entities.MediumCoco)})
		require.NoError(t, err)
		assert.Equal(t, "Cycle 2", out.Name)
		assert.Equal(t, "G", out.Genetics)

		_, err = s.Update(c.ID, service.CyclePatch{SeedType: ptr(entities.SeedType("hybrid"))})
		assert.True(t, apperr.IsValidation(err))

		got, err := s.Get(c.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.MediumCoco, got.GrowMedium)
	})

	t.Run("date", func(t *testing.T) {
		c, err := s.Create(&entities.Cycle{Genetics: "G", Fixture: "F"})
		require.NoError(t, err)

		out, err := s.Update(c.ID, service.CyclePatch{Date: ptr("2023-04-02")})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC), out.Date)
		assert.Equal(t, "G - Q2/2023", out.Label())

		_, err = s.Update(c.ID, service.CyclePatch{Date: ptr("2023-13-01")})
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestSummary(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	logs := logrepo.New(db)
	s := NewCycleService(cyclerepo.New(db), logs)

	c, err := s.Create(&entities.Cycle{
		Name: "Cycle 1 - Q1", Genetics: "G", Fixture: "F",
		Date: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	sum, err := s.Summary(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cycle 1 - Q1/2023", sum.Label)
	assert.Nil(t, sum.AvgVegDayTemp)

	for _, v := range []float64{21, 23} {
		l := &entities.Log{CycleID: c.ID, TemperatureDay: ptr(v)}
		l.ApplyDefaults()
		require.NoError(t, logs.Create(l))
	}
	sum, err = s.Summary(c.ID)
	require.NoError(t, err)
	require.NotNil(t, sum.AvgVegDayTemp)
	assert.InDelta(t, 22.0, *sum.AvgVegDayTemp, 1e-9)

	_, err = s.Summary("missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
