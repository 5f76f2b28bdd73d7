package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"growlog/database"
	"growlog/entities"
	"growlog/pkg/apperr"
	logrepo "growlog/pkg/dailylog/repositoryImp"
	feedrepo "growlog/pkg/feeding/repositoryImp"
	"growlog/pkg/feeding/service"
	nutrientrepo "growlog/pkg/nutrient/repositoryImp"
	resrepo "growlog/pkg/reservoir/repositoryImp"
)

type fixture struct {
	s   service.FeedingService
	db  *gorm.DB
	log *entities.Log
}

func setup(t *testing.T) fixture {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	c := &entities.Cycle{Genetics: "G", Fixture: "F"}
	c.ApplyDefaults()
	require.NoError(t, db.Omit("Logs").Create(c).Error)
	logs := logrepo.New(db)
	l := &entities.Log{CycleID: c.ID}
	l.ApplyDefaults()
	require.NoError(t, logs.Create(l))
	s := NewFeedingService(feedrepo.New(db), logs, nutrientrepo.New(db), resrepo.New(db))
	return fixture{s: s, db: db, log: l}
}

func (f fixture) nutrient(t *testing.T, name string, typ *entities.NutrientType) *entities.Nutrient {
	t.Helper()
	n := &entities.Nutrient{Name: name, Brand: "Brand", NutrientType: typ}
	n.ApplyDefaults()
	require.NoError(t, f.db.Create(n).Error)
	return n
}

func typ(v entities.NutrientType) *entities.NutrientType { return &v }

func TestUpsertAccumulates(t *testing.T) {
	f := setup(t)
	n := f.nutrient(t, "Grow", nil)

	out, merged, err := f.s.Upsert(f.log.CycleID, f.log.ID, n.ID, 10)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 10, out.Concentration)

	out, merged, err = f.s.Upsert(f.log.CycleID, f.log.ID, n.ID, 5)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 15, out.Concentration)
	assert.Equal(t, "Grow - 15", out.String())

	var rows []entities.NutrientLog
	require.NoError(t, f.db.Where("log_id = ? AND nutrient_id = ?", f.log.ID, n.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 15, rows[0].Concentration)
}

func TestUpsertKeepsPairsApart(t *testing.T) {
	f := setup(t)
	a, b := f.nutrient(t, "A", nil), f.nutrient(t, "B", nil)

	_, _, err := f.s.Upsert(f.log.CycleID, f.log.ID, a.ID, 1)
	require.NoError(t, err)
	_, merged, err := f.s.Upsert(f.log.CycleID, f.log.ID, b.ID, 2)
	require.NoError(t, err)
	assert.False(t, merged)

	var n int64
	f.db.Model(&entities.NutrientLog{}).Count(&n)
	assert.EqualValues(t, 2, n)
}

func TestUpsertRejects(t *testing.T) {
	f := setup(t)
	n := f.nutrient(t, "Grow", nil)

	t.Run("negative concentration", func(t *testing.T) {
		_, _, err := f.s.Upsert(f.log.CycleID, f.log.ID, n.ID, -1)
		assert.True(t, apperr.IsValidation(err))
	})
	t.Run("missing nutrient", func(t *testing.T) {
		_, _, err := f.s.Upsert(f.log.CycleID, f.log.ID, 0, 1)
		assert.True(t, apperr.IsValidation(err))
	})
	t.Run("unknown nutrient", func(t *testing.T) {
		_, _, err := f.s.Upsert(f.log.CycleID, f.log.ID, 999, 1)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
	t.Run("log of another cycle", func(t *testing.T) {
		_, _, err := f.s.Upsert("nope", f.log.ID, n.ID, 1)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestUpsertStoreFailure(t *testing.T) {
	f := setup(t)
	n := f.nutrient(t, "Grow", nil)
	require.NoError(t, f.db.Migrator().DropTable(&entities.NutrientLog{}))

	_, _, err := f.s.Upsert(f.log.CycleID, f.log.ID, n.ID, 1)
	assert.ErrorIs(t, err, apperr.ErrUpsertFailed)
}

func TestListByLog(t *testing.T) {
	f := setup(t)
	taste := f.nutrient(t, "Taste", typ(entities.BudTaste))
	untyped := f.nutrient(t, "Plain", nil)
	base := f.nutrient(t, "Base", typ(entities.BaseLine))
	cond := f.nutrient(t, "Cond", typ(entities.MediumConditioner))

	for _, n := range []*entities.Nutrient{taste, untyped, base, cond} {
		_, _, err := f.s.Upsert(f.log.CycleID, f.log.ID, n.ID, 10)
		require.NoError(t, err)
	}

	t.Run("ordered by type rank", func(t *testing.T) {
		list, err := f.s.ListByLog(f.log.CycleID, f.log.ID)
		require.NoError(t, err)
		names := []string{}
		for _, e := range list {
			require.NotNil(t, e.Nutrient)
			names = append(names, e.Nutrient.Name)
			assert.Nil(t, e.UsagePerLiter, "no reservoir yet")
		}
		assert.Equal(t, []string{"Cond", "Base", "Taste", "Plain"}, names)
	})

	t.Run("usage per liter", func(t *testing.T) {
		require.NoError(t, f.db.Create(&entities.ReservoirLog{LogID: f.log.ID, Water: 4, Status: entities.StatusRefill, ReverseOsmosis: entities.ROYes}).Error)
		list, err := f.s.ListByLog(f.log.CycleID, f.log.ID)
		require.NoError(t, err)
		require.NotEmpty(t, list)
		require.NotNil(t, list[0].UsagePerLiter)
		assert.Equal(t, 2.5, *list[0].UsagePerLiter)
		assert.Equal(t, "Cond - 10", list[0].Label)
	})
}

func TestDelete(t *testing.T) {
	f := setup(t)
	n := f.nutrient(t, "Grow", nil)
	out, _, err := f.s.Upsert(f.log.CycleID, f.log.ID, n.ID, 3)
	require.NoError(t, err)

	require.NoError(t, f.s.Delete(f.log.CycleID, f.log.ID, out.ID))
	assert.ErrorIs(t, f.s.Delete(f.log.CycleID, f.log.ID, out.ID), apperr.ErrNotFound)
}
