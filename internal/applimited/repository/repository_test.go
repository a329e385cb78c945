package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/applimited/domain"
	"github.com/ukripo/sisindex/internal/objtype"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.AppLimited{}, &appdomain.Application{}))
	return db
}

func elasticIndexed(t *testing.T, db *gorm.DB, id int64) int {
	t.Helper()
	var row appdomain.Application
	require.NoError(t, db.First(&row, id).Error)
	return row.ElasticIndexed
}

func TestActiveSkipsCancelledRestrictions(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&domain.AppLimited{
		ID: 1, AppNumber: "m202400001", ObjTypeID: objtype.TradeMark, Cancelled: 1,
	}).Error)
	require.NoError(t, db.Create(&domain.AppLimited{
		ID: 2, AppNumber: "m202400002", ObjTypeID: objtype.TradeMark,
	}).Error)

	limited, err := Provide().Active(context.Background(), db, "m202400001", objtype.TradeMark)
	require.NoError(t, err)
	assert.Nil(t, limited)

	limited, err = Provide().Active(context.Background(), db, "m202400002", objtype.TradeMark)
	require.NoError(t, err)
	require.NotNil(t, limited)
	assert.Equal(t, int64(2), limited.ID)
}

func TestSaveMarksApplicationStale(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&appdomain.Application{
		ID: 10, AppNumber: "m202400010", ObjTypeID: objtype.TradeMark, ElasticIndexed: 1,
	}).Error)

	err := Provide().Save(context.Background(), db, &domain.AppLimited{
		ID: 1, AppNumber: "m202400010", ObjTypeID: objtype.TradeMark,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, elasticIndexed(t, db, 10))
}

func TestDeleteMarksApplicationStale(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&appdomain.Application{
		ID: 11, AppNumber: "m202400011", ObjTypeID: objtype.TradeMark, ElasticIndexed: 1,
	}).Error)
	require.NoError(t, db.Create(&domain.AppLimited{
		ID: 2, AppNumber: "m202400011", ObjTypeID: objtype.TradeMark,
	}).Error)

	require.NoError(t, Provide().Delete(context.Background(), db, 2))

	var count int64
	require.NoError(t, db.Model(&domain.AppLimited{}).Where("id = ?", 2).Count(&count).Error)
	assert.Zero(t, count)
	assert.Equal(t, 0, elasticIndexed(t, db, 11))
}
