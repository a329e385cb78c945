package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/objtype"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Application{}, &domain.AppDocument{}))
	return db
}

func seedApp(t *testing.T, db *gorm.DB, app *domain.Application) {
	t.Helper()
	require.NoError(t, db.Create(app).Error)
}

func candidateIDs(t *testing.T, db *gorm.DB, filter domain.CandidateFilter) []int64 {
	t.Helper()
	if filter.Now.IsZero() {
		filter.Now = testNow
	}
	apps, err := Provide().Candidates(context.Background(), db, filter)
	require.NoError(t, err)
	ids := make([]int64, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}
	return ids
}

func TestCandidatesDefaultSkipsFreshRows(t *testing.T) {
	db := newTestDB(t)
	seedApp(t, db, &domain.Application{ID: 1, AppNumber: "m202400001", ObjTypeID: objtype.TradeMark})
	seedApp(t, db, &domain.Application{ID: 2, AppNumber: "m202400002", ObjTypeID: objtype.TradeMark, ElasticIndexed: 1})

	assert.Equal(t, []int64{1}, candidateIDs(t, db, domain.CandidateFilter{}))
	assert.Equal(t, []int64{1, 2}, candidateIDs(t, db, domain.CandidateFilter{IgnoreIndexed: true}))
}

func TestCandidatesStatusFilter(t *testing.T) {
	db := newTestDB(t)
	seedApp(t, db, &domain.Application{ID: 1, AppNumber: "m202400001", ObjTypeID: objtype.TradeMark})
	seedApp(t, db, &domain.Application{ID: 2, AppNumber: "m202400002", ObjTypeID: objtype.TradeMark, RegistrationNumber: "12345"})

	assert.Equal(t, []int64{1}, candidateIDs(t, db, domain.CandidateFilter{Status: 1}))
	assert.Equal(t, []int64{2}, candidateIDs(t, db, domain.CandidateFilter{Status: 2}))
	assert.Equal(t, []int64{1, 2}, candidateIDs(t, db, domain.CandidateFilter{}))
}

func TestCandidatesObjTypeAndIgnoreList(t *testing.T) {
	db := newTestDB(t)
	seedApp(t, db, &domain.Application{ID: 1, AppNumber: "a202200001", ObjTypeID: objtype.Invention})
	seedApp(t, db, &domain.Application{ID: 2, AppNumber: "m202400002", ObjTypeID: objtype.TradeMark})
	seedApp(t, db, &domain.Application{ID: 3, AppNumber: "m202400003", ObjTypeID: objtype.TradeMark})

	assert.Equal(t, []int64{2, 3}, candidateIDs(t, db, domain.CandidateFilter{
		ObjTypes: []objtype.ID{objtype.TradeMark},
	}))
	assert.Equal(t, []int64{2}, candidateIDs(t, db, domain.CandidateFilter{
		ObjTypes:         []objtype.ID{objtype.TradeMark},
		IgnoreAppNumbers: []string{"m202400003"},
	}))
}

func TestCandidatesWithholdFutureRegistration(t *testing.T) {
	db := newTestDB(t)
	past := testNow.AddDate(0, -1, 0)
	future := testNow.AddDate(0, 1, 0)
	seedApp(t, db, &domain.Application{ID: 1, AppNumber: "m202400001", ObjTypeID: objtype.TradeMark, RegistrationDate: &past})
	seedApp(t, db, &domain.Application{ID: 2, AppNumber: "m202400002", ObjTypeID: objtype.TradeMark, RegistrationDate: &future})
	seedApp(t, db, &domain.Application{ID: 3, AppNumber: "m202400003", ObjTypeID: objtype.TradeMark})

	assert.Equal(t, []int64{1, 3}, candidateIDs(t, db, domain.CandidateFilter{}))
}

func TestCandidatesTargetsSingleApplication(t *testing.T) {
	db := newTestDB(t)
	seedApp(t, db, &domain.Application{ID: 1, AppNumber: "m202400001", ObjTypeID: objtype.TradeMark})
	seedApp(t, db, &domain.Application{ID: 2, AppNumber: "m202400002", ObjTypeID: objtype.TradeMark})

	assert.Equal(t, []int64{2}, candidateIDs(t, db, domain.CandidateFilter{AppID: 2}))
}

func TestFindByID(t *testing.T) {
	db := newTestDB(t)
	seedApp(t, db, &domain.Application{ID: 7, AppNumber: "m202400007", ObjTypeID: objtype.TradeMark, ElasticIndexed: 1})

	app, err := Provide().FindByID(context.Background(), db, 7)
	require.NoError(t, err)
	assert.Equal(t, "m202400007", app.AppNumber)

	_, err = Provide().FindByID(context.Background(), db, 8)
	assert.Error(t, err)
}

func TestMarkIndexedRefreshesRow(t *testing.T) {
	db := newTestDB(t)
	notified := time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC)
	seedApp(t, db, &domain.Application{ID: 1, AppNumber: "m202400001", ObjTypeID: objtype.TradeMark})

	app := &domain.Application{ID: 1, IsLimited: 1, OpenDataUpdated: 0, NotificationDate: &notified}
	require.NoError(t, Provide().MarkIndexed(context.Background(), db, app, testNow))

	var row domain.Application
	require.NoError(t, db.First(&row, 1).Error)
	assert.Equal(t, 1, row.ElasticIndexed)
	assert.Equal(t, 1, row.IsLimited)
	require.NotNil(t, row.LastIndexationDate)
	assert.True(t, row.LastIndexationDate.Equal(testNow))
	require.NotNil(t, row.NotificationDate)
	assert.True(t, row.NotificationDate.Equal(notified))
}
