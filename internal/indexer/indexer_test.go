package indexer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	apprepo "github.com/ukripo/sisindex/internal/application/repository"
	limdomain "github.com/ukripo/sisindex/internal/applimited/domain"
	limrepo "github.com/ukripo/sisindex/internal/applimited/repository"
	buldomain "github.com/ukripo/sisindex/internal/bulletin/domain"
	bulrepo "github.com/ukripo/sisindex/internal/bulletin/repository"
	"github.com/ukripo/sisindex/internal/clock"
	"github.com/ukripo/sisindex/internal/config"
	"github.com/ukripo/sisindex/internal/fixer"
	rundomain "github.com/ukripo/sisindex/internal/indexrun/domain"
	runrepo "github.com/ukripo/sisindex/internal/indexrun/repository"
	"github.com/ukripo/sisindex/internal/limited"
	"github.com/ukripo/sisindex/internal/metricspush"
	"github.com/ukripo/sisindex/internal/objtype"
	"github.com/ukripo/sisindex/internal/receiver"
	"github.com/ukripo/sisindex/internal/searchdata"
	"github.com/ukripo/sisindex/internal/stages"
	"github.com/ukripo/sisindex/internal/validate"
	"github.com/ukripo/sisindex/internal/writer"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeIndexer struct {
	indexErr error
	indexed  map[int64][]byte
}

func newFakeIndexer() *fakeIndexer {
	return &fakeIndexer{indexed: map[int64][]byte{}}
}

func (f *fakeIndexer) Index(_ context.Context, id int64, document []byte) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	f.indexed[id] = document
	return nil
}

func (f *fakeIndexer) FindMadridSibling(_ context.Context, _ string) (int64, []byte, error) {
	return 0, nil, nil
}

type fakeResolver struct{}

func (fakeResolver) DocID(_ context.Context, _ string) (string, error) { return "", nil }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&appdomain.Application{},
		&appdomain.AppDocument{},
		&limdomain.AppLimited{},
		&buldomain.EBulletinData{},
		&rundomain.IndexationRun{},
	))
	return db
}

func newTestService(t *testing.T, db *gorm.DB, search *fakeIndexer) *Service {
	t.Helper()

	cfg := config.Config{}
	log := zap.NewNop()
	fake := clock.NewFakeClock(testNow)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	apps := apprepo.Provide()
	limreps := limrepo.Provide()
	bulletins := bulrepo.Provide()

	return New(Params{
		DB:       db,
		Log:      log,
		Settings: &config.IndexationSettingsHolder{},
		Clock:    fake,
		GenID:    node,
		Apps:     apps,
		Runs:     runrepo.Provide(),
		Pusher:   metricspush.New(metricspush.Params{Config: cfg, Log: log}),
		Receiver: receiver.New(receiver.Params{
			DB: db, Log: log, Config: cfg, Limited: limreps, Bulletins: bulletins,
		}),
		Fixer: fixer.New(fixer.Params{
			Config: cfg, Log: log, CEAD: fakeResolver{},
		}),
		Limited: limited.New(limited.Params{
			DB: db, Log: log, Limited: limreps,
		}),
		SearchData: searchdata.New(),
		Stages:     stages.New(),
		Validator:  validate.New(validate.Params{Clock: fake}),
		Writer: writer.New(writer.Params{
			DB: db, Log: log, Config: cfg, Clock: fake,
			Indexer: search, Apps: apps, Bulletins: bulletins,
		}),
	})
}

func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644))
}

func seedTrademark(t *testing.T, db *gorm.DB, id int64, appNumber, dir string) {
	t.Helper()
	require.NoError(t, db.Create(&appdomain.Application{
		ID:        id,
		AppNumber: appNumber,
		ObjTypeID: objtype.TradeMark,
		FilesPath: dir,
	}).Error)
}

const trademarkExport = `{
	"Document": {"idObjType": 4},
	"TradeMark": {
		"TrademarkDetails": {
			"ApplicationNumber": "%APP%",
			"ApplicationDate": "2023-01-10",
			"PublicationDetails": [{"PublicationDate": "2023-05-02", "PublicationIdentifier": "18/2023"}],
			"WordMarkSpecification": {"MarkSignificantVerbalElement": [{"#text": "SONIAQ"}]}
		}
	}
}`

func trademarkJSON(appNumber string) string {
	return strings.ReplaceAll(trademarkExport, "%APP%", appNumber)
}

func TestRunIndexesStaleApplication(t *testing.T) {
	db := newTestDB(t)
	search := newFakeIndexer()
	svc := newTestService(t, db, search)

	dir := t.TempDir()
	seedTrademark(t, db, 101, "m202400101", dir)
	writeExport(t, dir, "m202400101", trademarkJSON("m202400101"))

	run, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, run.Processed)
	assert.Equal(t, 1, run.OK)
	assert.Equal(t, 0, run.Skipped)
	assert.Equal(t, 0, run.Errors)
	require.NotNil(t, run.FinishDate)

	assert.Contains(t, search.indexed, int64(101))

	var row appdomain.Application
	require.NoError(t, db.First(&row, 101).Error)
	assert.Equal(t, 1, row.ElasticIndexed)
	require.NotNil(t, row.LastIndexationDate)

	var audit rundomain.IndexationRun
	require.NoError(t, db.First(&audit, "id = ?", run.ID).Error)
	assert.Equal(t, 1, audit.OK)
}

func TestRunIsIdempotentOnFreshRows(t *testing.T) {
	db := newTestDB(t)
	search := newFakeIndexer()
	svc := newTestService(t, db, search)

	dir := t.TempDir()
	seedTrademark(t, db, 107, "m202400107", dir)
	writeExport(t, dir, "m202400107", trademarkJSON("m202400107"))

	first, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, first.OK)

	// The row is fresh now; a second pass finds nothing to do.
	second, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 0, second.OK)
}

func TestRunSkipsMissingExport(t *testing.T) {
	db := newTestDB(t)
	search := newFakeIndexer()
	svc := newTestService(t, db, search)

	seedTrademark(t, db, 102, "m202400102", t.TempDir())

	run, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, run.Processed)
	assert.Equal(t, 1, run.Skipped)
	assert.Equal(t, 0, run.OK)
	assert.Empty(t, search.indexed)

	var row appdomain.Application
	require.NoError(t, db.First(&row, 102).Error)
	assert.Equal(t, 0, row.ElasticIndexed)
}

func TestRunCountsValidationFailure(t *testing.T) {
	db := newTestDB(t)
	search := newFakeIndexer()
	svc := newTestService(t, db, search)

	dir := t.TempDir()
	seedTrademark(t, db, 103, "m202400103", dir)
	// Publication dated after the fake clock's today.
	writeExport(t, dir, "m202400103", `{
		"Document": {"idObjType": 4},
		"TradeMark": {"TrademarkDetails": {
			"ApplicationNumber": "m202400103",
			"PublicationDetails": [{"PublicationDate": "2024-07-01"}]
		}}
	}`)

	run, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, run.Errors)
	assert.Equal(t, 0, run.OK)
	assert.Empty(t, search.indexed)

	var row appdomain.Application
	require.NoError(t, db.First(&row, 103).Error)
	assert.Equal(t, 0, row.ElasticIndexed)
}

func TestRunTargetsSingleApplication(t *testing.T) {
	db := newTestDB(t)
	search := newFakeIndexer()
	svc := newTestService(t, db, search)

	dir := t.TempDir()
	seedTrademark(t, db, 104, "m202400104", dir)
	seedTrademark(t, db, 105, "m202400105", dir)
	writeExport(t, dir, "m202400104", trademarkJSON("m202400104"))
	writeExport(t, dir, "m202400105", trademarkJSON("m202400105"))
	// A targeted run reindexes even a fresh row.
	require.NoError(t, db.Model(&appdomain.Application{}).Where("id = ?", 105).
		Update("elasticindexed", 1).Error)

	run, err := svc.Run(context.Background(), Options{AppID: 105})
	require.NoError(t, err)

	assert.Equal(t, 1, run.Processed)
	assert.Contains(t, search.indexed, int64(105))
	assert.NotContains(t, search.indexed, int64(104))
}

func TestIndexApplicationMarksLimited(t *testing.T) {
	db := newTestDB(t)
	search := newFakeIndexer()
	svc := newTestService(t, db, search)

	dir := t.TempDir()
	seedTrademark(t, db, 106, "m202400106", dir)
	writeExport(t, dir, "m202400106", trademarkJSON("m202400106"))
	require.NoError(t, db.Create(&limdomain.AppLimited{
		ID:        1,
		AppNumber: "m202400106",
		ObjTypeID: objtype.TradeMark,
	}).Error)

	var app appdomain.Application
	require.NoError(t, db.First(&app, 106).Error)
	require.NoError(t, svc.IndexApplication(context.Background(), &app))

	var row appdomain.Application
	require.NoError(t, db.First(&row, 106).Error)
	assert.Equal(t, 1, row.IsLimited)
}
