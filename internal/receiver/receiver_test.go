package receiver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"gorm.io/gorm"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	limdomain "github.com/ukripo/sisindex/internal/applimited/domain"
	limrepo "github.com/ukripo/sisindex/internal/applimited/repository"
	buldomain "github.com/ukripo/sisindex/internal/bulletin/domain"
	bulrepo "github.com/ukripo/sisindex/internal/bulletin/repository"
	"github.com/ukripo/sisindex/internal/config"
	"github.com/ukripo/sisindex/internal/objtype"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&appdomain.Application{},
		&limdomain.AppLimited{},
		&buldomain.EBulletinData{},
		&buldomain.OfficialBulletin{},
	))
	return db
}

func newTestService(t *testing.T, db *gorm.DB, cfg config.Config) *Service {
	t.Helper()
	return &Service{
		db:        db,
		log:       zap.NewNop(),
		cfg:       cfg,
		limited:   limrepo.Provide(),
		bulletins: bulrepo.Provide(),
	}
}

func TestRealFilesPath(t *testing.T) {
	cfg := config.Config{
		FilesPathLegacyPrefix:    `e:\poznach_test_sis\bear_tmpp_sis`,
		FilesPathCanonicalPrefix: `\\bear\share`,
	}
	got := RealFilesPath(cfg, `e:\poznach_test_sis\bear_tmpp_sis\TM\2024\m202401234`)
	assert.Equal(t, filepath.FromSlash("//bear/share/TM/2024/m202401234"), got)
}

func TestResolveFilePathPrefersRegistrationNumber(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "185001.json"), []byte("{}"), 0o644))

	app := &appdomain.Application{
		AppNumber:          "m202401234",
		RegistrationNumber: "185001",
		ObjTypeID:          objtype.TradeMark,
		FilesPath:          dir,
	}
	assert.Equal(t, filepath.Join(dir, "185001.json"), resolveFilePath(config.Config{}, app))
}

func TestResolveFilePathFallsBackToAppNumber(t *testing.T) {
	dir := t.TempDir()
	// Registered, but the export still sits under the application number.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "m202401234.json"), []byte("{}"), 0o644))

	app := &appdomain.Application{
		AppNumber:          "m202401234",
		RegistrationNumber: "185001",
		ObjTypeID:          objtype.TradeMark,
		FilesPath:          dir,
	}
	assert.Equal(t, filepath.Join(dir, "m202401234.json"), resolveFilePath(config.Config{}, app))
}

func TestResolveFilePathDirectJSON(t *testing.T) {
	app := &appdomain.Application{
		AppNumber: "c202400007",
		ObjTypeID: objtype.Copyright,
		FilesPath: "/share/copyright/c202400007.json",
	}
	assert.Equal(t, filepath.FromSlash("/share/copyright/c202400007.json"), resolveFilePath(config.Config{}, app))
}

func TestResolveFilePathEscapesSlashes(t *testing.T) {
	dir := t.TempDir()
	app := &appdomain.Application{
		AppNumber: "99/1234",
		ObjTypeID: objtype.Invention,
		FilesPath: dir,
	}
	assert.Equal(t, filepath.Join(dir, "99_1234.json"), resolveFilePath(config.Config{}, app))
}

func TestReadRecordFileEncodings(t *testing.T) {
	payload := `{"Document":{"idObjType":4}}`
	dir := t.TempDir()

	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(payload))
	require.NoError(t, err)

	cases := map[string][]byte{
		"utf16le":  utf16le,
		"utf8":     []byte(payload),
		"utf8_bom": append([]byte{0xef, 0xbb, 0xbf}, payload...),
	}
	for name, raw := range cases {
		path := filepath.Join(dir, name+".json")
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		got, err := readRecordFile(path)
		require.NoError(t, err, name)
		assert.JSONEq(t, payload, string(got), name)
	}
}

func TestReadRecordFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	_, err := readRecordFile(path)
	assert.Error(t, err)
}

func TestReceiveSetsLimitedFlag(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, config.Config{})

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "m202401234.json"),
		[]byte(`{"Document":{"idObjType":4},"TradeMark":{"TrademarkDetails":{"Code_441":"2024-02-15"}}}`), 0o644))
	require.NoError(t, db.Create(&limdomain.AppLimited{
		ID: 1, AppNumber: "m202401234", ObjTypeID: objtype.TradeMark,
	}).Error)

	app := &appdomain.Application{ID: 1, AppNumber: "m202401234", ObjTypeID: objtype.TradeMark, FilesPath: dir}
	record, err := svc.Receive(context.Background(), app)
	require.NoError(t, err)
	assert.True(t, record.Document.IsLimited)

	// A cancelled restriction no longer limits.
	require.NoError(t, db.Model(&limdomain.AppLimited{}).Where("id = ?", 1).Update("cancelled", 1).Error)
	record, err = svc.Receive(context.Background(), app)
	require.NoError(t, err)
	assert.False(t, record.Document.IsLimited)
}

func TestReceiveBackfillsCode441(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, config.Config{})

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "m202401235.json"),
		[]byte(`{"Document":{"idObjType":4},"TradeMark":{"TrademarkDetails":{}}}`), 0o644))

	published := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&buldomain.EBulletinData{
		ID: 1, AppNumber: "m202401235", UnitID: buldomain.UnitTrademark, PublicationDate: &published,
	}).Error)

	app := &appdomain.Application{ID: 2, AppNumber: "m202401235", ObjTypeID: objtype.TradeMark, FilesPath: dir}
	record, err := svc.Receive(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", record.TradeMark.TrademarkDetails.Code441)
}

func TestReceiveKeepsCode441FromFile(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, config.Config{})

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "m202401236.json"),
		[]byte(`{"Document":{"idObjType":4},"TradeMark":{"TrademarkDetails":{"Code_441":"2023-11-01"}}}`), 0o644))

	published := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&buldomain.EBulletinData{
		ID: 1, AppNumber: "m202401236", UnitID: buldomain.UnitTrademark, PublicationDate: &published,
	}).Error)

	app := &appdomain.Application{ID: 3, AppNumber: "m202401236", ObjTypeID: objtype.TradeMark, FilesPath: dir}
	record, err := svc.Receive(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, "2023-11-01", record.TradeMark.TrademarkDetails.Code441)
}

func TestReceiveDerivesBulletinStrings(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, config.Config{})

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a202200001.json"),
		[]byte(`{"Document":{"idObjType":1},"Claim":{"I_43.D":["2023-03-01"]},"Patent":{"I_45.D":["2023-09-15"]}}`), 0o644))

	issues := map[string]string{"2023-03-01": "9", "2023-09-15": "26"}
	id := int64(0)
	for date, number := range issues {
		id++
		bulDate := mustDate(t, date)
		require.NoError(t, db.Create(&buldomain.OfficialBulletin{
			ID: id, BulNumber: number, BulDate: &bulDate,
		}).Error)
	}

	app := &appdomain.Application{ID: 4, AppNumber: "a202200001", ObjTypeID: objtype.Invention, FilesPath: dir}
	record, err := svc.Receive(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, "9/2023", record.Claim.I43BulStr)
	assert.Equal(t, "26/2023", record.Patent.I45BulStr)
}

func TestReceiveBulletinStringFallsBackToCoverageWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, config.Config{})

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a202200002.json"),
		[]byte(`{"Document":{"idObjType":1},"Patent":{"I_45.D":["2023-03-03"]}}`), 0o644))

	// No issue published exactly on 2023-03-03; the coverage window of
	// issue 10 contains it.
	bulDate := mustDate(t, "2023-03-07")
	dateFrom := mustDate(t, "2023-03-01")
	dateTo := mustDate(t, "2023-03-14")
	require.NoError(t, db.Create(&buldomain.OfficialBulletin{
		ID: 1, BulNumber: "10", BulDate: &bulDate, DateFrom: &dateFrom, DateTo: &dateTo,
	}).Error)

	app := &appdomain.Application{ID: 5, AppNumber: "a202200002", ObjTypeID: objtype.Invention, FilesPath: dir}
	record, err := svc.Receive(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, "10/2023", record.Patent.I45BulStr)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}
