package writer

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	limdomain "github.com/ukripo/sisindex/internal/applimited/domain"
	"github.com/ukripo/sisindex/internal/biblio"
)

func (s *Service) preparePatentFamily(ctx context.Context, app *appdomain.Application, record *biblio.Record, allow limdomain.AllowList) {
	if date := latestBulletinDate(record.FlatTransactions); date != nil {
		app.NotificationDate = date
	}

	if record.Document != nil && record.Document.IsLimited {
		s.deleteLimitedDocuments(ctx, app, allow)
	}
}

// latestBulletinDate picks the newest bulletin date across the flat
// register notices.
func latestBulletinDate(transactions []map[string]interface{}) *time.Time {
	var latest *time.Time
	for _, tx := range transactions {
		raw, ok := tx["BULLETIN_DATE"].(string)
		if !ok || raw == "" {
			continue
		}
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			continue
		}
		if latest == nil || parsed.After(*latest) {
			latest = &parsed
		}
	}
	return latest
}

// deleteLimitedDocuments removes published abstract, claims and
// description files whose sections are hidden by the allow-list. The
// same policy table drives the record filter, so a hidden section never
// leaks through a file.
func (s *Service) deleteLimitedDocuments(ctx context.Context, app *appdomain.Application, allow limdomain.AllowList) {
	documents, err := s.apps.DocumentsByAppID(ctx, s.db, app.ID)
	if err != nil {
		s.log.Warn("load app documents failed",
			zap.Int64("app_id", app.ID), zap.Error(err))
		return
	}

	dir := s.applicationDir(app)
	for _, document := range documents {
		if document.EnterNum == nil || document.FileName == "" {
			continue
		}
		field, governed := limdomain.FileFieldForEnterNum(*document.EnterNum)
		if !governed || allow.Visible(field, false) {
			continue
		}
		s.deleteFile(filepath.Join(dir, document.FileName))
	}
}
