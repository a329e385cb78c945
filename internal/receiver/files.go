package receiver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appdomain "github.com/ukripo/sisindex/internal/application/domain"
	"github.com/ukripo/sisindex/internal/config"
	"github.com/ukripo/sisindex/internal/objtype"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// RealFilesPath rewrites the legacy export prefix to the canonical share
// and normalizes separators for the local filesystem.
func RealFilesPath(cfg config.Config, raw string) string {
	p := raw
	if cfg.FilesPathLegacyPrefix != "" {
		p = strings.Replace(p, cfg.FilesPathLegacyPrefix, cfg.FilesPathCanonicalPrefix, 1)
	}
	return filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
}

// resolveFilePath locates the JSON export of an application. Protective
// documents are stored under the registration number; some registered
// trademark, geo and design exports still carry the application number.
func resolveFilePath(cfg config.Config, app *appdomain.Application) string {
	base := RealFilesPath(cfg, app.FilesPath)

	// Copyright exports point straight at the file.
	if strings.Contains(base, ".json") {
		return base
	}

	fileName := app.AppNumber
	if app.RegistrationNumber != "" && app.RegistrationNumber != "0" {
		fileName = app.RegistrationNumber
	}
	fileName = strings.ReplaceAll(fileName, "/", "_")
	filePath := filepath.Join(base, fileName+".json")

	if _, err := os.Stat(filePath); err != nil {
		switch app.ObjTypeID {
		case objtype.TradeMark, objtype.GeographicalOrigin, objtype.IndustrialDesign:
			fileName = strings.ReplaceAll(app.AppNumber, "/", "_")
			filePath = filepath.Join(base, fileName+".json")
		}
	}

	return filePath
}

// readRecordFile reads an export file. Files are written UTF-16 with a
// BOM; a few arrive plain UTF-8, with or without a BOM.
func readRecordFile(path string) (json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	if decoded, err := decoder.Bytes(raw); err == nil && json.Valid(bytes.TrimPrefix(decoded, utf8BOM)) {
		return bytes.TrimPrefix(decoded, utf8BOM), nil
	}

	trimmed := bytes.TrimPrefix(raw, utf8BOM)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("read record %s: not valid JSON in any known encoding", path)
	}
	return trimmed, nil
}
