// Package backup reads and writes human-readable JSON backups of the full
// state document. Import is all-or-nothing: a file that fails structural
// validation is rejected without touching the in-memory collections.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"video-dashboard/internal/logging"
	"video-dashboard/internal/model"
	"video-dashboard/internal/statestore"
	"video-dashboard/internal/workflow"
)

// ErrInvalidStructure marks a backup document whose required collections are
// missing or not arrays.
var ErrInvalidStructure = errors.New("invalid backup file structure")

// rawDocument mirrors the top-level document with raw fields so presence and
// JSON kind can be checked before any value is accepted.
type rawDocument struct {
	Drafts          json.RawMessage `json:"drafts"`
	PublishedVideos json.RawMessage `json:"publishedVideos"`
}

// Export writes the four top-level fields as indented JSON.
func Export(path string, data model.AppData) error {
	return statestore.WriteJSON(path, data)
}

// Import parses and validates a backup file. drafts and publishedVideos must
// be present as arrays; stagesConfig and theme are optional and default.
func Import(path string) (model.AppData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.AppData{}, fmt.Errorf("read backup %s: %w", path, err)
	}

	var p rawDocument
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.AppData{}, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}
	if !isJSONArray(p.Drafts) || !isJSONArray(p.PublishedVideos) {
		log := logging.Component("backup")
		log.Debug().Str("path", path).Msg("backup rejected: drafts/publishedVideos missing or not arrays")
		return model.AppData{}, fmt.Errorf("%w: drafts and publishedVideos must be present arrays", ErrInvalidStructure)
	}

	var data model.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.AppData{}, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}
	if data.Drafts == nil {
		data.Drafts = []model.Video{}
	}
	if data.PublishedVideos == nil {
		data.PublishedVideos = []model.Video{}
	}
	if len(data.StagesConfig) == 0 {
		data.StagesConfig = model.DefaultStages()
	}
	data.Theme = model.NormalizeTheme(data.Theme)
	if err := workflow.ValidateStages(data.StagesConfig); err != nil {
		return model.AppData{}, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}
	return data, nil
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b == '['
		}
	}
	return false
}

// DefaultExportName names a backup file after the export date.
func DefaultExportName(now time.Time) string {
	return "videodash_backup_" + now.Format("2006-01-02") + ".json"
}
