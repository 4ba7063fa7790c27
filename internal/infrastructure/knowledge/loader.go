package knowledge

import (
	"encoding/json"
	"os"

	"aitoolhub-server/services/hub-api/internal/domain/catalog"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
)

// Load reads the tool and model capability catalogs from disk. A missing or
// malformed file degrades to an empty catalog with a warning so the service
// still starts and the selector falls back to its per-provider defaults.
func Load(toolPath, modelPath string) catalog.Catalogs {
	catalogs := catalog.Catalogs{
		Tools:  map[string]catalog.ToolEntry{},
		Models: catalog.ModelEntries{},
	}

	if err := loadJSON(toolPath, &catalogs.Tools); err != nil {
		logger.GetLogger().Warn().
			Str("path", toolPath).
			Err(err).
			Msg("tool capability catalog unavailable, using empty catalog")
		catalogs.Tools = map[string]catalog.ToolEntry{}
	}

	if err := loadJSON(modelPath, &catalogs.Models); err != nil {
		logger.GetLogger().Warn().
			Str("path", modelPath).
			Err(err).
			Msg("model capability catalog unavailable, using empty catalog")
		catalogs.Models = catalog.ModelEntries{}
	}

	catalogs.Validate()
	return catalogs
}

func loadJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
