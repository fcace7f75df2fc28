package compose

import (
	"time"

	"github.com/google/uuid"

	"github.com/bleacherbot/bleacherbot/models"
)

// AssembleReport merges a validated synthesis with the original
// per-category records and a generation timestamp into the one Report
// this run hands to the renderer. Pure apart from the run ID.
func AssembleReport(team string, syn models.Synthesis, records map[models.Category][]models.SourceRecord, degraded bool, now time.Time) *models.Report {
	raw := make(map[models.Category][]models.SourceRecord, len(models.Categories))
	for _, cat := range models.Categories {
		raw[cat] = records[cat]
	}
	return &models.Report{
		RunID:         uuid.NewString(),
		TeamName:      team,
		GeneratedAt:   now,
		Synthesis:     syn,
		RawByCategory: raw,
		Degraded:      degraded,
	}
}
