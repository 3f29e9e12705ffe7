package discovery

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/prospector/core"
)

// buildProspect mines one accepted candidate's context window for
// details and assembles the immutable prospect record. A failure while
// mining a single candidate (a malformed window, an unexpected panic in
// a pattern) is isolated: ok is false and the batch continues.
func buildProspect(cand candidate, combined string, sources []core.Source, at time.Time, logger *slog.Logger) (prospect core.DiscoveredProspect, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("skipping candidate after extraction panic", "name", cand.name, "panic", r)
			ok = false
		}
	}()

	window := contextWindow(combined, cand.offset)

	title := extractTitle(window)
	company := extractCompany(window)
	city, state := extractLocation(window)
	reasons := extractReasons(window)
	if len(reasons) == 0 {
		// matchReasons must carry at least one entry
		reasons = []string{fmt.Sprintf("%s surfaced in a targeted prospect search", cand.name)}
	}

	confidence, matched := scoreConfidence(cand.name, title, company, sources)

	return core.DiscoveredProspect{
		ID:           core.ProspectID(cand.name, at),
		Name:         cand.name,
		Title:        title,
		Company:      company,
		City:         city,
		State:        state,
		Confidence:   confidence,
		MatchReasons: reasons,
		Sources:      matched,
	}, true
}
