package sessionstate

import (
	"log/slog"
	"time"

	"github.com/simmerhq/simmer/internal/models"
	"github.com/simmerhq/simmer/internal/timers"
)

// migrateSnapshot repairs a snapshot freshly read from storage. It is
// kept apart from the read path so future schema changes land here
// instead of accreting inline fixups. The passes run per session, in
// order:
//
//  1. drop sessions that are malformed beyond repair (nil record)
//  2. drop sessions whose status is not active, paused, or completed
//  3. evict sessions untouched for longer than the retention window
//  4. back-fill maps and slices an older schema never wrote
//  5. commit accumulated decay on timers that were running when the
//     snapshot was written
//  6. clear an activeSessionId that no longer points at an active
//     session
//
// The input is never mutated; callers get a fresh snapshot.
func migrateSnapshot(snap *models.RegistrySnapshot, now time.Time, retention time.Duration, logger *slog.Logger) *models.RegistrySnapshot {
	out := models.EmptySnapshot()
	if snap == nil {
		return out
	}

	cutoff := now.Add(-retention)

	for recipeID, session := range snap.Sessions {
		if session == nil || recipeID == "" {
			logger.Warn("dropping malformed session record",
				slog.String("recipeId", recipeID))
			continue
		}

		status, known := models.ParseSessionStatus(string(session.Status))
		if !known || status == models.SessionStatusAbandoned {
			logger.Warn("dropping session with unsupported status",
				slog.String("recipeId", recipeID),
				slog.String("status", string(session.Status)))
			continue
		}

		if session.LastActiveAt.Before(cutoff) {
			logger.Info("evicting stale session",
				slog.String("recipeId", recipeID),
				slog.Time("lastActiveAt", session.LastActiveAt))
			continue
		}

		repaired := session.Clone()
		repaired.Status = status
		if repaired.RecipeID == "" {
			repaired.RecipeID = recipeID
		}

		backfillFields(repaired)
		commitTimerDrift(repaired, now)

		out.Sessions[recipeID] = repaired
	}

	out.ActiveSessionID = repairActivePointer(snap.ActiveSessionID, out.Sessions)

	return out
}

// backfillFields supplies empty defaults for sub-fields an older schema
// version never wrote, so one thin record does not fail the whole load
func backfillFields(session *models.CookingSession) {
	if session.Notes == nil {
		session.Notes = make(map[int]string)
	}
	if session.StepRatings == nil {
		session.StepRatings = make(map[int]models.StepRating)
	}
	if session.CheckedIngredients == nil {
		session.CheckedIngredients = make(map[int]bool)
	}
	if session.Timers == nil {
		session.Timers = []models.Timer{}
	}
}

// commitTimerDrift folds the wall-clock time that passed while the
// process was down into each running timer. A timer that ran out while
// nobody was watching loads at zero and stopped; no notification is
// fired retroactively.
func commitTimerDrift(session *models.CookingSession, now time.Time) {
	for i, t := range session.Timers {
		if !t.IsActive {
			continue
		}

		t.Remaining = timers.Remaining(t, now)
		t.LastUpdatedAt = now
		if t.Remaining == 0 {
			t.IsActive = false
		}
		session.Timers[i] = t
	}
}

// repairActivePointer keeps activeSessionId only when it names a
// surviving session that is actually active
func repairActivePointer(activeID string, sessions map[string]*models.CookingSession) string {
	if activeID == "" {
		return ""
	}

	session, ok := sessions[activeID]
	if !ok || session.Status != models.SessionStatusActive {
		return ""
	}

	return activeID
}
