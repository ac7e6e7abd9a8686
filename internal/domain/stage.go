package domain

import "github.com/google/uuid"

// DefaultStageKey is the stage a session falls back to when the stage
// catalog is empty or the session carries no stage yet.
const DefaultStageKey = "hml"

// Stage is an environment namespace (dev/hml/prod). It multiplexes both
// collection definitions and record storage: every collection belongs to
// exactly one stage and its records live in a stage-prefixed storage
// object. The lowest Order among active stages is the default for new
// sessions.
type Stage struct {
	ID          uuid.UUID
	Key         string
	Label       string
	Letter      string
	Description string
	Order       int
	Active      bool
}
