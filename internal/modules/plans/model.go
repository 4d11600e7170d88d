// README: Plan history record and module errors.
package plans

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a user has no recorded plans.
var ErrNotFound = errors.New("plan not found")

// Record is one generated collection kept for history. The core pipeline is
// persistence-free; records are written best-effort after the response is
// assembled.
type Record struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Document      json.RawMessage `json:"document"`
	FallbackCount int             `json:"fallback_count"`
	CreatedAt     time.Time       `json:"created_at"`
}
