package lead

import (
	"context"
	"fmt"
	"time"
)

// Lead is a validated service-interest submission. Optional fields are nil
// when the client did not provide them; absent and explicitly-null payload
// fields are treated identically.
type Lead struct {
	Name              string
	Email             string
	Phone             *string
	Company           *string
	Location          *string
	UnitTypes         []string
	UnitsCount        *int
	CapacityTonnage   *string
	PreferredInterval *string
	PainPoints        []string
	Message           *string
}

// StoredLead is a Lead as read back from the store, including the
// store-assigned document ID and insert timestamp.
type StoredLead struct {
	ID        string
	Lead      Lead
	CreatedAt time.Time
}

// ValidationError reports the first constraint violated by an inbound
// payload. Field names the offending payload key, Rule the violated
// constraint (required, non-empty, type, format, integer, non-negative).
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistenceError wraps a store failure. The repository never retries;
// retry policy, if any, belongs to the caller.
type PersistenceError struct {
	Op       string
	Category string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("lead %s failed (%s): %v", e.Op, e.Category, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Repository durably stores validated leads.
//
// Insert expects a Lead that has already passed Validate; it performs no
// semantic validation of its own. Every call produces exactly one new
// record; duplicate submissions are stored as independent records.
type Repository interface {
	Insert(ctx context.Context, l *Lead) (string, error)
	List(ctx context.Context, afterID string, limit int) ([]StoredLead, bool, error)
	Collections(ctx context.Context) ([]string, error)
}
