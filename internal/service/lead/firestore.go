package lead

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// leadCollection is the fixed logical collection, named for the entity.
const leadCollection = "lead"

// maxDiagnosticCollections caps the collection listing on the diagnostics path.
const maxDiagnosticCollections = 10

// firestoreLead maps to the Firestore document structure. Every field is
// always written; not-provided optional fields are stored as explicit nulls,
// matching the field-for-field dump of the inbound record.
type firestoreLead struct {
	Name              string    `firestore:"name"`
	Email             string    `firestore:"email"`
	Phone             *string   `firestore:"phone"`
	Company           *string   `firestore:"company"`
	Location          *string   `firestore:"location"`
	UnitTypes         []string  `firestore:"unit_types"`
	UnitsCount        *int      `firestore:"units_count"`
	CapacityTonnage   *string   `firestore:"capacity_tonnage"`
	PreferredInterval *string   `firestore:"preferred_interval"`
	PainPoints        []string  `firestore:"pain_points"`
	Message           *string   `firestore:"message"`
	CreatedAt         time.Time `firestore:"created_at"`
}

// FirestoreRepository implements Repository backed by a shared long-lived
// Firestore client injected at construction time.
type FirestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository creates a Firestore-backed lead repository.
func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

// categorizeStoreError converts a store failure into a short operator-facing
// category without leaking internals to clients.
func categorizeStoreError(err error) string {
	switch status.Code(err) {
	case codes.Unavailable:
		return "unavailable"
	case codes.DeadlineExceeded:
		return "timeout"
	case codes.Unauthenticated, codes.PermissionDenied:
		return "auth"
	case codes.ResourceExhausted:
		return "exhausted"
	default:
		return "internal"
	}
}

// Insert appends the lead as a new document in the lead collection and
// returns the store-generated document ID. Exactly one durable write per
// call; failures are wrapped in *PersistenceError and never retried here.
func (r *FirestoreRepository) Insert(ctx context.Context, l *Lead) (string, error) {
	doc := r.client.Collection(leadCollection).NewDoc()
	fl := firestoreLead{
		Name:              l.Name,
		Email:             l.Email,
		Phone:             l.Phone,
		Company:           l.Company,
		Location:          l.Location,
		UnitTypes:         l.UnitTypes,
		UnitsCount:        l.UnitsCount,
		CapacityTonnage:   l.CapacityTonnage,
		PreferredInterval: l.PreferredInterval,
		PainPoints:        l.PainPoints,
		Message:           l.Message,
		CreatedAt:         time.Now().UTC(),
	}

	if _, err := doc.Create(ctx, fl); err != nil {
		return "", &PersistenceError{Op: "insert", Category: categorizeStoreError(err), Err: err}
	}
	return doc.ID, nil
}

// List returns up to limit leads ordered by document ID, starting after
// afterID when set. The second return value reports whether more leads
// remain beyond this page.
func (r *FirestoreRepository) List(ctx context.Context, afterID string, limit int) ([]StoredLead, bool, error) {
	q := r.client.Collection(leadCollection).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(limit + 1)
	if afterID != "" {
		q = q.StartAfter(afterID)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, false, &PersistenceError{Op: "list", Category: categorizeStoreError(err), Err: err}
	}

	hasMore := len(docs) > limit
	if hasMore {
		docs = docs[:limit]
	}

	leads := make([]StoredLead, 0, len(docs))
	for _, doc := range docs {
		var fl firestoreLead
		if err := doc.DataTo(&fl); err != nil {
			return nil, false, &PersistenceError{Op: "list", Category: "internal", Err: err}
		}
		leads = append(leads, StoredLead{
			ID: doc.Ref.ID,
			Lead: Lead{
				Name:              fl.Name,
				Email:             fl.Email,
				Phone:             fl.Phone,
				Company:           fl.Company,
				Location:          fl.Location,
				UnitTypes:         fl.UnitTypes,
				UnitsCount:        fl.UnitsCount,
				CapacityTonnage:   fl.CapacityTonnage,
				PreferredInterval: fl.PreferredInterval,
				PainPoints:        fl.PainPoints,
				Message:           fl.Message,
			},
			CreatedAt: fl.CreatedAt,
		})
	}
	return leads, hasMore, nil
}

// Collections lists up to ten collection IDs for the diagnostics endpoint.
func (r *FirestoreRepository) Collections(ctx context.Context) ([]string, error) {
	var names []string
	iter := r.client.Collections(ctx)
	for len(names) < maxDiagnosticCollections {
		col, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &PersistenceError{Op: "collections", Category: categorizeStoreError(err), Err: err}
		}
		names = append(names, col.ID)
	}
	return names, nil
}

// Compile-time interface check
var _ Repository = (*FirestoreRepository)(nil)
