package record

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/adapter/postgres/docstore"
	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// CreateFromForm maps a form-encoded payload against the collection's
// schema and stores the resulting document in the caller's current stage.
func (s *Service) CreateFromForm(ctx context.Context, collectionID uuid.UUID, form url.Values) (*domain.Document, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.getOwned(ctx, collectionID, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("record.CreateFromForm: %w", err)
	}

	doc := MapForm(c.Fields, form)

	if err := s.insert(ctx, sess.Stage, c, doc); err != nil {
		return nil, fmt.Errorf("record.CreateFromForm: %w", err)
	}

	return doc, nil
}

// CreateFromJSON stores a JSON object payload as a document in the
// caller's current stage. Values pass through natively; the schema is not
// consulted.
func (s *Service) CreateFromJSON(ctx context.Context, collectionID uuid.UUID, payload []byte) (*domain.Document, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.getOwned(ctx, collectionID, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("record.CreateFromJSON: %w", err)
	}

	doc, err := MapJSON(payload)
	if err != nil {
		return nil, err
	}

	if err := s.insert(ctx, sess.Stage, c, doc); err != nil {
		return nil, fmt.Errorf("record.CreateFromJSON: %w", err)
	}

	return doc, nil
}

// insert stamps system fields and writes the document to the collection's
// backing storage in the given stage. Materializing the storage and the
// insert itself run in one transaction: the whole document lands or
// nothing does.
func (s *Service) insert(ctx context.Context, stage string, c *domain.Collection, doc *domain.Document) error {
	id := uuid.New()
	stampSystemFields(doc, id, time.Now().UTC())

	storeName := docstore.StorageName(stage, c.Name)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.store.Insert(txCtx, storeName, doc)
	})
	if err != nil {
		return fmt.Errorf("insert into %s: %w", storeName, err)
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("collection_id", c.ID.String()),
		slog.String("record_id", id.String()),
		slog.String("store", storeName))

	return nil
}
