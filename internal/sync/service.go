// Package sync orchestrates one product sync run: snapshot the
// configuration, load and gate the object, build the payload, deliver it,
// and record the outcome. Failures are reported once and never retried; the
// operator re-triggers by saving the object again.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/qburst/pimcore-magento-product-connector/internal/audit"
	"github.com/qburst/pimcore-magento-product-connector/internal/config"
	"github.com/qburst/pimcore-magento-product-connector/internal/magento"
	"github.com/qburst/pimcore-magento-product-connector/internal/payload"
	"github.com/qburst/pimcore-magento-product-connector/internal/product"
	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
	"github.com/qburst/pimcore-magento-product-connector/internal/translate"
)

const noteTitle = "Magento Product Sync"

// Event is one object-changed notification.
type Event struct {
	ObjectID        int64 `json:"objectId"`
	SaveVersionOnly bool  `json:"saveVersionOnly"`
}

// ObjectLoader fetches an object graph by identifier.
type ObjectLoader interface {
	Load(ctx context.Context, id int64) (*schema.Object, error)
}

// Sender delivers one rendered payload.
type Sender interface {
	SaveProduct(ctx context.Context, fragment string) (string, error)
}

// Service runs the sync pipeline. Each event gets its own configuration
// snapshot; concurrent configuration edits never affect a run in flight.
type Service struct {
	Store      *config.Store
	Loader     ObjectLoader
	Translator translate.Translator
	Sink       audit.Sink
	Logger     *log.Logger
	Timeout    time.Duration

	// Dial builds the sender for one snapshot. Tests override it; when nil
	// the GraphQL client is used.
	Dial func(storeURL, accessToken string, timeout time.Duration) Sender
}

// HandleEvent processes one change event end to end. Version-only saves,
// folders and objects of other classes are skipped silently.
func (s *Service) HandleEvent(ctx context.Context, ev Event) error {
	if ev.SaveVersionOnly {
		return nil
	}

	cfg, err := s.Store.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot configuration: %w", err)
	}

	storeURL := cfg.Get(config.KeyStoreURL)
	accessToken := cfg.Get(config.KeyAccessToken)
	class := cfg.Get(config.KeyClass)

	if storeURL == "" || accessToken == "" || class == "" {
		return &product.ValidationError{
			Message: "please fill in the configuration fields to sync products",
		}
	}

	obj, err := s.Loader.Load(ctx, ev.ObjectID)
	if err != nil {
		return fmt.Errorf("load object %d: %w", ev.ObjectID, err)
	}

	if obj == nil || obj.IsFolder() || !obj.MatchesClassName(class) {
		return nil
	}

	s.note(ctx, ev.ObjectID, "started", "Sync with Magento started")

	resolver := &schema.Resolver{DefaultLocale: cfg.DefaultLanguage()}
	builder := &product.Builder{
		Config:   cfg,
		Resolver: resolver,
		Assembler: &translate.Assembler{
			Resolver:      resolver,
			Translator:    s.Translator,
			DefaultLocale: cfg.DefaultLanguage(),
			Locales:       cfg.ValidLanguages(),
		},
	}

	root, err := builder.Build(obj)
	if err != nil {
		message := fmt.Sprintf("a validation error occurred while saving object id:%d, details:%v", ev.ObjectID, err)
		s.record(ctx, audit.LevelWarning, message, "", ev.ObjectID)
		s.note(ctx, ev.ObjectID, "warning", message)

		return err
	}

	fragment := payload.Render(root)

	msg, err := s.dial(storeURL, accessToken).SaveProduct(ctx, fragment)
	if err != nil {
		level := audit.LevelError

		var transport *magento.TransportError
		if errors.As(err, &transport) {
			level = audit.LevelCritical
		}

		message := fmt.Sprintf("an error occurred while processing the catalog API request, details:%v", err)
		s.record(ctx, level, message, audit.Dump(root), ev.ObjectID)
		s.note(ctx, ev.ObjectID, "failed", "Sync failed. Check the sync log for more info.")

		return err
	}

	s.record(ctx, audit.LevelInfo, fmt.Sprintf("object id:%d was processed and sync completed with the message: %s", ev.ObjectID, msg), audit.Dump(root), ev.ObjectID)
	s.note(ctx, ev.ObjectID, "success", msg)

	return nil
}

func (s *Service) dial(storeURL, accessToken string) Sender {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	if s.Dial != nil {
		return s.Dial(storeURL, accessToken, timeout)
	}

	return magento.NewClient(storeURL, accessToken, timeout)
}

func (s *Service) record(ctx context.Context, level audit.Level, message, dump string, objectID int64) {
	if s.Sink == nil {
		return
	}

	err := s.Sink.Record(ctx, audit.Entry{
		Level:       level,
		Message:     message,
		PayloadDump: dump,
		ObjectID:    objectID,
	})
	if err != nil && s.Logger != nil {
		s.Logger.Printf("audit record failed: %v", err)
	}
}

func (s *Service) note(ctx context.Context, objectID int64, status, description string) {
	if s.Sink == nil {
		return
	}

	err := s.Sink.Note(ctx, audit.Note{
		ObjectID:    objectID,
		Status:      status,
		Title:       noteTitle,
		Description: description,
	})
	if err != nil && s.Logger != nil {
		s.Logger.Printf("audit note failed: %v", err)
	}
}
