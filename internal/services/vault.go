package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pass-vault/internal/logger"
	"github.com/sbilibin2017/pass-vault/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrItemNotFound is returned when an item does not exist or is
	// owned by another user. The two cases are indistinguishable.
	ErrItemNotFound = errors.New("vault item not found")

	// ErrTitlePasswordRequired is returned when a create request lacks
	// the encrypted title or encrypted password.
	ErrTitlePasswordRequired = errors.New("encrypted title and password are required")
)

// DefaultCategory is assigned to items created without a category.
const DefaultCategory = "General"

// VaultReader defines read operations over encrypted vault items.
type VaultReader interface {
	GetByID(ctx context.Context, userID, itemID int64) (*models.VaultItemDB, error)
	ListByUserID(ctx context.Context, userID int64, category *string) ([]models.VaultItemDB, error)
	Search(ctx context.Context, userID int64, term string) ([]models.VaultItemDB, error)
	Categories(ctx context.Context, userID int64) ([]string, error)
}

// VaultWriter defines write operations over encrypted vault items.
type VaultWriter interface {
	Save(ctx context.Context, userID int64, encryptedTitle, encryptedPassword string,
		encryptedUsername, encryptedURL, encryptedNotes *string, category string) (*models.VaultItemDB, error)
	Update(ctx context.Context, userID, itemID int64, upd models.VaultItemUpdate) (*models.VaultItemDB, error)
	Delete(ctx context.Context, userID, itemID int64) (bool, error)
}

// CategoryCache caches per-user category lists.
type CategoryCache interface {
	GetCategories(ctx context.Context, userID int64) ([]string, error)
	SetCategories(ctx context.Context, userID int64, categories []string) error
	InvalidateCategories(ctx context.Context, userID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// VaultService owns ownership-scoped vault operations and publishes
// audit events for mutations.
type VaultService struct {
	readRepo    VaultReader
	writeRepo   VaultWriter
	cacheRepo   CategoryCache
	kafkaWriter KafkaWriter
}

// NewVaultService creates a new VaultService.
func NewVaultService(readRepo VaultReader, writeRepo VaultWriter, cacheRepo CategoryCache, kafkaWriter KafkaWriter) *VaultService {
	return &VaultService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishAudit publishes a vault mutation event to Kafka. Events carry
// identifiers only, never field contents.
func (s *VaultService) publishAudit(ctx context.Context, userID, itemID int64, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping audit event", "operation", operation)
		return
	}

	event := models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		ItemID:    itemID,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("audit event published", "event_id", event.EventID, "operation", operation)
	}
}

// invalidateCategories drops the user's cached category list after a
// mutation that may have changed it.
func (s *VaultService) invalidateCategories(ctx context.Context, userID int64) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.InvalidateCategories(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate category cache", "user_id", userID, "error", err)
	}
}

// Create stores a new encrypted item for the user. The encrypted title
// and password are mandatory; category defaults to DefaultCategory.
func (s *VaultService) Create(
	ctx context.Context,
	userID int64,
	encryptedTitle, encryptedPassword string,
	encryptedUsername, encryptedURL, encryptedNotes *string,
	category string,
) (*models.VaultItemDB, error) {
	if encryptedTitle == "" || encryptedPassword == "" {
		return nil, ErrTitlePasswordRequired
	}
	if category == "" {
		category = DefaultCategory
	}

	item, err := s.writeRepo.Save(ctx, userID, encryptedTitle, encryptedPassword,
		encryptedUsername, encryptedURL, encryptedNotes, category)
	if err != nil {
		logger.Log.Errorw("failed to save vault item", "user_id", userID, "error", err)
		return nil, err
	}

	s.invalidateCategories(ctx, userID)
	s.publishAudit(ctx, userID, item.ID, "create")

	return item, nil
}

// Get returns one of the user's items by id.
func (s *VaultService) Get(ctx context.Context, userID, itemID int64) (*models.VaultItemDB, error) {
	item, err := s.readRepo.GetByID(ctx, userID, itemID)
	if err != nil {
		logger.Log.Errorw("failed to get vault item", "user_id", userID, "item_id", itemID, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Update applies a partial update to one of the user's items.
func (s *VaultService) Update(ctx context.Context, userID, itemID int64, upd models.VaultItemUpdate) (*models.VaultItemDB, error) {
	item, err := s.writeRepo.Update(ctx, userID, itemID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update vault item", "user_id", userID, "item_id", itemID, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	s.invalidateCategories(ctx, userID)
	s.publishAudit(ctx, userID, itemID, "update")

	return item, nil
}

// Delete removes one of the user's items.
func (s *VaultService) Delete(ctx context.Context, userID, itemID int64) error {
	deleted, err := s.writeRepo.Delete(ctx, userID, itemID)
	if err != nil {
		logger.Log.Errorw("failed to delete vault item", "user_id", userID, "item_id", itemID, "error", err)
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}

	s.invalidateCategories(ctx, userID)
	s.publishAudit(ctx, userID, itemID, "delete")

	return nil
}

// List returns the user's items newest first, optionally filtered by
// category.
func (s *VaultService) List(ctx context.Context, userID int64, category *string) ([]models.VaultItemDB, error) {
	items, err := s.readRepo.ListByUserID(ctx, userID, category)
	if err != nil {
		logger.Log.Errorw("failed to list vault items", "user_id", userID, "error", err)
		return nil, err
	}
	return items, nil
}

// Search returns the user's items whose stored ciphertext contains the
// term. The contract is a substring match over ciphertext as stored;
// it does not and cannot search the underlying plaintext.
func (s *VaultService) Search(ctx context.Context, userID int64, term string) ([]models.VaultItemDB, error) {
	items, err := s.readRepo.Search(ctx, userID, term)
	if err != nil {
		logger.Log.Errorw("failed to search vault items", "user_id", userID, "error", err)
		return nil, err
	}
	return items, nil
}

// Categories returns the distinct categories in use by the user,
// reading through the cache when one is configured.
func (s *VaultService) Categories(ctx context.Context, userID int64) ([]string, error) {
	if s.cacheRepo != nil {
		if categories, err := s.cacheRepo.GetCategories(ctx, userID); err == nil {
			return categories, nil
		}
	}

	categories, err := s.readRepo.Categories(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get categories", "user_id", userID, "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetCategories(ctx, userID, categories); err != nil {
			logger.Log.Warnw("failed to cache categories", "user_id", userID, "error", err)
		}
	}

	return categories, nil
}
