package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/LudwingValecillos/VentaCarniceria/internal/cart"
	deliverycontext "github.com/LudwingValecillos/VentaCarniceria/internal/delivery/context"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/repository"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/gateway"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/cache"
	"github.com/LudwingValecillos/VentaCarniceria/internal/usecase"
	"github.com/LudwingValecillos/VentaCarniceria/internal/util"
)

// ContactCacheTTL is how long the contact directory is served from memory.
const ContactCacheTTL = 60 * time.Second

// directory is the cached contact list together with the tenant name used in events.
type directory struct {
	tenantName string
	contacts   []entity.WhatsAppContact
}

type contactService struct {
	tenants   repository.TenantRepository
	tenantID  string
	publisher service.EventPublisher
	logger    *slog.Logger

	directory *cache.Loader[string, directory]
	now       func() time.Time
}

// NewContactService creates a new contact directory service instance
func NewContactService(
	tenants repository.TenantRepository,
	scope gateway.TenantScope,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ContactUsecase {
	return &contactService{
		tenants:   tenants,
		tenantID:  scope.ID,
		publisher: publisher,
		logger:    logger,
		directory: cache.NewLoader[string, directory](ContactCacheTTL),
		now:       time.Now,
	}
}

func (s *contactService) List(ctx context.Context) ([]entity.WhatsAppContact, error) {
	dir, err := s.load(ctx, false)
	if err != nil {
		return nil, err
	}

	return cloneContacts(dir.contacts), nil
}

// load returns the directory from cache, or from the store when fresh is set or
// the cache expired. Concurrent loads share one read.
func (s *contactService) load(ctx context.Context, fresh bool) (directory, error) {
	read := s.directory.Get
	if fresh {
		read = s.directory.Fresh
	}

	dir, err := read(ctx, s.tenantID, s.fetch)
	if err != nil {
		return directory{}, toAppError(errors.Wrap(err, "load contact directory"))
	}

	return dir, nil
}

func (s *contactService) fetch(ctx context.Context) (directory, error) {
	tenant, err := s.tenants.FindByID(ctx, s.tenantID)
	if err != nil {
		return directory{}, err
	}

	return directory{tenantName: tenant.Name, contacts: normalizeContacts(tenant.Contacts)}, nil
}

// Save validates, normalizes and de-duplicates inputs, persists them as the whole
// directory and publishes contact.added for every number that was not present before.
func (s *contactService) Save(ctx context.Context, inputs []usecase.ContactInput) ([]entity.WhatsAppContact, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	next, err := validateContacts(inputs)
	if err != nil {
		return nil, err
	}

	previous, err := s.load(ctx, true)
	if err != nil {
		return nil, err
	}
	known := make(map[string]entity.WhatsAppContact, len(previous.contacts))
	for _, contact := range previous.contacts {
		known[contact.Number] = contact
	}

	now := s.now()
	added := make([]entity.WhatsAppContact, 0)
	for idx := range next {
		next[idx].UpdatedAt = now
		if existing, ok := known[next[idx].Number]; ok && !existing.CreatedAt.IsZero() {
			next[idx].CreatedAt = existing.CreatedAt

			continue
		}
		next[idx].CreatedAt = now
		if _, ok := known[next[idx].Number]; !ok {
			added = append(added, next[idx])
		}
	}

	if err := s.tenants.ReplaceContacts(ctx, s.tenantID, next); err != nil {
		logger.Error("Failed to save contact directory", slog.Any("error", err))

		return nil, toAppError(err)
	}
	s.directory.Set(s.tenantID, directory{tenantName: previous.tenantName, contacts: next})

	for _, contact := range added {
		s.publishAdded(ctx, previous.tenantName, contact)
	}
	logger.Info("Contact directory saved",
		slog.Int("contacts", len(next)),
		slog.Int("added", len(added)),
	)

	return cloneContacts(next), nil
}

func (s *contactService) Add(ctx context.Context, input usecase.ContactInput) ([]entity.WhatsAppContact, error) {
	current, err := s.load(ctx, true)
	if err != nil {
		return nil, err
	}

	number := util.NormalizePhone(input.Number)
	inputs := make([]usecase.ContactInput, 0, len(current.contacts)+1)
	for _, contact := range current.contacts {
		if contact.Number == number {
			return nil, domainerrors.ErrInvalidContact.WithDetails("el número ya está registrado")
		}
		inputs = append(inputs, inputOf(contact))
	}

	return s.Save(ctx, append(inputs, input))
}

func (s *contactService) Remove(ctx context.Context, number string) ([]entity.WhatsAppContact, error) {
	current, err := s.load(ctx, true)
	if err != nil {
		return nil, err
	}

	number = util.NormalizePhone(number)
	inputs := make([]usecase.ContactInput, 0, len(current.contacts))
	for _, contact := range current.contacts {
		if contact.Number != number {
			inputs = append(inputs, inputOf(contact))
		}
	}
	if len(inputs) == len(current.contacts) {
		return nil, domainerrors.ErrContactNotFound
	}

	return s.Save(ctx, inputs)
}

func (s *contactService) Link(number string) string {
	return cart.DeepLink(number, "")
}

func (s *contactService) publishAdded(ctx context.Context, tenantName string, contact entity.WhatsAppContact) {
	if s.publisher == nil {
		return
	}

	event := &service.StoreEvent{
		ID:         uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Kind:       service.EventContactAdded,
		TenantID:   s.tenantID,
		OccurredAt: s.now(),
		Contact: &service.ContactAddedPayload{
			Name:       contact.Name,
			Phone:      contact.Number,
			Role:       string(contact.Role),
			TenantName: tenantName,
			CreatedAt:  contact.CreatedAt,
		},
	}
	if err := s.publisher.Publish(deliverycontext.Detach(ctx), event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to publish contact added event",
			slog.String("phone", contact.Number),
			slog.Any("error", err),
		)
	}
}

// validateContacts checks every input and returns the normalized contacts with
// repeated numbers dropped, keeping the first occurrence.
func validateContacts(inputs []usecase.ContactInput) ([]entity.WhatsAppContact, error) {
	seen := make(map[string]struct{}, len(inputs))
	out := make([]entity.WhatsAppContact, 0, len(inputs))
	for idx, input := range inputs {
		name := strings.TrimSpace(input.Name)
		switch {
		case name == "":
			return nil, domainerrors.ErrInvalidContact.WithDetails(fmt.Sprintf("contacto %d: el nombre es obligatorio", idx+1))
		case !input.Role.IsValid():
			return nil, domainerrors.ErrInvalidContact.WithDetails(fmt.Sprintf("contacto %d: rol inválido %q", idx+1, input.Role))
		case !util.ValidPhone(input.Number):
			return nil, domainerrors.ErrInvalidPhone.WithDetails(fmt.Sprintf("contacto %d: %s", idx+1, input.Number))
		}

		number := util.NormalizePhone(input.Number)
		if _, dup := seen[number]; dup {
			continue
		}
		seen[number] = struct{}{}
		out = append(out, entity.WhatsAppContact{Name: name, Role: input.Role, Number: number})
	}

	return out, nil
}

func normalizeContacts(contacts []entity.WhatsAppContact) []entity.WhatsAppContact {
	out := make([]entity.WhatsAppContact, 0, len(contacts))
	for _, contact := range contacts {
		contact.Number = util.NormalizePhone(contact.Number)
		out = append(out, contact)
	}

	return out
}

func inputOf(contact entity.WhatsAppContact) usecase.ContactInput {
	return usecase.ContactInput{Name: contact.Name, Role: contact.Role, Number: contact.Number}
}

func cloneContacts(contacts []entity.WhatsAppContact) []entity.WhatsAppContact {
	out := make([]entity.WhatsAppContact, len(contacts))
	copy(out, contacts)

	return out
}
