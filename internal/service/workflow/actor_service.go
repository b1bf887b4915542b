package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/domain/authz"
	"github.com/workdeck/workdeck-api/internal/platform/logger"
	"github.com/workdeck/workdeck-api/internal/service/auth"
	"github.com/workdeck/workdeck-api/internal/store"
)

// ActorRef is the minimal public projection of an actor, used by the user
// directory and nested references.
type ActorRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// Identity is the whoAmI projection: who the caller is and which role
// governs their requests.
type Identity struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// UpdateActorInput carries a partial, manager-gated actor update.
// Credentials are deliberately absent: username, email and password are not
// updatable through this path.
type UpdateActorInput struct {
	Role *domain.Role
}

// ActorService handles registration, the user directory and actor
// administration.
type ActorService struct {
	actors   store.ActorStore
	hasher   auth.PasswordHasher
	readOnly authz.ReadOnlyPolicy
	logger   *slog.Logger
}

// NewActorService creates a new ActorService.
func NewActorService(actors store.ActorStore, hasher auth.PasswordHasher, logger *slog.Logger) *ActorService {
	if actors == nil {
		panic("actors cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ActorService{
		actors:   actors,
		hasher:   hasher,
		readOnly: authz.NewReadOnlyPolicy(),
		logger:   logger.With(slog.String("component", "actor_service")),
	}
}

// Register creates a new actor. Registration is open; the role comes from
// the payload and defaults to employee when absent.
func (s *ActorService) Register(
	ctx context.Context,
	username, email, password string,
	role domain.Role,
) (*domain.Actor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if role == "" {
		role = domain.RoleEmployee
	}

	actor, err := domain.NewActor(username, email, password, role)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(actor.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	actor.HashedPassword = hashed
	actor.Password = ""

	if err := s.actors.Create(ctx, actor); err != nil {
		return nil, err
	}

	log.Info("actor registered",
		slog.String("actor_id", actor.ID.String()),
		slog.String("role", string(actor.Role)))
	return actor, nil
}

// WhoAmI returns the caller's identity projection.
func (s *ActorService) WhoAmI(actor *domain.Actor) Identity {
	return Identity{
		ID:       actor.ID,
		Username: actor.Username,
		Role:     actor.Role,
	}
}

// Directory returns the minimal user listing available to any
// authenticated actor. The endpoint is read-only by policy.
func (s *ActorService) Directory(ctx context.Context, actor *domain.Actor) ([]ActorRef, error) {
	if dec := s.readOnly.Permit(actor, authz.ActionList); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	actors, err := s.actors.List(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]ActorRef, 0, len(actors))
	for _, a := range actors {
		refs = append(refs, ActorRef{ID: a.ID, Username: a.Username})
	}
	return refs, nil
}

// Update applies a manager-gated partial update to another actor's profile.
func (s *ActorService) Update(
	ctx context.Context,
	actor *domain.Actor,
	targetID uuid.UUID,
	input UpdateActorInput,
) (*domain.Actor, error) {
	if !actor.IsManager() {
		return nil, forbidden(authz.ReasonManagerOnly)
	}

	target, err := s.actors.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		target.Role = *input.Role
	}
	target.ModifiedBy = &actor.ID

	if err := s.actors.Update(ctx, target); err != nil {
		return nil, err
	}

	return target, nil
}
