package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/store"
	"github.com/samber/lo"
)

// Service handles user administration.
type Service struct {
	users  *store.Store[User]
	audit  AuditLog
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// NewService creates a new user service.
func NewService(users *store.Store[User], auditLog AuditLog, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		users:  users,
		audit:  auditLog,
		now:    time.Now,
		newID:  func() string { return store.NewID("u") },
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRequest describes a user creation request.
type CreateRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Role       Role   `json:"role" validate:"required,enum"`
	Department string `json:"department,omitempty"`
}

// ArchiveRequest describes a user archive request.
type ArchiveRequest struct {
	ID           string `json:"id"`
	Confirmation string `json:"confirmation"`
}

// List returns the users visible under q.
func (s *Service) List(q listing.Query) ([]User, error) {
	if err := listing.Validate(q, View); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return listing.Apply(s.users.Snapshot(), View, q), nil
}

// Get returns a user by id.
func (s *Service) Get(id string) (User, error) {
	u, ok := s.users.Find(id)
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// Stats summarizes every user, archived included.
func (s *Service) Stats() Stats {
	all := s.users.Snapshot()
	return Stats{
		Total:     len(all),
		Active:    listing.Count(all, func(u User) bool { return u.IsActive && !u.IsArchived }),
		Employees: listing.Count(all, func(u User) bool { return u.Role == RoleEmployee }),
		Admins:    listing.Count(all, func(u User) bool { return u.Role == RoleAdmin || u.Role == RoleManager }),
	}
}

// Create validates req and prepends a new active user.
func (s *Service) Create(ctx context.Context, req CreateRequest) (User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	if err := ValidateCreateInput(req); err != nil {
		return User{}, err
	}
	if req.Department == "" {
		req.Department = DefaultDepartment
	}

	created := User{
		ID:         s.newID(),
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		IsActive:   true,
		Department: req.Department,
		LastLogin:  NeverLoggedIn,
		CreatedAt:  s.now().UTC().Format(time.DateOnly),
	}

	if _, err := s.users.Mutate(ctx, func(items []User) ([]User, error) {
		if lo.ContainsBy(items, func(u User) bool { return sameEmail(u.Email, req.Email) }) {
			return nil, ErrDuplicateEmail
		}
		return store.Prepend(items, created), nil
	}); err != nil {
		return User{}, err
	}

	s.record(ctx, audit.Event{
		Action:   audit.ActionCreateUser,
		TargetID: created.ID,
		Target:   created.Name,
		Details:  fmt.Sprintf("Created new %s", created.Role),
	})
	s.logger.Info("user created", "id", created.ID, "role", created.Role)
	return created, nil
}

// ToggleActive flips the active flag of a non-archived user.
func (s *Service) ToggleActive(ctx context.Context, id string) (User, error) {
	var toggled User
	if _, err := s.users.Mutate(ctx, func(items []User) ([]User, error) {
		current, ok := store.Find(items, id, ID)
		if !ok {
			return nil, ErrUserNotFound
		}
		if current.IsArchived {
			return nil, ErrUserArchived
		}
		next, _ := store.Replace(items, id, ID, func(u User) User {
			u.IsActive = !u.IsActive
			toggled = u
			return u
		})
		return next, nil
	}); err != nil {
		return User{}, err
	}

	event := audit.Event{
		Action:   audit.ActionDeactivate,
		TargetID: toggled.ID,
		Target:   toggled.Name,
		Details:  "User deactivated",
	}
	if toggled.IsActive {
		event.Action = audit.ActionActivate
		event.Details = "User activated"
	}
	s.record(ctx, event)
	return toggled, nil
}

// ChangeRole assigns role to the user. Setting the current role is a no-op;
// archived users are rejected with ErrUserArchived.
func (s *Service) ChangeRole(ctx context.Context, id string, role Role) (User, error) {
	if !role.Valid() {
		return User{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	var (
		previous Role
		updated  User
	)
	if _, err := s.users.Mutate(ctx, func(items []User) ([]User, error) {
		current, ok := store.Find(items, id, ID)
		if !ok {
			return nil, ErrUserNotFound
		}
		if current.IsArchived {
			return nil, ErrUserArchived
		}
		previous, updated = current.Role, current
		if previous == role {
			return items, nil
		}
		next, _ := store.Replace(items, id, ID, func(u User) User {
			u.Role = role
			updated = u
			return u
		})
		return next, nil
	}); err != nil {
		return User{}, err
	}

	if previous != role {
		s.record(ctx, audit.Event{
			Action:   audit.ActionRoleChange,
			TargetID: updated.ID,
			Target:   updated.Name,
			Details:  fmt.Sprintf("Role changed from %s to %s", previous, role),
		})
	}
	return updated, nil
}

// Archive marks a user archived and inactive. The confirmation must be
// exactly ConfirmPhrase; anything else changes nothing. Archiving an
// archived user returns it unchanged without a new audit entry.
func (s *Service) Archive(ctx context.Context, req ArchiveRequest) (User, error) {
	if req.Confirmation != ConfirmPhrase {
		return User{}, ErrConfirmationMismatch
	}

	var (
		archived User
		already  bool
	)
	if _, err := s.users.Mutate(ctx, func(items []User) ([]User, error) {
		current, ok := store.Find(items, req.ID, ID)
		if !ok {
			return nil, ErrUserNotFound
		}
		if current.IsArchived {
			archived, already = current, true
			return items, nil
		}
		next, _ := store.Replace(items, req.ID, ID, func(u User) User {
			u.IsArchived = true
			u.IsActive = false
			archived = u
			return u
		})
		return next, nil
	}); err != nil {
		return User{}, err
	}
	if already {
		return archived, nil
	}

	s.record(ctx, audit.Event{
		Action:   audit.ActionArchive,
		TargetID: archived.ID,
		Target:   archived.Name,
		Details:  "User archived and deactivated",
	})
	return archived, nil
}

// Export renders the users visible under q as CSV.
func (s *Service) Export(q listing.Query) (export.File, error) {
	visible, err := s.List(q)
	if err != nil {
		return export.File{}, err
	}
	return export.Render("users", s.now(), visible, ToRow)
}

func (s *Service) record(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if _, err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record audit entry", "action", event.Action, "error", err)
	}
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
