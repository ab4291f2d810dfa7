package user

import (
	"context"
	"strings"
	"sync"
)

// CreateParams are the validated inputs for a new user.
type CreateParams struct {
	Name        string
	Email       string
	PhoneNumber string
}

// UpdateParams are the replacement values for an existing user.
type UpdateParams struct {
	Name        string
	Email       string
	PhoneNumber string
}

// service is the implementation of the Service interface. It enforces the
// directory's business rules: email and phone validation, case-insensitive
// email uniqueness, exact phone uniqueness, and id assignment. All mutations
// go through it.
type service struct {
	repo Repository

	// mu serializes mutations so two concurrent creates cannot both pass the
	// uniqueness scan or be assigned the same id.
	mu sync.Mutex
}

func NewService(repo Repository) *service {
	return &service{repo: repo}
}

var _ Service = &service{}

// List returns the current directory in insertion order.
func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Find returns the user with the given id, or ErrNotFound.
func (s *service) Find(ctx context.Context, userID int64) (User, error) {
	return s.repo.Find(ctx, userID)
}

// Create validates the candidate, checks uniqueness, assigns the next id and
// persists the record. Checks short-circuit: the returned error names the
// first rule violated.
func (s *service) Create(ctx context.Context, params CreateParams) (User, error) {
	if err := ValidateEmail(params.Email); err != nil {
		return User{}, err
	}
	if err := ValidatePhone(params.PhoneNumber); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repo.List(ctx)
	if err != nil {
		return User{}, err
	}

	if isDuplicateEmail(users, params.Email, "") {
		return User{}, ErrDuplicateEmail
	}
	if isDuplicatePhone(users, params.PhoneNumber, "") {
		return User{}, ErrDuplicatePhoneNumber
	}

	u := User{
		ID:          nextID(users),
		Name:        params.Name,
		Email:       params.Email,
		PhoneNumber: params.PhoneNumber,
	}

	if err := s.repo.Insert(ctx, u); err != nil {
		return User{}, err
	}

	return u, nil
}

// Update overwrites the mutable fields of an existing user. The user's own
// current email and phone are excluded from the uniqueness scan so an
// unchanged value never reads as a collision. The id never changes.
func (s *service) Update(ctx context.Context, userID int64, params UpdateParams) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Find(ctx, userID)
	if err != nil {
		return User{}, err
	}

	if err := ValidateEmail(params.Email); err != nil {
		return User{}, err
	}
	if err := ValidatePhone(params.PhoneNumber); err != nil {
		return User{}, err
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return User{}, err
	}

	if isDuplicateEmail(users, params.Email, current.Email) {
		return User{}, ErrDuplicateEmail
	}
	if isDuplicatePhone(users, params.PhoneNumber, current.PhoneNumber) {
		return User{}, ErrDuplicatePhoneNumber
	}

	updated := User{
		ID:          current.ID,
		Name:        params.Name,
		Email:       params.Email,
		PhoneNumber: params.PhoneNumber,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return User{}, err
	}

	return updated, nil
}

// Delete removes the user with the given id. Surviving records keep their
// ids: the directory never renumbers.
func (s *service) Delete(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.Find(ctx, userID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, userID)
}

// isDuplicateEmail reports whether candidate collides with an existing
// user's email, comparing case-insensitively. A record whose email equals
// exclude is not counted; pass "" to scan all records.
func isDuplicateEmail(users []User, candidate, exclude string) bool {
	for _, u := range users {
		if exclude != "" && strings.EqualFold(u.Email, exclude) {
			continue
		}
		if strings.EqualFold(u.Email, candidate) {
			return true
		}
	}
	return false
}

// isDuplicatePhone reports whether candidate collides with an existing
// user's phone number, comparing exactly.
func isDuplicatePhone(users []User, candidate, exclude string) bool {
	for _, u := range users {
		if exclude != "" && u.PhoneNumber == exclude {
			continue
		}
		if u.PhoneNumber == candidate {
			return true
		}
	}
	return false
}

// nextID is max existing id + 1, or 1 for an empty directory. An id can be
// reused after the highest-id record is deleted.
func nextID(users []User) int64 {
	var maxID int64
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}
