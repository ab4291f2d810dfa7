package user

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc   func(ctx context.Context) ([]User, error)
	FindFunc   func(ctx context.Context, userID int64) (User, error)
	CreateFunc func(ctx context.Context, params CreateParams) (User, error)
	UpdateFunc func(ctx context.Context, userID int64, params UpdateParams) (User, error)
	DeleteFunc func(ctx context.Context, userID int64) error
}

var _ Service = &StubService{}

func (s *StubService) List(ctx context.Context) ([]User, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, userID int64) (User, error) {
	if s.FindFunc == nil {
		return User{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, userID)
}

func (s *StubService) Create(ctx context.Context, params CreateParams) (User, error) {
	if s.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Update(ctx context.Context, userID int64, params UpdateParams) (User, error) {
	if s.UpdateFunc == nil {
		return User{}, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, userID, params)
}

func (s *StubService) Delete(ctx context.Context, userID int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, userID)
}

type StubRepo struct {
	ListFunc   func(ctx context.Context) ([]User, error)
	FindFunc   func(ctx context.Context, userID int64) (User, error)
	InsertFunc func(ctx context.Context, u User) error
	UpdateFunc func(ctx context.Context, u User) error
	DeleteFunc func(ctx context.Context, userID int64) error
}

var _ Repository = &StubRepo{}

func (r *StubRepo) List(ctx context.Context) ([]User, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, userID int64) (User, error) {
	if r.FindFunc == nil {
		return User{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) Insert(ctx context.Context, u User) error {
	if r.InsertFunc == nil {
		return errors.New("Insert() not implemented by stub")
	}
	return r.InsertFunc(ctx, u)
}

func (r *StubRepo) Update(ctx context.Context, u User) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, u)
}

func (r *StubRepo) Delete(ctx context.Context, userID int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, userID)
}
