package service

import (
	"context"

	"github.com/akulagin/shopapi/internal/errs"
	"github.com/akulagin/shopapi/internal/model"
	"github.com/akulagin/shopapi/internal/repository"
	"github.com/gofrs/uuid/v5"
)

type fakeUsers struct {
	byEmail map[string]*model.User
	// session rows written through CreateWithSession, keyed by token
	sessions map[string]*model.Session

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail:  map[string]*model.User{},
		sessions: map[string]*model.Session{},
	}
}

func (f *fakeUsers) CreateWithSession(_ context.Context, u *model.User, s *model.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	f.byEmail[u.Email] = &cpy
	scpy := *s
	f.sessions[s.Token] = &scpy
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
			for tok, s := range f.sessions {
				if s.UserID == id {
					delete(f.sessions, tok)
				}
			}
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeSessions struct {
	byToken map[string]*model.Session
	users   map[uuid.UUID]*model.User

	createErr error
	deleteErr error

	deleteCalls int
}

var _ repository.SessionRepository = (*fakeSessions)(nil)

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		byToken: map[string]*model.Session{},
		users:   map[uuid.UUID]*model.User{},
	}
}

func (f *fakeSessions) Create(_ context.Context, s *model.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	cpy := *s
	f.byToken[s.Token] = &cpy
	return nil
}

func (f *fakeSessions) GetUserByToken(_ context.Context, token string) (*model.User, error) {
	s, ok := f.byToken[token]
	if !ok {
		return nil, errs.ErrNotFound
	}
	u, ok := f.users[s.UserID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeSessions) Delete(_ context.Context, token string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.byToken, token)
	return nil
}

type fakeOrders struct {
	created []*model.Order

	createErr error
	listErr   error
}

var _ repository.OrderRepository = (*fakeOrders)(nil)

func (f *fakeOrders) Create(_ context.Context, o *model.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	cpy := *o
	f.created = append(f.created, &cpy)
	return nil
}

func (f *fakeOrders) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []model.Order{}
	// newest-first like the real repo
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID == userID {
			out = append(out, *f.created[i])
		}
	}
	return out, nil
}
