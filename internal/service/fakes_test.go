package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"business_manager/internal/model"
	"business_manager/internal/repository"
)

// memUserRepo is an in-memory repository.UserRepository
type memUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[int]model.User
	err    error // returned by every call when set
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[int]model.User{}}
}

func cloneUser(u model.User) *model.User {
	if u.AccessToken != nil {
		tok := *u.AccessToken
		u.AccessToken = &tok
	}
	if u.AccessTokenExpiry != nil {
		exp := *u.AccessTokenExpiry
		u.AccessTokenExpiry = &exp
	}
	return &u
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *cloneUser(*user)
	return nil
}

func (r *memUserRepo) find(match func(model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if u := r.users[id]; match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Email == email })
}

func (r *memUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.ID == id })
}

func (r *memUserRepo) FindByToken(_ context.Context, token string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.AccessToken != nil && *u.AccessToken == token })
}

func (r *memUserRepo) UpdateSession(_ context.Context, id int, token string, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[id]
	if !ok {
		return errors.New("no such user")
	}
	u.AccessToken = &token
	u.AccessTokenExpiry = &expiry
	r.users[id] = u
	return nil
}

func (r *memUserRepo) ClearSession(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if u, ok := r.users[id]; ok {
		u.AccessToken = nil
		u.AccessTokenExpiry = nil
		r.users[id] = u
	}
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memUserRepo) get(id int) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *cloneUser(r.users[id])
}

// countingLimiter is an in-process LoginLimiter
type countingLimiter struct {
	max      int
	failures map[string]int
	resets   int
}

func newCountingLimiter(max int) *countingLimiter {
	return &countingLimiter{max: max, failures: map[string]int{}}
}

func (l *countingLimiter) Allow(_ context.Context, email string) bool {
	return l.failures[email] < l.max
}

func (l *countingLimiter) RegisterFailure(_ context.Context, email string) {
	l.failures[email]++
}

func (l *countingLimiter) Reset(_ context.Context, email string) {
	delete(l.failures, email)
	l.resets++
}

// memCustomerRepo is an in-memory repository.CustomerRepository
type memCustomerRepo struct {
	nextID    int
	customers map[int]model.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{nextID: 1, customers: map[int]model.Customer{}}
}

func (r *memCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) FindByID(_ context.Context, id int) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCustomerRepo) FindByUser(_ context.Context, userID int) ([]model.Customer, error) {
	out := []model.Customer{}
	for _, c := range r.customers {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return errors.New("customer not found for update")
	}
	c.UpdatedAt = time.Now()
	r.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.customers[id]; !ok {
		return errors.New("customer not found for deletion")
	}
	delete(r.customers, id)
	return nil
}
