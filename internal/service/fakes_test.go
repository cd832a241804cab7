package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/events"
	"github.com/rafaelmelo2/maonamassa/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, pgx.ErrNoRows
	}
	out := user
	return &out, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) && user.DeletedAt == nil {
			out := user
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	now := time.Now()
	user.DeletedAt = &now
	r.users[id] = user
	return nil
}

type fakeProfessionalRepo struct {
	mu            sync.Mutex
	professionals map[string]domain.Professional
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{professionals: map[string]domain.Professional{}}
}

func (r *fakeProfessionalRepo) Create(ctx context.Context, professional *domain.Professional) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if professional.ID == "" {
		professional.ID = uuid.NewString()
	}
	r.professionals[professional.ID] = *professional
	return nil
}

func (r *fakeProfessionalRepo) Update(ctx context.Context, professional *domain.Professional) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.professionals[professional.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.professionals[professional.ID] = *professional
	return nil
}

func (r *fakeProfessionalRepo) GetByID(ctx context.Context, id string) (*domain.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	professional, ok := r.professionals[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := professional
	return &out, nil
}

func (r *fakeProfessionalRepo) GetByUserID(ctx context.Context, userID string) (*domain.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, professional := range r.professionals {
		if professional.UserID == userID {
			out := professional
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeProfessionalRepo) ListWithFilter(ctx context.Context, filter repository.ProfessionalFilter) ([]domain.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Professional, 0, len(r.professionals))
	for _, professional := range r.professionals {
		if filter.Status != nil && professional.Status != *filter.Status {
			continue
		}
		out = append(out, professional)
	}
	return out, nil
}

type fakeServiceRepo struct {
	mu       sync.Mutex
	listings map[string]domain.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{listings: map[string]domain.Service{}}
}

func (r *fakeServiceRepo) Create(ctx context.Context, listing *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	r.listings[listing.ID] = *listing
	return nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, listing *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[listing.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.listings[listing.ID] = *listing
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok || listing.DeletedAt != nil {
		return nil, pgx.ErrNoRows
	}
	out := listing
	return &out, nil
}

func (r *fakeServiceRepo) ListWithFilter(ctx context.Context, filter repository.ServiceFilter) ([]domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Service, 0, len(r.listings))
	for _, listing := range r.listings {
		if listing.DeletedAt != nil {
			continue
		}
		out = append(out, listing)
	}
	return out, nil
}

func (r *fakeServiceRepo) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return pgx.ErrNoRows
	}
	now := time.Now()
	listing.DeletedAt = &now
	r.listings[id] = listing
	return nil
}

type fakeContractRepo struct {
	mu        sync.Mutex
	contracts map[string]domain.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: map[string]domain.Contract{}}
}

func (r *fakeContractRepo) Create(ctx context.Context, contract *domain.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if contract.ID == "" {
		contract.ID = uuid.NewString()
	}
	r.contracts[contract.ID] = *contract
	return nil
}

func (r *fakeContractRepo) Update(ctx context.Context, contract *domain.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contracts[contract.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.contracts[contract.ID] = *contract
	return nil
}

func (r *fakeContractRepo) GetByID(ctx context.Context, id string) (*domain.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	contract, ok := r.contracts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := contract
	return &out, nil
}

func (r *fakeContractRepo) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]domain.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Contract
	for _, contract := range r.contracts {
		if contract.ClientID == clientID {
			out = append(out, contract)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) ListByProfessional(ctx context.Context, professionalID string, limit, offset int) ([]domain.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Contract
	for _, contract := range r.contracts {
		if contract.ProfessionalID == professionalID {
			out = append(out, contract)
		}
	}
	return out, nil
}

type fakeResetRepo struct {
	mu     sync.Mutex
	tokens map[string]repository.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: map[string]repository.PasswordResetToken{}}
}

func (r *fakeResetRepo) Create(ctx context.Context, token *repository.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	r.tokens[token.Token] = *token
	return nil
}

func (r *fakeResetRepo) GetByToken(ctx context.Context, token string) (*repository.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tokens[token]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := stored
	return &out, nil
}

func (r *fakeResetRepo) MarkUsed(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, stored := range r.tokens {
		if stored.ID == id {
			now := time.Now()
			stored.UsedAt = &now
			r.tokens[key] = stored
			return nil
		}
	}
	return pgx.ErrNoRows
}

// recordingDispatcher collects published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.Event, len(d.events))
	copy(out, d.events)
	return out
}
