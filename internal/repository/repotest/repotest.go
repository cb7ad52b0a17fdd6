// Package repotest provides in-memory stand-ins for the storage, session,
// event and embedding ports.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/repository"
	"github.com/vetlink/vetlink-api/internal/response"
	"github.com/vetlink/vetlink-api/internal/session"
)

type Users struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.User
}

func NewUsers(users ...*model.User) *Users {
	f := &Users{items: map[uuid.UUID]*model.User{}}
	for _, u := range users {
		f.items[u.ID] = u
	}
	return f
}

func (f *Users) CreateUser(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.items[u.ID] = u
	return nil
}

func (f *Users) FindUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.items[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *Users) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type Profiles struct {
	Veterans  map[uuid.UUID]*model.VeteranProfile
	Employers map[uuid.UUID]*model.EmployerProfile
	Order     []uuid.UUID
}

func NewProfiles() *Profiles {
	return &Profiles{
		Veterans:  map[uuid.UUID]*model.VeteranProfile{},
		Employers: map[uuid.UUID]*model.EmployerProfile{},
	}
}

func (f *Profiles) FindVeteranProfile(_ context.Context, userID uuid.UUID) (*model.VeteranProfile, error) {
	if p, ok := f.Veterans[userID]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *Profiles) SaveVeteranProfile(_ context.Context, p *model.VeteranProfile) error {
	if _, ok := f.Veterans[p.UserID]; !ok {
		f.Order = append(f.Order, p.UserID)
	}
	f.Veterans[p.UserID] = p
	return nil
}

func (f *Profiles) ListVeteranProfiles(context.Context) ([]model.VeteranProfile, error) {
	out := make([]model.VeteranProfile, 0, len(f.Order))
	for _, id := range f.Order {
		out = append(out, *f.Veterans[id])
	}
	return out, nil
}

func (f *Profiles) FindEmployerProfile(_ context.Context, userID uuid.UUID) (*model.EmployerProfile, error) {
	if p, ok := f.Employers[userID]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *Profiles) SaveEmployerProfile(_ context.Context, p *model.EmployerProfile) error {
	f.Employers[p.UserID] = p
	return nil
}

// Jobs keeps postings in insertion order; listings return newest first.
type Jobs struct {
	Items    []*model.JobPosting
	Searched *pgvector.Vector
}

func (f *Jobs) CreateJob(_ context.Context, j *model.JobPosting) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now()
	}
	f.Items = append(f.Items, j)
	return nil
}

func (f *Jobs) UpdateJob(_ context.Context, j *model.JobPosting) error {
	for i, existing := range f.Items {
		if existing.ID == j.ID {
			f.Items[i] = j
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *Jobs) DeleteJob(_ context.Context, id uuid.UUID) error {
	for i, j := range f.Items {
		if j.ID == id {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *Jobs) FindJobByID(_ context.Context, id uuid.UUID) (*model.JobPosting, error) {
	for _, j := range f.Items {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *Jobs) newestFirst(keep func(*model.JobPosting) bool) []model.JobPosting {
	var out []model.JobPosting
	for i := len(f.Items) - 1; i >= 0; i-- {
		if keep(f.Items[i]) {
			out = append(out, *f.Items[i])
		}
	}
	return out
}

func (f *Jobs) ListJobs(_ context.Context, filter repository.JobFilter, page response.PageRequest) ([]model.JobPosting, int64, error) {
	all := f.newestFirst(func(j *model.JobPosting) bool {
		return j.Active && (filter.City == "" || j.City == filter.City)
	})
	total := int64(len(all))
	start := min(page.Offset(), len(all))
	end := min(start+page.PageSize, len(all))
	return all[start:end], total, nil
}

func (f *Jobs) ListActiveJobs(context.Context) ([]model.JobPosting, error) {
	return f.newestFirst(func(j *model.JobPosting) bool { return j.Active }), nil
}

func (f *Jobs) ListJobsByEmployer(_ context.Context, employerID uuid.UUID) ([]model.JobPosting, error) {
	return f.newestFirst(func(j *model.JobPosting) bool { return j.EmployerID == employerID }), nil
}

func (f *Jobs) SearchJobs(_ context.Context, embedding pgvector.Vector, topK int) ([]model.JobPosting, error) {
	f.Searched = &embedding
	all, _ := f.ListActiveJobs(context.Background())
	if len(all) > topK {
		all = all[:topK]
	}
	return all, nil
}

func (f *Jobs) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, j := range f.Items {
		if j.Active && j.ExpiresAt != nil && j.ExpiresAt.Before(now) {
			j.Active = false
			n++
		}
	}
	return n, nil
}

type Applications struct {
	Items []*model.Application
}

func (f *Applications) CreateApplication(_ context.Context, a *model.Application) error {
	for _, existing := range f.Items {
		if existing.JobID == a.JobID && existing.VeteranID == a.VeteranID {
			return repository.ErrDuplicate
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.Items = append(f.Items, a)
	return nil
}

func (f *Applications) UpdateApplication(_ context.Context, a *model.Application) error {
	for i, existing := range f.Items {
		if existing.ID == a.ID {
			f.Items[i] = a
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *Applications) FindApplicationByID(_ context.Context, id uuid.UUID) (*model.Application, error) {
	for _, a := range f.Items {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *Applications) ListApplicationsByVeteran(_ context.Context, veteranID uuid.UUID) ([]model.Application, error) {
	var out []model.Application
	for _, a := range f.Items {
		if a.VeteranID == veteranID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *Applications) ListApplicationsByJob(_ context.Context, jobID uuid.UUID) ([]model.Application, error) {
	var out []model.Application
	for _, a := range f.Items {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out, nil
}

type Messages struct {
	Items []*model.Message
}

func (f *Messages) CreateMessage(_ context.Context, m *model.Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.Items = append(f.Items, m)
	return nil
}

func (f *Messages) between(a, b uuid.UUID) []model.Message {
	var out []model.Message
	for _, m := range f.Items {
		if (m.SenderID == a && m.RecipientID == b) || (m.SenderID == b && m.RecipientID == a) {
			out = append(out, *m)
		}
	}
	return out
}

func (f *Messages) ListConversation(_ context.Context, userID, otherID uuid.UUID, page response.PageRequest) ([]model.Message, int64, error) {
	all := f.between(userID, otherID)
	start := min(page.Offset(), len(all))
	end := min(start+page.PageSize, len(all))
	return all[start:end], int64(len(all)), nil
}

func (f *Messages) ListThreads(_ context.Context, userID uuid.UUID) ([]repository.Thread, error) {
	latest := map[uuid.UUID]repository.Thread{}
	var order []uuid.UUID
	for _, m := range f.Items {
		if m.SenderID != userID && m.RecipientID != userID {
			continue
		}
		other := m.Counterpart(userID)
		t, ok := latest[other]
		if !ok {
			order = append(order, other)
		}
		t.CounterpartID = other
		t.LastMessage = *m
		if m.RecipientID == userID && m.ReadAt == nil {
			t.Unread++
		}
		latest[other] = t
	}
	out := make([]repository.Thread, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		out = append(out, latest[order[i]])
	}
	return out, nil
}

func (f *Messages) MarkConversationRead(_ context.Context, readerID, otherID uuid.UUID, at time.Time) (int64, error) {
	var n int64
	for _, m := range f.Items {
		if m.RecipientID == readerID && m.SenderID == otherID && m.ReadAt == nil {
			m.ReadAt = &at
			n++
		}
	}
	return n, nil
}

type Sessions struct {
	items map[string]session.Session
	TTL   time.Duration
}

func NewSessions() *Sessions {
	return &Sessions{items: map[string]session.Session{}}
}

func (f *Sessions) Create(_ context.Context, s session.Session, ttl time.Duration) (string, error) {
	token, err := session.NewToken()
	if err != nil {
		return "", err
	}
	f.items[token] = s
	f.TTL = ttl
	return token, nil
}

func (f *Sessions) Resolve(_ context.Context, token string) (session.Session, error) {
	if s, ok := f.items[token]; ok {
		return s, nil
	}
	return session.Session{}, session.ErrNotFound
}

func (f *Sessions) Delete(_ context.Context, token string) error {
	delete(f.items, token)
	return nil
}

// Event is one recorded Publish call.
type Event struct {
	Channel string
	Payload any
}

type Publisher struct {
	Events []Event
	Err    error
}

func (f *Publisher) Publish(_ context.Context, channel string, payload any) error {
	f.Events = append(f.Events, Event{channel, payload})
	return f.Err
}

type Embedder struct {
	Dims  int
	Err   error
	Calls []string
}

func (f *Embedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.Calls = append(f.Calls, text)
	if f.Err != nil {
		return nil, f.Err
	}
	return make([]float32, f.Dims), nil
}
