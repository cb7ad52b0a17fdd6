package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/repository"
	"github.com/vetlink/vetlink-api/internal/response"
	"github.com/vetlink/vetlink-api/internal/session"
)

// Repository contracts. The gorm implementations live in package repository;
// tests substitute in-memory fakes.

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type ProfileRepository interface {
	FindVeteranProfile(ctx context.Context, userID uuid.UUID) (*model.VeteranProfile, error)
	SaveVeteranProfile(ctx context.Context, profile *model.VeteranProfile) error
	ListVeteranProfiles(ctx context.Context) ([]model.VeteranProfile, error)
	FindEmployerProfile(ctx context.Context, userID uuid.UUID) (*model.EmployerProfile, error)
	SaveEmployerProfile(ctx context.Context, profile *model.EmployerProfile) error
}

type JobRepository interface {
	CreateJob(ctx context.Context, job *model.JobPosting) error
	UpdateJob(ctx context.Context, job *model.JobPosting) error
	DeleteJob(ctx context.Context, id uuid.UUID) error
	FindJobByID(ctx context.Context, id uuid.UUID) (*model.JobPosting, error)
	ListJobs(ctx context.Context, filter repository.JobFilter, page response.PageRequest) ([]model.JobPosting, int64, error)
	ListActiveJobs(ctx context.Context) ([]model.JobPosting, error)
	ListJobsByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.JobPosting, error)
	SearchJobs(ctx context.Context, embedding pgvector.Vector, topK int) ([]model.JobPosting, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app *model.Application) error
	UpdateApplication(ctx context.Context, app *model.Application) error
	FindApplicationByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	ListApplicationsByVeteran(ctx context.Context, veteranID uuid.UUID) ([]model.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *model.Message) error
	ListConversation(ctx context.Context, userID, otherID uuid.UUID, page response.PageRequest) ([]model.Message, int64, error)
	ListThreads(ctx context.Context, userID uuid.UUID) ([]repository.Thread, error)
	MarkConversationRead(ctx context.Context, readerID, otherID uuid.UUID, at time.Time) (int64, error)
}

// SessionStore issues and resolves opaque bearer tokens.
type SessionStore interface {
	Create(ctx context.Context, s session.Session, ttl time.Duration) (string, error)
	Resolve(ctx context.Context, token string) (session.Session, error)
	Delete(ctx context.Context, token string) error
}

// Publisher fans domain events out to other processes.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// Embedder turns text into a vector for semantic job search.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}
