package service

import (
	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/repository"
	"github.com/telconnect/telecom-network/internal/validation"
	"github.com/telconnect/telecom-network/pkg/logger"
	"go.uber.org/zap"
)

type JobService struct {
	jobs *repository.JobRepository
}

func NewJobService(jobs *repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// JobInput carries the fields of a job posting.
type JobInput struct {
	Title          string
	Company        string
	Description    string
	Location       string
	RequiredSkills []string
}

// JobPatch carries the mutable job fields; empty values leave the stored
// value untouched, a non-nil skills slice overwrites.
type JobPatch struct {
	Title          string
	Company        string
	Description    string
	Location       string
	RequiredSkills []string
}

func (s *JobService) Create(poster *models.User, input JobInput) (*models.Job, error) {
	if err := validation.Job(input.Title, input.Company, input.Description, input.Location).OrNil(); err != nil {
		logger.Log.Warn("Job validation failed",
			zap.String("poster_id", poster.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	job := &models.Job{
		ID:             uuid.New(),
		Title:          input.Title,
		Company:        input.Company,
		Description:    input.Description,
		Location:       input.Location,
		RequiredSkills: input.RequiredSkills,
		PostedByID:     poster.ID,
	}
	if job.RequiredSkills == nil {
		job.RequiredSkills = []string{}
	}

	if err := s.jobs.Create(job); err != nil {
		logger.Log.Error("Failed to create job", zap.String("poster_id", poster.ID.String()), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Job posted",
		zap.String("job_id", job.ID.String()),
		zap.String("poster_id", poster.ID.String()),
		zap.String("company", job.Company),
	)

	return s.jobs.GetByID(job.ID)
}

func (s *JobService) List(location string, page, limit int) ([]models.Job, int64, error) {
	jobs, total, err := s.jobs.List(location, page, limit)
	if err != nil {
		logger.Log.Error("Failed to list jobs", zap.Error(err))
		return nil, 0, err
	}
	return jobs, total, nil
}

func (s *JobService) Get(id uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch job", zap.String("job_id", id.String()), zap.Error(err))
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

// Update applies a partial update. Poster or admin only.
func (s *JobService) Update(caller *models.User, id uuid.UUID, patch JobPatch) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if job.PostedByID != caller.ID && !caller.IsAdmin() {
		logger.Log.Warn("Job update denied",
			zap.String("job_id", id.String()),
			zap.String("caller_id", caller.ID.String()),
		)
		return nil, ErrForbidden
	}

	if patch.Title != "" {
		job.Title = patch.Title
	}
	if patch.Company != "" {
		job.Company = patch.Company
	}
	if patch.Description != "" {
		job.Description = patch.Description
	}
	if patch.Location != "" {
		job.Location = patch.Location
	}
	if patch.RequiredSkills != nil {
		job.RequiredSkills = patch.RequiredSkills
	}

	if err := validation.Job(job.Title, job.Company, job.Description, job.Location).OrNil(); err != nil {
		return nil, err
	}

	if err := s.jobs.Save(job); err != nil {
		logger.Log.Error("Failed to save job", zap.String("job_id", id.String()), zap.Error(err))
		return nil, err
	}

	return s.jobs.GetByID(id)
}

// Delete removes a job posting. Poster or admin only.
func (s *JobService) Delete(caller *models.User, id uuid.UUID) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}

	if job.PostedByID != caller.ID && !caller.IsAdmin() {
		logger.Log.Warn("Job delete denied",
			zap.String("job_id", id.String()),
			zap.String("caller_id", caller.ID.String()),
		)
		return ErrForbidden
	}

	if err := s.jobs.Delete(id); err != nil {
		logger.Log.Error("Failed to delete job", zap.String("job_id", id.String()), zap.Error(err))
		return err
	}

	logger.Log.Info("Job deleted",
		zap.String("job_id", id.String()),
		zap.String("caller_id", caller.ID.String()),
	)
	return nil
}
