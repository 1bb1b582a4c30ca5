package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hyeonwoo/careerfit/internal/types"
)

// GetJobPosting loads a job posting by id.
func (s *Store) GetJobPosting(ctx context.Context, id int64) (*types.JobPosting, error) {
	var job types.JobPosting
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, company_name, url, description, requirements, benefits,
		        education_level, career_level, posted_at
		 FROM job_postings WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.CompanyName, &job.URL, &job.Description,
		&job.Requirements, &job.Benefits, &job.EducationLevel, &job.CareerLevel, &job.PostedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &types.NotFoundError{Kind: "job posting", ID: strconv.FormatInt(id, 10)}
		}
		return nil, fmt.Errorf("failed to get job posting %d: %w", id, err)
	}
	return &job, nil
}

// GetActivity loads an activity by id.
func (s *Store) GetActivity(ctx context.Context, id int64) (*types.Activity, error) {
	var a types.Activity
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, organizer, category, content, tags, start_at, end_at
		 FROM activities WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Title, &a.Organizer, &a.Category, &a.Content, &a.Tags, &a.StartAt, &a.EndAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &types.NotFoundError{Kind: "activity", ID: strconv.FormatInt(id, 10)}
		}
		return nil, fmt.Errorf("failed to get activity %d: %w", id, err)
	}
	return &a, nil
}

// ListActivities returns all activities, used by bulk indexing.
func (s *Store) ListActivities(ctx context.Context) ([]*types.Activity, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, organizer, category, content, tags, start_at, end_at
		 FROM activities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var out []*types.Activity
	for rows.Next() {
		var a types.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Organizer, &a.Category, &a.Content,
			&a.Tags, &a.StartAt, &a.EndAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}
	return out, nil
}

// ListJobPostings returns all job postings, used by bulk indexing.
func (s *Store) ListJobPostings(ctx context.Context) ([]*types.JobPosting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, company_name, url, description, requirements, benefits,
		        education_level, career_level, posted_at
		 FROM job_postings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var out []*types.JobPosting
	for rows.Next() {
		var job types.JobPosting
		if err := rows.Scan(&job.ID, &job.Title, &job.CompanyName, &job.URL, &job.Description,
			&job.Requirements, &job.Benefits, &job.EducationLevel, &job.CareerLevel, &job.PostedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		out = append(out, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job postings: %w", err)
	}
	return out, nil
}

// GetUserProfile loads a user profile snapshot. The snapshot document is
// stored as a single JSONB column keyed by user id.
func (s *Store) GetUserProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfileSnapshot, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT snapshot FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &types.NotFoundError{Kind: "user profile", ID: userID.String()}
		}
		return nil, fmt.Errorf("failed to get user profile %s: %w", userID, err)
	}

	var profile types.UserProfileSnapshot
	if err := decodeJSON(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode user profile %s: %w", userID, err)
	}
	profile.UserID = userID.String()
	return &profile, nil
}
