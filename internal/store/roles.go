package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hyeonwoo/careerfit/internal/types"
)

// GetRole loads a target profile by its stable string id.
func (s *Store) GetRole(ctx context.Context, id string) (*types.TargetProfile, error) {
	var (
		role         types.TargetProfile
		requiredJSON []byte
		bonusJSON    []byte
		majorsJSON   []byte
		certsJSON    []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, description, expected_seniority,
		        required_skills, bonus_skills, major_mapping, recommended_certifications
		 FROM roles WHERE id = $1`,
		id,
	).Scan(&role.ID, &role.Name, &role.Description, &role.ExpectedSeniority,
		&requiredJSON, &bonusJSON, &majorsJSON, &certsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &types.NotFoundError{Kind: "role", ID: id}
		}
		return nil, fmt.Errorf("failed to get role %s: %w", id, err)
	}

	if err := decodeJSON(requiredJSON, &role.RequiredSkills); err != nil {
		return nil, fmt.Errorf("failed to decode required skills for role %s: %w", id, err)
	}
	if err := decodeJSON(bonusJSON, &role.BonusSkills); err != nil {
		return nil, fmt.Errorf("failed to decode bonus skills for role %s: %w", id, err)
	}
	if err := decodeJSON(majorsJSON, &role.MajorMapping); err != nil {
		return nil, fmt.Errorf("failed to decode major mapping for role %s: %w", id, err)
	}
	if err := decodeJSON(certsJSON, &role.RecommendedCertifications); err != nil {
		return nil, fmt.Errorf("failed to decode certifications for role %s: %w", id, err)
	}
	return &role, nil
}

// UpsertRole creates or replaces a target profile.
func (s *Store) UpsertRole(ctx context.Context, role *types.TargetProfile) error {
	if role == nil || role.ID == "" {
		return &types.InvalidInputError{Message: "role id is required"}
	}

	required, err := json.Marshal(role.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}
	bonus, err := json.Marshal(role.BonusSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal bonus skills: %w", err)
	}
	majors, err := json.Marshal(role.MajorMapping)
	if err != nil {
		return fmt.Errorf("failed to marshal major mapping: %w", err)
	}
	certs, err := json.Marshal(role.RecommendedCertifications)
	if err != nil {
		return fmt.Errorf("failed to marshal certifications: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO roles (id, name, description, expected_seniority,
		                    required_skills, bonus_skills, major_mapping, recommended_certifications)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
		   name = $2, description = $3, expected_seniority = $4,
		   required_skills = $5, bonus_skills = $6, major_mapping = $7,
		   recommended_certifications = $8, updated_at = NOW()`,
		role.ID, role.Name, role.Description, role.ExpectedSeniority,
		required, bonus, majors, certs,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert role %s: %w", role.ID, err)
	}
	return nil
}

// DeleteRole removes a target profile.
func (s *Store) DeleteRole(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete role %s: %w", id, err)
	}
	return nil
}

// decodeJSON unmarshals a nullable JSONB column into out, leaving out
// untouched for NULL columns.
func decodeJSON(raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
