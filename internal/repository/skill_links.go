package repository

import (
	"context"
	"strings"

	"staff-match/internal/database"
	"staff-match/internal/domain/skill"

	"github.com/google/uuid"
)

// ensureSkillIDs returns one id per distinct non-empty name, creating missing rows.
func ensureSkillIDs(ctx context.Context, q database.Querier, names []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		var id uuid.UUID
		err := q.QueryRow(ctx,
			`INSERT INTO skills (id, name, category)
			 VALUES ($1, $2, $3)
			 ON CONFLICT ((lower(name))) DO UPDATE SET name = skills.name
			 RETURNING id`,
			uuid.New(), name, skill.DefaultCategory,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
