package seeder

import (
	"context"

	"staff-match/internal/database"
	"staff-match/internal/domain/skill"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

// catalog is the reference skill list the staffing desk categorises by.
var catalog = []skill.Skill{
	{Name: "JavaScript", Category: "Frontend"},
	{Name: "TypeScript", Category: "Frontend"},
	{Name: "React", Category: "Frontend"},
	{Name: "Vue.js", Category: "Frontend"},
	{Name: "Angular", Category: "Frontend"},
	{Name: "Node.js", Category: "Backend"},
	{Name: "Python", Category: "Backend"},
	{Name: "Java", Category: "Backend"},
	{Name: "C#", Category: "Backend"},
	{Name: "Go", Category: "Backend"},
	{Name: "PHP", Category: "Backend"},
	{Name: "PostgreSQL", Category: "Database"},
	{Name: "MySQL", Category: "Database"},
	{Name: "MongoDB", Category: "Database"},
	{Name: "Redis", Category: "Database"},
	{Name: "Docker", Category: "DevOps"},
	{Name: "Kubernetes", Category: "DevOps"},
	{Name: "Terraform", Category: "DevOps"},
	{Name: "AWS", Category: "Cloud"},
	{Name: "Azure", Category: "Cloud"},
	{Name: "GCP", Category: "Cloud"},
	{Name: "Scrum", Category: "Methodology"},
	{Name: "Project Management", Category: "Management"},
	{Name: "Sales", Category: "Business"},
	{Name: "Recruitment", Category: "Business"},
}

// Run inserts the catalog. Skills first seen through a sync carry the default
// category and are recategorised here; curated categories are left alone.
func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := RequireColumns(ctx, db, "skills", "id", "name", "category"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range catalog {
			if _, err := tx.Exec(ctx,
				`INSERT INTO skills (name, category) VALUES ($1, $2)
				 ON CONFLICT ((lower(name))) DO UPDATE SET category = EXCLUDED.category
				 WHERE skills.category = $3`,
				it.Name, it.Category, skill.DefaultCategory,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
