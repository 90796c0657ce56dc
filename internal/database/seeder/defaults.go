package seeder

// Defaults is the reference data every environment needs.
func Defaults() []Seeder {
	return []Seeder{SkillsSeeder{}}
}

// WithDemo adds the demo candidates and jobs after the defaults.
func WithDemo() []Seeder {
	return append(Defaults(), DemoSeeder{})
}
