package seeder

import "roadtrip-career/internal/domain/career"

func Defaults(catalog *career.Catalog) []Seeder {
	return []Seeder{
		DemoUserSeeder{Catalog: catalog},
	}
}
