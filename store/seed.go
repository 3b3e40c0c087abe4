package store

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Breoliveira30/DevDuo/models"
)

//go:embed seed.yaml
var seedYAML []byte

type seedProject struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Tech        []string `yaml:"tech"`
	Color       string   `yaml:"color"`
	Demo        string   `yaml:"demo"`
	Category    string   `yaml:"category"`
	Features    []string `yaml:"features"`
	Progress    int      `yaml:"progress"`
}

// DefaultProjects returns the built-in sample dataset with freshly
// generated ids.
func DefaultProjects() []models.Project {
	var seeds []seedProject
	if err := yaml.Unmarshal(seedYAML, &seeds); err != nil {
		// the dataset is embedded at build time; failing to decode it is a
		// programming error, not a runtime condition
		panic(fmt.Sprintf("store: decode seed dataset: %v", err))
	}

	projects := make([]models.Project, 0, len(seeds))
	for _, s := range seeds {
		projects = append(projects, models.Project{
			ID:          models.NewProjectID(),
			Title:       s.Title,
			Description: s.Description,
			Image:       s.Image,
			Tech:        s.Tech,
			Color:       s.Color,
			Demo:        s.Demo,
			Category:    s.Category,
			Features:    s.Features,
			Progress:    s.Progress,
		})
	}
	return projects
}
