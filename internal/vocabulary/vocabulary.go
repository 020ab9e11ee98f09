// Package vocabulary holds the department tables shared by every generator:
// role labels, project title/stage templates and task titles for the local
// content generator.
//
// Departments are kept in a fixed priority order. A name is resolved to the
// first department whose key is a substring of it, so "Product Engineering"
// resolves to Engineering when Engineering is listed first.
package vocabulary

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDepartment is used when no department key matches a name
const DefaultDepartment = "Operations"

// GeneralContentKey names the task-title list used for unrecognized departments
const GeneralContentKey = "General"

// Department is one row of the vocabulary tables
type Department struct {
	Name          string   `yaml:"name"`
	Roles         []string `yaml:"roles"`
	ProjectTitles []string `yaml:"project_titles"`
	Stages        []string `yaml:"stages"`
	TaskTitles    []string `yaml:"task_titles,omitempty"`
}

// Vocabulary is the ordered set of departments plus the generic task titles
type Vocabulary struct {
	Departments       []Department `yaml:"departments"`
	Default           string       `yaml:"default_department"`
	GeneralTaskTitles []string     `yaml:"general_task_titles"`
}

// Default returns the built-in vocabulary
func Default() *Vocabulary {
	return &Vocabulary{
		Default: DefaultDepartment,
		Departments: []Department{
			{
				Name: "Engineering",
				Roles: []string{
					"Frontend Engineer", "Backend Engineer", "Fullstack Developer",
					"DevOps Engineer", "QA Automation Engineer", "Engineering Manager",
				},
				ProjectTitles: []string{"Mobile App Refactor", "API V2 Migration", "Security Audit 2026", "Payment Gateway Integration"},
				Stages:        []string{"Backlog", "In Development", "Code Review", "QA", "Deployed"},
				TaskTitles: []string{
					"Refactor authentication middleware", "Fix race condition in payment API",
					"Optimize database queries", "Upgrade React to v18",
					"Write integration tests", "Setup CI/CD for staging",
				},
			},
			{
				Name:          "Product",
				Roles:         []string{"Product Manager", "UI/UX Designer", "User Researcher", "Product Analyst"},
				ProjectTitles: []string{"Q3 Roadmap Planning", "User Interview Cycle", "Beta Program Launch", "Competitor Analysis"},
				Stages:        []string{"Ideas", "Researching", "Drafting", "Finalized"},
				TaskTitles: []string{
					"Synthesize interview notes", "Draft PRD for onboarding flow",
					"Prioritize feature requests", "Prototype settings redesign",
					"Define success metrics",
				},
			},
			{
				Name: "Marketing",
				Roles: []string{
					"Content Strategist", "Growth Lead", "SEO Specialist",
					"Social Media Manager", "Product Marketing Manager",
				},
				ProjectTitles: []string{"Summer Brand Campaign", "Social Media Calendar", "Q1 Conference Prep", "SEO Optimization"},
				Stages:        []string{"Brainstorming", "Copywriting", "Design", "Approval", "Published"},
				TaskTitles: []string{
					"Draft social copy", "Design assets for Q3 campaign",
					"Review Google Ads", "Coordinate webinar",
					"Update landing page SEO", "Analyze competitor pricing",
				},
			},
			{
				Name:          "Operations",
				Roles:         []string{"Account Executive", "Customer Success Manager", "HR Generalist", "Recruiter"},
				ProjectTitles: []string{"Employee Onboarding", "Office Move Log", "Quarterly Hiring Plan"},
				Stages:        []string{"To Do", "In Progress", "Blocked", "Done"},
				TaskTitles: []string{
					"Schedule new hire orientation", "Reconcile vendor invoices",
					"Update benefits enrollment guide", "Book conference rooms",
					"Collect quarterly feedback",
				},
			},
		},
		GeneralTaskTitles: []string{
			"Weekly team sync notes", "Onboard new hire", "Renew software licenses",
			"Quarterly budget review", "Update internal docs",
		},
	}
}

// LoadFile reads a vocabulary from a YAML file
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML vocabulary document
func Parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	if v.Default == "" {
		v.Default = DefaultDepartment
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate checks that every department can drive the generators and that
// the default department exists
func (v *Vocabulary) Validate() error {
	if len(v.Departments) == 0 {
		return fmt.Errorf("vocabulary has no departments")
	}
	seen := make(map[string]bool, len(v.Departments))
	for _, d := range v.Departments {
		if d.Name == "" {
			return fmt.Errorf("vocabulary department without a name")
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate vocabulary department %q", d.Name)
		}
		seen[d.Name] = true
		if len(d.Roles) == 0 || len(d.ProjectTitles) == 0 || len(d.Stages) == 0 {
			return fmt.Errorf("department %q needs roles, project titles and stages", d.Name)
		}
	}
	if !seen[v.Default] {
		return fmt.Errorf("default department %q is not defined", v.Default)
	}
	if len(v.GeneralTaskTitles) == 0 {
		return fmt.Errorf("vocabulary has no general task titles")
	}
	return nil
}

// Names returns the department keys in priority order
func (v *Vocabulary) Names() []string {
	names := make([]string, len(v.Departments))
	for i, d := range v.Departments {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the department with exactly this key
func (v *Vocabulary) Lookup(name string) (*Department, bool) {
	for i := range v.Departments {
		if v.Departments[i].Name == name {
			return &v.Departments[i], true
		}
	}
	return nil, false
}

// Resolve returns the first department whose key occurs in name, or the
// default department when none does
func (v *Vocabulary) Resolve(name string) *Department {
	for i := range v.Departments {
		if strings.Contains(name, v.Departments[i].Name) {
			return &v.Departments[i]
		}
	}
	d, _ := v.Lookup(v.Default)
	return d
}

// TaskTitles returns the local task-title list for a department string.
// Only departments that define task titles take part in the match; anything
// else gets the general list.
func (v *Vocabulary) TaskTitles(department string) (string, []string) {
	for _, d := range v.Departments {
		if len(d.TaskTitles) > 0 && strings.Contains(department, d.Name) {
			return d.Name, d.TaskTitles
		}
	}
	return GeneralContentKey, v.GeneralTaskTitles
}
