package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"org-simulator/internal/database/models"
	apperrors "org-simulator/internal/errors"
	"org-simulator/internal/logger"
	"org-simulator/internal/metrics"
	"org-simulator/internal/repository"
	"org-simulator/internal/vocabulary"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SimulationSummary reports what a successful run created
type SimulationSummary struct {
	RunID        string        `json:"run_id"`
	Seed         uint64        `json:"seed"`
	Organization string        `json:"organization"`
	Domain       string        `json:"domain"`
	Users        int           `json:"users"`
	Teams        int           `json:"teams"`
	Memberships  int           `json:"memberships"`
	Admins       int           `json:"admins"`
	Projects     int           `json:"projects"`
	Sections     int           `json:"sections"`
	Tasks        int           `json:"tasks"`
	Duration     time.Duration `json:"duration"`
}

// SimulationService runs the full generation pipeline:
// organization, teams, users with memberships, projects with sections, tasks.
type SimulationService struct {
	store     repository.StoreInterface
	vocab     *vocabulary.Vocabulary
	companies CompanyNameSource
	content   ContentProvider
	validator *validator.Validate
	metrics   *metrics.Recorder
}

// NewSimulationService creates a new simulation service
func NewSimulationService(store repository.StoreInterface, vocab *vocabulary.Vocabulary, companies CompanyNameSource, content ContentProvider, validator *validator.Validate, rec *metrics.Recorder) *SimulationService {
	return &SimulationService{
		store:     store,
		vocab:     vocab,
		companies: companies,
		content:   content,
		validator: validator,
		metrics:   rec,
	}
}

// Run generates one organization inside a single store transaction. Any
// error discards everything written by the run.
func (s *SimulationService) Run(ctx context.Context, opts SimulationOptions) (*SimulationSummary, error) {
	if err := s.validator.Struct(opts); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	runID := uuid.NewString()
	ctx = logger.ContextWithRunID(ctx, runID)
	log := logger.WithContext(ctx)
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))

	log.WithFields(map[string]interface{}{
		"users": opts.TotalUsers,
		"seed":  seed,
	}).Info("Starting simulation")
	start := time.Now()

	log.Info("Stage 1: Creating Organization")
	name := s.organizationName(ctx, rng, opts)

	var summary *SimulationSummary
	err := s.store.Transaction(func(tx repository.StoreInterface) error {
		var err error
		summary, err = s.generate(ctx, tx, rng, opts, name)
		return err
	})
	elapsed := time.Since(start)
	s.metrics.ObserveRun(elapsed.Seconds(), err)
	if err != nil {
		log.WithError(err).Error("Simulation failed, run rolled back")
		return nil, err
	}

	summary.RunID = runID
	summary.Seed = seed
	summary.Duration = elapsed
	log.WithFields(map[string]interface{}{
		"teams":    summary.Teams,
		"projects": summary.Projects,
		"tasks":    summary.Tasks,
	}).Info("Simulation complete")
	return summary, nil
}

// organizationName applies the override, then a random fetched name, then
// the configured default
func (s *SimulationService) organizationName(ctx context.Context, rng *rand.Rand, opts SimulationOptions) string {
	if opts.OrganizationName != "" {
		return opts.OrganizationName
	}
	names := s.companies.FetchCompanyNames(ctx, opts.CompanyFetchLimit)
	if len(names) == 0 {
		return opts.DefaultOrganizationName
	}
	return names[rng.IntN(len(names))]
}

func (s *SimulationService) generate(ctx context.Context, tx repository.StoreInterface, rng *rand.Rand, opts SimulationOptions, name string) (*SimulationSummary, error) {
	log := logger.WithContext(ctx)

	org := &models.Organization{Name: name, Domain: DomainFor(name)}
	if err := tx.CreateOrganization(org); err != nil {
		return nil, apperrors.NewPersistenceError("create", "organization", err)
	}
	s.metrics.EntitiesGenerated("organization", 1)
	log.WithField("company", org.Name).Info("Organization created")

	customFields := NewCustomFieldGenerator(tx, opts.CustomFieldRate, s.metrics)
	if err := customFields.Define(org); err != nil {
		return nil, err
	}

	teamCount := (opts.TotalUsers + opts.TargetTeamSize - 1) / opts.TargetTeamSize
	log.Infof("Stage 2: Scaling Architecture to %d Teams", teamCount)
	teams, err := s.createTeams(tx, org, teamCount)
	if err != nil {
		return nil, err
	}

	log.Infof("Stage 3: Hiring %d Employees", opts.TotalUsers)
	users, admins, err := NewUserGenerator(tx, s.vocab, gofakeit.New(rng.Uint64()), opts.MaxEmailAttempts, s.metrics).
		Generate(rng, org, teams, opts.TotalUsers, NewTeamAdmins(teams))
	if err != nil {
		return nil, err
	}

	members := make(map[uuid.UUID][]models.User, len(teams))
	summary := &SimulationSummary{Organization: org.Name, Domain: org.Domain, Users: len(users), Teams: len(teams)}
	for _, u := range users {
		for _, m := range u.Memberships {
			members[m.TeamID] = append(members[m.TeamID], u)
			summary.Memberships++
		}
	}
	for _, hasAdmin := range admins {
		if hasAdmin {
			summary.Admins++
		}
	}

	log.Info("Stage 4: Generating Work History")
	projects := NewProjectGenerator(tx, s.vocab, s.metrics)
	tasks := NewTaskGenerator(tx, s.content, opts.Duration, opts.Completion, opts.Tasks, customFields, s.metrics)
	for i := range teams {
		count := opts.MinProjectsPerTeam + rng.IntN(opts.MaxProjectsPerTeam-opts.MinProjectsPerTeam+1)
		created, err := projects.Generate(rng, &teams[i], count)
		if err != nil {
			return nil, err
		}
		summary.Projects += len(created)

		for j := range created {
			pool := members[teams[i].ID]
			if len(pool) == 0 {
				pool = samplePool(rng, users, opts.FallbackPoolSize)
			}
			generated, err := tasks.Generate(ctx, rng, &created[j], pool)
			if err != nil {
				return nil, err
			}
			summary.Sections += len(created[j].Sections)
			summary.Tasks += len(generated)
		}
	}

	return summary, nil
}

func (s *SimulationService) createTeams(tx repository.StoreInterface, org *models.Organization, count int) ([]models.Team, error) {
	departments := s.vocab.Names()
	teams := make([]models.Team, 0, count)
	for i := 0; i < count; i++ {
		dept := departments[i%len(departments)]
		n := i/len(departments) + 1
		team := models.Team{
			OrganizationID: org.ID,
			Name:           fmt.Sprintf("%s - Squad %d", dept, n),
			Description:    fmt.Sprintf("%s Unit %d", dept, n),
		}
		if err := tx.CreateTeam(&team); err != nil {
			return nil, apperrors.NewPersistenceError("create", "team", err)
		}
		teams = append(teams, team)
	}
	s.metrics.EntitiesGenerated("team", len(teams))
	return teams, nil
}

// samplePool draws up to size distinct users
func samplePool(rng *rand.Rand, users []models.User, size int) []models.User {
	size = min(size, len(users))
	pool := make([]models.User, 0, size)
	for _, i := range rng.Perm(len(users))[:size] {
		pool = append(pool, users[i])
	}
	return pool
}

// DomainFor derives an organization's email domain from its name
func DomainFor(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "example.com"
	}
	return b.String() + ".com"
}
