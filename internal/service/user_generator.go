package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"org-simulator/internal/database/models"
	apperrors "org-simulator/internal/errors"
	"org-simulator/internal/metrics"
	"org-simulator/internal/repository"
	"org-simulator/internal/vocabulary"

	"github.com/google/uuid"
)

// UnassignedRole is the role label of a user who joined no team
const UnassignedRole = "Member"

// PersonNamer supplies person names. *gofakeit.Faker satisfies it.
type PersonNamer interface {
	FirstName() string
	LastName() string
}

// TeamAdmins records which teams already have their admin. It is owned by a
// single generation pass and threaded through UserGenerator.Generate.
type TeamAdmins map[uuid.UUID]bool

// NewTeamAdmins returns a map with every team marked as admin-less
func NewTeamAdmins(teams []models.Team) TeamAdmins {
	admins := make(TeamAdmins, len(teams))
	for _, t := range teams {
		admins[t.ID] = false
	}
	return admins
}

// UserGenerator creates users with unique emails and at most one team
// membership each. The first user drawn into a team becomes its admin.
type UserGenerator struct {
	store            repository.StoreInterface
	vocab            *vocabulary.Vocabulary
	namer            PersonNamer
	maxEmailAttempts int
	metrics          *metrics.Recorder
	emails           map[string]struct{}
}

// NewUserGenerator creates a new user generator. maxEmailAttempts bounds the
// suffix retries spent on one colliding email.
func NewUserGenerator(store repository.StoreInterface, vocab *vocabulary.Vocabulary, namer PersonNamer, maxEmailAttempts int, rec *metrics.Recorder) *UserGenerator {
	return &UserGenerator{
		store:            store,
		vocab:            vocab,
		namer:            namer,
		maxEmailAttempts: maxEmailAttempts,
		metrics:          rec,
		emails:           make(map[string]struct{}),
	}
}

// Generate creates count users in org. Each user picks one team uniformly at
// random, so a team can end up with no members. The returned users carry
// their memberships.
func (g *UserGenerator) Generate(rng *rand.Rand, org *models.Organization, teams []models.Team, count int, admins TeamAdmins) ([]models.User, TeamAdmins, error) {
	if admins == nil {
		admins = NewTeamAdmins(teams)
	}

	users := make([]models.User, 0, count)
	memberships := 0
	for i := 0; i < count; i++ {
		first, last := g.namer.FirstName(), g.namer.LastName()
		email, err := g.uniqueEmail(rng, emailLocalPart(first, last), org.Domain)
		if err != nil {
			return nil, admins, err
		}

		user := models.User{
			OrganizationID: org.ID,
			FullName:       first + " " + last,
			Email:          email,
			Role:           UnassignedRole,
			IsActive:       true,
		}

		var membership *models.TeamMembership
		if len(teams) > 0 {
			team := teams[rng.IntN(len(teams))]
			dept := g.vocab.Resolve(team.Name)
			user.Role = dept.Roles[rng.IntN(len(dept.Roles))]

			role := models.MembershipRoleMember
			if !admins[team.ID] {
				admins[team.ID] = true
				role = models.MembershipRoleAdmin
				user.Role = dept.Name + " Lead"
			}
			membership = &models.TeamMembership{TeamID: team.ID, Role: role}
		}

		if err := g.store.CreateUser(&user); err != nil {
			return nil, admins, apperrors.NewPersistenceError("create", "user", err)
		}
		if membership != nil {
			membership.UserID = user.ID
			if err := g.store.CreateMembership(membership); err != nil {
				return nil, admins, apperrors.NewPersistenceError("create", "membership", err)
			}
			user.Memberships = []models.TeamMembership{*membership}
			memberships++
		}
		users = append(users, user)
	}

	g.metrics.EntitiesGenerated("user", len(users))
	g.metrics.EntitiesGenerated("membership", memberships)
	return users, admins, nil
}

// uniqueEmail returns local@domain, or on collision local<digits>@domain with
// a random suffix whose width grows every ten attempts
func (g *UserGenerator) uniqueEmail(rng *rand.Rand, local, domain string) (string, error) {
	email := local + "@" + domain
	for attempt := 0; g.taken(email); attempt++ {
		if attempt >= g.maxEmailAttempts {
			return "", &apperrors.EmailSpaceExhaustedError{LocalPart: local, Attempts: attempt}
		}
		digits := min(3+attempt/10, 15)
		low := pow10(digits - 1)
		email = fmt.Sprintf("%s%d@%s", local, low+rng.IntN(9*low), domain)
	}
	g.emails[email] = struct{}{}
	return email, nil
}

func (g *UserGenerator) taken(email string) bool {
	_, ok := g.emails[email]
	return ok
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// emailLocalPart lowercases first.last and drops anything outside [a-z0-9.]
func emailLocalPart(first, last string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(first + "." + last) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	local := strings.Trim(b.String(), ".")
	if local == "" {
		return "user"
	}
	return local
}
