package repository

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"org-simulator/internal/database/models"
	apperrors "org-simulator/internal/errors"

	"github.com/google/uuid"
)

type sectionRankKey struct {
	projectID uuid.UUID
	rank      int
}

// memoryState holds ordered records plus the lookup indexes the constraint
// checks need. clone copies every container so a snapshot is independent.
type memoryState struct {
	organizations []models.Organization
	teams         []models.Team
	users         []models.User
	memberships   []models.TeamMembership
	projects      []models.Project
	sections      []models.Section
	tasks         []models.Task
	definitions   []models.CustomFieldDefinition
	values        []models.CustomFieldValue

	orgIDs         map[uuid.UUID]struct{}
	domains        map[string]struct{}
	teamOrg        map[uuid.UUID]uuid.UUID
	userOrg        map[uuid.UUID]uuid.UUID
	emails         map[string]struct{}
	adminTeams     map[uuid.UUID]struct{}
	projectIDs     map[uuid.UUID]struct{}
	sectionProject map[uuid.UUID]uuid.UUID
	sectionRanks   map[sectionRankKey]struct{}
	taskIDs        map[uuid.UUID]struct{}
	definitionIDs  map[uuid.UUID]struct{}
}

func newMemoryState() memoryState {
	return memoryState{
		orgIDs:         map[uuid.UUID]struct{}{},
		domains:        map[string]struct{}{},
		teamOrg:        map[uuid.UUID]uuid.UUID{},
		userOrg:        map[uuid.UUID]uuid.UUID{},
		emails:         map[string]struct{}{},
		adminTeams:     map[uuid.UUID]struct{}{},
		projectIDs:     map[uuid.UUID]struct{}{},
		sectionProject: map[uuid.UUID]uuid.UUID{},
		sectionRanks:   map[sectionRankKey]struct{}{},
		taskIDs:        map[uuid.UUID]struct{}{},
		definitionIDs:  map[uuid.UUID]struct{}{},
	}
}

func (s memoryState) clone() memoryState {
	return memoryState{
		organizations:  slices.Clone(s.organizations),
		teams:          slices.Clone(s.teams),
		users:          slices.Clone(s.users),
		memberships:    slices.Clone(s.memberships),
		projects:       slices.Clone(s.projects),
		sections:       slices.Clone(s.sections),
		tasks:          slices.Clone(s.tasks),
		definitions:    slices.Clone(s.definitions),
		values:         slices.Clone(s.values),
		orgIDs:         maps.Clone(s.orgIDs),
		domains:        maps.Clone(s.domains),
		teamOrg:        maps.Clone(s.teamOrg),
		userOrg:        maps.Clone(s.userOrg),
		emails:         maps.Clone(s.emails),
		adminTeams:     maps.Clone(s.adminTeams),
		projectIDs:     maps.Clone(s.projectIDs),
		sectionProject: maps.Clone(s.sectionProject),
		sectionRanks:   maps.Clone(s.sectionRanks),
		taskIDs:        maps.Clone(s.taskIDs),
		definitionIDs:  maps.Clone(s.definitionIDs),
	}
}

// MemoryStore is an in-process StoreInterface and SummaryRepositoryInterface.
// It enforces the same identity, uniqueness and foreign-key rules as the
// Postgres schema, including the single-admin-per-team index.
type MemoryStore struct {
	mu    sync.Mutex
	state memoryState
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newMemoryState(), now: time.Now}
}

func (s *MemoryStore) stamp(base *models.BaseModel) {
	base.EnsureID()
	now := s.now()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

func (s *MemoryStore) CreateOrganization(org *models.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.state.domains[org.Domain]; taken {
		return apperrors.ErrOrganizationExists
	}
	s.stamp(&org.BaseModel)

	stored := *org
	stored.Teams, stored.Users, stored.CustomFields = nil, nil, nil
	s.state.organizations = append(s.state.organizations, stored)
	s.state.orgIDs[org.ID] = struct{}{}
	s.state.domains[org.Domain] = struct{}{}
	return nil
}

func (s *MemoryStore) CreateTeam(team *models.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.orgIDs[team.OrganizationID]; !ok {
		return apperrors.ErrOrganizationNotFound
	}
	s.stamp(&team.BaseModel)

	stored := *team
	stored.Organization, stored.Projects, stored.Memberships = models.Organization{}, nil, nil
	s.state.teams = append(s.state.teams, stored)
	s.state.teamOrg[team.ID] = team.OrganizationID
	return nil
}

func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.orgIDs[user.OrganizationID]; !ok {
		return apperrors.ErrOrganizationNotFound
	}
	if _, taken := s.state.emails[user.Email]; taken {
		return apperrors.ErrUserExists
	}
	s.stamp(&user.BaseModel)

	stored := *user
	stored.Organization, stored.Memberships = models.Organization{}, nil
	s.state.users = append(s.state.users, stored)
	s.state.userOrg[user.ID] = user.OrganizationID
	s.state.emails[user.Email] = struct{}{}
	return nil
}

func (s *MemoryStore) CreateMembership(membership *models.TeamMembership) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userOrg, ok := s.state.userOrg[membership.UserID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	teamOrg, ok := s.state.teamOrg[membership.TeamID]
	if !ok {
		return apperrors.ErrTeamNotFound
	}
	if userOrg != teamOrg {
		return apperrors.NewValidationError("team_id", "team and user belong to different organizations")
	}
	if !membership.Role.IsValid() {
		return apperrors.NewValidationError("role", "unknown membership role "+string(membership.Role))
	}
	if membership.Role == models.MembershipRoleAdmin {
		if _, taken := s.state.adminTeams[membership.TeamID]; taken {
			return apperrors.ErrAdminAlreadyAssigned
		}
	}
	s.stamp(&membership.BaseModel)

	stored := *membership
	stored.User, stored.Team = models.User{}, models.Team{}
	s.state.memberships = append(s.state.memberships, stored)
	if membership.Role == models.MembershipRoleAdmin {
		s.state.adminTeams[membership.TeamID] = struct{}{}
	}
	return nil
}

func (s *MemoryStore) CreateProject(project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.teamOrg[project.TeamID]; !ok {
		return apperrors.ErrTeamNotFound
	}
	s.stamp(&project.BaseModel)

	stored := *project
	stored.Team, stored.Sections, stored.Tasks = models.Team{}, nil, nil
	s.state.projects = append(s.state.projects, stored)
	s.state.projectIDs[project.ID] = struct{}{}
	return nil
}

func (s *MemoryStore) CreateSections(sections []models.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make(map[sectionRankKey]struct{}, len(sections))
	for i := range sections {
		if _, ok := s.state.projectIDs[sections[i].ProjectID]; !ok {
			return apperrors.ErrProjectNotFound
		}
		key := sectionRankKey{projectID: sections[i].ProjectID, rank: sections[i].Rank}
		_, stored := s.state.sectionRanks[key]
		_, batched := pending[key]
		if stored || batched {
			return apperrors.ErrSectionExists
		}
		pending[key] = struct{}{}
	}

	for i := range sections {
		s.stamp(&sections[i].BaseModel)
		stored := sections[i]
		stored.Project, stored.Tasks = models.Project{}, nil
		s.state.sections = append(s.state.sections, stored)
		s.state.sectionProject[stored.ID] = stored.ProjectID
		s.state.sectionRanks[sectionRankKey{projectID: stored.ProjectID, rank: stored.Rank}] = struct{}{}
	}
	return nil
}

func (s *MemoryStore) CreateTasks(tasks []models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range tasks {
		if _, ok := s.state.projectIDs[tasks[i].ProjectID]; !ok {
			return apperrors.ErrProjectNotFound
		}
		sectionProject, ok := s.state.sectionProject[tasks[i].SectionID]
		if !ok {
			return apperrors.ErrSectionNotFound
		}
		if sectionProject != tasks[i].ProjectID {
			return apperrors.NewValidationError("section_id", "section belongs to another project")
		}
		if tasks[i].AssigneeID != nil {
			if _, ok := s.state.userOrg[*tasks[i].AssigneeID]; !ok {
				return apperrors.ErrUserNotFound
			}
		}
	}

	for i := range tasks {
		s.stamp(&tasks[i].BaseModel)
		stored := tasks[i]
		stored.Project, stored.Section, stored.Assignee = models.Project{}, models.Section{}, nil
		s.state.tasks = append(s.state.tasks, stored)
		s.state.taskIDs[stored.ID] = struct{}{}
	}
	return nil
}

func (s *MemoryStore) CreateCustomFieldDefinition(definition *models.CustomFieldDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.orgIDs[definition.OrganizationID]; !ok {
		return apperrors.ErrOrganizationNotFound
	}
	s.stamp(&definition.BaseModel)

	stored := *definition
	stored.Organization, stored.Values = models.Organization{}, nil
	s.state.definitions = append(s.state.definitions, stored)
	s.state.definitionIDs[definition.ID] = struct{}{}
	return nil
}

func (s *MemoryStore) CreateCustomFieldValues(values []models.CustomFieldValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range values {
		if _, ok := s.state.taskIDs[values[i].TaskID]; !ok {
			return apperrors.ErrTaskNotFound
		}
		if _, ok := s.state.definitionIDs[values[i].FieldDefinitionID]; !ok {
			return apperrors.ErrCustomFieldNotFound
		}
	}

	for i := range values {
		s.stamp(&values[i].BaseModel)
		stored := values[i]
		stored.Task, stored.Definition = models.Task{}, models.CustomFieldDefinition{}
		s.state.values = append(s.state.values, stored)
	}
	return nil
}

// Transaction snapshots the state and restores it when fn fails
func (s *MemoryStore) Transaction(fn func(tx StoreInterface) error) error {
	s.mu.Lock()
	snapshot := s.state.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.state = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Organizations returns a copy of the stored organizations
func (s *MemoryStore) Organizations() []models.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.organizations)
}

// Teams returns a copy of the stored teams
func (s *MemoryStore) Teams() []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.teams)
}

// Users returns a copy of the stored users
func (s *MemoryStore) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.users)
}

// Memberships returns a copy of the stored memberships
func (s *MemoryStore) Memberships() []models.TeamMembership {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.memberships)
}

// Projects returns a copy of the stored projects
func (s *MemoryStore) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.projects)
}

// Sections returns a copy of the stored sections
func (s *MemoryStore) Sections() []models.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.sections)
}

// Tasks returns a copy of the stored tasks
func (s *MemoryStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.tasks)
}

// CustomFieldDefinitions returns a copy of the stored definitions
func (s *MemoryStore) CustomFieldDefinitions() []models.CustomFieldDefinition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.definitions)
}

// CustomFieldValues returns a copy of the stored custom field values
func (s *MemoryStore) CustomFieldValues() []models.CustomFieldValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.values)
}

// GetDatabaseSize reports the number of stored records; memory has no disk size
func (s *MemoryStore) GetDatabaseSize() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &s.state
	n := len(st.organizations) + len(st.teams) + len(st.users) + len(st.memberships) + len(st.projects) +
		len(st.sections) + len(st.tasks) + len(st.definitions) + len(st.values)
	return fmt.Sprintf("%d records in memory", n), nil
}

func (s *MemoryStore) GetVolume() (*VolumeStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &VolumeStats{
		Organizations: int64(len(s.state.organizations)),
		Teams:         int64(len(s.state.teams)),
		Users:         int64(len(s.state.users)),
		Memberships:   int64(len(s.state.memberships)),
		Projects:      int64(len(s.state.projects)),
		Sections:      int64(len(s.state.sections)),
		Tasks:         int64(len(s.state.tasks)),
	}, nil
}

func (s *MemoryStore) GetLargestTeams(limit int) ([]TeamSize, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[uuid.UUID]int64)
	for _, m := range s.state.memberships {
		counts[m.TeamID]++
	}
	var rows []TeamSize
	for _, t := range s.state.teams {
		if n := counts[t.ID]; n > 0 {
			rows = append(rows, TeamSize{TeamName: t.Name, MemberCount: n})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MemberCount != rows[j].MemberCount {
			return rows[i].MemberCount > rows[j].MemberCount
		}
		return rows[i].TeamName < rows[j].TeamName
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *MemoryStore) GetTeamLeads(limit int) ([]TeamLead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teamNames := make(map[uuid.UUID]string, len(s.state.teams))
	for _, t := range s.state.teams {
		teamNames[t.ID] = t.Name
	}
	users := make(map[uuid.UUID]models.User, len(s.state.users))
	for _, u := range s.state.users {
		users[u.ID] = u
	}
	var rows []TeamLead
	for _, m := range s.state.memberships {
		if m.Role != models.MembershipRoleAdmin {
			continue
		}
		u := users[m.UserID]
		rows = append(rows, TeamLead{TeamName: teamNames[m.TeamID], FullName: u.FullName, Role: u.Role})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TeamName < rows[j].TeamName })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *MemoryStore) CountTimeTravelTasks() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, t := range s.state.tasks {
		if t.CompletedAt != nil && t.CompletedAt.Before(t.CreatedAt) {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) CountTeamsWithMultipleAdmins() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admins := make(map[uuid.UUID]int)
	for _, m := range s.state.memberships {
		if m.Role == models.MembershipRoleAdmin {
			admins[m.TeamID]++
		}
	}
	var count int64
	for _, n := range admins {
		if n > 1 {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) GetCompletionBreakdown() ([]CompletionCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var open, done int64
	for _, t := range s.state.tasks {
		if t.IsCompleted {
			done++
		} else {
			open++
		}
	}
	var rows []CompletionCount
	if open > 0 {
		rows = append(rows, CompletionCount{IsCompleted: false, Count: open})
	}
	if done > 0 {
		rows = append(rows, CompletionCount{IsCompleted: true, Count: done})
	}
	return rows, nil
}

func (s *MemoryStore) GetCompletionByRank() ([]RankCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ranks := make(map[uuid.UUID]int, len(s.state.sections))
	for _, sec := range s.state.sections {
		ranks[sec.ID] = sec.Rank
	}
	byRank := make(map[int]*RankCompletion)
	for _, t := range s.state.tasks {
		rank := ranks[t.SectionID]
		row, ok := byRank[rank]
		if !ok {
			row = &RankCompletion{SectionRank: rank}
			byRank[rank] = row
		}
		row.Total++
		if t.IsCompleted {
			row.Completed++
		}
	}
	rows := make([]RankCompletion, 0, len(byRank))
	for _, row := range byRank {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SectionRank < rows[j].SectionRank })
	return rows, nil
}
