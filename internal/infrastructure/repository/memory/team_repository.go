package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
)

type TeamRepository struct {
	mu                 sync.RWMutex
	teamsByCompetition map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsByCompetition := make(map[string][]team.Team)
	for _, item := range teams {
		teamsByCompetition[item.CompetitionID] = append(teamsByCompetition[item.CompetitionID], item)
	}

	return &TeamRepository{teamsByCompetition: teamsByCompetition}
}

func (r *TeamRepository) ListByCompetition(_ context.Context, competitionID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByCompetition[competitionID]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, competitionID, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teamsByCompetition[competitionID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) UpsertTeams(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		competitionID := strings.TrimSpace(item.CompetitionID)
		teamID := strings.TrimSpace(item.ID)
		if competitionID == "" || teamID == "" {
			continue
		}

		teams := r.teamsByCompetition[competitionID]
		replaced := false
		for idx := range teams {
			if teams[idx].ID == teamID {
				teams[idx] = item
				replaced = true
				break
			}
		}
		if !replaced {
			teams = append(teams, item)
		}
		r.teamsByCompetition[competitionID] = teams
	}

	return nil
}
