package team

import "fmt"

// Team is a real football club inside a competition.
type Team struct {
	ID            string
	CompetitionID string
	Name          string
	Short         string
	City          string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.CompetitionID == "" {
		return fmt.Errorf("team competition id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
