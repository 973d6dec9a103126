package competition

import "fmt"

// Competition is a football competition supported by the fantasy platform,
// e.g. code "kpl" for the top flight and "first" for the second tier.
type Competition struct {
	ID        string
	Code      string
	Name      string
	Season    int
	IsDefault bool
}

func (c Competition) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("competition id is required")
	}
	if c.Code == "" {
		return fmt.Errorf("competition code is required")
	}
	if c.Name == "" {
		return fmt.Errorf("competition name is required")
	}
	if c.Season <= 0 {
		return fmt.Errorf("competition season is required")
	}

	return nil
}
