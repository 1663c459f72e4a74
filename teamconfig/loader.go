package teamconfig

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"turnaround/common"
	"turnaround/domain"
	"turnaround/domain/calendar"
	"turnaround/domain/state"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type teamsFile struct {
	Teams []teamDefinition `yaml:"teams" validate:"required,min=1,dive"`
}

type teamDefinition struct {
	Name       string            `yaml:"name"       validate:"required"`
	StartTime  string            `yaml:"startTime"  validate:"required"`
	CutoffTime string            `yaml:"cutoffTime" validate:"required"`
	Zone       string            `yaml:"zone"`
	Blocks     []blockDefinition `yaml:"blocks"     validate:"required,min=1,dive"`
}

type blockDefinition struct {
	EntryStatus           string   `yaml:"entryStatus"           validate:"required"`
	FirstInProgressStatus string   `yaml:"firstInProgressStatus" validate:"required"`
	Statuses              []string `yaml:"statuses"              validate:"required,min=1"`
}

var validate = validator.New()

// LoadFromEnv loads the file named by TAT_TEAMS_CONFIG, or the default teams
// when the variable is unset.
func LoadFromEnv() (domain.TeamRegistry, error) {
	path := strings.TrimSpace(os.Getenv("TAT_TEAMS_CONFIG"))
	if path == "" {
		common.Log.Info("TAT_TEAMS_CONFIG not set, using default teams")
		return DefaultRegistry(), nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (domain.TeamRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.TeamRegistry{}, err
	}
	r, err := Parse(data)
	if err != nil {
		return domain.TeamRegistry{}, fmt.Errorf("%s: %w", path, err)
	}
	common.Log.WithField("teams", r.Names()).Infof("team configuration loaded from %s", path)
	return r, nil
}

// Parse builds a registry from a YAML team configuration document.
func Parse(data []byte) (domain.TeamRegistry, error) {
	f := teamsFile{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return domain.TeamRegistry{}, fmt.Errorf("%w: %v", domain.ErrInvalidTeamConfig, err)
	}
	if err := validate.Struct(f); err != nil {
		return domain.TeamRegistry{}, fmt.Errorf("%w: %v", domain.ErrInvalidTeamConfig, err)
	}

	configs := make([]domain.TeamConfig, 0, len(f.Teams))
	for _, t := range f.Teams {
		c, err := t.toTeamConfig()
		if err != nil {
			return domain.TeamRegistry{}, fmt.Errorf("%w: team %s: %v", domain.ErrInvalidTeamConfig, t.Name, err)
		}
		configs = append(configs, c)
	}
	return domain.NewTeamRegistry(configs...)
}

func (t teamDefinition) toTeamConfig() (domain.TeamConfig, error) {
	start, err := calendar.ParseTimeOfDay(t.StartTime)
	if err != nil {
		return domain.TeamConfig{}, err
	}
	cutoff, err := calendar.ParseTimeOfDay(t.CutoffTime)
	if err != nil {
		return domain.TeamConfig{}, err
	}

	c := domain.TeamConfig{
		TeamName: t.Name,
		Hours:    calendar.BusinessHours{Start: start, Cutoff: cutoff, Zone: t.Zone},
	}
	for _, b := range t.Blocks {
		block := domain.ActivityBlock{}
		if block.EntryStatus, err = state.Parse(b.EntryStatus); err != nil {
			return domain.TeamConfig{}, err
		}
		if block.FirstInProgressStatus, err = state.Parse(b.FirstInProgressStatus); err != nil {
			return domain.TeamConfig{}, err
		}
		for _, name := range b.Statuses {
			s, err := state.Parse(name)
			if err != nil {
				return domain.TeamConfig{}, err
			}
			block.Statuses = append(block.Statuses, s)
		}
		c.Blocks = append(c.Blocks, block)
	}
	return c, nil
}
