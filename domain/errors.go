package domain

import "errors"

var (
	ErrUnknownTeam       = errors.New("unknown team")
	ErrInvalidTeamConfig = errors.New("invalid team config")
	ErrOrderNotFound     = errors.New("order not found")
)
