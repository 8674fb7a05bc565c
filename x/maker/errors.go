package maker

import "github.com/asteroidprotocol/astroport-core/errors"

var (
	// ErrInvalidConfig is returned when configuration values are out
	// of range or inconsistent with each other.
	ErrInvalidConfig = errors.Register(1000, "invalid config")

	// ErrPairNotFound is returned when the factory has no pair
	// registered that converts an explicitly requested asset into the
	// target token.
	ErrPairNotFound = errors.Register(1001, "pair not found")

	// ErrNoActiveProposal is returned when claiming or inspecting an
	// ownership proposal that does not exist.
	ErrNoActiveProposal = errors.Register(1002, "no active ownership proposal")

	// ErrProposalExpired is returned when an ownership proposal is
	// claimed past its expiry.
	ErrProposalExpired = errors.Register(1003, "ownership proposal expired")

	// ErrCooldown is returned when collect is invoked again before the
	// configured cooldown period has passed.
	ErrCooldown = errors.Register(1004, "collect cooldown in progress")

	// ErrDuplicatedAsset is returned when the collect input names the
	// same asset twice.
	ErrDuplicatedAsset = errors.Register(1005, "duplicated asset")
)
