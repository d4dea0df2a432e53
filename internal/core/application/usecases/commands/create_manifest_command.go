package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrCreateManifestCommandIsNotConstructed = errors.New(
	"CreateManifestCommand must be created via NewCreateManifestCommand constructor",
)

// CreateManifestCommand groups overpacks under one inbound manifest.
//
// Example:
//
//	cmd, err := NewCreateManifestCommand(principal, kernel.NewUUID(), "DHL", "JD0146", []kernel.UUID{op1, op2})
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var rejection *manifest.RejectionError
//	    if errors.As(err, &rejection) {
//	        log.Printf("overpack %s rejected: %s", rejection.OverpackID, rejection.Reason)
//	    }
//	    return err
//	}
type CreateManifestCommand struct { //nolint:recvcheck //using for validation
	principal       kernel.PrincipalID
	manifestID      kernel.UUID
	inboundCarrier  string
	inboundTracking string
	overpackIDs     []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateManifestCommand(
	principal kernel.PrincipalID,
	manifestID kernel.UUID,
	inboundCarrier string,
	inboundTracking string,
	overpackIDs []kernel.UUID,
) (CreateManifestCommand, error) {
	cmd := CreateManifestCommand{
		inboundCarrier:  inboundCarrier,
		inboundTracking: inboundTracking,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validatePrincipal(principal),
		manifestID.Validate(),
		cmd.setOverpackIDs(overpackIDs),
	); err != nil {
		return CreateManifestCommand{}, err
	}

	cmd.principal = principal
	cmd.manifestID = manifestID
	return cmd, nil
}

func (c CreateManifestCommand) Validate() error {
	return c.guard.Validate(ErrCreateManifestCommandIsNotConstructed)
}

func (c CreateManifestCommand) Principal() kernel.PrincipalID { return c.principal }
func (c CreateManifestCommand) ManifestID() kernel.UUID       { return c.manifestID }
func (c CreateManifestCommand) InboundCarrier() string        { return c.inboundCarrier }
func (c CreateManifestCommand) InboundTracking() string       { return c.inboundTracking }
func (c CreateManifestCommand) OverpackIDs() []kernel.UUID    { return c.overpackIDs }

// setOverpackIDs keeps the first occurrence of every id.
func (c *CreateManifestCommand) setOverpackIDs(ids []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	c.overpackIDs = out
	return nil
}
