package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOverpackCommandHandler_Handle_LinksResolvedShipments(t *testing.T) {
	ctx := t.Context()
	s := storedShipment(t, shipment.Snapshot{})
	refs := []string{s.TrackingNumber(), "unknown-ref"}
	cmd, err := commands.NewCreateOverpackCommand(owner, kernel.NewUUID(), overpack.Details{
		EntryPoint: entryPoint(t, "US_ORD"),
	}, refs)
	require.NoError(t, err)

	overpackRepo := new(MockOverpackRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OverpackRepository").Return(overpackRepo).Once(),
		overpackRepo.On("Add", ctx, mock.AnythingOfType("*overpack.Overpack")).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("ResolveOwned", ctx, owner, refs).Return([]*shipment.Shipment{s}, nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOverpackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOverpackCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, s.BelongsTo(cmd.OverpackID()))
	overpackRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOverpackCommandHandler_Handle_ManifestedOverpackIsFrozen(t *testing.T) {
	ctx := t.Context()
	o := newOverpack(t, owner, "US_ORD")
	require.NoError(t, o.AssignManifest(kernel.NewUUID()))

	cmd, err := commands.NewUpdateOverpackCommand(owner, o.ID(), unread[overpack.Details](t))
	require.NoError(t, err)

	finder := new(MockEntityFinder)
	finder.On("Find", ctx, kernel.RefTo(kernel.OverpackEntity, o.ID())).Return(o, nil).Once()

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntityFinder").Return(finder).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOverpackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOverpackCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Contains(t, err.Error(), "Manifested overpacks cannot be updated.")
	uow.AssertNotCalled(t, "OverpackRepository")
	uow.AssertExpectations(t)
}

func TestUpdateOverpackCommandHandler_Handle_EditableOverpackReportsBodyErrors(t *testing.T) {
	ctx := t.Context()
	o := newOverpack(t, owner, "US_ORD")
	invalid := errs.NewValidationError("overpack", o.ID().String())
	invalid.Add("overpack.entry_point", "This value should not be blank.")

	cmd, err := commands.NewUpdateOverpackCommand(owner, o.ID(), func() (overpack.Details, error) {
		return overpack.Details{}, invalid
	})
	require.NoError(t, err)

	finder := new(MockEntityFinder)
	finder.On("Find", ctx, kernel.RefTo(kernel.OverpackEntity, o.ID())).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("EntityFinder").Return(finder).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOverpackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOverpackCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), invalid)
	uow.AssertNotCalled(t, "OverpackRepository")
	uow.AssertExpectations(t)
}

func TestNewUpdateOverpackCommand_RequiresDetailsReader(t *testing.T) {
	_, err := commands.NewUpdateOverpackCommand(owner, kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDeleteOverpackCommandHandler_Handle_DetachesMembers(t *testing.T) {
	ctx := t.Context()
	o := newOverpack(t, owner, "US_ORD")
	s1 := storedShipment(t, shipment.Snapshot{})
	s2 := storedShipment(t, shipment.Snapshot{})
	require.NoError(t, o.AddShipment(s1))
	require.NoError(t, o.AddShipment(s2))

	cmd, err := commands.NewDeleteOverpackCommand(owner, o.ID())
	require.NoError(t, err)

	finder := new(MockEntityFinder)
	finder.On("Find", ctx, kernel.RefTo(kernel.OverpackEntity, o.ID())).Return(o, nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	overpackRepo := new(MockOverpackRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntityFinder").Return(finder).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("ListByOverpack", ctx, o.ID()).Return([]*shipment.Shipment{s1, s2}, nil).Once(),
		shipmentRepo.On("Update", ctx, s1).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, s2).Return(nil).Once(),
		uow.On("OverpackRepository").Return(overpackRepo).Once(),
		overpackRepo.On("Delete", ctx, o.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOverpackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOverpackCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, s1.IsOverpacked())
	assert.False(t, s2.IsOverpacked())
	shipmentRepo.AssertExpectations(t)
	overpackRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPatchOverpackShipmentsCommandHandler_Handle(t *testing.T) {
	t.Run("remove then add of the same shipment keeps it a member", func(t *testing.T) {
		ctx := t.Context()
		o := newOverpack(t, owner, "US_ORD")
		s := storedShipment(t, shipment.Snapshot{})
		require.NoError(t, o.AddShipment(s))

		removals := []string{s.ID().String()}
		additions := []string{s.TrackingNumber()}
		cmd, err := commands.NewPatchOverpackShipmentsCommand(owner, o.ID(), membership(removals, additions))
		require.NoError(t, err)

		finder := new(MockEntityFinder)
		finder.On("Find", ctx, kernel.RefTo(kernel.OverpackEntity, o.ID())).Return(o, nil).Once()

		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("EntityFinder").Return(finder).Once(),
			uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
			shipmentRepo.On("ResolveOwned", ctx, owner, []string{s.ID().String(), s.TrackingNumber()}).
				Return([]*shipment.Shipment{s}, nil).Once(),
			shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOverpackUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewPatchOverpackShipmentsCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.True(t, s.BelongsTo(o.ID()))
		shipmentRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("canceled addition aborts the whole patch", func(t *testing.T) {
		ctx := t.Context()
		o := newOverpack(t, owner, "US_ORD")
		member := storedShipment(t, shipment.Snapshot{})
		require.NoError(t, o.AddShipment(member))
		canceled := storedShipment(t, shipment.Snapshot{Canceled: true})

		removals := []string{member.ID().String()}
		additions := []string{canceled.ID().String()}
		cmd, err := commands.NewPatchOverpackShipmentsCommand(owner, o.ID(), membership(removals, additions))
		require.NoError(t, err)

		finder := new(MockEntityFinder)
		finder.On("Find", ctx, kernel.RefTo(kernel.OverpackEntity, o.ID())).Return(o, nil).Once()

		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("EntityFinder").Return(finder).Once(),
			uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
			shipmentRepo.On("ResolveOwned", ctx, owner, mock.Anything).
				Return([]*shipment.Shipment{member, canceled}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOverpackUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewPatchOverpackShipmentsCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStateConflict)
		shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("manifested overpack rejects before reading the body", func(t *testing.T) {
		ctx := t.Context()
		o := newOverpack(t, owner, "US_ORD")
		require.NoError(t, o.AssignManifest(kernel.NewUUID()))
		cmd, err := commands.NewPatchOverpackShipmentsCommand(owner, o.ID(), func() ([]string, []string, error) {
			t.Error("request body was read")
			return nil, []string{"x"}, nil
		})
		require.NoError(t, err)

		finder := new(MockEntityFinder)
		finder.On("Find", ctx, kernel.RefTo(kernel.OverpackEntity, o.ID())).Return(o, nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("EntityFinder").Return(finder).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOverpackUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewPatchOverpackShipmentsCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Contains(t, err.Error(), "Manifested overpacks cannot be changed.")
		uow.AssertNotCalled(t, "ShipmentRepository")
	})
}
