package postgres

import (
	"context"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// GormEntityFinder resolves entity references through the repositories of one unit
// of work, so the gate and the mutation that follows see the same locked rows.
type GormEntityFinder struct {
	uow *GormUnitOfWork
}

func NewGormEntityFinder(uow *GormUnitOfWork) *GormEntityFinder {
	return &GormEntityFinder{uow: uow}
}

func (f *GormEntityFinder) Find(ctx context.Context, ref kernel.EntityRef) (kernel.Ownable, error) {
	key := ref.Key()
	if len(key) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("entity ref", fmt.Errorf("%s has no key", ref))
	}

	switch ref.Type() {
	case kernel.ShopEntity:
		return f.uow.CatalogRepository().GetShop(ctx, key[0])
	case kernel.ProductEntity:
		return f.uow.CatalogRepository().GetProduct(ctx, key[0])
	case kernel.ProductSkuEntity:
		if len(key) != 2 {
			return nil, errs.NewValueIsInvalidErrorWithCause("entity ref", fmt.Errorf("%s needs product and shop", ref))
		}
		return f.uow.CatalogRepository().GetProductSku(ctx, key[0], key[1])
	case kernel.OrderEntity:
		return f.uow.OrderRepository().Get(ctx, key[0])
	case kernel.ShipmentEntity:
		return f.uow.ShipmentRepository().Get(ctx, key[0])
	case kernel.OverpackEntity:
		return f.uow.OverpackRepository().Get(ctx, key[0])
	case kernel.ManifestEntity:
		return f.uow.ManifestRepository().Get(ctx, key[0])
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("entity ref", fmt.Errorf("%s is not loadable", ref))
	}
}
