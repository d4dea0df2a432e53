package kernel

import (
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"
)

// EntityType names the kinds of entity the ownership gate can load.
type EntityType int

const (
	UnknownEntity EntityType = iota
	ShopEntity
	ProductEntity
	ProductSkuEntity
	OrderEntity
	ShipmentEntity
	OverpackEntity
	ManifestEntity
)

func getEntityTypeStrings() map[EntityType]string {
	return map[EntityType]string{
		UnknownEntity:    "unknown",
		ShopEntity:       "shop",
		ProductEntity:    "product",
		ProductSkuEntity: "product_sku",
		OrderEntity:      "order",
		ShipmentEntity:   "shipment",
		OverpackEntity:   "overpack",
		ManifestEntity:   "manifest",
	}
}

func (t EntityType) String() string {
	if s, ok := getEntityTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// keyArity is the number of key parts each entity type is addressed by.
func (t EntityType) keyArity() int {
	switch t {
	case UnknownEntity:
		return 0
	case ProductSkuEntity:
		return 2
	default:
		return 1
	}
}

// EntityRef addresses one entity by type and natural key.
// A product SKU is keyed by product id then shop id.
type EntityRef struct {
	entityType EntityType
	key        []UUID
}

func NewEntityRef(entityType EntityType, key ...UUID) (EntityRef, error) {
	if entityType.keyArity() == 0 {
		return EntityRef{}, errs.NewValueIsInvalidErrorWithCause(
			"entity type", fmt.Errorf("%d is not a known entity type", entityType))
	}
	if len(key) != entityType.keyArity() {
		return EntityRef{}, errs.NewValueIsInvalidErrorWithCause(
			"entity key", fmt.Errorf("%s needs %d key parts, got %d", entityType, entityType.keyArity(), len(key)))
	}
	for _, k := range key {
		if err := k.Validate(); err != nil {
			return EntityRef{}, err
		}
	}
	return EntityRef{entityType: entityType, key: append([]UUID(nil), key...)}, nil
}

// RefTo builds a single-key reference for ids already validated by the caller.
func RefTo(entityType EntityType, id UUID) EntityRef {
	return EntityRef{entityType: entityType, key: []UUID{id}}
}

func (r EntityRef) Type() EntityType {
	return r.entityType
}

func (r EntityRef) Key() []UUID {
	return append([]UUID(nil), r.key...)
}

// ID returns the first key part.
func (r EntityRef) ID() UUID {
	if len(r.key) == 0 {
		return UUID{}
	}
	return r.key[0]
}

func (r EntityRef) String() string {
	parts := make([]string, 0, len(r.key))
	for _, k := range r.key {
		parts = append(parts, k.String())
	}
	return r.entityType.String() + ":" + strings.Join(parts, "/")
}
