package postgres

import (
	"backoffice/internal/adapters/out/postgres/catalogrepo"
	"backoffice/internal/adapters/out/postgres/manifestrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/outboxrepo"
	"backoffice/internal/adapters/out/postgres/overpackrepo"
	"backoffice/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, parents before children.
func Models() []any {
	return []any{
		&catalogrepo.ShopDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.ProductSkuDTO{},
		&manifestrepo.ManifestDTO{},
		&overpackrepo.OverpackDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.LabelDTO{},
		&shipmentrepo.FulfillmentDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&outboxrepo.OutboxDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// TableNames returns the table of each model, in Models order.
func TableNames(db *gorm.DB) ([]string, error) {
	names := make([]string, 0, len(Models()))
	for _, m := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, err
		}
		names = append(names, stmt.Schema.Table)
	}
	return names, nil
}
