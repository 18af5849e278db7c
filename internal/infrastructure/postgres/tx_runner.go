package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// Asegura que TxRunner implementa inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con el
// filtro de aislamiento activo: la transacción se abre sobre una conexión
// filtrada, así que los repos atados a la tx heredan la restricción.
type TxRunner struct {
	db *TenantPool
}

// NewTxRunner construye el runner con el pool filtrado.
func NewTxRunner(db *TenantPool) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción filtrada, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback. El Release de la conexión limpia el filtro en todas
// las rutas de salida.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := newProductRepoTx(tx)
	inventoryRepo := newInventoryRepoTx(tx)

	if err := fn(productRepo, inventoryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
