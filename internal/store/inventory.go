package store

import (
	"github.com/appidartkitthana/GAS-System-management/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// stockDelta is a pending cache adjustment recorded while a transaction is in
// flight. Deltas are applied to the cached inventory only after commit.
type stockDelta struct {
	id     uuid.UUID
	full   int
	onLoan int
}

// findGasItemLocked resolves the gas inventory row for a (brand, size) pair.
// Callers must hold s.mu.
func (s *Store) findGasItemLocked(brand model.Brand, size model.TankSize) *model.InventoryItem {
	for i := range s.inventory {
		if s.inventory[i].Matches(brand, size) {
			return &s.inventory[i]
		}
	}
	return nil
}

// standardCostLocked returns the current cost price of the matching gas item,
// or nil when the item is untracked or has no cost recorded.
func (s *Store) standardCostLocked(brand model.Brand, size model.TankSize) *decimal.Decimal {
	item := s.findGasItemLocked(brand, size)
	if item == nil || item.CostPrice == nil {
		return nil
	}
	cost := *item.CostPrice
	return &cost
}

// applyStockDelta issues a full-counter shift for one (brand, size) pair
// inside tx. Pairs with no matching inventory row are skipped without error,
// and a zero delta issues no write at all.
func (s *Store) applyStockDelta(tx *gorm.DB, brand model.Brand, size model.TankSize, delta int) (*stockDelta, error) {
	if delta == 0 {
		return nil, nil
	}
	item := s.findGasItemLocked(brand, size)
	if item == nil {
		log.Debug().Str("brand", string(brand)).Str("size", string(size)).
			Msg("stock delta skipped, tank not tracked in inventory")
		return nil, nil
	}
	if err := s.inventoryRepo.AdjustFullTx(tx, item.ID, delta); err != nil {
		return nil, err
	}
	return &stockDelta{id: item.ID, full: delta}, nil
}

// applySaleStock shifts stock for every line of a sale. sign is -1 when the
// sale takes effect (cylinders leave the shop) and +1 when it is reverted.
func (s *Store) applySaleStock(tx *gorm.DB, sale *model.Sale, sign int) ([]stockDelta, error) {
	var deltas []stockDelta
	for _, line := range sale.Lines() {
		d, err := s.applyStockDelta(tx, line.Brand, line.Size, sign*line.Quantity)
		if err != nil {
			return nil, err
		}
		if d != nil {
			deltas = append(deltas, *d)
		}
	}
	return deltas, nil
}

// applyRefillStock shifts stock for every refill line of an expense. sign is
// +1 when the refill takes effect (full cylinders arrive) and -1 when it is
// reverted. Expenses without refill lines are a no-op.
func (s *Store) applyRefillStock(tx *gorm.DB, e *model.Expense, sign int) ([]stockDelta, error) {
	var deltas []stockDelta
	for _, line := range e.Refills() {
		d, err := s.applyStockDelta(tx, line.Brand, line.Size, sign*line.Quantity)
		if err != nil {
			return nil, err
		}
		if d != nil {
			deltas = append(deltas, *d)
		}
	}
	return deltas, nil
}

// applyLoanDeltas reconciles the on-loan counters with a change to a
// customer's borrowed-tank list. Old entries are negated, new entries added,
// and the consolidated per-tank net is written in a single statement each, so
// moving a quantity between entries of the same tank nets to zero writes.
func (s *Store) applyLoanDeltas(tx *gorm.DB, before, after []model.BorrowedTank) ([]stockDelta, error) {
	net := make(map[model.TankRef]int)
	for _, bt := range before {
		net[model.TankRef{Brand: bt.Brand, Size: bt.Size}] -= bt.Quantity
	}
	for _, bt := range after {
		net[model.TankRef{Brand: bt.Brand, Size: bt.Size}] += bt.Quantity
	}

	var deltas []stockDelta
	for _, item := range s.inventoryItemsFor(net) {
		delta := net[model.TankRef{Brand: *item.TankBrand, Size: *item.TankSize}]
		if err := s.inventoryRepo.AdjustOnLoanTx(tx, item.ID, delta); err != nil {
			return nil, err
		}
		deltas = append(deltas, stockDelta{id: item.ID, onLoan: delta})
	}
	return deltas, nil
}

// inventoryItemsFor maps non-zero net loan deltas onto tracked gas items,
// preserving cache order for deterministic writes. Untracked tanks are
// silently skipped.
func (s *Store) inventoryItemsFor(net map[model.TankRef]int) []*model.InventoryItem {
	var items []*model.InventoryItem
	for i := range s.inventory {
		item := &s.inventory[i]
		if !item.IsGas() || item.TankBrand == nil || item.TankSize == nil {
			continue
		}
		ref := model.TankRef{Brand: *item.TankBrand, Size: *item.TankSize}
		if delta, ok := net[ref]; ok && delta != 0 {
			items = append(items, item)
		}
	}
	return items
}

// commitStockDeltas folds committed deltas into the cached inventory,
// mirroring the clamp applied by the gateway. A derived empty count below
// zero indicates a physically impossible state; it is kept and logged rather
// than silently corrected.
func (s *Store) commitStockDeltas(deltas []stockDelta) {
	for _, d := range deltas {
		item := s.findInventoryItem(d.id)
		if item == nil {
			continue
		}
		item.Full += d.full
		if onLoan := item.OnLoan + d.onLoan; onLoan < 0 {
			item.OnLoan = 0
		} else {
			item.OnLoan = onLoan
		}
		if item.Empty() < 0 {
			log.Warn().
				Str("item", item.ID.String()).
				Int("total", item.Total).
				Int("full", item.Full).
				Int("on_loan", item.OnLoan).
				Msg("derived empty cylinder count is negative, counters need correction")
		}
	}
}
