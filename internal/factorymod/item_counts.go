package factorymod

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

// parseItemCounts reads a mapping of item declarations into a quantity table.
// The mapping keys are labels only; entries that resolve to the same item
// overwrite each other's amount.
func (b *itemBatch) parseItemCounts(n *yaml.Node) (*domain.ItemCounts, error) {
	counts := domain.NewItemCounts()
	if isNull(n) {
		return counts, nil
	}
	if !isMapping(n) {
		return nil, fmt.Errorf(ErrFmtInvalidItems, domain.ErrMalformedValue, describe(n))
	}

	for _, kv := range pairs(n) {
		entry := resolve(kv.Value)
		amount := 1
		if amountNode := field(entry, KeyAmount); !isNull(amountNode) {
			a, err := requireInt(amountNode)
			if err != nil {
				return nil, fieldError(kv.Key.Value, fieldError(KeyAmount, err))
			}
			amount = a
		}
		item, err := b.resolveItem(entry)
		if err != nil {
			return nil, fieldError(kv.Key.Value, err)
		}
		counts.Set(item.Key, amount)
	}
	return counts, nil
}
