package usecase

import (
	"fmt"

	"github.com/brokage/order-service/internal/domain"
)

// StrategyDispatcher resolves the creation processor and the cancellation
// strategy registered for an order side. Both maps are built once at
// startup and never mutated afterwards.
type StrategyDispatcher struct {
	processors map[domain.OrderSide]CreateOrderProcessor
	strategies map[domain.OrderSide]OrderCancellationStrategy
}

func NewStrategyDispatcher(
	processors []CreateOrderProcessor,
	strategies []OrderCancellationStrategy,
) (*StrategyDispatcher, error) {
	d := &StrategyDispatcher{
		processors: make(map[domain.OrderSide]CreateOrderProcessor, len(processors)),
		strategies: make(map[domain.OrderSide]OrderCancellationStrategy, len(strategies)),
	}

	for _, p := range processors {
		side := p.SupportedSide()
		if _, ok := d.processors[side]; ok {
			return nil, fmt.Errorf("duplicate create order processor for side %s", side)
		}
		d.processors[side] = p
	}

	for _, s := range strategies {
		side := s.SupportedSide()
		if _, ok := d.strategies[side]; ok {
			return nil, fmt.Errorf("duplicate cancellation strategy for side %s", side)
		}
		d.strategies[side] = s
	}

	return d, nil
}

func (d *StrategyDispatcher) ProcessorFor(side domain.OrderSide) (CreateOrderProcessor, error) {
	p, ok := d.processors[side]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported order side: %s", domain.ErrInvalidArgument, side)
	}
	return p, nil
}

func (d *StrategyDispatcher) CancellationFor(side domain.OrderSide) (OrderCancellationStrategy, error) {
	s, ok := d.strategies[side]
	if !ok {
		return nil, fmt.Errorf("%w: no cancellation strategy found for order side: %s", domain.ErrInvalidOrder, side)
	}
	return s, nil
}
