package carteira

import "sync"

// Collection names a persisted collection of the book. The values double as
// keys in the store.
type Collection string

const (
	ColHoldings      Collection = "investments"
	ColInvestmentLog Collection = "investmentTransactions"
	ColTransactions  Collection = "transactions"
	ColBalance       Collection = "brokerageBalance"
	ColHistory       Collection = "investmentHistory"
	ColTypes         Collection = "investmentTypes"
)

// Notifier broadcasts change hints after every mutating operation.
// Subscribers receive the identity of each changed collection, so they can
// reload just what they display; balance subscribers additionally receive the
// new balance value. Delivery is best-effort: duplicate or missed
// notifications must be tolerated by consumers (idempotent full reload).
type Notifier struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]func(Collection)
	balanceSubs map[int]func(Money)
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		subscribers: make(map[int]func(Collection)),
		balanceSubs: make(map[int]func(Money)),
	}
}

// Subscribe registers a callback invoked with each changed collection.
// The returned function cancels the subscription.
func (n *Notifier) Subscribe(fn func(Collection)) (cancel func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn
	n.mu.Unlock()
	return func() {
		n.mu.Lock()
		delete(n.subscribers, id)
		n.mu.Unlock()
	}
}

// SubscribeBalance registers a callback invoked with the new brokerage
// balance after each balance change.
func (n *Notifier) SubscribeBalance(fn func(Money)) (cancel func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.balanceSubs[id] = fn
	n.mu.Unlock()
	return func() {
		n.mu.Lock()
		delete(n.balanceSubs, id)
		n.mu.Unlock()
	}
}

func (n *Notifier) publish(cols ...Collection) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, col := range cols {
		for _, fn := range n.subscribers {
			fn(col)
		}
	}
}

func (n *Notifier) publishBalance(balance Money) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, fn := range n.balanceSubs {
		fn(balance)
	}
}
