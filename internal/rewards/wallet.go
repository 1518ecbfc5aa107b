// Package rewards tracks the learner's points, score history, and the
// cosmetic background shop.
package rewards

import (
	"context"
	"fmt"

	"github.com/jinyu/pindrill/internal/store"
)

// Wallet persists the reward point balance. Points are earned one per
// correct answer and spent in the shop.
type Wallet struct {
	kv store.KV
}

// NewWallet creates a Wallet backed by kv.
func NewWallet(kv store.KV) *Wallet {
	return &Wallet{kv: kv}
}

// Points returns the current balance.
func (w *Wallet) Points(ctx context.Context) int {
	return store.Load(ctx, w.kv, store.KeyRewardPoints, 0)
}

// Add credits n points. Negative amounts are ignored.
func (w *Wallet) Add(ctx context.Context, n int) {
	if n <= 0 {
		return
	}
	store.Save(ctx, w.kv, store.KeyRewardPoints, w.Points(ctx)+n)
}

// Spend debits n points, failing without change when the balance is
// short.
func (w *Wallet) Spend(ctx context.Context, n int) error {
	balance := w.Points(ctx)
	if n > balance {
		return fmt.Errorf("not enough points: have %d, need %d", balance, n)
	}
	store.Save(ctx, w.kv, store.KeyRewardPoints, balance-n)
	return nil
}
