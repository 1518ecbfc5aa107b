package rewards

import (
	"context"
	"fmt"

	"github.com/jinyu/pindrill/internal/store"
)

// Background is a purchasable color theme. The id doubles as the theme
// palette key.
type Background struct {
	ID   string
	Name string
	Cost int
}

// DefaultBackgroundID is owned from the start and always active until a
// purchase is applied.
const DefaultBackgroundID = "default"

// Backgrounds is the shop catalog, default first.
func Backgrounds() []Background {
	return []Background{
		{ID: DefaultBackgroundID, Name: "Default", Cost: 0},
		{ID: "grid", Name: "Blueprint Grid", Cost: 50},
		{ID: "cool", Name: "Icy Cool", Cost: 50},
		{ID: "hot", Name: "Fiery Hot", Cost: 50},
		{ID: "forest", Name: "Dark Forest", Cost: 50},
		{ID: "space", Name: "Outer Space", Cost: 50},
		{ID: "station", Name: "Space Station", Cost: 50},
	}
}

// Shop sells backgrounds against the wallet and tracks which one is
// active.
type Shop struct {
	kv     store.KV
	wallet *Wallet
}

// NewShop creates a Shop backed by kv, spending from wallet.
func NewShop(kv store.KV, wallet *Wallet) *Shop {
	return &Shop{kv: kv, wallet: wallet}
}

// PurchasedIDs returns the owned background ids. The default is always
// owned.
func (s *Shop) PurchasedIDs(ctx context.Context) []string {
	owned := store.Load(ctx, s.kv, store.KeyPurchasedBgs, []string{DefaultBackgroundID})
	for _, id := range owned {
		if id == DefaultBackgroundID {
			return owned
		}
	}
	return append([]string{DefaultBackgroundID}, owned...)
}

// Owned reports whether the background is purchased.
func (s *Shop) Owned(ctx context.Context, id string) bool {
	for _, owned := range s.PurchasedIDs(ctx) {
		if owned == id {
			return true
		}
	}
	return false
}

// ActiveID returns the currently applied background.
func (s *Shop) ActiveID(ctx context.Context) string {
	return store.Load(ctx, s.kv, store.KeyActiveBg, DefaultBackgroundID)
}

// Purchase buys a background, deducting its cost. Buying something
// already owned or not in the catalog is an error; the wallet is only
// charged on success.
func (s *Shop) Purchase(ctx context.Context, id string) error {
	bg, ok := s.find(id)
	if !ok {
		return fmt.Errorf("unknown background %q", id)
	}
	if s.Owned(ctx, id) {
		return fmt.Errorf("background %q is already owned", id)
	}
	if err := s.wallet.Spend(ctx, bg.Cost); err != nil {
		return err
	}
	store.Save(ctx, s.kv, store.KeyPurchasedBgs, append(s.PurchasedIDs(ctx), id))
	return nil
}

// Apply makes an owned background active.
func (s *Shop) Apply(ctx context.Context, id string) error {
	if !s.Owned(ctx, id) {
		return fmt.Errorf("background %q is not owned", id)
	}
	store.Save(ctx, s.kv, store.KeyActiveBg, id)
	return nil
}

func (s *Shop) find(id string) (Background, bool) {
	for _, bg := range Backgrounds() {
		if bg.ID == id {
			return bg, true
		}
	}
	return Background{}, false
}
