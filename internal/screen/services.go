package screen

import (
	"github.com/jinyu/pindrill/internal/config"
	"github.com/jinyu/pindrill/internal/lessons"
	"github.com/jinyu/pindrill/internal/mistakes"
	"github.com/jinyu/pindrill/internal/rewards"
	"github.com/jinyu/pindrill/internal/selector"
	"github.com/jinyu/pindrill/internal/speech"
)

// Services bundles the shared application services screens depend on.
// One instance is built at startup and threaded through every screen
// constructor.
type Services struct {
	Repo     *lessons.Repository
	Ledger   *mistakes.Ledger
	Selector *selector.Selector
	Wallet   *rewards.Wallet
	History  *rewards.History
	Shop     *rewards.Shop
	Speech   *speech.Dispatcher
	Config   config.Config
}
