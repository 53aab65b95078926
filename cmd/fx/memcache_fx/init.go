package memcache_fx

import (
	"go.uber.org/fx"

	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(
	provideRevokedTokens, provideTripSessions)

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

func provideTripSessions() mem.TripSessionStore {
	return mem.NewTripSessions()
}
