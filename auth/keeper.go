package auth

import (
	sdk "github.com/izqui/govote/types"
)

var (
	PrefixForGrantKey = []byte{0x00}
)

// Keeper stores role grants. A grant is the presence of its role+address
// key; there is no role hierarchy.
type Keeper struct {
	storeKey sdk.StoreKey
}

func NewKeeper(storeKey sdk.StoreKey) Keeper {
	return Keeper{storeKey: storeKey}
}

func (k Keeper) Grant(ctx sdk.Context, role string, addr sdk.AccAddress) {
	ctx.KVStore(k.storeKey).Set(buildGrantKey(role, addr), []byte{0x01})
}

func (k Keeper) Revoke(ctx sdk.Context, role string, addr sdk.AccAddress) {
	ctx.KVStore(k.storeKey).Delete(buildGrantKey(role, addr))
}

// IsAuthorized reports whether the caller holds the role.
func (k Keeper) IsAuthorized(ctx sdk.Context, role string, addr sdk.AccAddress) bool {
	return ctx.KVStore(k.storeKey).Has(buildGrantKey(role, addr))
}

func buildGrantKey(role string, addr sdk.AccAddress) []byte {
	key := make([]byte, 0, len(PrefixForGrantKey)+len(role)+1+sdk.AddrLen)
	key = append(key, PrefixForGrantKey...)
	key = append(key, role...)
	key = append(key, byte(0x00))
	key = append(key, addr.Bytes()...)
	return key
}
