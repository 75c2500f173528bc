package solana

import "github.com/mr-tron/base58"

// IsValidAddress reports whether s is a plausible Solana account address:
// base58 text decoding to a 32-byte ed25519 public key. On-curve checks are
// the chain's problem, not ours.
func IsValidAddress(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	raw, err := base58.Decode(s)
	return err == nil && len(raw) == 32
}
