// Package token implements the opaque bearer token format and the
// per-request identity resolved from it.
//
// A plaintext token is "<record id>|<secret>"; only the sha256 of the secret
// is ever stored, so the plaintext is retrievable exactly once, at issuance.
package token

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"postboard/database/model"
	"postboard/util/common"
	"postboard/util/random"

	"github.com/gin-gonic/gin"
)

// SecretLength is the length of the random secret half of a token.
const SecretLength = 40

const identityKey = "ACCESS_IDENTITY"

// NewSecret mints the random secret half of a token.
func NewSecret() string {
	return random.Seq(SecretLength)
}

// Hash derives the verifiable form stored in place of the secret.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Format assembles the plaintext handed to the client.
func Format(id int, secret string) string {
	return strconv.Itoa(id) + "|" + secret
}

// Parse splits a presented plaintext back into record id and secret.
func Parse(plain string) (int, string, error) {
	id, secret, found := strings.Cut(plain, "|")
	if !found || secret == "" {
		return 0, "", common.NewError("malformed token")
	}
	recordId, err := strconv.Atoi(id)
	if err != nil || recordId <= 0 {
		return 0, "", common.NewError("malformed token id")
	}
	return recordId, secret, nil
}

// Identity is the authenticated caller, produced once by token verification
// and threaded through the request via the gin context.
type Identity struct {
	User      *model.User
	Abilities model.AbilitySet
}

// Can reports whether the identity's token was issued with the ability.
func (i *Identity) Can(a model.Ability) bool {
	return i.Abilities.Contains(a)
}

// SetIdentity stashes the resolved identity on the request context.
func SetIdentity(c *gin.Context, identity *Identity) {
	c.Set(identityKey, identity)
}

// GetIdentity returns the identity resolved for this request, or nil on
// unauthenticated routes.
func GetIdentity(c *gin.Context) *Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(*Identity); ok {
			return identity
		}
	}
	return nil
}
