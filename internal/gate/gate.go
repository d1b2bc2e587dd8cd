// Package gate implements the hidden two-stage unlock: a secret tap
// sequence mints a token for the first gated page, and a shared-secret
// form on that page grants time-limited access to the second.
//
// None of this is a trust boundary. Every failure is reported to callers
// as a plain "not authorized" so handlers can redirect without detail.
package gate

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Session keys.
const (
	TokenKey     = "epoxyAccessToken"
	BoostKey     = "boostAccess"
	BoostTimeKey = "boostAccessTime"
	TapsKey      = "tapHistory"

	Granted = "granted"
)

// BoostTTL bounds how long a second-stage grant stays valid.
const BoostTTL = 30 * time.Minute

var ErrIncorrectAnswers = errors.New("gate: incorrect answers")

// IncorrectMessage is the only failure text shown to visitors.
const IncorrectMessage = "Incorrect answers. Try again."

// Store is the per-visitor session storage the gates read and write.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Answers is the shared secret checked by the first gated page.
// First is compared case-insensitively, Second exactly.
type Answers struct {
	First  string
	Second string
}

func (a Answers) Verify(first, second string) bool {
	return strings.EqualFold(strings.TrimSpace(first), strings.TrimSpace(a.First)) &&
		strings.TrimSpace(second) == a.Second
}

// Controller ties the gates to a clock and a shared secret.
type Controller struct {
	Answers Answers
	Now     func() time.Time
}

func NewController(answers Answers) *Controller {
	return &Controller{Answers: answers, Now: time.Now}
}

// NewToken returns a random opaque token.
func NewToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Unlock mints a first-stage token into store and returns the path that
// embeds it.
func (c *Controller) Unlock(store Store) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	store.Set(TokenKey, token)
	return "/" + token, nil
}

// CheckToken reports whether param opens the first gated page. The admin
// route is always authorized. A valid token is left in place so a reload
// keeps working.
func (c *Controller) CheckToken(store Store, param string, admin bool) bool {
	if admin {
		return true
	}
	if param == "" {
		return false
	}
	stored, ok := store.Get(TokenKey)
	return ok && stored != "" && stored == param
}

// Submit checks the shared secret. On success the first-stage token is
// exchanged for a timestamped second-stage grant.
func (c *Controller) Submit(store Store, first, second string) error {
	if !c.Answers.Verify(first, second) {
		return ErrIncorrectAnswers
	}
	store.Delete(TokenKey)
	store.Set(BoostKey, Granted)
	store.Set(BoostTimeKey, strconv.FormatInt(c.Now().UnixMilli(), 10))
	return nil
}

// CheckBoost reports whether the second-stage grant is present and not
// expired. Only a readable timestamp older than BoostTTL expires a grant;
// an expired grant is cleared.
func (c *Controller) CheckBoost(store Store) bool {
	if v, ok := store.Get(BoostKey); !ok || v != Granted {
		return false
	}
	raw, ok := store.Get(BoostTimeKey)
	if !ok || raw == "" {
		return true
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return true
	}
	if c.Now().Sub(time.UnixMilli(ms)) > BoostTTL {
		c.LeaveBoost(store)
		return false
	}
	return true
}

// LeaveBoost drops the second-stage grant.
func (c *Controller) LeaveBoost(store Store) {
	store.Delete(BoostKey)
	store.Delete(BoostTimeKey)
}
