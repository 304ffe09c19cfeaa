package types

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_TENANT       = "tenant"
	UUID_PREFIX_PLAN         = "plan"
	UUID_PREFIX_SUBSCRIPTION = "subs"
	UUID_PREFIX_BOND_COMPANY = "bond"
	UUID_PREFIX_USER         = "user"
	UUID_PREFIX_PAGE         = "page"
	UUID_PREFIX_STUDY        = "study"
	UUID_PREFIX_REQUEST      = "req"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier with a prefix
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
