package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ObjectNamespace is the UUIDv5 namespace for file object ids (the RFC 4122 DNS namespace)
var ObjectNamespace = uuid.NameSpaceDNS

// NewPayloadID returns a fresh random bundle id
func NewPayloadID() string {
	return uuid.NewString()
}

// ObjectID derives the deterministic object id of a file within a bundle
func ObjectID(bundleID, fileName string) string {
	return uuid.NewSHA1(ObjectNamespace, []byte(fmt.Sprintf("%s/%s", bundleID, fileName))).String()
}
