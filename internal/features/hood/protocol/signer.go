package protocol

import (
	"crypto/md5"
	"encoding/hex"
)

// Hash returns the digest Hood.de expects for passwords: lowercase hex MD5.
func Hash(secret string) string {
	sum := md5.Sum([]byte(secret))
	return hex.EncodeToString(sum[:])
}
