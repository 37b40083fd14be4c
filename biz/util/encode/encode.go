package encode

import (
	"crypto/sha256"
	"encoding/hex"
)

// EncodePassword 加盐哈希, 存储与比对都走这里
func EncodePassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + ":" + password))
	return hex.EncodeToString(sum[:])
}
