package security

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var legacySHA1Pattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// PasswordHasher : bcrypt для новых хэшей, SHA1 без соли только для проверки старых записей
type PasswordHasher struct {
	legacySHA1 bool
	cost       int
}

func NewPasswordHasher(legacySHA1 bool) *PasswordHasher {
	return &PasswordHasher{legacySHA1: legacySHA1, cost: bcrypt.DefaultCost}
}

// bcryptMaxLength : bcrypt не принимает пароли длиннее 72 байт
const bcryptMaxLength = 72

// bcryptInput : длинный пароль сводится к base64(sha256), короткий идёт как есть
func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxLength {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Check : true, если пароль соответствует хэшу
func (h *PasswordHasher) Check(password, hash string) bool {
	if h.legacySHA1 && legacySHA1Pattern.MatchString(hash) {
		sum := sha1.Sum([]byte(password))
		return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(hash)) == 1
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
}
