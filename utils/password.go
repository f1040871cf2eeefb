package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// hashConfig pins the argon2id parameters so stored hashes stay verifiable
// across library upgrades. 64 MiB / 2 passes keeps sign-in latency tolerable
// on the small API pods.
var hashConfig = func() argon2.Config {
	cfg := argon2.DefaultConfig()
	cfg.MemoryCost = 64 * 1024
	cfg.TimeCost = 2
	cfg.Parallelism = 2
	return cfg
}()

// HashPassword encodes the password with argon2id and a random salt.
func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks the password against an encoded hash; the parameters
// embedded in the hash win over hashConfig, so older hashes keep verifying.
func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}
