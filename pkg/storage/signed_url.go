package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidToken covers malformed and tampered download tokens.
	ErrInvalidToken = errors.New("invalid download token")
	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("download token expired")
)

// DownloadClaims is the content of a signed download token.
type DownloadClaims struct {
	Reference string
	Path      string
	ExpiresAt time.Time
}

// SignedURLSigner creates and validates signed download tokens.
type SignedURLSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSignedURLSigner constructs a signer with the provided secret and TTL.
func NewSignedURLSigner(secret string, ttl time.Duration) *SignedURLSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SignedURLSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the lifetime of generated tokens.
func (s *SignedURLSigner) TTL() time.Duration {
	return s.ttl
}

// Generate returns a token granting access to relPath. reference identifies
// the export (or batch job) the file belongs to.
func (s *SignedURLSigner) Generate(reference, relPath string) (string, time.Time, error) {
	if reference == "" || relPath == "" {
		return "", time.Time{}, fmt.Errorf("reference and relPath required")
	}
	if strings.Contains(reference, ".") {
		return "", time.Time{}, fmt.Errorf("reference must not contain dots")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}
	expiresAt := s.now().Add(s.ttl)
	ts := strconv.FormatInt(expiresAt.Unix(), 10)
	encodedPath := base64.RawURLEncoding.EncodeToString([]byte(relPath))
	token := strings.Join([]string{reference, ts, encodedPath, s.sign(reference, ts, encodedPath)}, ".")
	return token, expiresAt, nil
}

// Parse validates a token. When allowExpired is true the expiry check is skipped.
func (s *SignedURLSigner) Parse(token string, allowExpired bool) (DownloadClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return DownloadClaims{}, ErrInvalidToken
	}
	reference, ts, encodedPath, signature := parts[0], parts[1], parts[2], parts[3]

	if !hmac.Equal([]byte(s.sign(reference, ts, encodedPath)), []byte(signature)) {
		return DownloadClaims{}, ErrInvalidToken
	}
	rawPath, err := base64.RawURLEncoding.DecodeString(encodedPath)
	if err != nil {
		return DownloadClaims{}, ErrInvalidToken
	}
	expUnix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return DownloadClaims{}, ErrInvalidToken
	}
	claims := DownloadClaims{Reference: reference, Path: string(rawPath), ExpiresAt: time.Unix(expUnix, 0)}
	if !allowExpired && s.now().After(claims.ExpiresAt) {
		return DownloadClaims{}, ErrTokenExpired
	}
	return claims, nil
}

func (s *SignedURLSigner) sign(reference, ts, encodedPath string) string {
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(reference + "|" + ts + "|" + encodedPath))
	return hex.EncodeToString(mac.Sum(nil))
}
