package proxy

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const sessionServer = "https://sessionserver.mojang.com/session/minecraft/hasJoined"

// authTimeout bounds the session server round trip; the lookup runs on a
// worker holding only this connection's lock.
const authTimeout = 10 * time.Second

// LoginInfo is the authenticated identity returned by the session server,
// or synthesized locally in offline mode.
type LoginInfo struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Properties []LoginProperty `json:"properties"`
}

// LoginProperty is one signed profile property, e.g. textures.
type LoginProperty struct {
	Name      string  `json:"name"`
	Value     string  `json:"value"`
	Signature *string `json:"signature,omitempty"`
}

// ErrAuthRejected is returned when the session server answers 204 or any
// other non-200: the client's token is not valid for this login.
type ErrAuthRejected struct {
	Status int
}

func (e ErrAuthRejected) Error() string {
	return fmt.Sprintf("session server rejected login (status %d)", e.Status)
}

var authClient = &http.Client{Timeout: authTimeout}

// hasJoined validates the client against the Mojang session server using
// the server ID hash computed from the shared secret and public key.
func hasJoined(username, serverHash string) (*LoginInfo, error) {
	u := fmt.Sprintf("%s?username=%s&serverId=%s", sessionServer, url.QueryEscape(username), serverHash)
	resp, err := authClient.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate client: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrAuthRejected{Status: resp.StatusCode}
	}
	var info LoginInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("invalid json data from session server: %w", err)
	}
	return &info, nil
}

// serverHash computes Mojang's authentication digest: SHA-1 over
// serverID || secret || DER public key, rendered as a signed hex string
// with Java BigInteger semantics (two's complement, minus sign, no leading
// zeros).
func serverHash(serverID string, secret []byte, derKey []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(secret)
	h.Write(derKey)
	return javaHexDigest(h.Sum(nil))
}

func javaHexDigest(sum []byte) string {
	n := new(big.Int).SetBytes(sum)
	if sum[0]&0x80 != 0 {
		// Negative in two's complement: value - 2^160.
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(sum)*8)))
	}
	return n.Text(16)
}

// offlineUUID synthesizes the deterministic offline-mode UUID: the MD5 of
// the username, used verbatim as the 16 UUID bytes.
func offlineUUID(username string) uuid.UUID {
	return uuid.UUID(md5.Sum([]byte(username)))
}
