package assets

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/storefront-api/internal/domain"
)

// Signer produces signed upload parameters for the image host. The secret
// never leaves the server; the client uploads directly with the signature.
type Signer struct {
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
}

// SignedParams is what the upload widget needs to call the image host.
type SignedParams struct {
	CloudName string `json:"cloud_name"`
	APIKey    string `json:"api_key"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

// NewSigner builds the signer.
func NewSigner(cloudName, apiKey, apiSecret string) *Signer {
	return &Signer{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

// Sign produces the signature for an upload request. Extra params (folder,
// public_id, eager) participate in the signature; api_key and the timestamp
// are added here. Fails when the signer has no secret configured.
func (s *Signer) Sign(params map[string]string) (*SignedParams, error) {
	if s.apiSecret == "" {
		return nil, fmt.Errorf("%w: image host secret not configured", domain.ErrUpstream)
	}

	ts := s.now().Unix()
	toSign := make(map[string]string, len(params)+1)
	for k, v := range params {
		if v == "" {
			continue
		}
		toSign[k] = v
	}
	toSign["timestamp"] = strconv.FormatInt(ts, 10)

	return &SignedParams{
		CloudName: s.cloudName,
		APIKey:    s.apiKey,
		Timestamp: ts,
		Signature: signature(toSign, s.apiSecret),
	}, nil
}

// signature is the image host's scheme: params sorted by key, joined as
// key=value with '&', the secret appended, SHA-1 over the whole string.
func signature(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	payload := strings.Join(pairs, "&") + secret

	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
