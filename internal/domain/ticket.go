package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// VerificationCodeLength is fixed by the tickets already in circulation.
const VerificationCodeLength = 12

// VerificationCode derives the ticket code printed on a registration's
// ticket: base64 of "<id>-<email>-<timestampMillis>", truncated to 12
// characters and upper-cased.
//
// The construction is deliberately unchanged from the first version of the
// site even though it is not a MAC: the inputs are non-secret and 12
// characters of truncated base64 provide obscurity, not authentication.
// Switching to a keyed derivation would invalidate every ticket already
// issued, so any hardening has to ship together with a reissue plan.
func VerificationCode(r Registration) string {
	data := fmt.Sprintf("%s-%s-%d", r.ID, r.Email, r.CreatedAt.UnixMilli())
	encoded := base64.StdEncoding.EncodeToString([]byte(data))
	if len(encoded) > VerificationCodeLength {
		encoded = encoded[:VerificationCodeLength]
	}
	return strings.ToUpper(encoded)
}

// VerifyCode reports whether the supplied code matches the registration's
// derived code. Comparison is case-insensitive; codes arrive via URL paths
// and QR scanners that may fold case.
func VerifyCode(code string, r Registration) bool {
	return strings.EqualFold(code, VerificationCode(r))
}
