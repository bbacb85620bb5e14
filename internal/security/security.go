// Package security classifies usage contexts and explains when ULIDs are
// a poor choice.
//
// ULID implementations that generate monotonically within one millisecond
// increment the randomness field instead of redrawing it, so a value minted
// right after another one is predictable. Anything that must be unguessable
// should use a different generator.
package security

import (
	"fmt"
	"strings"

	"github.com/Flyrell/ulidkit/internal/value"
)

// sensitiveKeywords mark a context as security-sensitive when any of them
// appears as a case-insensitive substring.
var sensitiveKeywords = []string{
	"auth", "authentication", "authorize", "authorization",
	"token", "session", "password", "secret", "key", "credential",
	"login", "signin", "signup", "security", "secure",
	"api_key", "apikey", "access_token", "refresh_token",
	"jwt", "oauth", "saml", "oidc",
	"reset", "recovery", "verification", "confirm",
	"nonce", "csrf", "xsrf", "challenge",
}

var (
	highRisk = []string{
		"auth", "authentication", "token", "session", "password", "secret",
		"key", "login", "api_key", "jwt", "oauth",
	}
	mediumRisk = []string{
		"user", "account", "profile", "admin", "security", "reset", "verify",
		"confirm", "access",
	}
	lowRisk = []string{
		"database", "db", "record", "log", "file", "object", "trace",
		"correlation", "analytics", "monitoring",
	}
)

// Rating is the risk of using ULIDs in a given context.
type Rating int

const (
	Unknown Rating = iota
	Low
	Medium
	High
)

func (r Rating) String() string {
	switch r {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	}
	return "Unknown"
}

// Advice returns a one-line recommendation for the rating.
func (r Rating) Advice() string {
	switch r {
	case Low:
		return "ULIDs are appropriate for this use case"
	case Medium:
		return "Consider security implications; ULIDs may be acceptable with caution"
	case High:
		return "ULIDs are NOT recommended; use cryptographically secure alternatives"
	}
	return "Assess security requirements before using ULIDs"
}

// IsSensitive reports whether context suggests a security-sensitive use.
func IsSensitive(context string) bool {
	return containsAny(strings.ToLower(context), sensitiveKeywords)
}

// Rate classifies context. The first matching tier wins, checked from High
// down to Low.
func Rate(context string) Rating {
	c := strings.ToLower(context)
	switch {
	case containsAny(c, highRisk):
		return High
	case containsAny(c, mediumRisk):
		return Medium
	case containsAny(c, lowRisk):
		return Low
	}
	return Unknown
}

// ShouldWarn reports whether an operation deserves a security warning.
// With a context the decision follows IsSensitive; without one, bulk and
// batch operations warn because they suggest production use.
func ShouldWarn(operation, context string) bool {
	if context != "" {
		return IsSensitive(context)
	}
	return strings.Contains(operation, "bulk") ||
		strings.Contains(operation, "batch") ||
		(strings.Contains(operation, "generate") && strings.Contains(operation, "count"))
}

// ContextWarning builds the warning shown when a sensitive context is used.
func ContextWarning(context string) value.Record {
	rating := Rate(context)
	return value.New(
		"warning", "Potential security concern detected",
		"context", context,
		"rating", rating.String(),
		"message", fmt.Sprintf("The context '%s' suggests security-sensitive usage. ULIDs may not be appropriate for authentication, session management, or cryptographic purposes.", context),
		"recommendation", "Consider using cryptographically secure random tokens instead. Run 'ulidkit security-advice' for detailed guidance.",
	)
}

// ContextRating builds the rating record for security-advice --context.
func ContextRating(context string) value.Record {
	rating := Rate(context)
	return value.New(
		"context", context,
		"rating", rating.String(),
		"sensitive", IsSensitive(context),
		"advice", rating.Advice(),
	)
}

// CommandWarning is the short notice appended to generator help text.
const CommandWarning = `WARNING: ULIDs are not suitable for security-sensitive contexts.
  Safe:   database IDs, log correlation, file naming
  Unsafe: auth tokens, session IDs, API keys
  See:    ulidkit security-advice`

var (
	safeUseCases = []string{
		"Database primary keys",
		"Log correlation IDs",
		"File and object naming",
		"Sortable identifiers for analytics",
		"General-purpose unique identifiers",
		"Event tracking and tracing",
		"Data pipeline identifiers",
	}
	unsafeUseCases = []string{
		"Authentication tokens",
		"Session identifiers",
		"Password reset tokens",
		"API keys or secrets",
		"Security-critical random values",
		"Cryptographic nonces",
		"CSRF tokens",
		"OAuth state parameters",
	}
	bestPractices = []string{
		"Always assess whether your use case requires cryptographic security",
		"Document ULID usage context in your code and architecture",
		"Use ULIDs for identification, not authentication or authorization",
		"Prefer UUIDs or secure random generators for security-sensitive contexts",
		"Consider the trade-offs: sortability vs. cryptographic security",
		"Implement proper security reviews for identifier usage",
	}
	alternatives = [][2]string{
		{"Authentication tokens", "256-bit cryptographically random strings (ulidkit hash random --length 32)"},
		{"Session IDs", "UUID v4 or dedicated session token generators (ulidkit alt generate uuid)"},
		{"API keys", "Proper key derivation functions (PBKDF2, scrypt, Argon2)"},
		{"CSRF tokens", "Cryptographically secure random byte generators"},
		{"Password reset tokens", "Secure random generators with expiration (ulidkit alt generate nanoid)"},
	}
)

// Advice returns the full advisory.
func Advice() value.Record {
	alts := make([]value.Record, len(alternatives))
	for i, a := range alternatives {
		alts[i] = value.New("use_case", a[0], "recommended", a[1])
	}

	return value.New(
		"title", "ULID Security Considerations",
		"warning", "ULIDs have important security limitations due to monotonic generation patterns",
		"safe_use_cases", safeUseCases,
		"unsafe_use_cases", unsafeUseCases,
		"vulnerability", "When multiple ULIDs are generated within the same millisecond, the randomness component becomes a counter (incremented by 1). This creates predictable sequences that enable timing-based attacks.",
		"attack_example", value.New(
			"scenario", "Generate two objects simultaneously",
			"time_t", "01AN4Z07BY + 79KA1307SR9X4MV3",
			"time_t_plus_1", "01AN4Z07BY + 79KA1307SR9X4MV4  (just incremented!)",
			"impact", "Second ULID = First ULID + 1 (predictable)",
		),
		"secure_alternatives", alts,
		"best_practices", bestPractices,
		"learn_more", "See ULID specification: https://github.com/ulid/spec",
	)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
