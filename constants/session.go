package constants

// MaxSessionTokenLen is the column ceiling for a guest session token.
// Longer tokens are rejected before any account lookup.
const MaxSessionTokenLen = 100
