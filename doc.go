// Package browserdump extracts browsing artifacts (history, bookmarks,
// cookies) from local Chrome and Edge profiles and serializes them to CSV,
// per-browser and combined.
//
// This is intended for local forensic/triage tooling. It reads browser state
// through read-only snapshots, may trigger keychain/keyring prompts while
// decrypting cookie values, and should not be used in server contexts.
package browserdump
