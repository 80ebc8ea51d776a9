// Package cli provides the interactive Anonsen command-line client.
//
// It wires configuration, local storage, the repositories and services,
// and an interactive REPL. Typical flow: restore a persisted session,
// then execute user commands.
//
// Key features:
//   - Register / Login / Logout (with remember-me sessions)
//   - Create posts: text-only or with an attached image
//   - Browse the feed, like and unlike posts
//   - Edit the profile (bio, picture)
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App and runREPL for details.
package cli
