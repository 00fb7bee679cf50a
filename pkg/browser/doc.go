// Package browser manages sessions against remotely provisioned browsers
// and executes high-level actions on their pages through Playwright.
//
// The package is built around four pieces:
//
//  1. Store: in-memory registry mapping session ids to live sessions
//  2. Manager: session lifecycle — connect over CDP, adopt a context and
//     page, register, close, and sweep stale sessions on a timer
//  3. Executor: the six action kinds (navigate, click, type_text, scroll,
//     wait, get_page_content) with a structural-then-semantic selector
//     fallback for click and type_text
//  4. Capturer: best-effort screenshots that never propagate failures
//
// # Session lifecycle
//
// Sessions follow this lifecycle:
//
//  1. Create: connect to the provisioner with caller credentials, adopt
//     the first browsing context and page (or create them), register
//     under a fresh uuid
//  2. Use: actions mutate page state only, never the session record
//  3. Close: explicit close disconnects best-effort and removes the
//     record; absent ids are a no-op
//  4. Sweep: sessions older than SessionMaxAge are disconnected and
//     removed every SweepInterval
//
// A disconnect failure is logged and never blocks removal: once a session
// leaves the store it is gone, whatever the remote end thought about it.
//
// # Concurrency
//
// The store takes a read-write mutex; every handler goroutine and the
// sweeper share it safely. Pages are not locked: two concurrent actions
// against the same session interleave on the remote browser, and a sweep
// may close a session an in-flight action already resolved. The resulting
// driver error surfaces through the normal failure-observation path.
package browser
