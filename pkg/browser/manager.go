package browser

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var sessionsSwept = promauto.NewCounter(prometheus.CounterOpts{
	Name: "browsergate_sessions_swept_total",
	Help: "Sessions evicted by the staleness sweeper.",
})

// Manager owns the session lifecycle: connecting to remotely provisioned
// browsers, registering sessions in the store, and tearing them down on
// close, sweep, or shutdown.
type Manager struct {
	store      *Store
	pw         *playwright.Playwright
	connectURL string
	log        *zap.Logger
}

// NewManager creates a session manager backed by the given store.
// connectURL is the base endpoint of the remote browser provisioner.
func NewManager(store *Store, connectURL string, log *zap.Logger) *Manager {
	return &Manager{
		store:      store,
		connectURL: connectURL,
		log:        log,
	}
}

// Initialize starts the Playwright driver. It must be called before
// creating any sessions. Browsers are never installed locally; sessions
// connect to remotely hosted browsers over CDP.
func (m *Manager) Initialize() error {
	if m.pw != nil {
		return nil
	}

	opts := &playwright.RunOptions{
		SkipInstallBrowsers: true,
	}

	if err := playwright.Install(opts); err != nil {
		return fmt.Errorf("failed to install playwright driver: %w", err)
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	m.pw = pw
	return nil
}

// Create connects to a remote browser using the caller's credentials and
// registers a new session. The first existing browsing context and page are
// adopted; when the remote browser exposes none, fresh ones are created.
func (m *Manager) Create(creds Credentials) (*Session, error) {
	if creds.APIKey == "" || creds.ProjectID == "" {
		return nil, fmt.Errorf("apiKey and projectId are required")
	}
	if m.pw == nil {
		return nil, fmt.Errorf("session manager not initialized")
	}

	endpoint := m.endpoint(creds)
	browser, err := m.pw.Chromium.ConnectOverCDP(endpoint, playwright.BrowserTypeConnectOverCDPOptions{
		Timeout: playwright.Float(ConnectTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to remote browser: %w", err)
	}

	var browserCtx playwright.BrowserContext
	if contexts := browser.Contexts(); len(contexts) > 0 {
		browserCtx = contexts[0]
	} else {
		browserCtx, err = browser.NewContext()
		if err != nil {
			_ = browser.Close()
			return nil, fmt.Errorf("failed to create context: %w", err)
		}
	}

	var page playwright.Page
	if pages := browserCtx.Pages(); len(pages) > 0 {
		page = pages[0]
	} else {
		page, err = browserCtx.NewPage()
		if err != nil {
			_ = browser.Close()
			return nil, fmt.Errorf("failed to create page: %w", err)
		}
	}

	sess := &Session{
		ID:        uuid.NewString(),
		Browser:   browser,
		Context:   browserCtx,
		Page:      page,
		CreatedAt: time.Now(),
	}
	m.store.Put(sess)

	m.log.Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("project_id", creds.ProjectID))
	return sess, nil
}

// endpoint builds the provisioner connect URL for the given credentials.
func (m *Manager) endpoint(creds Credentials) string {
	q := url.Values{}
	q.Set("apiKey", creds.APIKey)
	q.Set("projectId", creds.ProjectID)
	return m.connectURL + "?" + q.Encode()
}

// Close disconnects and removes a session. Disconnect failures are logged
// and never block removal. Closing an unknown id is a no-op, so the call
// is idempotent.
func (m *Manager) Close(id string) {
	sess, ok := m.store.Get(id)
	if !ok {
		return
	}

	m.disconnect(sess)
	m.store.Delete(id)
	m.log.Info("session closed", zap.String("session_id", id))
}

// Sweep evicts every session older than SessionMaxAge as of now and
// returns how many were removed. One session's disconnect failure never
// stops the sweep of the others.
func (m *Manager) Sweep(now time.Time) int {
	stale := m.store.Stale(SessionMaxAge, now)
	for _, sess := range stale {
		m.disconnect(sess)
		m.store.Delete(sess.ID)
		sessionsSwept.Inc()
		m.log.Info("session expired",
			zap.String("session_id", sess.ID),
			zap.Duration("age", sess.Age(now)))
	}
	return len(stale)
}

// RunSweeper runs Sweep on a fixed interval until ctx is cancelled.
func (m *Manager) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(time.Now())
		}
	}
}

// Shutdown closes every remaining session and stops the Playwright driver.
func (m *Manager) Shutdown() {
	for _, sess := range m.store.List() {
		m.disconnect(sess)
		m.store.Delete(sess.ID)
	}

	if m.pw != nil {
		if err := m.pw.Stop(); err != nil {
			m.log.Warn("failed to stop playwright", zap.Error(err))
		}
		m.pw = nil
	}
}

// disconnect closes the session's browser connection, swallowing errors.
// The remote browser may already be gone; removal proceeds regardless.
func (m *Manager) disconnect(sess *Session) {
	if sess.Browser == nil {
		return
	}
	if err := sess.Browser.Close(); err != nil {
		m.log.Warn("browser disconnect failed",
			zap.String("session_id", sess.ID),
			zap.Error(err))
	}
}
