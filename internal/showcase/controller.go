package showcase

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"zielinski.dev/folio-web/internal/config"
	"zielinski.dev/folio-web/internal/project"
)

// EmbedLoadTimeout is how long an allowlist-exempt embed may stay silent
// before the showcase degrades it to the still image.
const EmbedLoadTimeout = 1600 * time.Millisecond

// FocusTarget names the element that should receive focus after a
// user-initiated selection.
type FocusTarget string

const (
	FocusNone  FocusTarget = ""
	FocusDemo  FocusTarget = "demo"
	FocusMedia FocusTarget = "media"
)

// View is a consistent snapshot of the showcase state, taken under the
// controller lock so no caller observes a half-applied transition.
type View struct {
	ActiveID string
	Project  project.Record
	Plan     project.MediaPlan
	Token    uint64
	Scroll   bool
	Focus    FocusTarget
}

// Controller is the showcase state machine for one visitor: which project is
// active, its media plan, and the pending embed-failure timer. Every
// transition bumps a monotonically increasing selection token; the timer
// callback re-checks the token before degrading, so a stale timeout can
// never overwrite a newer selection.
type Controller struct {
	mu       sync.Mutex
	log      *zap.Logger
	settings config.Settings
	timeout  time.Duration

	projects []project.Record
	activeID string
	plan     project.MediaPlan
	token    uint64
	timer    *time.Timer
}

func NewController(settings config.Settings, log *zap.Logger) *Controller {
	return &Controller{
		log:      log,
		settings: settings,
		timeout:  EmbedLoadTimeout,
	}
}

// Reset installs a project list and applies the initial-render rule: the
// first project becomes active without scroll or focus. Also invoked on
// locale change, which deliberately does not preserve the prior selection.
func (c *Controller) Reset(projects []project.Record) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = projects
	if len(projects) == 0 {
		c.stopTimerLocked()
		c.token++
		c.activeID = ""
		c.plan = project.MediaPlan{Mode: project.ModeNone}
		return c.viewLocked(false)
	}
	c.activateLocked(projects[0])
	return c.viewLocked(false)
}

// Sync installs a project list without disturbing a still-valid selection.
// Used when a fragment request arrives on a controller that has not seen the
// current bundle yet; an active id missing from the new list falls back to
// the initial-render rule.
func (c *Controller) Sync(projects []project.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = projects
	if _, ok := project.ByID(projects, c.activeID); ok {
		return
	}
	if len(projects) == 0 {
		c.stopTimerLocked()
		c.token++
		c.activeID = ""
		c.plan = project.MediaPlan{Mode: project.ModeNone}
		return
	}
	c.activateLocked(projects[0])
}

// Select activates a project by id. Returns false when the id is unknown,
// leaving the current selection untouched. User-initiated, so the returned
// view carries scroll and focus directives.
func (c *Controller) Select(id string) (View, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := project.ByID(c.projects, id)
	if !ok {
		return View{}, false
	}
	c.activateLocked(rec)
	v := c.viewLocked(true)
	return v, true
}

// EmbedLoaded records that the embed for the given selection token finished
// loading, cancelling the pending fallback. Stale tokens are ignored.
func (c *Controller) EmbedLoaded(token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.token {
		return
	}
	c.stopTimerLocked()
}

// Snapshot returns the current state without transitioning.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked(false)
}

// SetTimeout overrides the embed-failure timeout, for tests.
func (c *Controller) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = d
}

func (c *Controller) activateLocked(rec project.Record) {
	c.stopTimerLocked()
	c.token++
	c.activeID = rec.ID
	c.plan = project.Classify(rec, c.settings)
	if c.plan.Mode == project.ModeEmbed && c.plan.FallbackOnTimeout {
		c.armTimerLocked(rec)
	}
}

func (c *Controller) armTimerLocked(rec project.Record) {
	token := c.token
	c.timer = time.AfterFunc(c.timeout, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if token != c.token {
			return
		}
		c.log.Info("showcase: embed never loaded, degrading",
			zap.String("project", rec.ID))
		c.plan = project.Fallback(rec)
		c.timer = nil
	})
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) viewLocked(userInitiated bool) View {
	v := View{
		ActiveID: c.activeID,
		Plan:     c.plan,
		Token:    c.token,
	}
	if rec, ok := project.ByID(c.projects, c.activeID); ok {
		v.Project = rec
	}
	if userInitiated {
		v.Scroll = true
		if c.plan.ShowDemo {
			v.Focus = FocusDemo
		} else {
			v.Focus = FocusMedia
		}
	}
	return v
}
