package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/patitas-felices/shelter-portal/internal/config"
	"github.com/patitas-felices/shelter-portal/internal/models"
)

// Identity is the request-scoped view of the authenticated user. Handlers
// read it from fiber Locals instead of touching the session store.
type Identity struct {
	UserID   uuid.UUID
	Nombre   string
	Apellido string
	Email    string
	Rol      models.Role
	RolID    int
	LoginAt  time.Time
}

func (i *Identity) FullName() string {
	return i.Nombre + " " + i.Apellido
}

// Role predicates for template branching. Admin counts as staff wherever
// the coordinator does.
func (i *Identity) EsStaff() bool {
	return i.Rol == models.RoleCoordinador || i.Rol == models.RoleAdmin
}
func (i *Identity) EsVeterinario() bool { return i.Rol == models.RoleVeterinario }
func (i *Identity) EsVoluntario() bool  { return i.Rol == models.RoleVoluntario }
func (i *Identity) EsAdoptante() bool   { return i.Rol == models.RoleAdoptante }

// DashboardPath is the identity's landing page.
func (i *Identity) DashboardPath() string {
	return models.DashboardPath(i.Rol)
}

// Manager wraps the fiber session store with the portal's session schema.
type Manager struct {
	store *session.Store
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{store: session.New(session.Config{
		Expiration:     cfg.SessionExpiry,
		KeyLookup:      "cookie:patitas_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})}
}

// Establish starts a fresh session for the user. The session id is
// regenerated to prevent fixation across the login boundary.
func (m *Manager) Establish(c *fiber.Ctx, user *models.User) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}

	sess.Set("authenticated", true)
	sess.Set("user_id", user.ID.String())
	sess.Set("nombre", user.Nombre)
	sess.Set("apellido", user.Apellido)
	sess.Set("email", user.Email)
	sess.Set("rol", user.Rol)
	sess.Set("rol_id", models.RoleIDs[user.Role()])
	sess.Set("login_at", time.Now().Unix())

	return sess.Save()
}

// Current returns the identity stored in the session, or false when the
// request carries no authenticated session.
func (m *Manager) Current(c *fiber.Ctx) (*Identity, bool) {
	sess, err := m.store.Get(c)
	if err != nil {
		return nil, false
	}

	authed, _ := sess.Get("authenticated").(bool)
	if !authed {
		return nil, false
	}

	idStr, _ := sess.Get("user_id").(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, false
	}

	nombre, _ := sess.Get("nombre").(string)
	apellido, _ := sess.Get("apellido").(string)
	email, _ := sess.Get("email").(string)
	rol, _ := sess.Get("rol").(string)
	rolID, _ := sess.Get("rol_id").(int)
	loginUnix, _ := sess.Get("login_at").(int64)

	return &Identity{
		UserID:   userID,
		Nombre:   nombre,
		Apellido: apellido,
		Email:    email,
		Rol:      models.NormalizeRole(rol),
		RolID:    rolID,
		LoginAt:  time.Unix(loginUnix, 0),
	}, true
}

// Destroy removes the server-side session and expires the cookie.
func (m *Manager) Destroy(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
