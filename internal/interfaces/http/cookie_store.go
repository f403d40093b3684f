package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/pkg/config"
)

var _ ports.SessionStore = (*CookieStore)(nil)

// CookieStore SessionStore de un navegador: cada clave es una cookie HttpOnly.
// Las escrituras de la petición en curso se ven de inmediato en Get, antes de que
// el navegador reciba las cookies nuevas.
type CookieStore struct {
	c   *fiber.Ctx
	cfg config.SessionConfig

	mu      sync.Mutex
	overlay map[string]*string // nil = borrada en esta petición
}

// NewCookieStore liga el almacén a la petición.
func NewCookieStore(c *fiber.Ctx, cfg config.SessionConfig) *CookieStore {
	return &CookieStore{c: c, cfg: cfg, overlay: make(map[string]*string)}
}

func (s *CookieStore) Get(key string) (string, bool) {
	s.mu.Lock()
	v, tocada := s.overlay[key]
	s.mu.Unlock()
	if tocada {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	raw := s.c.Cookies(key)
	return raw, raw != ""
}

func (s *CookieStore) Set(key, value string) {
	s.mu.Lock()
	s.overlay[key] = &value
	s.mu.Unlock()

	maxAge := s.cfg.MaxAgeHours * 3600
	s.c.Cookie(&fiber.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  time.Now().Add(time.Duration(maxAge) * time.Second),
		Secure:   s.cfg.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *CookieStore) Delete(key string) {
	s.mu.Lock()
	s.overlay[key] = nil
	s.mu.Unlock()

	s.c.Cookie(&fiber.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   s.cfg.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
