package ui

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

const (
	sessionCookie = "explorer_session"
	sessionTTL    = 4 * time.Hour
)

// Session holds one browser's exploration state: the selected table, the
// filter domains derived from its sample, and the filters and page currently
// applied. Server-side state keeps the URLs clean and the filter domains out
// of hidden form fields.
type Session struct {
	Table      domain.TableRef
	Domains    []domain.FilterDomain
	Filters    domain.Filters
	PageSize   int
	PageNumber int
	LastSQL    string

	touched time.Time
}

// HasTable reports whether a table has been selected this session.
func (s *Session) HasTable() bool {
	return s.Table.Table != ""
}

// SessionStore is an in-memory cookie-keyed session map. Sessions idle past
// the TTL are dropped on the next sweep.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	pageSize int
}

// NewSessionStore creates a store whose new sessions default to the given
// page size.
func NewSessionStore(defaultPageSize int) *SessionStore {
	if defaultPageSize <= 0 {
		defaultPageSize = domain.DefaultPageSize
	}
	s := &SessionStore{
		sessions: map[string]*Session{},
		pageSize: defaultPageSize,
	}
	go s.sweep()
	return s
}

// Get returns the session for the request, creating one (and setting the
// cookie) when absent. The returned session is shared per browser; handlers
// run sequentially per user in practice, and the store itself is locked.
func (s *SessionStore) Get(w http.ResponseWriter, r *http.Request) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions[c.Value]; ok {
			sess.touched = time.Now()
			return sess
		}
	}

	id := uuid.NewString()
	sess := &Session{
		Filters:    domain.Filters{},
		PageSize:   s.pageSize,
		PageNumber: 1,
		touched:    time.Now(),
	}
	s.sessions[id] = sess
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *SessionStore) sweep() {
	for {
		time.Sleep(30 * time.Minute)
		cutoff := time.Now().Add(-sessionTTL)
		s.mu.Lock()
		for id, sess := range s.sessions {
			if sess.touched.Before(cutoff) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
