// Package fakeapi is an in-process stand-in for the booking backend, used
// by the client tests. It speaks the same wire dialect: Mongo-style "_id"
// fields, string-encoded booleans, and the {data: ...} envelope on the
// reservation list endpoints. The real backend serves a browser app, so the
// fake carries the same CORS posture.
package fakeapi

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomRecord struct {
	ID           string `json:"_id"`
	Type         string `json:"type"`
	RoomNumber   string `json:"roomNumber"`
	Description  string `json:"description"`
	Capacity     int    `json:"capacity"`
	Price        string `json:"price"`
	Availability string `json:"availability"`
	Image        string `json:"image"`
}

type UserRecord struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsAdmin  bool   `json:"isAdmin"`
	Password string `json:"-"`
}

type ReservationRecord struct {
	ID                  string   `json:"_id"`
	CheckInDate         string   `json:"checkInDate"`
	CheckOutDate        string   `json:"checkOutDate"`
	UserID              string   `json:"userId"`
	RoomID              string   `json:"roomId"`
	RoomType            string   `json:"-"`
	RoomNumber          string   `json:"-"`
	SpecialRequirements []string `json:"specialRequirements"`
	AdditionalRequests  string   `json:"additionalRequests"`
}

type Server struct {
	Engine *gin.Engine

	mu           sync.Mutex
	rooms        []*RoomRecord
	users        []*UserRecord
	reservations []*ReservationRecord
	tokens       map[string]string // token -> user id
	forcedStatus int
}

func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		Engine: gin.New(),
		tokens: make(map[string]string),
	}
	s.Engine.Use(cors.Default())
	s.routes()
	return s
}

// ForceStatus makes every subsequent request fail with the given status
// until cleared with 0. Used to exercise the client's error mapping.
func (s *Server) ForceStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forcedStatus = code
}

func (s *Server) SeedRoom(r RoomRecord) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.rooms = append(s.rooms, &r)
	return r.ID
}

func (s *Server) SeedUser(u UserRecord) (id, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users = append(s.users, &u)
	token = uuid.NewString()
	s.tokens[token] = u.ID
	return u.ID, token
}

func (s *Server) SeedReservation(r ReservationRecord) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.reservations = append(s.reservations, &r)
	return r.ID
}

// Reservations returns a snapshot of the stored reservations.
func (s *Server) Reservations() []ReservationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ReservationRecord, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, *r)
	}
	return out
}

func (s *Server) routes() {
	s.Engine.Use(func(c *gin.Context) {
		s.mu.Lock()
		forced := s.forcedStatus
		s.mu.Unlock()
		if forced != 0 {
			c.AbortWithStatus(forced)
		}
	})

	s.Engine.POST("/api/auth/login", s.login)
	s.Engine.POST("/api/auth/register", s.register)

	s.Engine.GET("/api/rooms", s.listRooms)

	authed := s.Engine.Group("/", s.requireAuth)
	authed.POST("/api/rooms", s.createRoom)
	authed.PUT("/api/rooms/:id", s.updateRoom)
	authed.DELETE("/api/rooms/:id", s.deleteRoom)

	authed.GET("/api/reservations", s.listReservations)
	authed.GET("/api/reservations/user/:userId", s.listUserReservations)
	authed.POST("/api/reservations", s.createReservation)
	authed.PUT("/api/reservations/:id", s.updateReservation)
	authed.DELETE("/api/reservations/:id", s.deleteReservation)

	authed.GET("/api/user", s.listUsers)
	authed.GET("/api/user/:id", s.getUser)
	authed.PUT("/api/user/:id", s.updateUser)
	authed.DELETE("/api/user/:id", s.deleteUser)
}

func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
		return
	}

	s.mu.Lock()
	userID, known := s.tokens[token]
	s.mu.Unlock()
	if !known {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}
	c.Set("userID", userID)
}
