package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == body.Email && u.Password == body.Password {
			token := uuid.NewString()
			s.tokens[token] = u.ID
			c.JSON(http.StatusOK, gin.H{
				"token": token, "_id": u.ID, "name": u.Name, "email": u.Email, "isAdmin": u.IsAdmin,
			})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
}

func (s *Server) register(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == body.Email {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email already registered"})
			return
		}
	}
	u := &UserRecord{
		ID: uuid.NewString(), Name: body.Name, Email: body.Email,
		Phone: body.Phone, Password: body.Password,
	}
	s.users = append(s.users, u)
	token := uuid.NewString()
	s.tokens[token] = u.ID
	c.JSON(http.StatusCreated, gin.H{
		"token": token, "_id": u.ID, "name": u.Name, "email": u.Email, "isAdmin": u.IsAdmin,
	})
}

func (s *Server) listRooms(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RoomRecord, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, *r)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createRoom(c *gin.Context) {
	var body RoomRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	body.ID = uuid.NewString()

	s.mu.Lock()
	s.rooms = append(s.rooms, &body)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, body)
}

func (s *Server) updateRoom(c *gin.Context) {
	var body RoomRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rooms {
		if r.ID == c.Param("id") {
			body.ID = r.ID
			*r = body
			c.JSON(http.StatusOK, r)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "room not found"})
}

func (s *Server) deleteRoom(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rooms {
		if r.ID == c.Param("id") {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "room not found"})
}

// reservationDoc renders a stored reservation with the populated user and
// room references the list endpoints attach.
func (s *Server) reservationDoc(r *ReservationRecord) gin.H {
	doc := gin.H{
		"_id":                 r.ID,
		"checkInDate":         r.CheckInDate,
		"checkOutDate":        r.CheckOutDate,
		"userId":              r.UserID,
		"roomId":              r.RoomID,
		"specialRequirements": r.SpecialRequirements,
		"additionalRequests":  r.AdditionalRequests,
	}
	for _, u := range s.users {
		if u.ID == r.UserID {
			doc["user"] = gin.H{"name": u.Name}
		}
	}
	for _, room := range s.rooms {
		if room.ID == r.RoomID {
			doc["room"] = gin.H{"type": room.Type, "roomNumber": room.RoomNumber}
		}
	}
	return doc
}

func (s *Server) listReservations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]gin.H, 0, len(s.reservations))
	for _, r := range s.reservations {
		docs = append(docs, s.reservationDoc(r))
	}
	c.JSON(http.StatusOK, gin.H{"data": docs})
}

func (s *Server) listUserReservations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]gin.H, 0)
	for _, r := range s.reservations {
		if r.UserID == c.Param("userId") {
			docs = append(docs, s.reservationDoc(r))
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": docs})
}

func (s *Server) createReservation(c *gin.Context) {
	var body ReservationRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	body.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, &body)
	c.JSON(http.StatusCreated, s.reservationDoc(&body))
}

func (s *Server) updateReservation(c *gin.Context) {
	var body struct {
		CheckInDate         string   `json:"checkInDate"`
		CheckOutDate        string   `json:"checkOutDate"`
		RoomType            string   `json:"roomType"`
		RoomNumber          string   `json:"roomNumber"`
		SpecialRequirements []string `json:"specialRequirements"`
		AdditionalRequests  string   `json:"additionalRequests"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.ID == c.Param("id") {
			r.CheckInDate = body.CheckInDate
			r.CheckOutDate = body.CheckOutDate
			r.RoomType = body.RoomType
			r.RoomNumber = body.RoomNumber
			r.SpecialRequirements = body.SpecialRequirements
			r.AdditionalRequests = body.AdditionalRequests
			c.JSON(http.StatusOK, s.reservationDoc(r))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "reservation not found"})
}

func (s *Server) deleteReservation(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reservations {
		if r.ID == c.Param("id") {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "reservation not found"})
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]UserRecord, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == c.Param("id") {
			c.JSON(http.StatusOK, u)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}

func (s *Server) updateUser(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		IsAdmin *bool  `json:"isAdmin"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == c.Param("id") {
			u.Name = body.Name
			u.Email = body.Email
			u.Phone = body.Phone
			if body.IsAdmin != nil {
				u.IsAdmin = *body.IsAdmin
			}
			c.JSON(http.StatusOK, u)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}

func (s *Server) deleteUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == c.Param("id") {
			s.users = append(s.users[:i], s.users[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}
