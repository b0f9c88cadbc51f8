package api

import (
	"bytes"         // Body trimming
	"encoding/json" // Raw request fields
	"errors"        // Error matching
	"math"          // Overflow bound
	"net/http"      // HTTP status codes
	"strings"       // Id parameter scanning

	"user_directory/internal/domain"  // User model and field parsing
	"user_directory/internal/service" // Record service
	"user_directory/internal/store"   // Store errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateUserRequest represents a create request; both fields are optional
type CreateUserRequest struct {
	Name json.RawMessage // Display name
	Role json.RawMessage // Role label
}

var errInvalidBody = errors.New("request body must be a JSON object")

// bindCreateRequest reads the body as a JSON object with the exact keys name
// and role. An empty body or a JSON array counts as {}; scalars and invalid
// JSON are rejected.
func bindCreateRequest(c *gin.Context) (CreateUserRequest, error) {
	var req CreateUserRequest
	if c.Request.Body == nil {
		return req, nil // No body counts as {}
	}
	data, err := c.GetRawData() // Read the request body
	if err != nil {
		return req, err
	}
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return req, nil
	case !json.Valid(trimmed):
		return req, errInvalidBody
	case trimmed[0] == '[':
		return req, nil // Arrays carry no fields
	case trimmed[0] != '{':
		return req, errInvalidBody
	}
	fields, err := domain.Object(trimmed)
	if err != nil {
		return req, err
	}
	req.Name, req.Role = fields["name"], fields["role"]
	return req, nil
}

// ListUsersHandler returns every user, normalized
func ListUsersHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.List())
	}
}

// CreateUserHandler adds a user to the in-memory set
func CreateUserHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := bindCreateRequest(c) // Bind JSON request to struct
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		name, _ := domain.Text(req.Name) // Non-string values fall back to the default
		role, _ := domain.Text(req.Role)
		user := svc.Create(c.Request.Context(), service.CreateInput{Name: name, Role: role})
		c.JSON(http.StatusCreated, user) // Return the created user
	}
}

// DeleteUserHandler removes the user named by the :id path parameter
func DeleteUserHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseLeadingInt(c.Param("id"))
		if !ok {
			// Unparseable ids can never match a user
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": id,          // Requested user ID
				"error":   err.Error(), // Error message
			}).Error("Delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// parseLeadingInt reads a base-10 integer from the start of s, ignoring
// leading whitespace and anything after the digits ("12abc" is 12)
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var n int64
	digits := 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		d := int64(s[digits] - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0, false // Too large to match any id
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
