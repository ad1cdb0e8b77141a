package middleware

import (
	"net/http"
	"strings"
	"time"

	"hotelms-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// StaffIdentity is what every protected handler sees: who is acting, from
// which branch, with which role.
type StaffIdentity struct {
	StaffID  uint
	BranchID uint
	Role     string
}

// NewAccessToken signs an HS256 JWT carrying the staff identity. TTL is in
// minutes.
func NewAccessToken(secret string, staffID, branchID uint, role string, ttlMin int) (string, time.Time, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":       float64(staffID),
		"branch_id": float64(branchID),
		"role":      role,
		"exp":       exp.Unix(),
		"iat":       time.Now().UTC().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// JWTAuth validates the bearer token and injects the staff identity into the
// context under "staff".
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "invalid claims")
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(float64)
		branch, _ := claims["branch_id"].(float64)
		role, _ := claims["role"].(string)
		if sub <= 0 || role == "" {
			utils.JSONError(c, http.StatusUnauthorized, "invalid claims")
			c.Abort()
			return
		}

		c.Set("staff", StaffIdentity{StaffID: uint(sub), BranchID: uint(branch), Role: role})
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Assumes JWTAuth ran
// first.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		identity, ok := Identity(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			c.Abort()
			return
		}
		if !allowed[identity.Role] {
			utils.JSONError(c, http.StatusForbidden, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity pulls the authenticated staff identity out of the context.
func Identity(c *gin.Context) (StaffIdentity, bool) {
	v, ok := c.Get("staff")
	if !ok {
		return StaffIdentity{}, false
	}
	identity, ok := v.(StaffIdentity)
	return identity, ok
}
