package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	intconfig "hotelbot/internal/config"
	intdb "hotelbot/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser is the customer payload returned after login/register.
type AuthUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		var (
			user         AuthUser
			passwordHash string
		)
		err := intconfig.DB.QueryRow(`
			SELECT id, name, email, phone, password_hash, role
			FROM customers
			WHERE email = ?
		`, req.Email).Scan(
			&user.ID, &user.Name, &user.Email, &user.Phone, &passwordHash, &user.Role,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				RespondError(c, http.StatusUnauthorized, "invalid email or password", nil)
			} else {
				RespondError(c, http.StatusInternalServerError, "failed to query user", err)
			}
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
			RespondError(c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"role":    user.Role,
			"exp":     time.Now().Add(24 * time.Hour).Unix(),
		})
		tokenString, err := token.SignedString(jwtSecret)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": tokenString,
			"user":  user,
		})
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	if err := ensureCustomersTable(); err != nil {
		RespondError(c, http.StatusInternalServerError, "storage unavailable", err)
		return
	}

	var exists int
	if err := intconfig.DB.QueryRow(`
		SELECT COUNT(*) FROM customers WHERE email = ?
	`, req.Email).Scan(&exists); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check user", err)
		return
	}
	if exists > 0 {
		RespondError(c, http.StatusBadRequest, "email already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO customers (name, email, phone, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, 'customer', NOW())
	`, req.Name, req.Email, req.Phone, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user": AuthUser{
			ID:    id,
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
			Role:  "customer",
		},
	})
}

func ensureCustomersTable() error {
	db := intconfig.DB
	if db == nil {
		return errors.New("db not available")
	}
	if intdb.HasTable(db, "customers") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS customers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(30) NOT NULL DEFAULT 'customer',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}
