// Package auth provides HTTP handlers for registration, login and logout.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/session"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// AuthController handles the authentication endpoints
type AuthController struct {
	DB       *database.DBinstanceStruct
	Sessions session.Store
}

// NewAuthController creates a new instance of AuthController with the provided database and session store.
func NewAuthController(db *database.DBinstanceStruct, sessions session.Store) *AuthController {
	return &AuthController{
		DB:       db,
		Sessions: sessions,
	}
}

type registerInfo struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Role     string `form:"role" json:"role" binding:"required,oneof=job_seeker company"`
}

type loginInfo struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Both unknown email and wrong password answer with this exact body so the
// response does not reveal which one it was.
const badCredentials = "Invalid email or password."

// ShowRegister returns the registration form view model.
// @Summary Registration form
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/register [get]
func (ac *AuthController) ShowRegister(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Register"})
}

// Register function handles registration by receiving email, password and role.
// The password is stored only after bcrypt hashing; a duplicate email is left
// to the unique constraint and surfaces as a generic 500.
// @Summary Handles registration by receiving email, password and role
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param Info formData registerInfo true "role can be only 'job_seeker' or 'company'"
// @Success 302 "Redirect to the login page"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBind(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email, password, and role (only 'job_seeker' or 'company') must be provided",
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		logging.Log.WithError(err).Error("failed to hash password")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Registration failed. Please try again.",
		})
		return
	}

	user := model.User{
		Email:    info.Email,
		Password: hashedPassword,
		Role:     info.Role,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		logging.Log.WithError(err).WithField("email", info.Email).Error("failed to create user")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Registration failed. Please try again.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/auth/login")
}

// ShowLogin returns the login form view model.
// @Summary Login form
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/login [get]
func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Login"})
}

// Login function handles login by receiving email and password. On success a
// server-side session is stored and the client is redirected to the dashboard
// matching its role.
// @Summary Handles login by receiving email and password
// @Description Unknown email and wrong password return the identical 401 body
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param Info formData loginInfo true "Credentials for login"
// @Success 302 "Redirect to the dashboard of the user's role"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Email not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database or session store error"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBind(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email or password is not provided",
		})
		return
	}

	var user model.User
	err := ac.DB.Where("email = ?", info.Email).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: badCredentials,
		})
		return

	case err == nil:
		// Do nothing

	default:
		logging.Log.WithError(err).Error("failed to look up user")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Login failed. Please try again.",
		})
		return
	}

	if !utilities.VerifyPassword(info.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: badCredentials,
		})
		return
	}

	sessionID := session.NewID()
	ttl := session.TTL()
	sess := session.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	if err := ac.Sessions.Set(c.Request.Context(), sessionID, sess, ttl); err != nil {
		logging.Log.WithError(err).Error("failed to store session")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Login failed. Please try again.",
		})
		return
	}

	c.SetCookie(session.CookieName, sessionID, int(ttl.Seconds()), "/", "", false, true)

	switch user.Role {
	case model.RoleJobSeeker:
		c.Redirect(http.StatusFound, "/job_seeker/dashboard")
	case model.RoleCompany:
		c.Redirect(http.StatusFound, "/company/dashboard")
	case model.RoleAdmin:
		c.Redirect(http.StatusFound, "/admin/dashboard")
	default:
		c.Redirect(http.StatusFound, "/")
	}
}

// Logout destroys the current session and clears the cookie.
// @Summary Destroys the current session
// @Tags Auth
// @Produce json
// @Success 302 "Redirect to the login page"
// @Router /auth/logout [get]
func (ac *AuthController) Logout(c *gin.Context) {
	if id, err := c.Cookie(session.CookieName); err == nil {
		if err := ac.Sessions.Destroy(c.Request.Context(), id); err != nil {
			logging.Log.WithError(err).Warn("failed to destroy session")
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/auth/login")
}
