package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/utils"
	"github.com/sudeys05/police-system/internal/validate"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     "session_id",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cookieSecure,
	}
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var user User

	if err := utils.DecodeJSON(r, &user); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("username", user.Username)
	errs.Required("email", user.Email)
	errs.Required("password", user.Password)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	// Check for a taken username or email before hashing.
	var existing User
	err := db.DB.First(&existing, "username = ? OR email = ?", user.Username, user.Email).Error
	if err == nil {
		utils.RespondError(w, http.StatusConflict, "Username or email already taken")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}
	user.HashedPassword = string(hashed)
	user.Password = ""
	user.ID = uuid.NewString()
	// Self-registration never grants a role, whatever the body claims.
	// Admin accounts come from the seeder or an existing admin.
	user.Role = "user"
	user.IsActive = true

	if err := db.DB.Create(&user).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"user": ToResponse(user)})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("username", input.Username)
	errs.Required("password", input.Password)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	// One uniform path for every account: look up, compare hashes, done.
	// A store failure is not a credential failure and must not read as one.
	var user User
	err := db.DB.First(&user, "username = ?", input.Username).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if err != nil || !user.IsActive {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// Expired sessions and reset tokens are dead weight once past their
	// TTL; each successful login sweeps them out, best-effort.
	db.DB.Where("expires_at < ?", time.Now()).Delete(&Session{})
	db.DB.Where("expires_at < ?", time.Now()).Delete(&PasswordReset{})

	session := Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := db.DB.Create(&session).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	now := time.Now()
	db.DB.Model(&user).Update("last_login", now)
	user.LastLogin = &now

	http.SetCookie(w, sessionCookie(session.SessionID, int(sessionTTL.Seconds())))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"user": ToResponse(user)})
}

// LogoutHandler is deliberately outside the session gate: logging out with
// a dead or missing session still clears the cookie and succeeds.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session_id"); err == nil {
		db.DB.Where("session_id = ?", cookie.Value).Delete(&Session{})
	}

	http.SetCookie(w, sessionCookie("", -1))
	utils.RespondMessage(w, http.StatusOK, "Logout successful")
}

func MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var user User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"user": ToResponse(user)})
}

func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input struct {
		FirstName       *string `json:"firstName"`
		LastName        *string `json:"lastName"`
		Email           *string `json:"email"`
		BadgeNumber     *string `json:"badgeNumber"`
		CurrentPassword string  `json:"currentPassword"`
		NewPassword     string  `json:"newPassword"`
	}
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var user User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.BadgeNumber != nil {
		updates["badge_number"] = *input.BadgeNumber
	}
	if input.Email != nil {
		if strings.TrimSpace(*input.Email) == "" {
			utils.RespondError(w, http.StatusBadRequest, "email is required")
			return
		}
		var other User
		err := db.DB.First(&other, "email = ? AND id <> ?", *input.Email, userID).Error
		if err == nil {
			utils.RespondError(w, http.StatusConflict, "Email already taken")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update profile")
			return
		}
		updates["email"] = *input.Email
	}

	// Changing the password requires proving the current one.
	if input.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.CurrentPassword)); err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid current password")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update profile")
			return
		}
		updates["hashed_password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update profile")
			return
		}
	}

	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"user": ToResponse(user)})
}

// ForgotPasswordHandler answers identically whether or not the account
// exists; a token is always returned but only persisted for real accounts,
// so a probe learns nothing and a fake token just fails at reset time.
func ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
	}
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if strings.TrimSpace(input.Username) == "" {
		utils.RespondError(w, http.StatusBadRequest, "username is required")
		return
	}

	token := uuid.NewString()

	var user User
	if err := db.DB.First(&user, "username = ?", input.Username).Error; err == nil {
		reset := PasswordReset{
			Token:     token,
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(resetTokenTTL),
		}
		if err := db.DB.Create(&reset).Error; err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to issue reset token")
			return
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "If the account exists, the reset token below is valid for a short time",
		"token":   token,
	})
}

func ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("token", input.Token)
	errs.Required("password", input.Password)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	var reset PasswordReset
	err := db.DB.First(&reset, "token = ?", input.Token).Error
	if err != nil || reset.ExpiresAt.Before(time.Now()) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid or expired token")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	if err := db.DB.Model(&User{}).Where("id = ?", reset.UserID).
		Update("hashed_password", string(hashed)).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	// Token is single-use, and live sessions die with the old password.
	db.DB.Delete(&reset)
	db.DB.Where("user_id = ?", reset.UserID).Delete(&Session{})

	utils.RespondMessage(w, http.StatusOK, "Password updated")
}
