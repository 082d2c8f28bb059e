package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/utils"
)

// ProtectedAdminID is the bootstrap admin created by the seeder. It cannot
// be deleted, so the system always has at least one working admin login.
const ProtectedAdminID = "1"

func ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	var users []User
	if err := db.DB.Order("created_at asc").Find(&users).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToResponse(u)
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

func DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if id == ProtectedAdminID {
		utils.RespondError(w, http.StatusBadRequest, "The primary admin account cannot be deleted")
		return
	}

	var user User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	// Their sessions and pending resets go with them.
	db.DB.Where("user_id = ?", id).Delete(&Session{})
	db.DB.Where("user_id = ?", id).Delete(&PasswordReset{})

	utils.RespondMessage(w, http.StatusOK, "User deleted")
}
