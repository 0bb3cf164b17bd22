// controllers/profile.go
package controllers

import (
	"net/http"

	"pawcare-backend/models"
	"pawcare-backend/session"
	"pawcare-backend/store"
	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateAdminProfileInput struct {
	Username       *string `json:"username"`
	Email          *string `json:"email" binding:"omitempty,email"`
	ProfilePicture *string `json:"profile_picture"`
}

type UpdateCustomerProfileInput struct {
	Name           *string `json:"name" binding:"omitempty,min=2"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone" binding:"omitempty,phone"`
	ProfilePicture *string `json:"profile_picture"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *Handler) UpdateAdminProfile(c *gin.Context) {
	var input UpdateAdminProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	update := models.AdminUpdate{
		Username:       trimmedOrNil(input.Username),
		Email:          trimmedOrNil(input.Email),
		ProfilePicture: trimmedOrNil(input.ProfilePicture),
	}
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}
	if update.Username == nil && update.Email == nil && update.ProfilePicture == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	ctx := c.Request.Context()
	data := session.Current(c).Data
	current, err := h.Store.GetAdminByUsername(ctx, data.AdminUsername)
	if err != nil {
		h.serverError(c, "admin profile lookup", err)
		return
	}
	if current == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Admin not found")
		return
	}

	if update.Email != nil {
		other, err := h.Store.GetAdminByEmail(ctx, *update.Email)
		if err != nil {
			h.serverError(c, "admin profile lookup", err)
			return
		}
		if other != nil && other.ID != current.ID {
			utils.RespondWithError(c, http.StatusBadRequest, "Email already in use by another admin")
			return
		}
	}
	if update.Username != nil && *update.Username != current.Username {
		other, err := h.Store.GetAdminByUsername(ctx, *update.Username)
		if err != nil {
			h.serverError(c, "admin profile lookup", err)
			return
		}
		if other != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Username already taken")
			return
		}
	}

	changed, err := h.Store.UpdateAdmin(ctx, current.Username, update)
	if err != nil {
		h.storeError(c, "update admin profile", err, "Username or email already in use")
		return
	}
	if !changed {
		utils.RespondWithError(c, http.StatusNotFound, "Admin not found")
		return
	}

	username := current.Username
	if update.Username != nil && *update.Username != username {
		username = *update.Username
		data.AdminUsername = username
		if err := h.Sessions.Save(c, data); err != nil {
			h.serverError(c, "save session", err)
			return
		}
	}

	admin, err := h.Store.GetAdminByUsername(ctx, username)
	if err != nil || admin == nil {
		h.serverError(c, "reload admin profile", err)
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Profile updated successfully", gin.H{
		"id":              admin.ID,
		"username":        admin.Username,
		"email":           admin.Email,
		"profile_picture": admin.ProfilePicture,
	})
}

func (h *Handler) ChangeAdminPassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Current and new passwords are required")
		return
	}

	ctx := c.Request.Context()
	admin, err := h.Store.GetAdminByUsername(ctx, session.Current(c).Data.AdminUsername)
	if err != nil {
		h.serverError(c, "admin password lookup", err)
		return
	}
	if admin == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Admin not found")
		return
	}

	hash, ok := h.checkAndHashNewPassword(c, input, admin.PasswordHash)
	if !ok {
		return
	}
	if _, err := h.Store.UpdateAdminPassword(ctx, admin.Username, hash); err != nil {
		h.serverError(c, "update admin password", err)
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Password updated successfully", nil)
}

func (h *Handler) UpdateCustomerProfile(c *gin.Context) {
	var input UpdateCustomerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	update := models.CustomerUpdate{
		Name:           trimmedOrNil(input.Name),
		Email:          trimmedOrNil(input.Email),
		Phone:          trimmedOrNil(input.Phone),
		ProfilePicture: trimmedOrNil(input.ProfilePicture),
	}
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}
	if update.Name == nil && update.Email == nil && update.Phone == nil && update.ProfilePicture == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	ctx := c.Request.Context()
	data := session.Current(c).Data
	emailChanged := update.Email != nil && *update.Email != data.CustomerEmail

	if emailChanged {
		user, err := h.Store.GetUserByEmail(ctx, *update.Email)
		if err != nil {
			h.serverError(c, "customer profile lookup", err)
			return
		}
		other, err := h.Store.GetCustomerByEmail(ctx, *update.Email)
		if err != nil {
			h.serverError(c, "customer profile lookup", err)
			return
		}
		if (user != nil && user.CustomerID != data.CustomerID) || (other != nil && other.ID != data.CustomerID) {
			utils.RespondWithError(c, http.StatusBadRequest, "Email already in use")
			return
		}
	}

	var changed bool
	err := h.Store.Transaction(ctx, func(tx store.Store) error {
		var err error
		if changed, err = tx.UpdateCustomer(ctx, data.CustomerID, update); err != nil || !changed {
			return err
		}
		if emailChanged {
			_, err = tx.UpdateUserEmail(ctx, data.CustomerID, *update.Email)
		}
		return err
	})
	if err != nil {
		h.storeError(c, "update customer profile", err, "Email already in use")
		return
	}
	if !changed {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	if emailChanged {
		data.CustomerEmail = *update.Email
		if err := h.Sessions.Save(c, data); err != nil {
			h.serverError(c, "save session", err)
			return
		}
	}

	customer, err := h.Store.GetCustomerByID(ctx, data.CustomerID)
	if err != nil || customer == nil {
		h.serverError(c, "reload customer profile", err)
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Profile updated successfully", customer)
}

func (h *Handler) ChangeCustomerPassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Current and new passwords are required")
		return
	}

	ctx := c.Request.Context()
	user, err := h.Store.GetUserByCustomerID(ctx, session.Current(c).Data.CustomerID)
	if err != nil {
		h.serverError(c, "customer password lookup", err)
		return
	}
	if user == nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	hash, ok := h.checkAndHashNewPassword(c, input, user.PasswordHash)
	if !ok {
		return
	}
	if _, err := h.Store.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		h.serverError(c, "update customer password", err)
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Password updated successfully", nil)
}

// checkAndHashNewPassword verifies the current password against storedHash,
// applies the policy to the new one and returns its hash.
func (h *Handler) checkAndHashNewPassword(c *gin.Context, input ChangePasswordInput, storedHash string) (string, bool) {
	if !utils.CheckPasswordHash(input.CurrentPassword, storedHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Current password is incorrect")
		return "", false
	}
	if err := utils.ValidatePassword(input.NewPassword); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	hash, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		h.serverError(c, "hash password", err)
		return "", false
	}
	return hash, true
}
