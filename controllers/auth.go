// controllers/auth.go
package controllers

import (
	"net/http"
	"strings"

	"pawcare-backend/logger"
	"pawcare-backend/services"
	"pawcare-backend/session"
	"pawcare-backend/store"
	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
)

const tempPasswordLength = 12

type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

type CustomerLoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,phone"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	admin, err := h.Store.GetAdminByUsername(c.Request.Context(), strings.TrimSpace(input.Username))
	if err != nil {
		h.serverError(c, "admin login", err)
		return
	}
	if admin == nil || !utils.CheckPasswordHash(input.Password, admin.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	data := session.Current(c).Data
	data.AdminAuthenticated = true
	data.AdminUsername = admin.Username
	data.Remember = data.Remember || input.Remember
	if err := h.Sessions.Renew(c, data); err != nil {
		h.serverError(c, "save session", err)
		return
	}

	h.Log.Info("admin logged in", logger.Fields{"username": admin.Username})
	utils.RespondWithMessage(c, http.StatusOK, "Login successful", gin.H{"username": admin.Username})
}

// Logout ends the whole session, both identities included.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.Destroy(c); err != nil {
		h.serverError(c, "destroy session", err)
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *Handler) AdminCheck(c *gin.Context) {
	data := session.Current(c).Data
	if !data.AdminAuthenticated {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	admin, err := h.Store.GetAdminByUsername(c.Request.Context(), data.AdminUsername)
	if err != nil {
		h.serverError(c, "admin check", err)
		return
	}
	if admin == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":              admin.ID,
			"username":        admin.Username,
			"email":           admin.Email,
			"profile_picture": admin.ProfilePicture,
		},
	})
}

func (h *Handler) CustomerRegister(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	name := strings.TrimSpace(input.Name)
	if len([]rune(name)) < 2 {
		utils.RespondWithError(c, http.StatusBadRequest, "Name must be at least 2 characters")
		return
	}
	if err := utils.ValidatePassword(input.Password); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	email := normalizeEmail(input.Email)
	phone := strings.ReplaceAll(input.Phone, " ", "")

	existing, err := h.Store.GetUserByEmail(ctx, email)
	if err != nil {
		h.serverError(c, "register lookup", err)
		return
	}
	if existing != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		h.serverError(c, "hash password", err)
		return
	}

	var customerID uint
	err = h.Store.Transaction(ctx, func(tx store.Store) error {
		customer, err := tx.GetCustomerByEmail(ctx, email)
		if err != nil {
			return err
		}
		if customer != nil {
			customerID = customer.ID
		} else if customerID, err = tx.CreateCustomer(ctx, name, email, phone); err != nil {
			return err
		}
		_, err = tx.CreateUser(ctx, customerID, email, hash)
		return err
	})
	if err != nil {
		h.storeError(c, "register customer", err, "Email already registered")
		return
	}

	data := session.Current(c).Data
	data.CustomerAuthenticated = true
	data.CustomerID = customerID
	data.CustomerEmail = email
	if err := h.Sessions.Renew(c, data); err != nil {
		h.serverError(c, "save session", err)
		return
	}

	h.Log.Info("customer registered", logger.Fields{"customer_id": customerID})
	utils.RespondWithMessage(c, http.StatusCreated, "Registration successful", gin.H{
		"id":    customerID,
		"name":  name,
		"email": email,
	})
}

func (h *Handler) CustomerLogin(c *gin.Context) {
	var input CustomerLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx := c.Request.Context()
	user, err := h.Store.GetUserByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		h.serverError(c, "customer login", err)
		return
	}
	if user == nil || !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	customer, err := h.Store.GetCustomerByID(ctx, user.CustomerID)
	if err != nil {
		h.serverError(c, "customer login", err)
		return
	}
	if customer == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	data := session.Current(c).Data
	data.CustomerAuthenticated = true
	data.CustomerID = customer.ID
	data.CustomerEmail = user.Email
	data.Remember = data.Remember || input.Remember
	if err := h.Sessions.Renew(c, data); err != nil {
		h.serverError(c, "save session", err)
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Login successful", gin.H{
		"id":    customer.ID,
		"name":  customer.Name,
		"email": customer.Email,
	})
}

func (h *Handler) CustomerCheck(c *gin.Context) {
	data := session.Current(c).Data
	if !data.CustomerAuthenticated {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	customer, err := h.Store.GetCustomerByID(c.Request.Context(), data.CustomerID)
	if err != nil {
		h.serverError(c, "customer check", err)
		return
	}
	if customer == nil {
		// account removed while the session lived on
		data.CustomerAuthenticated = false
		data.CustomerID = 0
		data.CustomerEmail = ""
		if err := h.dropIdentity(c, data); err != nil {
			h.serverError(c, "save session", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":              customer.ID,
			"name":            customer.Name,
			"email":           customer.Email,
			"phone":           customer.Phone,
			"profile_picture": customer.ProfilePicture,
		},
	})
}

func (h *Handler) dropIdentity(c *gin.Context, data session.Data) error {
	if data.Empty() {
		return h.Sessions.Destroy(c)
	}
	return h.Sessions.Save(c, data)
}

func (h *Handler) AdminForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	ctx := c.Request.Context()
	admin, err := h.Store.GetAdminByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		h.serverError(c, "admin forgot password", err)
		return
	}
	if admin == nil {
		utils.RespondWithError(c, http.StatusNotFound, "No admin account found with this email")
		return
	}

	temp, hash, ok := h.tempPassword(c)
	if !ok {
		return
	}
	if _, err := h.Store.UpdateAdminPassword(ctx, admin.Username, hash); err != nil {
		h.serverError(c, "reset admin password", err)
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Temporary password sent to your email", nil)
	h.Dispatcher.Dispatch(services.Notification{Kind: services.KindPasswordReset, To: admin.Email, TempPassword: temp})
}

func (h *Handler) CustomerForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	ctx := c.Request.Context()
	user, err := h.Store.GetUserByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		h.serverError(c, "customer forgot password", err)
		return
	}
	if user == nil {
		utils.RespondWithError(c, http.StatusNotFound, "No account found with this email")
		return
	}

	temp, hash, ok := h.tempPassword(c)
	if !ok {
		return
	}
	if _, err := h.Store.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		h.serverError(c, "reset customer password", err)
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Temporary password sent to your email", nil)
	h.Dispatcher.Dispatch(services.Notification{Kind: services.KindPasswordReset, To: user.Email, TempPassword: temp})
}

func (h *Handler) tempPassword(c *gin.Context) (string, string, bool) {
	temp, err := utils.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		h.serverError(c, "generate temporary password", err)
		return "", "", false
	}
	hash, err := utils.HashPassword(temp)
	if err != nil {
		h.serverError(c, "hash temporary password", err)
		return "", "", false
	}
	return temp, hash, true
}
