package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/services"
	"github.com/helpkhazaana-eng/production-app/utils"
)

type AdminController struct {
	Sheets  *services.SheetsService
	Monitor *services.SheetsMonitor
}

func NewAdminController(sheets *services.SheetsService, monitor *services.SheetsMonitor) *AdminController {
	return &AdminController{Sheets: sheets, Monitor: monitor}
}

// Login checks ADMIN_EMAIL and the bcrypt ADMIN_PASSWORD_HASH and issues a
// bearer token for the ops endpoints.
func (ac *AdminController) Login(c *gin.Context) {
	type reqBody struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || passwordHash == "" {
		utils.RespondError(c, http.StatusServiceUnavailable, errors.New("admin access is not configured"))
		return
	}

	if body.Email != adminEmail ||
		bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(body.Password)) != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateAdminToken(body.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

// Health reports the sheet endpoint's last observed state.
func (ac *AdminController) Health(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Sheets health", ac.Monitor.Health())
}

// Config shows the running storefront configuration, secrets elided.
func (ac *AdminController) Config(c *gin.Context) {
	cfg := ac.Sheets.Config()
	utils.RespondJSON(c, http.StatusOK, "Storefront config", gin.H{
		"script_url_set":  cfg.ScriptURL != "",
		"whatsapp_number": cfg.WhatsAppNumber,
		"max_retries":     cfg.MaxRetries,
		"timeout_seconds": int(cfg.Timeout.Seconds()),
		"restaurants":     len(models.Restaurants),
		"tax_rate":        services.TaxRate,
		"base_delivery":   services.BaseDeliveryFee,
	})
}
