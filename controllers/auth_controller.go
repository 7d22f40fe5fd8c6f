package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	config "github.com/udyambridge/business-platform-go/config"
	directory "github.com/udyambridge/business-platform-go/directory"
	models "github.com/udyambridge/business-platform-go/models"
	session "github.com/udyambridge/business-platform-go/session"
	utils "github.com/udyambridge/business-platform-go/utils"
)

// Post-login landing pages per role.
const (
	investorHome   = "/business/investment-ideas"
	managementHome = "/business/volunteers"
)

// ---------------- INVESTOR SIGNUP ----------------
func InvestorRegister(dir *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FullName string `json:"fullName" binding:"required"`
			Age      string `json:"age" binding:"required"`
			DOB      string `json:"dob" binding:"required"`
			Aadhar   string `json:"aadhar" binding:"required"`
			Role     string `json:"role"`
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Role == "" {
			input.Role = "Student"
		}

		investor := models.Investor{
			FullName: input.FullName,
			Age:      input.Age,
			DOB:      input.DOB,
			Aadhar:   input.Aadhar,
			Role:     input.Role,
			Username: input.Username,
			Password: input.Password,
		}

		// Field checks run before the directory is touched; a rejected signup
		// must leave the store unchanged.
		if res := models.ValidateInvestorSignup(investor); !res.OK() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   strings.Join(res.Reasons, "; "),
				"reasons": res.Reasons,
			})
			return
		}

		if err := dir.AddInvestor(investor); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully! Please login."})
	}
}

// ---------------- INVESTOR LOGIN ----------------
func InvestorLogin(cfg *config.Config, dir *directory.Directory, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		investor, err := dir.AuthenticateInvestor(input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check credentials"})
			return
		}
		if investor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		login(c, cfg, mgr, investor, models.RoleInvestor, investorHome)
	}
}

// ---------------- MANAGEMENT SIGNUP ----------------
func ManagementRegister(dir *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ManagementAdmin
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.CollegeName == "" || input.AdminName == "" || input.Username == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
			return
		}

		if res := models.ValidateManagementSignup(input); !res.OK() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   strings.Join(res.Reasons, "; "),
				"reasons": res.Reasons,
			})
			return
		}

		if err := dir.AddManagement(input); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Management account created! Proceed to login."})
	}
}

// ---------------- MANAGEMENT LOGIN ----------------
func ManagementLogin(cfg *config.Config, dir *directory.Directory, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		admin, err := dir.AuthenticateManagement(input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check credentials"})
			return
		}
		if admin == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials"})
			return
		}

		login(c, cfg, mgr, admin, models.RoleManagement, managementHome)
	}
}

// ---------------- LOGOUT ----------------
func Logout(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := mgr.Logout(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "logged out", "redirect": "/business"})
	}
}

// ---------------- CURRENT SESSION ----------------
func CurrentSession(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := mgr.Snapshot()
		switch snap.State {
		case session.StateLoading:
			c.Header("Retry-After", "1")
			c.Status(http.StatusServiceUnavailable)
		case session.StateAuthenticated:
			c.JSON(http.StatusOK, snap.Session)
		default:
			c.Status(http.StatusNoContent)
		}
	}
}

// login establishes the session and answers with its token and the role's
// landing page.
func login(c *gin.Context, cfg *config.Config, mgr *session.Manager, identity any, role models.Role, home string) {
	sess, err := mgr.Login(identity, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not establish session"})
		return
	}
	token, err := utils.IssueToken(cfg.JWTSecret, sess.Username(), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"session":  sess,
		"redirect": home,
	})
}
