package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	directory "github.com/udyambridge/business-platform-go/directory"
	middleware "github.com/udyambridge/business-platform-go/middleware"
	models "github.com/udyambridge/business-platform-go/models"
	utils "github.com/udyambridge/business-platform-go/utils"
)

// ---------------- LIST ----------------
func ListInvestmentIdeas(dir *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		ideas, err := dir.InvestmentIdeas()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch ideas"})
			return
		}

		if len(ideas) > 0 {
			latest := ideas[len(ideas)-1].ID
			etag := utils.GenerateETag(latest, len(ideas))
			if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
				c.Status(http.StatusNotModified)
				return
			}
			c.Header("ETag", etag)
			c.Header("Last-Modified", time.UnixMilli(latest).UTC().Format(http.TimeFormat))
		}

		c.JSON(http.StatusOK, ideas)
	}
}

// ---------------- CREATE ----------------
func CreateInvestmentIdea(dir *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			BusinessName    string `json:"businessName" binding:"required"`
			Description     string `json:"description" binding:"required"`
			Location        string `json:"location" binding:"required"`
			FundingRequired string `json:"fundingRequired" binding:"required"`
			RiskLevel       string `json:"riskLevel"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// The submitting admin's institution labels the pitch. Free text, not
		// a validated reference.
		verifiedBy := "Management Admin"
		if admin, ok := middleware.CurrentSession(c).ManagementAdmin(); ok && admin.CollegeName != "" {
			verifiedBy = admin.CollegeName
		}

		idea, err := dir.AddInvestmentIdea(models.InvestmentIdea{
			BusinessName:    input.BusinessName,
			Description:     input.Description,
			Location:        input.Location,
			FundingRequired: input.FundingRequired,
			VerifiedBy:      verifiedBy,
			RiskLevel:       input.RiskLevel,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit idea"})
			return
		}

		if err := utils.NotifyIdeaSubmitted(idea); err != nil {
			log.Printf("idea notification failed: %v", err)
		}

		c.JSON(http.StatusCreated, gin.H{
			"idea":    idea,
			"message": "Investment project submitted for verification!",
		})
	}
}
