package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	directory "github.com/udyambridge/business-platform-go/directory"
	models "github.com/udyambridge/business-platform-go/models"
	utils "github.com/udyambridge/business-platform-go/utils"
)

// ---------------- LIST ----------------
func ListVolunteers(dir *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		volunteers, err := dir.Volunteers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch volunteers"})
			return
		}

		if len(volunteers) > 0 {
			// Ids are insertion timestamps in order, so the last record is
			// the newest.
			latest := volunteers[len(volunteers)-1].ID
			etag := utils.GenerateETag(latest, len(volunteers))
			if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
				c.Status(http.StatusNotModified)
				return
			}
			c.Header("ETag", etag)
			c.Header("Last-Modified", time.UnixMilli(latest).UTC().Format(http.TimeFormat))
		}

		c.JSON(http.StatusOK, volunteers)
	}
}

// ---------------- CREATE ----------------
func CreateVolunteer(dir *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name       string `json:"name" binding:"required"`
			DOB        string `json:"dob" binding:"required"`
			Department string `json:"department" binding:"required"`
			Aadhar     string `json:"aadhar" binding:"required"`
			Phone      string `json:"phone" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		volunteer, err := dir.AddVolunteer(models.Volunteer{
			Name:       input.Name,
			DOB:        input.DOB,
			Department: input.Department,
			Aadhar:     input.Aadhar,
			Phone:      input.Phone,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register volunteer"})
			return
		}

		c.JSON(http.StatusCreated, volunteer)
	}
}
