package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dkorir/storefront-api/initializers"
	"github.com/dkorir/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateSeller(ctx *gin.Context) {
	var seller models.Seller
	if err := ctx.ShouldBindJSON(&seller); err != nil {
		sendValidationErrors(ctx, err)
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, seller.UserId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "User not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate user", err)
		}
		return
	}

	if err := initializers.DB.Create(&seller).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create seller", err)
		return
	}

	ctx.JSON(http.StatusCreated, seller)
}

func GetSellers(ctx *gin.Context) {
	var sellers []models.Seller
	if result := initializers.DB.Find(&sellers); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch sellers", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, sellers)
}

func GetSeller(ctx *gin.Context) {
	sellerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid seller ID", err)
		return
	}

	var seller models.Seller
	result := initializers.DB.First(&seller, sellerId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Seller not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve seller", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, seller)
}

func UpdateSeller(ctx *gin.Context) {
	sellerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid seller ID", err)
		return
	}

	var seller models.Seller
	if result := initializers.DB.First(&seller, sellerId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Seller not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve seller", result.Error)
		}
		return
	}

	var input models.Seller
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendValidationErrors(ctx, err)
		return
	}

	seller.StoreName = input.StoreName
	seller.Bio = input.Bio
	seller.PhoneNumber = input.PhoneNumber

	if err := initializers.DB.Save(&seller).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update seller", err)
		return
	}

	ctx.JSON(http.StatusOK, seller)
}

func DeleteSeller(ctx *gin.Context) {
	sellerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid seller ID", err)
		return
	}

	var seller models.Seller
	if result := initializers.DB.First(&seller, sellerId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Seller not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve seller", result.Error)
		}
		return
	}

	if result := initializers.DB.Delete(&seller); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete seller", result.Error)
		return
	}

	ctx.Status(http.StatusNoContent)
}
