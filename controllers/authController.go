package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dkorir/storefront-api/initializers"
	"github.com/dkorir/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	msgUsernameTaken        = "a user with this username already exists"
	msgInvalidCredentials   = "invalid username or password"
	msgFailedToHashPassword = "failed to hash password"
	msgFailedToGenToken     = "failed to generate token"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"is_buyer":  user.IsBuyer,
		"is_seller": user.IsSeller,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func usernameTaken(username string) (bool, error) {
	var existingUser models.User
	result := initializers.DB.Where("username = ?", username).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

// Register creates a user account with a bcrypt-hashed password.
func Register(ctx *gin.Context) {
	var registerData models.RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendValidationErrors(ctx, err)
		return
	}

	taken, err := usernameTaken(registerData.Username)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if taken {
		sendFieldError(ctx, "username", msgUsernameTaken)
		return
	}

	hashedPassword, err := hashPassword(registerData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Username: registerData.Username,
		Email:    registerData.Email,
		Password: hashedPassword,
		IsBuyer:  registerData.IsBuyer,
		IsSeller: registerData.IsSeller,
	}
	if result := initializers.DB.Create(&user); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, user.Response())
}

// Login verifies credentials and issues a signed token.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendValidationErrors(ctx, err)
		return
	}

	var user models.User
	result := initializers.DB.
		Where("username = ? OR email = ?", loginData.Username, loginData.Username).
		First(&user)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString})
}
