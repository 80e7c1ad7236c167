package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitlife/internal/auth"
	"fitlife/internal/models"
	"fitlife/internal/plan"
)

type registerRequest struct {
	Email               string  `json:"email" binding:"required,email"`
	Password            string  `json:"password" binding:"required,min=6"`
	FullName            string  `json:"full_name" binding:"required"`
	Age                 int     `json:"age" binding:"required,gte=12,lte=100"`
	Weight              float64 `json:"weight" binding:"required,gte=30,lte=300"`
	Height              int     `json:"height" binding:"required,gte=120,lte=250"`
	Objectives          string  `json:"objectives" binding:"required"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
	TrainingType        string  `json:"training_type" binding:"required,oneof=academia casa ar_livre"`
	CurrentActivities   string  `json:"current_activities"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *API) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx := c.Request.Context()

	existing, err := a.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		a.log.Errorw("failed to check existing user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email já cadastrado"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.log.Errorw("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := a.db.CreateUser(ctx, user); err != nil {
		a.log.Errorw("failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	profile := &models.Profile{
		ID:                  uuid.NewString(),
		UserID:              user.ID,
		FullName:            req.FullName,
		Age:                 req.Age,
		Weight:              req.Weight,
		Height:              req.Height,
		Objectives:          req.Objectives,
		DietaryRestrictions: req.DietaryRestrictions,
		TrainingType:        req.TrainingType,
		CurrentActivities:   req.CurrentActivities,
	}
	if err := a.db.SaveProfile(ctx, profile); err != nil {
		a.log.Errorw("failed to save profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	token, err := a.tokens.IssueToken(user.Email)
	if err != nil {
		a.log.Errorw("failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	a.log.Infow("new user registered", "email", user.Email)

	c.JSON(http.StatusCreated, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (a *API) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := a.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		a.log.Errorw("failed to load user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Email ou senha incorretos"})
		return
	}

	token, err := a.tokens.IssueToken(user.Email)
	if err != nil {
		a.log.Errorw("failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// authRequired validates the bearer token and loads the account into the
// request context.
func (a *API) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Credenciais inválidas"})
			return
		}

		email, err := a.tokens.ParseToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Credenciais inválidas"})
			return
		}

		user, err := a.db.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			a.log.Errorw("failed to load user", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Credenciais inválidas"})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	value, _ := c.Get("user")
	return value.(*models.User)
}

type profileResponse struct {
	models.Profile
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
}

func (a *API) handleGetProfile(c *gin.Context) {
	user := currentUser(c)

	profile, err := a.db.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		a.log.Errorw("failed to load profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Perfil não encontrado"})
		return
	}

	bmi := plan.BMI(profile.Weight, profile.Height)
	c.JSON(http.StatusOK, profileResponse{
		Profile:     *profile,
		BMI:         bmi,
		BMICategory: bmiCategory(bmi),
	})
}

type profileUpdateRequest struct {
	FullName            *string  `json:"full_name"`
	Age                 *int     `json:"age" binding:"omitempty,gte=12,lte=100"`
	Weight              *float64 `json:"weight" binding:"omitempty,gte=30,lte=300"`
	Height              *int     `json:"height" binding:"omitempty,gte=120,lte=250"`
	Objectives          *string  `json:"objectives"`
	DietaryRestrictions *string  `json:"dietary_restrictions"`
	TrainingType        *string  `json:"training_type" binding:"omitempty,oneof=academia casa ar_livre"`
	CurrentActivities   *string  `json:"current_activities"`
}

func (a *API) handleUpdateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user := currentUser(c)
	ctx := c.Request.Context()

	profile, err := a.db.GetProfile(ctx, user.ID)
	if err != nil {
		a.log.Errorw("failed to load profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Perfil não encontrado"})
		return
	}

	// Update only the provided fields
	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Weight != nil {
		profile.Weight = *req.Weight
	}
	if req.Height != nil {
		profile.Height = *req.Height
	}
	if req.Objectives != nil {
		profile.Objectives = *req.Objectives
	}
	if req.DietaryRestrictions != nil {
		profile.DietaryRestrictions = *req.DietaryRestrictions
	}
	if req.TrainingType != nil {
		profile.TrainingType = *req.TrainingType
	}
	if req.CurrentActivities != nil {
		profile.CurrentActivities = *req.CurrentActivities
	}

	if err := a.db.SaveProfile(ctx, profile); err != nil {
		a.log.Errorw("failed to save profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	bmi := plan.BMI(profile.Weight, profile.Height)
	c.JSON(http.StatusOK, profileResponse{
		Profile:     *profile,
		BMI:         bmi,
		BMICategory: bmiCategory(bmi),
	})
}

func (a *API) handleDeleteAccount(c *gin.Context) {
	user := currentUser(c)

	if err := a.db.DeleteUser(c.Request.Context(), user.ID); err != nil {
		a.log.Errorw("failed to delete account", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	a.log.Infow("account deleted", "email", user.Email)
	c.Status(http.StatusNoContent)
}

func (a *API) handleGenerateWorkout(c *gin.Context) {
	a.generateSuggestion(c, plan.KindWorkout)
}

func (a *API) handleGenerateNutrition(c *gin.Context) {
	a.generateSuggestion(c, plan.KindNutrition)
}

func (a *API) generateSuggestion(c *gin.Context, kind plan.Kind) {
	user := currentUser(c)
	ctx := c.Request.Context()

	premium, err := a.ledger.IsPremium(ctx, user.ID)
	if err != nil {
		a.log.Errorw("failed to check entitlement", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}
	if !premium {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Assinatura premium necessária"})
		return
	}

	profile, err := a.db.GetProfile(ctx, user.ID)
	if err != nil {
		a.log.Errorw("failed to load profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Perfil não encontrado. Complete seu perfil primeiro."})
		return
	}

	a.log.Infow("generating plan", "kind", kind, "user_id", user.ID)
	content := a.generator.Generate(ctx, kind, profile)

	suggestion := &models.Suggestion{
		ID:      uuid.NewString(),
		UserID:  user.ID,
		Type:    string(kind),
		Content: content,
	}
	if err := a.db.SaveSuggestion(ctx, suggestion); err != nil {
		a.log.Errorw("failed to save suggestion", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	c.JSON(http.StatusCreated, suggestion)
}

func (a *API) handleSuggestionsHistory(c *gin.Context) {
	user := currentUser(c)

	suggestions, err := a.db.ListSuggestions(c.Request.Context(), user.ID)
	if err != nil {
		a.log.Errorw("failed to list suggestions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	workouts := make([]models.Suggestion, 0)
	nutrition := make([]models.Suggestion, 0)
	for _, s := range suggestions {
		switch s.Type {
		case string(plan.KindWorkout):
			workouts = append(workouts, s)
		case string(plan.KindNutrition):
			nutrition = append(nutrition, s)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"workouts":  workouts,
		"nutrition": nutrition,
	})
}

func (a *API) handleDeleteSuggestion(c *gin.Context) {
	user := currentUser(c)

	deleted, err := a.db.DeleteSuggestion(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		a.log.Errorw("failed to delete suggestion", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Sugestão não encontrada"})
		return
	}

	c.Status(http.StatusNoContent)
}

// bmiCategory classifies a BMI value using the WHO bands.
func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Abaixo do peso"
	case bmi < 25:
		return "Peso normal"
	case bmi < 30:
		return "Sobrepeso"
	case bmi < 35:
		return "Obesidade grau I"
	case bmi < 40:
		return "Obesidade grau II"
	default:
		return "Obesidade grau III"
	}
}
