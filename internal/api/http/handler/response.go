package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/univc/portfolio-server/internal/model"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func newTokenResponse(pair model.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
	}
}

type userResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Contact        string     `json:"contact"`
	Course         string     `json:"course,omitempty"`
	Period         string     `json:"period,omitempty"`
	StartYear      *int       `json:"start_year,omitempty"`
	EndYear        *int       `json:"end_year,omitempty"`
	BirthDate      *string    `json:"birth_date,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	XPTotal        int        `json:"xp_total"`
	CurrentLevelID *uuid.UUID `json:"current_level_id,omitempty"`
	IsNew          bool       `json:"is_new"`
	Validated      bool       `json:"validated"`
	LastSignedAt   *time.Time `json:"last_signed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func newUserResponse(user model.User) userResponse {
	resp := userResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Contact:        user.Contact,
		Course:         user.Course,
		Period:         user.Period,
		StartYear:      user.StartYear,
		EndYear:        user.EndYear,
		ImageURL:       user.ImageURL,
		XPTotal:        user.XPTotal,
		CurrentLevelID: user.CurrentLevelID,
		IsNew:          user.IsNew,
		Validated:      user.Validated,
		LastSignedAt:   user.LastSignedAt,
		CreatedAt:      user.CreatedAt,
	}
	if user.BirthDate != nil {
		bd := user.BirthDate.Format(time.DateOnly)
		resp.BirthDate = &bd
	}
	return resp
}

type courseResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Period      int       `json:"period"`
	Periods     []string  `json:"periods"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newCourseResponse(course model.Course) courseResponse {
	return courseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Description: course.Description,
		Period:      course.Period,
		Periods:     course.PeriodLabels(),
		Enabled:     course.Enabled,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

type levelResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Tag         string    `json:"tag,omitempty"`
	Rank        int       `json:"rank"`
	XPMin       int       `json:"xp_min"`
	XPMax       *int      `json:"xp_max,omitempty"`
	Description string    `json:"description,omitempty"`
	Enabled     bool      `json:"enabled"`
}

func newLevelResponse(level model.Level) levelResponse {
	return levelResponse{
		ID:          level.ID,
		Title:       level.Title,
		Tag:         level.Tag,
		Rank:        level.Rank,
		XPMin:       level.XPMin,
		XPMax:       level.XPMax,
		Description: level.Description,
		Enabled:     level.Enabled,
	}
}

type projectResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Body        string    `json:"body"`
	ImageURL    string    `json:"image_url,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProjectResponse(project model.Project) projectResponse {
	tags := project.Tags
	if tags == nil {
		tags = []string{}
	}
	return projectResponse{
		ID:          project.ID,
		UserID:      project.UserID,
		Title:       project.Title,
		Description: project.Description,
		Body:        project.Body,
		ImageURL:    project.ImageURL,
		Tags:        tags,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// userIDFrom reads the authenticated user id placed by the auth middleware.
func userIDFrom(c echo.Context, cm model.ContextManager) (uuid.UUID, error) {
	userID, ok := cm.GetUserIDFromContext(c.Request().Context())
	if !ok || userID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized)
	}
	return userID, nil
}
