package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edu_portal/internal/config"
	"edu_portal/internal/models"
)

// snippetInput defines the writable snippet fields. Owner is never client
// supplied; it comes from the access token when one is present.
type snippetInput struct {
	Title    string `json:"title" binding:"required,max=100"`
	Code     string `json:"code" binding:"required"`
	Linenos  bool   `json:"linenos"`
	Language string `json:"language" binding:"omitempty,oneof=python javascript"`
	Style    string `json:"style" binding:"omitempty,oneof=friendly monokai"`
}

// CreateSnippet stores a new snippet; anonymous callers are allowed and get a
// null owner.
func CreateSnippet(c *gin.Context) {
	var input snippetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	language, style := input.Language, input.Style
	if language == "" {
		language = models.LanguagePython
	}
	if style == "" {
		style = models.StyleFriendly
	}
	if err := validateSnippetChoices(language, style); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{err.Error()}})
		return
	}

	snippet := models.Snippet{
		Title:    input.Title,
		Code:     input.Code,
		Linenos:  input.Linenos,
		Language: language,
		Style:    style,
	}
	if ownerID, ok := currentUserID(c); ok {
		snippet.OwnerID = &ownerID
	}

	if err := config.DB.Create(&snippet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create snippet", "detail": err.Error()})
		return
	}

	if snippet.OwnerID != nil {
		var owner models.User
		if err := config.DB.First(&owner, *snippet.OwnerID).Error; err == nil {
			snippet.Owner = &owner
		}
	}

	c.JSON(http.StatusCreated, snippetResponse(&snippet))
}

// ListSnippets returns every snippet, oldest first.
func ListSnippets(c *gin.Context) {
	var snippets []models.Snippet
	if err := config.DB.Preload("Owner").Order("created_at asc").Find(&snippets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not list snippets", "detail": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(snippets))
	for i := range snippets {
		out = append(out, snippetResponse(&snippets[i]))
	}
	c.JSON(http.StatusOK, out)
}

func GetSnippet(c *gin.Context) {
	var snippet models.Snippet
	if err := config.DB.Preload("Owner").First(&snippet, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Snippet not found"})
		return
	}
	c.JSON(http.StatusOK, snippetResponse(&snippet))
}

func UpdateSnippet(c *gin.Context) {
	var snippet models.Snippet
	if err := config.DB.First(&snippet, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Snippet not found"})
		return
	}

	var input snippetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	snippet.Title = input.Title
	snippet.Code = input.Code
	snippet.Linenos = input.Linenos
	if input.Language != "" {
		snippet.Language = input.Language
	}
	if input.Style != "" {
		snippet.Style = input.Style
	}

	// The rule holds for the merged state, not just the request fields: an
	// omitted field keeps its stored value, which still must combine legally.
	if err := validateSnippetChoices(snippet.Language, snippet.Style); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{err.Error()}})
		return
	}

	if err := config.DB.Save(&snippet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update snippet", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snippetResponse(&snippet))
}

func DeleteSnippet(c *gin.Context) {
	var snippet models.Snippet
	if err := config.DB.First(&snippet, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Snippet not found"})
		return
	}

	config.DB.Delete(&snippet)
	c.Status(http.StatusNoContent)
}

// validateSnippetChoices holds the one cross-field rule: friendly rendering
// is not available for javascript. Callers pass the effective values, with
// defaults and any stored state already applied.
func validateSnippetChoices(language, style string) error {
	if language == models.LanguageJavascript && style == models.StyleFriendly {
		return errFriendlyJavascript
	}
	return nil
}

var errFriendlyJavascript = snippetRuleError("Friendly style is not allowed with Javascript language.")

type snippetRuleError string

func (e snippetRuleError) Error() string { return string(e) }

func snippetResponse(s *models.Snippet) gin.H {
	resp := gin.H{
		"id":       s.ID,
		"title":    s.Title,
		"code":     s.Code,
		"linenos":  s.Linenos,
		"language": s.Language,
		"style":    s.Style,
		"owner":    nil,
	}
	if s.Owner != nil {
		resp["owner"] = gin.H{"id": s.Owner.ID, "username": s.Owner.Username}
	}
	return resp
}

// currentUserID reads the identity OptionalAuth may have attached.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return uint(id), true
}
