package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shorturl-be/internal/entities"
	"shorturl-be/internal/middleware"
	"shorturl-be/internal/models"
	"shorturl-be/internal/service"
)

type ShortenerController struct {
	urlService service.URLService
}

func NewShortenerController(urlService service.URLService) *ShortenerController {
	return &ShortenerController{
		urlService: urlService,
	}
}

// identity returns the caller set by the auth middleware, aborting with 401 when absent
func identity(c *gin.Context) (entities.Identity, bool) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
	}
	return id, ok
}

// shortURLID parses the numeric short URL id path parameter. A malformed id cannot name a short URL, so it is a 404.
func shortURLID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("shorturlId"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return 0, false
	}
	return id, true
}

// CreateShortURL handles POST /shorten
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	var req models.CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	owner, ok := identity(c)
	if !ok {
		return
	}

	url, err := sc.urlService.Shorten(c.Request.Context(), req.OriginalURL, owner)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CreateURLResponse{
		ID:          url.ID,
		OriginalURL: url.OriginalURL,
		ShortURL:    url.ShortURL,
		QRCode:      url.QRCode,
		CreatedBy:   url.UserID,
		CreatedAt:   url.CreatedAt,
	})
}

// RedirectToURL handles GET /:shortCode - redirects to original URL
func (sc *ShortenerController) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("shortCode")

	originalURL, err := sc.urlService.Resolve(c.Request.Context(), shortCode, c.ClientIP())
	if err != nil {
		serviceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, originalURL)
}

// GetHistory handles GET /history/:shorturlId - lists visits, newest first
func (sc *ShortenerController) GetHistory(c *gin.Context) {
	requester, ok := identity(c)
	if !ok {
		return
	}

	id, ok := shortURLID(c)
	if !ok {
		return
	}

	history, err := sc.urlService.GetHistory(c.Request.Context(), id, requester)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		ShortURLID:  id,
		TotalVisits: len(history),
		History:     history,
	})
}

// GetUserHistory handles GET /user/history - visit totals per short URL
func (sc *ShortenerController) GetUserHistory(c *gin.Context) {
	requester, ok := identity(c)
	if !ok {
		return
	}

	urls, err := sc.urlService.GetUserLinks(c.Request.Context(), requester)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UserHistoryResponse{
		UserID:    requester.UserID,
		TotalURLs: len(urls),
		URLs:      urls,
	})
}

// DeleteURL handles DELETE /:shorturlId - deletes a short URL and its history
func (sc *ShortenerController) DeleteURL(c *gin.Context) {
	requester, ok := identity(c)
	if !ok {
		return
	}

	id, ok := shortURLID(c)
	if !ok {
		return
	}

	if err := sc.urlService.DeleteLink(c.Request.Context(), id, requester); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DeleteURLResponse{
		Message:    "Short URL deleted successfully",
		ShortURLID: id,
	})
}
