package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shorturl-be/internal/service"
)

type QRCodeController struct {
	urlService service.URLService
}

func NewQRCodeController(urlService service.URLService) *QRCodeController {
	return &QRCodeController{
		urlService: urlService,
	}
}

// GenerateQRCode handles GET /qrcode/:shortCode - renders the QR code of an existing short URL as PNG
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	pngData, err := qc.urlService.QRCode(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
