package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"storefront-be/internal/service"
)

const qrCodeSize = 256

type QRCodeController struct {
	productService service.ProductService
	frontendURL    string
}

func NewQRCodeController(productService service.ProductService, frontendURL string) *QRCodeController {
	return &QRCodeController{
		productService: productService,
		frontendURL:    frontendURL,
	}
}

// ProductLink is the storefront page a product QR code points to
func (qc *QRCodeController) ProductLink(id int64) string {
	return fmt.Sprintf("%s/products/%d", qc.frontendURL, id)
}

// GenerateQRCode handles GET /api/v1/products/:id/qrcode
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := qc.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	pngData, err := qrcode.Encode(qc.ProductLink(product.ID), qrcode.Medium, qrCodeSize)
	if err != nil {
		slog.Error("qr code encoding failed", "product_id", product.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=product-%d.png", product.ID))
	c.Data(http.StatusOK, "image/png", pngData)
}
