package web

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/content"
	"storefront/internal/models"
	"storefront/internal/paginate"
	"storefront/internal/search"
	"storefront/internal/storefront"
)

// pageParam читает ?page=; мусор считается первой страницей
func pageParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return n
}

// reviews never redirect: "/" is where errors would be sent, so a broken
// reviews.json only empties the grid.
func (s *Server) reviews(c *gin.Context) ([]map[string]any, paginate.Page[models.Review]) {
	raw, err := s.source.Reviews()
	if err != nil {
		s.logger.Error("invalid reviews data", zap.Error(err))
		raw = nil
	}
	p := paginate.Slice(raw, pageParam(c), paginate.ReviewsPerPage)

	out := make([]map[string]any, 0, len(p.Items))
	for _, r := range p.Items {
		var m map[string]any
		if err := json.Unmarshal(r, &m); err != nil || m == nil {
			// a review that is not an object is shown as plain text
			m = map[string]any{"text": string(r)}
		}
		out = append(out, m)
	}
	return out, p
}

func (s *Server) index(c *gin.Context) {
	items, p := s.reviews(c)
	c.HTML(http.StatusOK, "index.tmpl", s.withGlobals(c, ViewData{
		"Reviews": items,
		"Page":    p,
		"Home":    s.source.Homepage(c.Request.Context()),
	}))
}

func (s *Server) testimonials(c *gin.Context) {
	items, p := s.reviews(c)
	c.HTML(http.StatusOK, "testimonials.tmpl", s.withGlobals(c, ViewData{
		"Reviews": items,
		"Page":    p,
	}))
}

func (s *Server) gallery(c *gin.Context) {
	images := s.source.Gallery(c.Request.Context())
	p := paginate.Slice(images, pageParam(c), paginate.GalleryPerPage)
	c.HTML(http.StatusOK, "gallery.tmpl", s.withGlobals(c, ViewData{
		"Images": p.Items,
		"Page":   p,
	}))
}

func (s *Server) shop(c *gin.Context) {
	catalog, err := s.source.Products(c.Request.Context())
	if err != nil {
		s.redirectWithError(c, "/", "Product data unavailable", err)
		return
	}
	p := paginate.Slice(catalog.Products(), pageParam(c), paginate.ProductsPerPage)
	c.HTML(http.StatusOK, "shop.tmpl", s.withGlobals(c, ViewData{
		"Products": storefront.Summaries(p.Items, s.cfg.StaticDir),
		"Page":     p,
	}))
}

func (s *Server) shopDetails(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		s.redirectWithError(c, "/shop", "Product ID is required", nil)
		return
	}

	catalog, err := s.source.Products(c.Request.Context())
	if err != nil {
		s.redirectWithError(c, "/shop", "Invalid product data", err)
		return
	}
	product, ok := catalog.Get(id)
	if !ok {
		s.logger.Info("product not found", zap.String("id", id))
		s.redirectWithError(c, "/shop", "Product not found", nil)
		return
	}

	c.HTML(http.StatusOK, "shop-details.tmpl", s.withGlobals(c, ViewData{
		"Product": storefront.Enrich(product, s.cfg.StaticDir),
		"Phone":   s.cfg.Company.Phone,
	}))
}

func (s *Server) searchAPI(c *gin.Context) {
	catalog, err := s.source.Products(c.Request.Context())
	if err != nil {
		s.logger.Error("search: invalid product data", zap.Error(err))
		c.JSON(http.StatusOK, []search.Result{})
		return
	}
	c.JSON(http.StatusOK, search.Run(catalog, c.Query("q"), c.Query("category")))
}

func (s *Server) contactContent(c *gin.Context) (map[string]any, bool) {
	page, err := content.LoadPage(filepath.Clean(s.cfg.ContentFile), "contact.html")
	if err != nil {
		s.redirectWithError(c, "/", "Contact page is unavailable", err)
		return nil, false
	}
	return page, true
}

func (s *Server) contact(c *gin.Context) {
	page, ok := s.contactContent(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "contact.tmpl", s.withGlobals(c, ViewData{"Content": page}))
}
